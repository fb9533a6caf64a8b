package plugin

// todos はプロセス起動時に一度だけ構築される不変のTODOリスト。
var todos = [...]string{
	"Go to the grocery store.",
	"Build a ChatGPT plugin",
}

// Todos はTODOリストのコピーを返す。呼び出し側が変更しても元のリストには影響しない。
func Todos() []string {
	out := make([]string, len(todos))
	copy(out, todos[:])
	return out
}

// todosResponse はGET /api/todos のJSONレスポンス構造。
type todosResponse struct {
	// Todos はTODOの文字列を順序通りに並べたもの。
	Todos []string `json:"todos"`
}
