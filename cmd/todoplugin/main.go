// ChatGPTプラグイン用TODOサーバーのエントリポイント。
// 固定のTODOリストを返すAPIと、プラグインのマニフェスト・OpenAPIドキュメントを配信する。
// https://chat.openai.com からのプリフライトリクエストにはオリジンゲートが応答する。
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nao1215/todoplugin/internal/config"
	"github.com/nao1215/todoplugin/internal/plugin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := plugin.NewServer(cfg)
	if err != nil {
		log.Fatalf("TODOプラグインサーバーの初期化に失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("TODOプラグインサービスを起動します: %s (許可オリジン: %s)", cfg.Addr(), cfg.AllowedOrigin)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("TODOプラグインサービスの実行に失敗: %v", err)
	}
	log.Printf("TODOプラグインサービスを停止しました")
}
