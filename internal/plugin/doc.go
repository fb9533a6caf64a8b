// Package plugin はChatGPTプラグイン用TODOサーバーの内部実装を提供する。
//
// 固定のTODOリストを返すAPIと、ChatGPTがプラグインを発見するための
// マニフェスト（/.well-known/ai-plugin.json）およびOpenAPIドキュメントを配信する。
// すべてのリクエストは最初にオリジンゲートを通過する。
package plugin
