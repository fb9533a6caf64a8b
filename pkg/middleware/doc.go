// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// ChatGPTからのクロスオリジンリクエストを扱うオリジンゲート、リクエストID付与、
// パニックリカバリ、Prometheusメトリクス収集など、サーバー全体で共通して
// 使用するミドルウェアを含む。
package middleware
