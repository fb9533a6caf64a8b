package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigin はChatGPTがプラグインを呼び出す際のオリジン。
const DefaultAllowedOrigin = "https://chat.openai.com"

// プリフライト応答で返すCORSヘッダーの値。
const (
	preflightAllowMethods = "GET, POST, PUT, DELETE, PATCH, OPTIONS"
	preflightAllowOrigin  = "*"
	preflightAllowHeaders = "*"
)

// OriginGate は単一の許可オリジンに対するクロスオリジンポリシーを適用するGinミドルウェアを返す。
// エンジンの最初のミドルウェアとして登録すること。
//
// Originヘッダーが allowedOrigin と完全一致する場合:
//   - OPTIONSリクエストはCORSヘッダー付きの空レスポンス（200）で即座に中断する。
//   - それ以外のメソッドはリクエストヘッダーにAccess-Control-Allow-Originを追記してから後続へ進む。
//
// 一致しない、またはOriginヘッダーが無い場合は何も付与せずに後続へ進む。
func OriginGate(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || origin != allowedOrigin {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", preflightAllowMethods)
			c.Header("Access-Control-Allow-Origin", preflightAllowOrigin)
			c.Header("Access-Control-Allow-Headers", preflightAllowHeaders)
			c.AbortWithStatus(http.StatusOK)
			return
		}

		// レスポンスではなくリクエスト側に追記する。既存の値は残る。
		c.Request.Header.Add("Access-Control-Allow-Origin", origin)
		c.Next()
	}
}
