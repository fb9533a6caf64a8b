package plugin

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nao1215/todoplugin/internal/config"
	"github.com/nao1215/todoplugin/pkg/middleware"
)

// ルーティングのパス定義。
const (
	todosPath    = "/api/todos"
	manifestPath = "/.well-known/ai-plugin.json"
	openAPIPath  = "/openapi.yaml"
	logoPath     = "/logo.svg"
	healthPath   = "/health"
	metricsPath  = "/metrics"
)

// serviceName はヘルスチェックとメトリクスの名前空間に使うサービス名。
const serviceName = "todoplugin"

//go:embed static/logo.svg
var logoSVG []byte

// Server はTODOプラグインのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// addr はサーバーのリッスンアドレス。
	addr string
	// shutdownTimeout はグレースフルシャットダウンの待ち時間。
	shutdownTimeout time.Duration
	// manifest は配信するプラグインマニフェスト。
	manifest Manifest
	// openAPI は起動時にレンダリング済みのOpenAPIドキュメント（YAML）。
	openAPI []byte
	// registry はこのサーバー専用のPrometheusレジストリ。
	registry *prometheus.Registry
}

// NewServer は設定から新しいサーバーを生成する。
// OpenAPIドキュメントはここで一度だけレンダリングする。
func NewServer(cfg *config.Config) (*Server, error) {
	openAPI, err := renderOpenAPI(cfg.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("OpenAPIドキュメントの生成に失敗: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry, serviceName)

	// オリジンゲートは他のどのミドルウェアよりも先に判定する。
	router := gin.New()
	router.Use(middleware.OriginGate(cfg.AllowedOrigin))
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(metrics.Handler())

	s := &Server{
		router:          router,
		addr:            cfg.Addr(),
		shutdownTimeout: cfg.ShutdownTimeout,
		manifest: NewManifest(ManifestOptions{
			PublicURL:    cfg.PublicURL,
			ContactEmail: cfg.ContactEmail,
			LegalInfoURL: cfg.LegalInfoURL,
		}),
		openAPI:  openAPI,
		registry: registry,
	}
	s.setupRoutes()

	return s, nil
}

// Handler はルーティング済みのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるまでリクエストを処理する。
// キャンセル後はshutdownTimeoutの範囲で処理中のリクエストを待ってから終了する。
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTPサーバーの起動に失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("シャットダウンを開始します（最大 %v）", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("グレースフルシャットダウンに失敗: %w", err)
	}
	return nil
}

// setupRoutes はルーティングを設定する。
func (s *Server) setupRoutes() {
	// TODO API
	s.router.GET(todosPath, s.handleListTodos())

	// プラグイン発見用のマニフェストとAPI定義
	s.router.GET(manifestPath, s.handleManifest())
	s.router.GET(openAPIPath, s.handleOpenAPI())
	s.router.GET(logoPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "image/svg+xml", logoSVG)
	})

	// ヘルスチェック
	s.router.GET(healthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})

	s.router.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
}

// handleListTodos は固定のTODOリストを返すハンドラを返す。
// リクエストの内容は一切参照しない。
func (s *Server) handleListTodos() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, todosResponse{Todos: Todos()})
	}
}

// handleManifest はプラグインマニフェストを返すハンドラを返す。
func (s *Server) handleManifest() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.manifest)
	}
}

// handleOpenAPI はOpenAPIドキュメントをYAMLで返すハンドラを返す。
func (s *Server) handleOpenAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", s.openAPI)
	}
}
