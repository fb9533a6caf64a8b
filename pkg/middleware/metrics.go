package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute はどのルートにも一致しなかったリクエストのrouteラベル。
const unmatchedRoute = "unmatched"

// Metrics はHTTPリクエストのPrometheusメトリクスを保持する。
type Metrics struct {
	// requests はメソッド・ルート・ステータス別のリクエスト数。
	requests *prometheus.CounterVec
	// duration はメソッド・ルート別の処理時間。
	duration *prometheus.HistogramVec
}

// NewMetrics はメトリクスを生成して reg に登録する。
// 同じレジストリに二重登録した場合はパニックする。
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Handler はリクエスト数と処理時間を記録するGinミドルウェアを返す。
// routeラベルにはパスそのものではなくルート定義（例: /api/todos）を使う。
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
