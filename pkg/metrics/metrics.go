// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/reviewservice/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 数据库查询计数
	DBQueriesTotal prometheus.Counter
	// 数据库查询耗时
	DBQueryDuration prometheus.Histogram

	// 业务指标：按情感标签统计接收的评论
	ReviewsTotal *prometheus.CounterVec
	// 业务指标：发布的领域事件
	EventsPublishedTotal prometheus.Counter
	// 业务指标：事件发布失败
	EventPublishFailures prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		DBQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "db_queries_total",
			Help:      "Total database queries",
		}),
		DBQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		ReviewsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "reviews_total",
			Help:      "Total reviews accepted, by sentiment label",
		}, []string{"sentiment"}),
		EventsPublishedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "events_published_total",
			Help:      "Total domain events published",
		}),
		EventPublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reviews",
			Subsystem: serviceName,
			Name:      "event_publish_failures_total",
			Help:      "Total domain event publish failures",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.ReviewsTotal,
		m.EventsPublishedTotal,
		m.EventPublishFailures,
	}

	for _, collector := range collectors {
		if err := prometheus.DefaultRegisterer.Register(collector); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// RecordHTTPRequest 记录 HTTP 请求
func (m *Metrics) RecordHTTPRequest(duration float64) {
	m.HTTPRequestsTotal.Inc()
	m.HTTPRequestDuration.Observe(duration)
}

// RecordDBQuery 记录一次数据库查询
func (m *Metrics) RecordDBQuery(duration float64) {
	m.DBQueriesTotal.Inc()
	m.DBQueryDuration.Observe(duration)
}

// RecordReview 记录一条已接收的评论
func (m *Metrics) RecordReview(sentiment string) {
	m.ReviewsTotal.WithLabelValues(sentiment).Inc()
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}
