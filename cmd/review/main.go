// ReviewService 主程序
// 功能：接收评论文本，按关键词规则判定情感并持久化，提供按情感过滤的时序查询
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/wyfcoding/reviewservice/internal/review/application"
	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"github.com/wyfcoding/reviewservice/internal/review/infrastructure/messaging"
	"github.com/wyfcoding/reviewservice/internal/review/infrastructure/persistence/sqlite"
	"github.com/wyfcoding/reviewservice/internal/review/interfaces/consumer"
	httpserver "github.com/wyfcoding/reviewservice/internal/review/interfaces/http"
	"github.com/wyfcoding/reviewservice/pkg/config"
	"github.com/wyfcoding/reviewservice/pkg/db"
	"github.com/wyfcoding/reviewservice/pkg/logger"
	"github.com/wyfcoding/reviewservice/pkg/metrics"
	"github.com/wyfcoding/reviewservice/pkg/middleware"
	"github.com/wyfcoding/reviewservice/pkg/mq"
)

var configPath = flag.String("config", "configs/review/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting ReviewService",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	// 3. 初始化指标
	m := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		if err := m.Register(); err != nil {
			logger.Fatal(ctx, "Failed to register metrics", "error", err)
		}
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics HTTP server", "error", err)
		}
	}

	// 4. 初始化数据库
	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}, m)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize database", "error", err)
	}
	defer database.Close()

	// 建表幂等，每次启动执行
	if err := sqlite.Migrate(database.DB); err != nil {
		logger.Fatal(ctx, "Failed to migrate database", "error", err)
	}

	// 5. 初始化分类器，规则来自配置，未配置时使用内置规则
	rules := domain.DefaultRules()
	if len(cfg.Classifier.Rules) > 0 {
		rules = rules[:0]
		for _, rule := range cfg.Classifier.Rules {
			rules = append(rules, domain.KeywordRule{
				Label:    domain.Sentiment(rule.Label),
				Keywords: rule.Keywords,
			})
		}
	}
	classifier := domain.NewClassifier(rules)

	// 6. 初始化事件发布者
	publisher := messaging.NewNoopPublisher()
	var producer *mq.KafkaProducer
	if cfg.Kafka.Enabled {
		producer, err = mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to create Kafka producer", "error", err)
		}
		defer producer.Close()
		publisher = messaging.NewKafkaPublisher(producer, m)
	}

	// 7. 初始化仓储与应用服务
	reviewRepo := sqlite.NewReviewRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	reviewService := application.NewReviewService(reviewRepo, classifier, publisher, m, logger.Get())
	statsService := application.NewStatsService(statsRepo, logger.Get())

	// 8. 初始化接口层
	gin.SetMode(gin.ReleaseMode)
	if cfg.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinMetricsMiddleware(m),
		middleware.GinCORSMiddleware(),
	)

	handler := httpserver.NewHandler(reviewService, statsService)
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// 9. 启动服务
	rootCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		logger.Info(gctx, "HTTP server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if cfg.Kafka.Enabled {
		kafkaConsumer, err := mq.NewConsumer(mq.KafkaConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			SessionTimeout: cfg.Kafka.SessionTimeout,
		}, domain.ReviewCreatedTopic)
		if err != nil {
			logger.Fatal(ctx, "Failed to create Kafka consumer", "error", err)
		}
		defer kafkaConsumer.Close()

		projectionHandler := consumer.NewProjectionHandler(statsService, logger.Get())
		g.Go(func() error {
			logger.Info(gctx, "Projection consumer starting", "topic", domain.ReviewCreatedTopic)
			return projectionHandler.Run(gctx, kafkaConsumer)
		})
	}

	// 10. 优雅关闭
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			logger.Info(gctx, "Shutting down servers...")
		case <-gctx.Done():
			logger.Info(gctx, "Context cancelled, shutting down...")
		}

		// 先取消消费循环，再关闭 HTTP 服务
		stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server exited with error", "error", err)
	}
}
