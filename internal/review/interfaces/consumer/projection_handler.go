// Package consumer 评论事件消费端，维护情感统计投影
package consumer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wyfcoding/reviewservice/internal/review/application"
	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"github.com/wyfcoding/reviewservice/pkg/mq"
)

type ProjectionHandler struct {
	stats  *application.StatsService
	logger *slog.Logger
}

func NewProjectionHandler(stats *application.StatsService, logger *slog.Logger) *ProjectionHandler {
	return &ProjectionHandler{stats: stats, logger: logger}
}

// Handle 处理单条 review.created 消息
func (h *ProjectionHandler) Handle(ctx context.Context, msg *mq.Message) error {
	var event domain.ReviewCreatedEvent
	if err := msg.UnmarshalPayload(&event); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal review.created event",
			"offset", msg.Offset, "error", err)
		// 无法解析的消息跳过而不重试
		return nil
	}
	return h.stats.ApplyReviewCreated(ctx, event)
}

// Run 持续消费直至 ctx 取消
func (h *ProjectionHandler) Run(ctx context.Context, kafkaConsumer *mq.KafkaConsumer) error {
	for {
		msg, err := kafkaConsumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			h.logger.ErrorContext(ctx, "failed to read review event", "error", err)
			continue
		}

		if err := h.Handle(ctx, msg); err != nil {
			h.logger.ErrorContext(ctx, "failed to apply review event",
				"offset", msg.Offset, "error", err)
		}
	}
}
