package messaging

import (
	"context"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
)

// noopPublisher 在未配置消息队列时使用的空实现
type noopPublisher struct{}

var _ domain.EventPublisher = (*noopPublisher)(nil)

// NewNoopPublisher 创建空事件发布者
func NewNoopPublisher() domain.EventPublisher {
	return &noopPublisher{}
}

func (*noopPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return nil
}
