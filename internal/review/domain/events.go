package domain

import "context"

// ReviewCreatedTopic 评论创建事件主题
const ReviewCreatedTopic = "review.created"

// ReviewCreatedEvent 评论创建事件载荷
type ReviewCreatedEvent struct {
	ReviewID  uint64    `json:"review_id"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt string    `json:"created_at"`
}

// EventPublisher 领域事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
