// Package messaging 评论服务事件发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"github.com/wyfcoding/reviewservice/pkg/metrics"
	"github.com/wyfcoding/reviewservice/pkg/mq"
)

// kafkaPublisher 基于 Kafka 的事件发布者实现
type kafkaPublisher struct {
	producer *mq.KafkaProducer
	metrics  *metrics.Metrics
}

// NewKafkaPublisher 创建 Kafka 事件发布者，m 允许为 nil
func NewKafkaPublisher(producer *mq.KafkaProducer, m *metrics.Metrics) domain.EventPublisher {
	return &kafkaPublisher{producer: producer, metrics: m}
}

// Publish 发布一个领域事件
func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if err := p.producer.SendMessage(ctx, topic, key, event); err != nil {
		if p.metrics != nil {
			p.metrics.EventPublishFailures.Inc()
		}
		return err
	}
	if p.metrics != nil {
		p.metrics.EventsPublishedTotal.Inc()
	}
	return nil
}
