package domain

import "context"

// SentimentCount 按情感标签聚合的评论计数投影
// 由 review.created 事件驱动更新，读模型，不参与评论本身的生命周期
type SentimentCount struct {
	Sentiment Sentiment `gorm:"column:sentiment;primaryKey;type:varchar(16)" json:"sentiment"`
	Count     uint64    `gorm:"column:count;not null" json:"count"`
}

func (SentimentCount) TableName() string { return "review_sentiment_counts" }

// StatsRepository 情感统计仓储接口
type StatsRepository interface {
	Increment(ctx context.Context, sentiment Sentiment) error
	List(ctx context.Context) ([]*SentimentCount, error)
}
