// Package domain 评论情感领域模型
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyText            = errors.New("review text must not be empty")
	ErrUnsupportedSentiment = errors.New("unsupported sentiment")
	ErrNoReviews            = errors.New("no reviews found")
)

// Sentiment 情感标签
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment 解析情感标签，仅接受三个固定值
// 错误信息包含完整的可接受值集合，便于调用方自行纠正
func ParseSentiment(value string) (Sentiment, error) {
	switch Sentiment(value) {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(value), nil
	default:
		return "", fmt.Errorf("%w: accepted values are positive, negative or neutral, got %q", ErrUnsupportedSentiment, value)
	}
}

// Review 评论聚合根
// 创建后只读：text、sentiment、created_at 在插入时确定，之后不再变更
type Review struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	Sentiment Sentiment `gorm:"column:sentiment;type:varchar(16);not null;index" json:"sentiment"`
	// 插入时刻，UTC ISO-8601 文本，列表查询的唯一排序键
	CreatedAt string `gorm:"column:created_at;type:varchar(64);not null" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

// NewReview 创建新评论，捕获插入时刻
func NewReview(text string, sentiment Sentiment) *Review {
	return &Review{
		Text:      text,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// ReviewRepository 评论仓储接口
// List 的 filter 为空表示不过滤；结果按 created_at 降序
type ReviewRepository interface {
	Save(ctx context.Context, review *Review) error
	List(ctx context.Context, filter Sentiment) ([]*Review, error)
}
