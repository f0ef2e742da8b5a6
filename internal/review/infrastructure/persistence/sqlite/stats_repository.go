package sqlite

import (
	"context"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) domain.StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// Increment 原子地将指定情感的计数加一，不存在则插入
func (r *StatsRepositoryImpl) Increment(ctx context.Context, sentiment domain.Sentiment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sentiment"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&domain.SentimentCount{Sentiment: sentiment, Count: 1}).Error
}

// List 返回全部情感计数
func (r *StatsRepositoryImpl) List(ctx context.Context) ([]*domain.SentimentCount, error) {
	var counts []*domain.SentimentCount
	if err := r.db.WithContext(ctx).Order("sentiment ASC").Find(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
