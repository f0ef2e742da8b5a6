// Package sqlite 评论服务 SQLite 仓储实现
package sqlite

import (
	"context"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"gorm.io/gorm"
)

// Migrate 幂等地创建评论相关表，每次进程启动都可安全调用
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Review{}, &domain.SentimentCount{})
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

// Save 插入一条评论，id 由存储自增分配并回填
func (r *ReviewRepositoryImpl) Save(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// List 按创建时间降序返回评论，filter 为空表示全部
// id 作为 created_at 相同时的决定性次序，调用方不应依赖该细节
func (r *ReviewRepositoryImpl) List(ctx context.Context, filter domain.Sentiment) ([]*domain.Review, error) {
	var reviews []*domain.Review

	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if filter != "" {
		query = query.Where("sentiment = ?", filter)
	}

	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
