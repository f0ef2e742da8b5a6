package application

import (
	"context"
	"log/slog"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
)

// StatsService 情感统计投影的应用服务
// 写路径由 review.created 事件驱动，读路径服务于统计查询
type StatsService struct {
	repo   domain.StatsRepository
	logger *slog.Logger
}

// NewStatsService 创建统计应用服务
func NewStatsService(repo domain.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		logger: logger.With("module", "stats_service"),
	}
}

// ApplyReviewCreated 将一条评论创建事件折叠进情感计数投影
func (s *StatsService) ApplyReviewCreated(ctx context.Context, event domain.ReviewCreatedEvent) error {
	if _, err := domain.ParseSentiment(string(event.Sentiment)); err != nil {
		s.logger.WarnContext(ctx, "skipping event with unknown sentiment",
			"review_id", event.ReviewID, "sentiment", event.Sentiment)
		return nil
	}
	return s.repo.Increment(ctx, event.Sentiment)
}

// GetSentimentCounts 返回各情感标签的评论计数
// 空投影是正常结果，返回空列表
func (s *StatsService) GetSentimentCounts(ctx context.Context) ([]*domain.SentimentCount, error) {
	return s.repo.List(ctx)
}
