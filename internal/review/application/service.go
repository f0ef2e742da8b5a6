// Package application 评论情感应用服务
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"github.com/wyfcoding/reviewservice/pkg/metrics"
)

// ReviewService 评论提交与查询的应用服务
type ReviewService struct {
	repo       domain.ReviewRepository
	classifier *domain.Classifier
	publisher  domain.EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewReviewService 创建评论应用服务
// publisher 与 m 允许为 nil，此时跳过事件发布与业务指标
func NewReviewService(
	repo domain.ReviewRepository,
	classifier *domain.Classifier,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		repo:       repo,
		classifier: classifier,
		publisher:  publisher,
		metrics:    m,
		logger:     logger.With("module", "review_service"),
	}
}

// SubmitReview 接收评论文本，打标签并落库，返回持久化后的完整评论
func (s *ReviewService) SubmitReview(ctx context.Context, text string) (*domain.Review, error) {
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	label := s.classifier.Classify(text)
	review := domain.NewReview(text, label)

	// 落库失败对本次请求是致命的，不重试
	if err := s.repo.Save(ctx, review); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordReview(string(label))
	}

	// 事件发布失败不阻断请求，只记录
	if s.publisher != nil {
		event := domain.ReviewCreatedEvent{
			ReviewID:  review.ID,
			Sentiment: review.Sentiment,
			CreatedAt: review.CreatedAt,
		}
		key := strconv.FormatUint(review.ID, 10)
		if err := s.publisher.Publish(ctx, domain.ReviewCreatedTopic, key, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish review.created event",
				"review_id", review.ID, "error", err)
		}
	}

	return review, nil
}

// ListReviews 返回按创建时间降序排列的评论，filterValue 为空表示不过滤
// 结果为空按约定返回 ErrNoReviews 而非空集合
func (s *ReviewService) ListReviews(ctx context.Context, filterValue string) ([]*domain.Review, error) {
	var filter domain.Sentiment
	if filterValue != "" {
		parsed, err := domain.ParseSentiment(filterValue)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	reviews, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(reviews) == 0 {
		if filterValue == "" {
			return nil, fmt.Errorf("%w: no reviews stored", domain.ErrNoReviews)
		}
		return nil, fmt.Errorf("%w for sentiment %q", domain.ErrNoReviews, filterValue)
	}

	return reviews, nil
}
