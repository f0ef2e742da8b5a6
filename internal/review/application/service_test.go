package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/reviewservice/internal/review/domain"
)

type mockReviewRepo struct {
	saveFn func(ctx context.Context, review *domain.Review) error
	listFn func(ctx context.Context, filter domain.Sentiment) ([]*domain.Review, error)
}

func (m *mockReviewRepo) Save(ctx context.Context, review *domain.Review) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, review)
	}
	review.ID = 1
	return nil
}

func (m *mockReviewRepo) List(ctx context.Context, filter domain.Sentiment) ([]*domain.Review, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, topic, key string, event any) error
	calls     int
}

func (m *mockPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	m.calls++
	if m.publishFn != nil {
		return m.publishFn(ctx, topic, key, event)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo domain.ReviewRepository, publisher domain.EventPublisher) *ReviewService {
	return NewReviewService(repo, domain.NewClassifier(domain.DefaultRules()), publisher, nil, testLogger())
}

func TestSubmitReview_AssignsSentimentAndTimestamp(t *testing.T) {
	var saved *domain.Review
	repo := &mockReviewRepo{
		saveFn: func(_ context.Context, review *domain.Review) error {
			review.ID = 42
			saved = review
			return nil
		},
	}
	svc := newTestService(repo, nil)

	review, err := svc.SubmitReview(context.Background(), "Это было отлично")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, uint64(42), review.ID)
	assert.Equal(t, "Это было отлично", review.Text)
	assert.Equal(t, domain.SentimentPositive, review.Sentiment)

	createdAt, err := time.Parse(time.RFC3339Nano, review.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, createdAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), createdAt, time.Minute)
}

func TestSubmitReview_EmptyText(t *testing.T) {
	repoCalled := false
	repo := &mockReviewRepo{
		saveFn: func(_ context.Context, _ *domain.Review) error {
			repoCalled = true
			return nil
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.SubmitReview(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
	assert.False(t, repoCalled)
}

func TestSubmitReview_StoreFailureIsFatal(t *testing.T) {
	storeErr := errors.New("disk full")
	repo := &mockReviewRepo{
		saveFn: func(_ context.Context, _ *domain.Review) error { return storeErr },
	}
	publisher := &mockPublisher{}
	svc := newTestService(repo, publisher)

	_, err := svc.SubmitReview(context.Background(), "текст")
	assert.ErrorIs(t, err, storeErr)
	assert.Zero(t, publisher.calls)
}

func TestSubmitReview_PublishFailureDoesNotFailRequest(t *testing.T) {
	var gotTopic string
	publisher := &mockPublisher{
		publishFn: func(_ context.Context, topic, _ string, _ any) error {
			gotTopic = topic
			return errors.New("broker unavailable")
		},
	}
	svc := newTestService(&mockReviewRepo{}, publisher)

	review, err := svc.SubmitReview(context.Background(), "всё плохо")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNegative, review.Sentiment)
	assert.Equal(t, domain.ReviewCreatedTopic, gotTopic)
	assert.Equal(t, 1, publisher.calls)
}

func TestListReviews_InvalidFilter(t *testing.T) {
	repoCalled := false
	repo := &mockReviewRepo{
		listFn: func(_ context.Context, _ domain.Sentiment) ([]*domain.Review, error) {
			repoCalled = true
			return nil, nil
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.ListReviews(context.Background(), "mixed")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSentiment)
	assert.Contains(t, err.Error(), "positive, negative or neutral")
	assert.Contains(t, err.Error(), "mixed")
	assert.False(t, repoCalled)
}

func TestListReviews_EmptyResultIsNotFound(t *testing.T) {
	svc := newTestService(&mockReviewRepo{}, nil)

	_, err := svc.ListReviews(context.Background(), "neutral")
	assert.ErrorIs(t, err, domain.ErrNoReviews)
	assert.Contains(t, err.Error(), "neutral")

	_, err = svc.ListReviews(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoReviews)
}

func TestListReviews_FilterPassedToRepository(t *testing.T) {
	var gotFilter domain.Sentiment
	rows := []*domain.Review{{ID: 1, Text: "плохо", Sentiment: domain.SentimentNegative}}
	repo := &mockReviewRepo{
		listFn: func(_ context.Context, filter domain.Sentiment) ([]*domain.Review, error) {
			gotFilter = filter
			return rows, nil
		},
	}
	svc := newTestService(repo, nil)

	reviews, err := svc.ListReviews(context.Background(), "negative")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNegative, gotFilter)
	assert.Equal(t, rows, reviews)
}
