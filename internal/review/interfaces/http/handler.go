// Package http 评论服务 HTTP 接口
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/reviewservice/internal/review/application"
	"github.com/wyfcoding/reviewservice/internal/review/domain"
	"github.com/wyfcoding/reviewservice/pkg/logger"
)

type Handler struct {
	reviews *application.ReviewService
	stats   *application.StatsService
}

func NewHandler(reviews *application.ReviewService, stats *application.StatsService) *Handler {
	return &Handler{reviews: reviews, stats: stats}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/reviews")
	{
		api.POST("", h.CreateReview)
		api.GET("", h.ListReviews)
		api.GET("/stats", h.GetStats)
	}
}

type CreateReviewRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateReview 接收评论文本，打情感标签并保存
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.SubmitReview(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(c.Request.Context(), "failed to submit review", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListReviews 按创建时间降序返回评论，可选 sentiment 过滤
// 仅缺省的过滤参数表示不过滤；显式传入的值（包括空串）必须是合法标签
func (h *Handler) ListReviews(c *gin.Context) {
	filter, hasFilter := c.GetQuery("sentiment")
	if hasFilter {
		if _, err := domain.ParseSentiment(filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	reviews, err := h.reviews.ListReviews(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedSentiment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoReviews):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error(c.Request.Context(), "failed to list reviews", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetStats 返回各情感标签的评论计数投影
func (h *Handler) GetStats(c *gin.Context) {
	counts, err := h.stats.GetSentimentCounts(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to load sentiment counts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if counts == nil {
		counts = []*domain.SentimentCount{}
	}
	c.JSON(http.StatusOK, counts)
}
