package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/format"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/ports"
)

const (
	msgLoadReviewsFailed = "Không thể tải danh sách review!"
	msgReviewDeleted     = "Xóa review thành công!"
	msgDeleteReviewFail  = "Xóa review thất bại!"
)

type ReviewRow struct {
	ID          int64  `json:"id"`
	Reviewer    string `json:"reviewer"`
	ProductKind string `json:"productKind"`
	ProductID   int64  `json:"productId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ReviewDate  string `json:"reviewDate"`
}

func NewReviewRow(r domain.Review) ReviewRow {
	return ReviewRow{
		ID:          r.ID,
		Reviewer:    r.ReviewerName(),
		ProductKind: r.ProductKind(),
		ProductID:   r.ProductID(),
		Rating:      r.Rating,
		Comment:     r.Comment,
		ReviewDate:  format.DateTime(r.ReviewDate.Time),
	}
}

// ReviewsConsole lists customer reviews and lets an admin remove them.
type ReviewsConsole struct {
	gw       ports.ReviewsGateway
	notifier ports.Notifier

	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewsConsole(gw ports.ReviewsGateway, notifier ports.Notifier) *ReviewsConsole {
	return &ReviewsConsole{gw: gw, notifier: notifier, reviews: []domain.Review{}}
}

func (c *ReviewsConsole) Load(ctx context.Context) error {
	reviews, err := c.gw.GetAllReviews(ctx)
	if err != nil {
		c.mu.Lock()
		c.reviews = []domain.Review{}
		c.mu.Unlock()
		logger.Warn("load reviews failed", "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionLoadReviews, 0, msgLoadReviewsFailed)
		return fmt.Errorf("load reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.mu.Lock()
	c.reviews = reviews
	c.mu.Unlock()
	return nil
}

// Delete removes a review and reloads the list.
func (c *ReviewsConsole) Delete(ctx context.Context, id int64) error {
	ctx = context.WithoutCancel(ctx)
	if err := c.gw.DeleteReview(ctx, id); err != nil {
		logger.Warn("delete review failed", "review_id", id, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionDeleteReview, id, msgDeleteReviewFail)
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	c.notify(ctx, domain.LevelSuccess, domain.ActionDeleteReview, id, msgReviewDeleted)
	if err := c.Load(ctx); err != nil {
		logger.Warn("reload reviews failed", "err", err)
	}
	return nil
}

func (c *ReviewsConsole) Rows() []ReviewRow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows := make([]ReviewRow, 0, len(c.reviews))
	for _, r := range c.reviews {
		rows = append(rows, NewReviewRow(r))
	}
	return rows
}

func (c *ReviewsConsole) notify(ctx context.Context, level domain.Level, action domain.Action, id int64, msg string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, domain.NewNotification(level, action, id, msg))
}
