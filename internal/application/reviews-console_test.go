package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/ports"
)

func TestReviewsLoadAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := ports.NewMockReviewsGateway(ctrl)
	journal := notify.NewJournal(0)
	c := NewReviewsConsole(gw, journal)

	charm := int64(4)
	review := domain.Review{
		ID:         1,
		User:       &domain.User{UserName: "mai"},
		CharmID:    &charm,
		Rating:     5,
		Comment:    "Đẹp",
		ReviewDate: domain.Timestamp{Time: time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC)},
	}

	gw.EXPECT().GetAllReviews(gomock.Any()).Return([]domain.Review{review}, nil)
	require.NoError(t, c.Load(context.Background()))

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, ReviewRow{
		ID:          1,
		Reviewer:    "mai",
		ProductKind: "Charm",
		ProductID:   4,
		Rating:      5,
		Comment:     "Đẹp",
		ReviewDate:  "10:30:00 1/6/2025",
	}, rows[0])

	gomock.InOrder(
		gw.EXPECT().DeleteReview(gomock.Any(), int64(1)).Return(nil),
		gw.EXPECT().GetAllReviews(gomock.Any()).Return(nil, nil),
	)
	require.NoError(t, c.Delete(context.Background(), 1))
	assert.Empty(t, c.Rows())

	n, _ := journal.Last()
	assert.Equal(t, domain.ActionDeleteReview, n.Action)
}

func TestReviewsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := ports.NewMockReviewsGateway(ctrl)
	journal := notify.NewJournal(0)
	c := NewReviewsConsole(gw, journal)

	gw.EXPECT().GetAllReviews(gomock.Any()).Return(nil, errBackend)
	require.ErrorIs(t, c.Load(context.Background()), errBackend)
	assert.Empty(t, c.Rows())

	gw.EXPECT().DeleteReview(gomock.Any(), int64(9)).Return(errBackend)
	require.ErrorIs(t, c.Delete(context.Background(), 9), errBackend)

	n, _ := journal.Last()
	assert.Equal(t, domain.LevelError, n.Level)
	assert.Equal(t, "Xóa review thất bại!", n.Message)
}
