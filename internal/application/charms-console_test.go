package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/ports"
)

func charmsFixture(n int) []domain.Charm {
	out := make([]domain.Charm, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Charm{
			ID:              int64(i),
			CharmName:       fmt.Sprintf("Charm %d", i),
			Price:           decimal.NewFromInt(int64(i) * 10000),
			CharmCategoryID: int64(i%2 + 1),
			IsActive:        i%3 != 0,
		})
	}
	return out
}

func newCharmsConsole(t *testing.T, charms []domain.Charm) (*CharmsConsole, *ports.MockCharmsGateway, *notify.Journal) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := ports.NewMockCharmsGateway(ctrl)
	journal := notify.NewJournal(0)
	c := NewCharmsConsole(gw, journal, 10)
	gw.EXPECT().GetAllCharms(gomock.Any()).Return(charms, nil)
	require.NoError(t, c.Load(context.Background()))
	return c, gw, journal
}

func TestParseCharmFilter(t *testing.T) {
	f, err := ParseCharmFilter(" bốn ", "50000", "", "3")
	require.NoError(t, err)
	assert.Equal(t, "bốn", f.Name)
	require.NotNil(t, f.MinPrice)
	assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(50000)))
	assert.Nil(t, f.MaxPrice)
	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(3), *f.CategoryID)

	f, err = ParseCharmFilter("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CharmFilter{}, f)

	for _, in := range [][4]string{{"", "abc", "", ""}, {"", "", "x1", ""}, {"", "", "", "2.5"}} {
		_, err := ParseCharmFilter(in[0], in[1], in[2], in[3])
		assert.ErrorIs(t, err, ErrInvalidCharmFilter, in)
	}
}

func TestCharmsPagingAndFilter(t *testing.T) {
	c, _, _ := newCharmsConsole(t, charmsFixture(25))

	page := c.CurrentPage()
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 10)
	assert.Equal(t, CharmRow{ID: 1, Name: "Charm 1", Price: "10.000đ", CategoryID: 2, Status: "Active", Active: true}, page.Items[0])

	assert.True(t, c.SetPage(3))
	assert.Len(t, c.CurrentPage().Items, 5)
	assert.False(t, c.SetPage(4))
	assert.False(t, c.SetPage(0))
	assert.Equal(t, 3, c.CurrentPage().Page)

	cat := int64(1)
	c.SetFilter(domain.CharmFilter{CategoryID: &cat})
	page = c.CurrentPage()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.TotalItems)
	for _, row := range page.Items {
		assert.Equal(t, int64(1), row.CategoryID)
	}
	assert.Len(t, c.Filtered(), 12)
	assert.False(t, c.SetPage(3))
}

func TestCharmsLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := ports.NewMockCharmsGateway(ctrl)
	journal := notify.NewJournal(0)
	c := NewCharmsConsole(gw, journal, 10)

	gw.EXPECT().GetAllCharms(gomock.Any()).Return(nil, errBackend)
	require.ErrorIs(t, c.Load(context.Background()), errBackend)
	assert.Empty(t, c.CurrentPage().Items)
	assert.Equal(t, "Không thể tải danh sách Charm", c.LoadError())
	assert.Equal(t, domain.LevelError, lastNotification(t, journal).Level)

	gw.EXPECT().GetAllCharms(gomock.Any()).Return(charmsFixture(2), nil)
	require.NoError(t, c.Load(context.Background()))
	assert.Empty(t, c.LoadError())
}

func TestCharmsDelete(t *testing.T) {
	c, gw, journal := newCharmsConsole(t, charmsFixture(11))
	require.True(t, c.SetPage(2))

	gw.EXPECT().DeleteCharm(gomock.Any(), int64(11)).Return(nil)
	require.NoError(t, c.Delete(context.Background(), 11))
	assert.Len(t, c.Filtered(), 10)
	assert.Equal(t, 1, c.CurrentPage().Page)
	n := lastNotification(t, journal)
	assert.Equal(t, domain.LevelSuccess, n.Level)
	assert.Equal(t, "Xóa Charm thành công!", n.Message)

	gw.EXPECT().DeleteCharm(gomock.Any(), int64(3)).Return(errBackend)
	require.ErrorIs(t, c.Delete(context.Background(), 3), errBackend)
	assert.Len(t, c.Filtered(), 10)
	n = lastNotification(t, journal)
	assert.Equal(t, domain.LevelError, n.Level)
	assert.Equal(t, "Không thể xóa Charm.", n.Message)
}

func TestCharmsDeleteOutlivesCancelledCaller(t *testing.T) {
	c, gw, _ := newCharmsConsole(t, charmsFixture(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gw.EXPECT().DeleteCharm(gomock.Any(), int64(1)).DoAndReturn(func(gctx context.Context, _ int64) error {
		return gctx.Err()
	})
	require.NoError(t, c.Delete(ctx, 1))
	assert.Len(t, c.Filtered(), 1)
}
