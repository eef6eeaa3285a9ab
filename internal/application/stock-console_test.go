package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/ports"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw       string
		allowZero bool
		want      int
		wantErr   bool
	}{
		{raw: "5", want: 5},
		{raw: " 12 ", want: 12},
		{raw: "3.9", want: 3},
		{raw: "0", wantErr: true},
		{raw: "0", allowZero: true, want: 0},
		{raw: "-1", allowZero: true, wantErr: true},
		{raw: "", allowZero: true, wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "0.4", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseQuantity(tt.raw, tt.allowZero)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidQuantity, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func newStock(t *testing.T) (*StockConsole, *ports.MockInventoryGateway, *notify.Journal) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := ports.NewMockInventoryGateway(ctrl)
	journal := notify.NewJournal(0)
	return NewStockConsole(gw, journal, 10), gw, journal
}

func items(n int) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.InventoryItem{ID: int64(i), Name: "item", Stock: 10, Quantity: 1})
	}
	return out
}

func TestStockSwitchTypeResetsPage(t *testing.T) {
	s, gw, _ := newStock(t)

	gw.EXPECT().GetInventory(gomock.Any(), domain.StockBracelet).Return(items(15), nil)
	require.NoError(t, s.Load(context.Background()))
	require.True(t, s.SetPage(2))

	gw.EXPECT().GetInventory(gomock.Any(), domain.StockCharm).Return(items(12), nil)
	require.NoError(t, s.SwitchType(context.Background(), domain.StockCharm))

	assert.Equal(t, domain.StockCharm, s.ActiveType())
	assert.Equal(t, 1, s.CurrentPage().Page)
	assert.Len(t, s.Items(), 12)
}

func TestStockLoadFailure(t *testing.T) {
	s, gw, journal := newStock(t)

	gw.EXPECT().GetInventory(gomock.Any(), domain.StockBracelet).Return(nil, errBackend)
	require.ErrorIs(t, s.Load(context.Background()), errBackend)
	assert.Empty(t, s.Items())

	n, ok := journal.Last()
	require.True(t, ok)
	assert.Equal(t, "Không thể tải tồn kho Vòng tay.", n.Message)
}

func TestStockInvalidQuantityNeverCallsBackend(t *testing.T) {
	s, _, journal := newStock(t)

	require.ErrorIs(t, s.AddStock(context.Background(), 1, "0"), ErrInvalidQuantity)
	require.ErrorIs(t, s.Distribute(context.Background(), 1, "x"), ErrInvalidQuantity)

	n, ok := journal.Last()
	require.True(t, ok)
	assert.Equal(t, domain.LevelInfo, n.Level)
	assert.Equal(t, "Số lượng không hợp lệ.", n.Message)
}

func TestStockAddReloads(t *testing.T) {
	s, gw, journal := newStock(t)

	gomock.InOrder(
		gw.EXPECT().AddStock(gomock.Any(), domain.StockBracelet, int64(3), 7).Return(nil),
		gw.EXPECT().GetInventory(gomock.Any(), domain.StockBracelet).Return(items(3), nil),
	)
	require.NoError(t, s.AddStock(context.Background(), 3, "7"))
	assert.Len(t, s.Items(), 3)

	n, _ := journal.Last()
	assert.Equal(t, domain.LevelSuccess, n.Level)
	assert.Equal(t, domain.ActionAddStock, n.Action)
}

func TestStockDistributeShowsBackendMessage(t *testing.T) {
	s, gw, journal := newStock(t)

	gw.EXPECT().Distribute(gomock.Any(), domain.StockBracelet, int64(3), 50).
		Return(&gateway.Error{Op: "distribute_stock", Status: 400, Message: "Không đủ hàng trong kho"})
	err := s.Distribute(context.Background(), 3, "50")
	require.ErrorIs(t, err, gateway.ErrGatewayFailure)

	n, _ := journal.Last()
	assert.Equal(t, "Không đủ hàng trong kho", n.Message)
}

func TestStockDistributeFallbackMessage(t *testing.T) {
	s, gw, journal := newStock(t)

	gw.EXPECT().Distribute(gomock.Any(), domain.StockBracelet, int64(3), 1).Return(errBackend)
	require.Error(t, s.Distribute(context.Background(), 3, "1"))

	n, _ := journal.Last()
	assert.Equal(t, "Không thể phân phối tồn kho.", n.Message)
}

func TestStockUpdateQuantityAllowsZero(t *testing.T) {
	s, gw, _ := newStock(t)

	gw.EXPECT().UpdateQuantity(gomock.Any(), domain.StockBracelet, int64(2), 0).Return(nil)
	gw.EXPECT().GetInventory(gomock.Any(), domain.StockBracelet).Return(nil, errBackend)
	require.NoError(t, s.UpdateQuantity(context.Background(), 2, "0"))
}
