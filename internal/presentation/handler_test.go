package presentation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/ports"
)

type fixture struct {
	router    http.Handler
	orders    *ports.MockOrdersGateway
	revenue   *ports.MockRevenueGateway
	inventory *ports.MockInventoryGateway
	reviews   *ports.MockReviewsGateway
	charms    *ports.MockCharmsGateway
	journal   *notify.Journal
}

type historyFunc func(ctx context.Context, limit int) ([]domain.Notification, error)

func (f historyFunc) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	return f(ctx, limit)
}

func newFixture(t *testing.T, history HistoryReader) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		orders:    ports.NewMockOrdersGateway(ctrl),
		revenue:   ports.NewMockRevenueGateway(ctrl),
		inventory: ports.NewMockInventoryGateway(ctrl),
		reviews:   ports.NewMockReviewsGateway(ctrl),
		charms:    ports.NewMockCharmsGateway(ctrl),
		journal:   notify.NewJournal(0),
	}
	h := NewAdminHandler(
		application.NewOrdersConsole(f.orders, f.journal, 10),
		application.NewRevenueView(f.revenue, nil, f.journal),
		application.NewStockConsole(f.inventory, f.journal, 10),
		application.NewReviewsConsole(f.reviews, f.journal),
		application.NewCharmsConsole(f.charms, f.journal, 10),
		f.journal,
		history,
	)
	r := chi.NewRouter()
	h.Register(r)
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) reload(t *testing.T, orders ...domain.Order) {
	t.Helper()
	f.orders.EXPECT().GetAllOrders(gomock.Any()).Return(orders, nil)
	f.orders.EXPECT().GetAllUsers(gomock.Any()).Return(nil, nil)
	rec := f.do(t, http.MethodPost, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

type pageBody struct {
	Items []application.OrderRow `json:"items"`
	Page  int                    `json:"page"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestReloadAndListOrders(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t,
		domain.Order{ID: 1},
		domain.Order{ID: 2, PaymentStatus: domain.PaymentPaid},
	)

	rec := f.do(t, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Loading bool     `json:"loading"`
		Page    pageBody `json:"page"`
	}](t, rec)
	require.Len(t, body.Page.Items, 2)
	assert.Equal(t, int64(2), body.Page.Items[0].ID)
	assert.Equal(t, "Đã thanh toán", body.Page.Items[0].PaymentLabel)

	shippers := decode[[]domain.Shipper](t, f.do(t, http.MethodGet, "/api/shippers", ""))
	assert.Equal(t, domain.DefaultShippers(), shippers)
}

func TestChangeOrdersPage(t *testing.T) {
	f := newFixture(t, nil)
	orders := make([]domain.Order, 0, 15)
	for i := int64(1); i <= 15; i++ {
		orders = append(orders, domain.Order{ID: i})
	}
	f.reload(t, orders...)

	listed := decode[struct {
		Page pageBody `json:"page"`
	}](t, f.do(t, http.MethodGet, "/api/orders?page=2", ""))
	assert.Equal(t, 1, listed.Page.Page, "GET must not move the pager")

	page := decode[pageBody](t, f.do(t, http.MethodPut, "/api/orders", `{"direction":"next"}`))
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 5)

	page = decode[pageBody](t, f.do(t, http.MethodPut, "/api/orders", `{"page":7}`))
	assert.Equal(t, 2, page.Page)

	rec := f.do(t, http.MethodPut, "/api/orders", `{"direction":"up"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateDeliveryStatusEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t, domain.Order{ID: 7, PaymentStatus: domain.PaymentPaid})

	f.orders.EXPECT().
		UpdateDeliveryStatus(gomock.Any(), int64(7), domain.StatusUpdate{DeliveryStatus: domain.DeliveryInTransit, PaymentStatus: domain.PaymentPaid}).
		Return(nil)
	rec := f.do(t, http.MethodPut, "/api/orders/7/delivery-status", `{"status":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	page := decode[pageBody](t, rec)
	assert.Equal(t, domain.DeliveryInTransit, page.Items[0].DeliveryStatus)
}

func TestUpdateStatusValidation(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/orders/7/delivery-status", `{"status":9}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/orders/7/payment-status", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/orders/abc/payment-status", `{"status":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/orders/7/payment-status", `{"status":1,"extra":true}`).Code)
}

func TestGatewayFailureMapsToBadGateway(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t, domain.Order{ID: 7})

	f.orders.EXPECT().UpdateDeliveryStatus(gomock.Any(), int64(7), gomock.Any()).
		Return(&gateway.Error{Op: "update_delivery_status", Status: 500})
	rec := f.do(t, http.MethodPut, "/api/orders/7/payment-status", `{"status":2}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	n, ok := f.journal.Last()
	require.True(t, ok)
	assert.Equal(t, domain.ActionUpdatePayment, n.Action)
	assert.Equal(t, domain.LevelError, n.Level)
}

func TestAssignShipperEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t, domain.Order{ID: 3, DeliveryStatus: domain.DeliveryDelivered})

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/orders/3/shipper", `{}`).Code)

	f.orders.EXPECT().CreateAndAssignDelivery(gomock.Any(), int64(2), []int64{3}).Return(nil)
	rec := f.do(t, http.MethodPost, "/api/orders/3/shipper", `{"shipperId":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[pageBody](t, rec)
	require.NotNil(t, page.Items[0].ShipperID)
	assert.Equal(t, int64(2), *page.Items[0].ShipperID)
	assert.Equal(t, domain.DeliveryPrepared, page.Items[0].DeliveryStatus)
}

func TestSelectionFlow(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t, domain.Order{ID: 4, UserName: "lan", Note: "gọi trước"})

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodGet, "/api/orders/selection", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/orders/99", "").Code)

	detail := decode[application.OrderDetail](t, f.do(t, http.MethodGet, "/api/orders/4", ""))
	assert.Equal(t, "lan", detail.UserName)
	assert.Equal(t, "N/A", detail.OrderDate)

	detail = decode[application.OrderDetail](t, f.do(t, http.MethodGet, "/api/orders/selection", ""))
	assert.Equal(t, int64(4), detail.ID)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/orders/selection", "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodGet, "/api/orders/selection", "").Code)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	f.reload(t, domain.Order{ID: 4}, domain.Order{ID: 5})

	f.orders.EXPECT().DeleteOrder(gomock.Any(), int64(4)).Return(nil)
	f.orders.EXPECT().GetAllOrders(gomock.Any()).Return([]domain.Order{{ID: 5}}, nil)

	rec := f.do(t, http.MethodDelete, "/api/orders/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[pageBody](t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(5), page.Items[0].ID)
}

func TestRevenueEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/dashboard/revenue?period=decade", "").Code)

	f.revenue.EXPECT().GetRevenueByPeriod(gomock.Any(), domain.PeriodMonth).Return(&domain.RevenueReport{}, nil)
	rec := f.do(t, http.MethodGet, "/api/dashboard/revenue?period=month", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[application.RevenueSnapshot](t, rec)
	assert.Equal(t, domain.PeriodMonth, snap.Period)
}

func TestStockEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	f.inventory.EXPECT().GetInventory(gomock.Any(), domain.StockCharm).Return([]domain.InventoryItem{{ID: 1, Name: "Charm hoa"}}, nil)
	rec := f.do(t, http.MethodPost, "/api/stock?type=charm", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[struct {
		Type  domain.StockType `json:"type"`
		Label string           `json:"label"`
	}](t, rec)
	assert.Equal(t, domain.StockCharm, body.Type)
	assert.Equal(t, "Charm", body.Label)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/stock?type=ring", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/stock/1/distribute", `{"quantity":"0"}`).Code)

	f.inventory.EXPECT().UpdateQuantity(gomock.Any(), domain.StockCharm, int64(1), 0).Return(nil)
	f.inventory.EXPECT().GetInventory(gomock.Any(), domain.StockCharm).Return([]domain.InventoryItem{{ID: 1}}, nil)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPut, "/api/stock/1/quantity", `{"quantity":0}`).Code)

	f.inventory.EXPECT().AddStock(gomock.Any(), domain.StockCharm, int64(0), 5).Return(nil)
	f.inventory.EXPECT().GetInventory(gomock.Any(), domain.StockCharm).Return([]domain.InventoryItem{{ID: 1}}, nil)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/stock/0/add", `{"quantity":"5"}`).Code)
}

func TestReviewsEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	f.reviews.EXPECT().GetAllReviews(gomock.Any()).Return(nil, errors.New("down"))
	assert.Equal(t, http.StatusInternalServerError, f.do(t, http.MethodPost, "/api/reviews", "").Code)

	f.reviews.EXPECT().DeleteReview(gomock.Any(), int64(3)).Return(nil)
	f.reviews.EXPECT().GetAllReviews(gomock.Any()).Return([]domain.Review{{ID: 4, Rating: 4}}, nil)
	rec := f.do(t, http.MethodDelete, "/api/reviews/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]application.ReviewRow](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(4), rows[0].ID)
}

func TestNotificationsEndpoints(t *testing.T) {
	f := newFixture(t, nil)
	f.journal.Notify(context.Background(), domain.NewNotification(domain.LevelInfo, domain.ActionLoadOrders, 0, "a"))
	f.journal.Notify(context.Background(), domain.NewNotification(domain.LevelInfo, domain.ActionLoadOrders, 0, "b"))

	got := decode[[]domain.Notification](t, f.do(t, http.MethodGet, "/api/notifications?limit=1", ""))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Message)

	assert.Equal(t, http.StatusNotImplemented, f.do(t, http.MethodGet, "/api/notifications/history", "").Code)

	withHistory := newFixture(t, historyFunc(func(_ context.Context, limit int) ([]domain.Notification, error) {
		assert.Equal(t, 5, limit)
		return []domain.Notification{{Message: "stored"}}, nil
	}))
	stored := decode[[]domain.Notification](t, withHistory.do(t, http.MethodGet, "/api/notifications/history?limit=5", ""))
	require.Len(t, stored, 1)
	assert.Equal(t, "stored", stored[0].Message)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

type charmsBody struct {
	Filter struct {
		Name       string `json:"name"`
		MinPrice   string `json:"minPrice"`
		CategoryID string `json:"categoryId"`
	} `json:"filter"`
	Error string `json:"error"`
	Page  struct {
		Items      []application.CharmRow `json:"items"`
		Page       int                    `json:"page"`
		TotalItems int                    `json:"totalItems"`
	} `json:"page"`
}

func TestCharmsEndpoints(t *testing.T) {
	f := newFixture(t, nil)
	charms := make([]domain.Charm, 0, 14)
	for i := int64(1); i <= 14; i++ {
		charms = append(charms, domain.Charm{ID: i, CharmName: "Hoa", Price: decimal.NewFromInt(i * 1000), CharmCategoryID: i % 2})
	}
	f.charms.EXPECT().GetAllCharms(gomock.Any()).Return(charms, nil)

	rec := f.do(t, http.MethodPost, "/api/charms", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[charmsBody](t, rec)
	assert.Equal(t, 14, body.Page.TotalItems)
	assert.Len(t, body.Page.Items, 10)

	body = decode[charmsBody](t, f.do(t, http.MethodPut, "/api/charms", `{"page":2}`))
	assert.Equal(t, 2, body.Page.Page)

	rec = f.do(t, http.MethodPut, "/api/charms/filter", `{"name":"hoa","minPrice":5000,"categoryId":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decode[charmsBody](t, rec)
	assert.Equal(t, 1, body.Page.Page)
	assert.Equal(t, 5, body.Page.TotalItems)
	assert.Equal(t, "5000", body.Filter.MinPrice)
	assert.Equal(t, "1", body.Filter.CategoryID)

	rec = f.do(t, http.MethodPut, "/api/charms/filter", `{"maxPrice":"nhiều"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.charms.EXPECT().DeleteCharm(gomock.Any(), int64(5)).Return(nil)
	body = decode[charmsBody](t, f.do(t, http.MethodDelete, "/api/charms/5", ""))
	assert.Equal(t, 4, body.Page.TotalItems)

	f.charms.EXPECT().DeleteCharm(gomock.Any(), int64(7)).Return(&gateway.Error{Op: "delete_charm", Err: errors.New("boom")})
	rec = f.do(t, http.MethodDelete, "/api/charms/7", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCharmsLoadFailureView(t *testing.T) {
	f := newFixture(t, nil)
	f.charms.EXPECT().GetAllCharms(gomock.Any()).Return(nil, errors.New("down"))

	rec := f.do(t, http.MethodPost, "/api/charms", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[charmsBody](t, f.do(t, http.MethodGet, "/api/charms", ""))
	assert.Equal(t, "Không thể tải danh sách Charm", body.Error)
	assert.Empty(t, body.Page.Items)
}
