package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/metrics"
)

const (
	defaultTimeout  = 15 * time.Second
	maxErrorBodyLen = 4 << 10
)

// Client talks to the shop backend REST API. It implements the gateway ports
// of the order, revenue, inventory, review and charm consoles.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	metrics *metrics.Metrics
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client (and its timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithToken sends token as a bearer credential on every call.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "get_orders", http.MethodGet, "/api/Order", nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, "delete_order", http.MethodDelete, "/api/Order/"+strconv.FormatInt(orderID, 10), nil, nil)
}

func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, "get_users", http.MethodGet, "/api/User", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type assignRequest struct {
	ShipperID int64   `json:"shipperId"`
	OrderIDs  []int64 `json:"orderIds"`
}

func (c *Client) CreateAndAssignDelivery(ctx context.Context, shipperID int64, orderIDs []int64) error {
	body := assignRequest{ShipperID: shipperID, OrderIDs: orderIDs}
	return c.do(ctx, "assign_delivery", http.MethodPost, "/api/Delivery/create-and-assign", body, nil)
}

func (c *Client) UpdateDeliveryStatus(ctx context.Context, orderID int64, upd domain.StatusUpdate) error {
	path := "/api/Delivery/" + strconv.FormatInt(orderID, 10) + "/status"
	return c.do(ctx, "update_delivery_status", http.MethodPut, path, upd, nil)
}

func (c *Client) GetRevenueByPeriod(ctx context.Context, period domain.Period) (*domain.RevenueReport, error) {
	var report domain.RevenueReport
	path := "/api/Order/revenue?period=" + url.QueryEscape(string(period))
	if err := c.do(ctx, "get_revenue", http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

type inventoryEnvelope struct {
	Data []domain.InventoryItem `json:"data"`
}

type stockRequest struct {
	ProductID *int64 `json:"productId,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (c *Client) GetInventory(ctx context.Context, t domain.StockType) ([]domain.InventoryItem, error) {
	var env inventoryEnvelope
	if err := c.do(ctx, "get_inventory", http.MethodGet, stockPath(t)+"/inventory", nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []domain.InventoryItem{}
	}
	return env.Data, nil
}

// AddStock receives new warehouse stock. productID 0 registers stock without a product.
func (c *Client) AddStock(ctx context.Context, t domain.StockType, productID int64, quantity int) error {
	body := stockRequest{Quantity: quantity}
	if productID != 0 {
		body.ProductID = &productID
	}
	return c.do(ctx, "add_stock", http.MethodPost, stockPath(t)+"/stock", body, nil)
}

func (c *Client) Distribute(ctx context.Context, t domain.StockType, productID int64, quantity int) error {
	path := stockPath(t) + "/" + strconv.FormatInt(productID, 10) + "/distribute"
	return c.do(ctx, "distribute_stock", http.MethodPut, path, stockRequest{Quantity: quantity}, nil)
}

func (c *Client) UpdateQuantity(ctx context.Context, t domain.StockType, productID int64, quantity int) error {
	path := stockPath(t) + "/" + strconv.FormatInt(productID, 10) + "/quantity"
	return c.do(ctx, "update_quantity", http.MethodPut, path, stockRequest{Quantity: quantity}, nil)
}

func (c *Client) GetAllReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, "get_reviews", http.MethodGet, "/api/Review", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_review", http.MethodDelete, "/api/Review/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) GetAllCharms(ctx context.Context) ([]domain.Charm, error) {
	var charms []domain.Charm
	if err := c.do(ctx, "get_charms", http.MethodGet, "/api/Charm", nil, &charms); err != nil {
		return nil, err
	}
	if charms == nil {
		charms = []domain.Charm{}
	}
	return charms, nil
}

func (c *Client) DeleteCharm(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_charm", http.MethodDelete, "/api/Charm/"+strconv.FormatInt(id, 10), nil, nil)
}

func stockPath(t domain.StockType) string {
	if t == domain.StockCharm {
		return "/api/Charm"
	}
	return "/api/Bracelet"
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveGateway(op, start, err) }()

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return &Error{Op: op, Err: mErr}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return &Error{Op: op, Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage pulls {"message": "..."} out of an error body, falling back to the raw text.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Title != "" {
			return payload.Title
		}
	}
	return strings.TrimSpace(string(raw))
}
