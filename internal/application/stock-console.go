package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/pagination"
	"github.com/RaikyD/charms-admin/internal/ports"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

const (
	msgInvalidQuantity    = "Số lượng không hợp lệ."
	msgStockAdded         = "Thêm tồn kho thành công!"
	msgStockAddFailed     = "Không thể thêm tồn kho."
	msgDistributed        = "Phân phối thành công!"
	msgDistributeFailed   = "Không thể phân phối tồn kho."
	msgQuantityUpdated    = "Cập nhật số lượng thành công!"
	msgQuantityUpdateFail = "Không thể cập nhật số lượng."
)

// StockConsole is the view model of the inventory page. It shows one product
// family at a time.
type StockConsole struct {
	gw       ports.InventoryGateway
	notifier ports.Notifier

	mu      sync.RWMutex
	active  domain.StockType
	items   []domain.InventoryItem
	pager   *pagination.Pager
	loading bool
}

func NewStockConsole(gw ports.InventoryGateway, notifier ports.Notifier, pageSize int) *StockConsole {
	return &StockConsole{
		gw:       gw,
		notifier: notifier,
		active:   domain.StockBracelet,
		items:    []domain.InventoryItem{},
		pager:    pagination.NewPager(pageSize),
	}
}

// ParseQuantity reads a quantity typed by an admin. Fractions are truncated.
// allowZero selects between the "> 0" and ">= 0" rules.
func ParseQuantity(raw string, allowZero bool) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidQuantity
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
			return 0, ErrInvalidQuantity
		}
		n = int(f)
	}
	if n < 0 || (n == 0 && !allowZero) {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

func (s *StockConsole) ActiveType() domain.StockType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SwitchType shows another product family, starting again from page 1.
func (s *StockConsole) SwitchType(ctx context.Context, t domain.StockType) error {
	s.mu.Lock()
	s.active = t
	s.pager.Reset()
	s.mu.Unlock()
	return s.Load(ctx)
}

// Load fetches the active family's inventory. On failure the table is emptied.
func (s *StockConsole) Load(ctx context.Context) error {
	s.mu.Lock()
	active := s.active
	s.loading = true
	s.mu.Unlock()

	items, err := s.gw.GetInventory(ctx, active)

	s.mu.Lock()
	if s.active != active {
		// A newer SwitchType owns the table now.
		s.mu.Unlock()
		return nil
	}
	s.loading = false
	if err != nil {
		s.items = []domain.InventoryItem{}
		s.pager.Clamp(0)
		s.mu.Unlock()

		logger.Warn("load inventory failed", "type", active, "err", err)
		s.notify(ctx, domain.LevelError, domain.ActionLoadStock, 0, "Không thể tải tồn kho "+active.Label()+".")
		return fmt.Errorf("load %s inventory: %w", active, err)
	}
	s.items = items
	s.pager.Clamp(len(items))
	s.mu.Unlock()
	return nil
}

// AddStock receives warehouse stock for productID (0 for a new stock entry).
func (s *StockConsole) AddStock(ctx context.Context, productID int64, rawQty string) error {
	qty, err := s.quantity(ctx, domain.ActionAddStock, productID, rawQty, false)
	if err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)
	active := s.ActiveType()
	if err := s.gw.AddStock(ctx, active, productID, qty); err != nil {
		logger.Warn("add stock failed", "type", active, "product_id", productID, "err", err)
		s.notify(ctx, domain.LevelError, domain.ActionAddStock, productID, msgStockAddFailed)
		return fmt.Errorf("add stock: %w", err)
	}
	s.notify(ctx, domain.LevelSuccess, domain.ActionAddStock, productID, msgStockAdded)
	return s.reload(ctx)
}

// Distribute moves qty units of a product from the warehouse to the storefront.
func (s *StockConsole) Distribute(ctx context.Context, productID int64, rawQty string) error {
	qty, err := s.quantity(ctx, domain.ActionDistribute, productID, rawQty, false)
	if err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)
	active := s.ActiveType()
	if err := s.gw.Distribute(ctx, active, productID, qty); err != nil {
		logger.Warn("distribute stock failed", "type", active, "product_id", productID, "err", err)
		msg := gateway.Message(err)
		if msg == "" {
			msg = msgDistributeFailed
		}
		s.notify(ctx, domain.LevelError, domain.ActionDistribute, productID, msg)
		return fmt.Errorf("distribute stock: %w", err)
	}
	s.notify(ctx, domain.LevelSuccess, domain.ActionDistribute, productID, msgDistributed)
	return s.reload(ctx)
}

// UpdateQuantity overwrites the storefront quantity; zero is allowed.
func (s *StockConsole) UpdateQuantity(ctx context.Context, productID int64, rawQty string) error {
	qty, err := s.quantity(ctx, domain.ActionUpdateQuantity, productID, rawQty, true)
	if err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)
	active := s.ActiveType()
	if err := s.gw.UpdateQuantity(ctx, active, productID, qty); err != nil {
		logger.Warn("update quantity failed", "type", active, "product_id", productID, "err", err)
		s.notify(ctx, domain.LevelError, domain.ActionUpdateQuantity, productID, msgQuantityUpdateFail)
		return fmt.Errorf("update quantity: %w", err)
	}
	s.notify(ctx, domain.LevelSuccess, domain.ActionUpdateQuantity, productID, msgQuantityUpdated)
	return s.reload(ctx)
}

func (s *StockConsole) quantity(ctx context.Context, action domain.Action, productID int64, raw string, allowZero bool) (int, error) {
	qty, err := ParseQuantity(raw, allowZero)
	if err != nil {
		s.notify(ctx, domain.LevelInfo, action, productID, msgInvalidQuantity)
		return 0, err
	}
	return qty, nil
}

// reload refreshes after a confirmed change; its failure is already reported by Load.
func (s *StockConsole) reload(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		logger.Warn("reload inventory failed", "err", err)
	}
	return nil
}

func (s *StockConsole) Items() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.InventoryItem(nil), s.items...)
}

func (s *StockConsole) CurrentPage() pagination.View[domain.InventoryItem] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view := pagination.Render(s.pager, s.items)
	view.Items = append([]domain.InventoryItem{}, view.Items...)
	return view
}

func (s *StockConsole) SetPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.SetPage(page, len(s.items))
}

func (s *StockConsole) notify(ctx context.Context, level domain.Level, action domain.Action, id int64, msg string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, domain.NewNotification(level, action, id, msg))
}
