package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/format"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/pagination"
	"github.com/RaikyD/charms-admin/internal/ports"
)

var ErrInvalidCharmFilter = errors.New("invalid charm filter")

const (
	msgLoadCharmsFailed = "Không thể tải danh sách Charm"
	msgCharmDeleted     = "Xóa Charm thành công!"
	msgDeleteCharmFail  = "Không thể xóa Charm."
)

type CharmRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	CategoryID int64  `json:"categoryId"`
	Status     string `json:"status"`
	Active     bool   `json:"active"`
}

func NewCharmRow(c domain.Charm) CharmRow {
	return CharmRow{
		ID:         c.ID,
		Name:       c.CharmName,
		Price:      format.Number(c.Price) + "đ",
		CategoryID: c.CharmCategoryID,
		Status:     c.StatusLabel(),
		Active:     c.IsActive,
	}
}

// ParseCharmFilter builds a filter from the search inputs. Blank inputs leave
// the criterion unset.
func ParseCharmFilter(name, minPrice, maxPrice, categoryID string) (domain.CharmFilter, error) {
	f := domain.CharmFilter{Name: strings.TrimSpace(name)}

	price := func(field, raw string) (*decimal.Decimal, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidCharmFilter, field, raw)
		}
		return &d, nil
	}
	var err error
	if f.MinPrice, err = price("minPrice", minPrice); err != nil {
		return domain.CharmFilter{}, err
	}
	if f.MaxPrice, err = price("maxPrice", maxPrice); err != nil {
		return domain.CharmFilter{}, err
	}
	if raw := strings.TrimSpace(categoryID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.CharmFilter{}, fmt.Errorf("%w: categoryId %q", ErrInvalidCharmFilter, raw)
		}
		f.CategoryID = &id
	}
	return f, nil
}

// CharmsConsole is the charm management page: the full catalogue filtered
// locally, paged, with delete.
type CharmsConsole struct {
	gw       ports.CharmsGateway
	notifier ports.Notifier

	mu      sync.RWMutex
	charms  []domain.Charm
	filter  domain.CharmFilter
	pager   *pagination.Pager
	loadErr string
}

func NewCharmsConsole(gw ports.CharmsGateway, notifier ports.Notifier, pageSize int) *CharmsConsole {
	return &CharmsConsole{
		gw:       gw,
		notifier: notifier,
		charms:   []domain.Charm{},
		pager:    pagination.NewPager(pageSize),
	}
}

func (c *CharmsConsole) Load(ctx context.Context) error {
	charms, err := c.gw.GetAllCharms(ctx)
	if err != nil {
		c.mu.Lock()
		c.charms = []domain.Charm{}
		c.loadErr = msgLoadCharmsFailed
		c.pager.Clamp(0)
		c.mu.Unlock()

		logger.Warn("load charms failed", "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionLoadCharms, 0, msgLoadCharmsFailed)
		return fmt.Errorf("load charms: %w", err)
	}

	c.mu.Lock()
	c.charms = charms
	c.loadErr = ""
	c.pager.Clamp(len(c.filteredLocked()))
	c.mu.Unlock()
	return nil
}

// LoadError is the message shown instead of the table after a failed load.
func (c *CharmsConsole) LoadError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

func (c *CharmsConsole) Filter() domain.CharmFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

// SetFilter replaces the search criteria and goes back to page 1.
func (c *CharmsConsole) SetFilter(f domain.CharmFilter) {
	c.mu.Lock()
	c.filter = f
	c.pager.Reset()
	c.mu.Unlock()
}

func (c *CharmsConsole) Filtered() []domain.Charm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filteredLocked()
}

func (c *CharmsConsole) filteredLocked() []domain.Charm {
	out := make([]domain.Charm, 0, len(c.charms))
	for _, ch := range c.charms {
		if c.filter.Match(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func (c *CharmsConsole) CurrentPage() pagination.View[CharmRow] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pagination.Map(pagination.Render(c.pager, c.filteredLocked()), NewCharmRow)
}

// SetPage moves within the filtered list; pages outside it are ignored.
func (c *CharmsConsole) SetPage(page int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.SetPage(page, len(c.filteredLocked()))
}

// Delete removes a charm remotely and, once confirmed, from the local list.
// There is no reload.
func (c *CharmsConsole) Delete(ctx context.Context, id int64) error {
	ctx = context.WithoutCancel(ctx)
	if err := c.gw.DeleteCharm(ctx, id); err != nil {
		logger.Warn("delete charm failed", "charm_id", id, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionDeleteCharm, id, msgDeleteCharmFail)
		return fmt.Errorf("delete charm %d: %w", id, err)
	}

	c.mu.Lock()
	kept := c.charms[:0:0]
	for _, ch := range c.charms {
		if ch.ID != id {
			kept = append(kept, ch)
		}
	}
	c.charms = kept
	c.pager.Clamp(len(c.filteredLocked()))
	c.mu.Unlock()

	c.notify(ctx, domain.LevelSuccess, domain.ActionDeleteCharm, id, msgCharmDeleted)
	return nil
}

func (c *CharmsConsole) notify(ctx context.Context, level domain.Level, action domain.Action, id int64, msg string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, domain.NewNotification(level, action, id, msg))
}
