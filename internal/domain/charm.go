package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Charm struct {
	ID              int64           `json:"id"`
	CharmName       string          `json:"charmName"`
	Price           decimal.Decimal `json:"price"`
	CharmCategoryID int64           `json:"charmCategoryId"`
	IsActive        bool            `json:"isActive"`
}

func (c Charm) StatusLabel() string {
	if c.IsActive {
		return "Active"
	}
	return "Inactive"
}

// CharmFilter narrows the charm list. Unset bounds and an empty name match everything.
type CharmFilter struct {
	Name       string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID *int64
}

// Match reports whether c passes every set criterion. Name matching is a
// case-insensitive substring test; price bounds are inclusive.
func (f CharmFilter) Match(c Charm) bool {
	if !strings.Contains(strings.ToLower(c.CharmName), strings.ToLower(f.Name)) {
		return false
	}
	if f.MinPrice != nil && c.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && c.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.CategoryID != nil && c.CharmCategoryID != *f.CategoryID {
		return false
	}
	return true
}
