package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type StockType string

const (
	StockBracelet StockType = "BRACELET"
	StockCharm    StockType = "CHARM"
)

func ParseStockType(raw string) (StockType, error) {
	t := StockType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case StockBracelet, StockCharm:
		return t, nil
	case "":
		return StockBracelet, nil
	default:
		return "", fmt.Errorf("unknown stock type %q", raw)
	}
}

func (t StockType) Label() string {
	if t == StockBracelet {
		return "Vòng tay"
	}
	return "Charm"
}

// InventoryItem is one product row of the stock page. Stock is the warehouse
// quantity, Quantity is what has been distributed to the storefront.
type InventoryItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Stock    int             `json:"stockQuantity"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
