package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Period is the aggregation window of the revenue dashboard.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	case "":
		return PeriodDay, nil
	default:
		return "", fmt.Errorf("unknown period %q", raw)
	}
}

type RevenuePoint struct {
	Label                 string          `json:"label"`
	CurrentPeriodRevenue  decimal.Decimal `json:"currentPeriodRevenue"`
	PreviousPeriodRevenue decimal.Decimal `json:"previousPeriodRevenue"`
}

// RevenueReport is the backend's answer for one period. Item2 is an optional
// headline figure that the backend only sends for some periods.
type RevenueReport struct {
	ChartData        []RevenuePoint   `json:"chartData"`
	Total            decimal.Decimal  `json:"total"`
	PercentageChange decimal.Decimal  `json:"percentageChange"`
	Item2            *decimal.Decimal `json:"item2,omitempty"`
}
