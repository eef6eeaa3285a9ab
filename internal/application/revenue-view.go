package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/ports"
)

var ErrInvalidPeriod = errors.New("invalid revenue period")

const msgRevenueFailed = "Không thể tải dữ liệu doanh thu."

var hundred = decimal.NewFromInt(100)

// RevenueBar is one bar pair of the revenue chart, with heights in percent of
// the largest value on the chart.
type RevenueBar struct {
	Label          string          `json:"label"`
	Current        decimal.Decimal `json:"current"`
	Previous       decimal.Decimal `json:"previous"`
	CurrentHeight  float64         `json:"currentHeight"`
	PreviousHeight float64         `json:"previousHeight"`
}

// RevenueSnapshot is what the dashboard renders.
type RevenueSnapshot struct {
	Period           domain.Period    `json:"period"`
	Loading          bool             `json:"loading"`
	Error            string           `json:"error,omitempty"`
	Total            decimal.Decimal  `json:"total"`
	PercentageChange decimal.Decimal  `json:"percentageChange"`
	Item2            *decimal.Decimal `json:"item2,omitempty"`
	Bars             []RevenueBar     `json:"bars"`
	ShowError        bool             `json:"showError"`
	ShowChart        bool             `json:"showChart"`
}

// RevenueView is the view model of the dashboard's revenue card and chart.
type RevenueView struct {
	gw       ports.RevenueGateway
	cache    ports.RevenueCache
	notifier ports.Notifier

	mu      sync.RWMutex
	period  domain.Period
	loading bool
	errMsg  string
	report  domain.RevenueReport
	item2   *decimal.Decimal
}

// NewRevenueView builds the view. cache may be nil.
func NewRevenueView(gw ports.RevenueGateway, cache ports.RevenueCache, notifier ports.Notifier) *RevenueView {
	return &RevenueView{gw: gw, cache: cache, notifier: notifier, period: domain.PeriodDay}
}

// Load switches to period and fetches its figures. On failure the chart and
// totals are cleared but the last secondary figure (item2) stays on screen.
func (v *RevenueView) Load(ctx context.Context, raw string) (RevenueSnapshot, error) {
	period, err := domain.ParsePeriod(raw)
	if err != nil {
		return v.Snapshot(), fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	v.mu.Lock()
	v.period = period
	v.loading = true
	v.errMsg = ""
	v.mu.Unlock()

	report, err := v.fetch(ctx, period)
	if err != nil {
		v.mu.Lock()
		v.loading = false
		v.errMsg = msgRevenueFailed
		v.report = domain.RevenueReport{}
		v.mu.Unlock()

		logger.Warn("load revenue failed", "period", period, "err", err)
		if v.notifier != nil {
			v.notifier.Notify(ctx, domain.NewNotification(domain.LevelError, domain.ActionLoadRevenue, 0, msgRevenueFailed))
		}
		return v.Snapshot(), fmt.Errorf("load revenue: %w", err)
	}

	v.mu.Lock()
	v.loading = false
	v.report = *report
	if report.Item2 != nil {
		item2 := *report.Item2
		v.item2 = &item2
	}
	v.mu.Unlock()
	return v.Snapshot(), nil
}

func (v *RevenueView) fetch(ctx context.Context, period domain.Period) (*domain.RevenueReport, error) {
	if v.cache != nil {
		cached, err := v.cache.GetReport(ctx, period)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	report, err := v.gw.GetRevenueByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if v.cache != nil {
		if err := v.cache.SetReport(ctx, period, report); err != nil {
			logger.Warn("cache revenue report failed", "period", period, "err", err)
		}
	}
	return report, nil
}

func (v *RevenueView) Snapshot() RevenueSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	hasItem2 := v.item2 != nil && v.item2.IsPositive()
	snap := RevenueSnapshot{
		Period:           v.period,
		Loading:          v.loading,
		Error:            v.errMsg,
		Total:            v.report.Total,
		PercentageChange: v.report.PercentageChange,
		Bars:             RevenueBars(v.report.ChartData),
		ShowError:        v.errMsg != "" && !hasItem2,
		ShowChart:        (!v.loading && v.errMsg == "") || hasItem2,
	}
	if v.item2 != nil {
		item2 := *v.item2
		snap.Item2 = &item2
	}
	return snap
}

// RevenueBars scales every point against the largest current or previous value.
// When everything is zero the bars have zero height.
func RevenueBars(points []domain.RevenuePoint) []RevenueBar {
	bars := make([]RevenueBar, 0, len(points))
	peak := decimal.Zero
	for _, p := range points {
		peak = decimal.Max(peak, p.CurrentPeriodRevenue, p.PreviousPeriodRevenue)
	}
	for _, p := range points {
		bars = append(bars, RevenueBar{
			Label:          p.Label,
			Current:        p.CurrentPeriodRevenue,
			Previous:       p.PreviousPeriodRevenue,
			CurrentHeight:  percentOf(p.CurrentPeriodRevenue, peak),
			PreviousHeight: percentOf(p.PreviousPeriodRevenue, peak),
		})
	}
	return bars
}

func percentOf(v, peak decimal.Decimal) float64 {
	if !peak.IsPositive() {
		return 0
	}
	pct, _ := v.Div(peak).Mul(hundred).Round(2).Float64()
	return pct
}
