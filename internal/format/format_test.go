package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVND(t *testing.T) {
	assert.Equal(t, "1.250.000\u00a0₫", VND(decimal.NewFromInt(1250000)))
	assert.Equal(t, "0\u00a0₫", VND(decimal.Zero))
	assert.Equal(t, "1.000\u00a0₫", VND(decimal.RequireFromString("999.6")))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "50.000", Number(decimal.NewFromInt(50000)))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "10:30:00 1/6/2025", DateTime(ts))
	assert.Equal(t, "N/A", DateTime(time.Time{}))
}
