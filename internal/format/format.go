package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateTimeLayout = "15:04:05 2/1/2006"

var (
	printer  = message.NewPrinter(language.Vietnamese)
	shopZone = loadShopZone()
)

func loadShopZone() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*60*60)
}

// VND renders an amount the way the shop shows prices, e.g. "1.250.000 ₫".
// Dong has no minor unit, so the amount is rounded to a whole number.
func VND(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart()) + "\u00a0₫"
}

// Number groups digits with the Vietnamese separator, without a currency sign.
func Number(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart())
}

// DateTime renders t in the shop's time zone, e.g. "10:30:00 1/6/2025".
// The zero time renders as "N/A".
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.In(shopZone).Format(dateTimeLayout)
}
