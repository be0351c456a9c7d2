// Package format renders numbers, money and times the way the dashboard shows them.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// CurrencyStyle selects between full digits and 万/億 abbreviations.
type CurrencyStyle int

const (
	Standard CurrencyStyle = iota
	Short
)

// CurrencyOptions tunes Yen.
type CurrencyOptions struct {
	Style    CurrencyStyle
	ShowSign bool
}

// Number formats n with thousands separators, e.g. 2845 → "2,845".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Yen formats an amount as "¥82,500", "¥8.3万" or "+¥1.2億".
// The sign is "+" only when ShowSign is set and the amount is positive;
// negative amounts always carry "-".
func Yen(amount int64, opts CurrencyOptions) string {
	sign := ""
	switch {
	case amount < 0:
		sign = "-"
	case opts.ShowSign && amount > 0:
		sign = "+"
	}

	abs := amount
	if abs < 0 {
		abs = -abs
	}

	var body string
	switch {
	case opts.Style == Short && abs >= 100_000_000:
		body = fmt.Sprintf("%.1f億", roundTo1(float64(abs)/100_000_000))
	case opts.Style == Short && abs >= 10_000:
		body = fmt.Sprintf("%.1f万", roundTo1(float64(abs)/10_000))
	default:
		body = Number(abs)
	}
	return sign + "¥" + body
}

// Percent formats v with the given number of decimals and a trailing "%".
func Percent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// SignedPercent is Percent with an explicit "+" for positive values.
func SignedPercent(v float64, decimals int) string {
	if v > 0 {
		return "+" + Percent(v, decimals)
	}
	return Percent(v, decimals)
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
