// Package money formats decimal prices and percentage changes for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount formats d with thousands separators and the given number of
// decimal places, e.g. 1245320 -> "1,245,320".
func Amount(d decimal.Decimal, places int32) string {
	f, _ := d.Round(places).Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(int(places))))
}

// Price formats a unit price keeping the scale it was written with.
func Price(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return Amount(d, places)
}

// Signed formats d with an explicit sign: "+3.2", "-0.7".
func Signed(d decimal.Decimal) string {
	s := Price(d.Abs())
	if d.IsNegative() {
		return "-" + s
	}
	return "+" + s
}

// Percent formats a percentage change: "+0.25%".
func Percent(d decimal.Decimal) string {
	return Signed(d) + "%"
}

// Down reports whether a change is negative.
func Down(d decimal.Decimal) bool {
	return d.IsNegative()
}

// Arrow returns the trend glyph for a change.
func Arrow(d decimal.Decimal) string {
	if d.IsNegative() {
		return "▼"
	}
	return "▲"
}

// Magnitude formats the absolute value of a percentage change: "0.25%".
func Magnitude(d decimal.Decimal) string {
	return Price(d.Abs()) + "%"
}
