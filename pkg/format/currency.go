// Package format renders won amounts for plan tables.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Won returns an amount with thousands separators and no unit (e.g., "-1,234,567").
func Won(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// WonWithUnit returns an amount with thousands separators and the won unit
// suffix (e.g., "1,234,567원").
func WonWithUnit(amount int64) string {
	return Won(amount) + "원"
}

// Rate returns a repayment rate with two decimals and a percent sign.
func Rate(rate float64) string {
	return printer.Sprintf("%.2f%%", rate)
}
