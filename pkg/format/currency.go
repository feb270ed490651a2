// Package format turns calculator results into display strings.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// RoundWon rounds an amount to whole won, ties to even. The result is not
// limited to the int64 range.
func RoundWon(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).RoundBank(0)
}

// Number returns a rounded amount with thousands separators (e.g., "-1,234").
func Number(amount float64) string {
	rounded := RoundWon(amount)
	if rounded.BigInt().IsInt64() {
		return Integer(rounded.IntPart())
	}
	return groupDigits(rounded.String())
}

// Integer returns n with thousands separators.
func Integer(n int64) string {
	return printer.Sprintf("%d", n)
}

// groupDigits inserts separators into a plain integer string that does not
// fit the printer's int64 path.
func groupDigits(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Won returns a rounded amount with separators and the won suffix (e.g., "1,234원").
func Won(amount float64) string {
	return Number(amount) + "원"
}

// Manwon converts a won amount into 만원 and returns it with the suffix (e.g., "5,000만원").
func Manwon(amount float64) string {
	return Number(amount/constants.ManwonUnit) + "만원"
}

// Percent returns a rate with two decimals and no sign (e.g., "19.69").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}

// PercentSign returns a rate with two decimals followed by "%" (e.g., "6.62%").
func PercentSign(rate float64) string {
	return Percent(rate) + "%"
}

// Echo returns the shortest decimal form of an entered value (e.g., "4.5").
func Echo(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
