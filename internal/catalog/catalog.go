// Package catalog describes the calculators the site offers, binds their
// form values to calculator inputs, and turns results into display views.
package catalog

import (
	"net/url"
	"sort"
	"strings"
)

// Category groups calculators under one navigation section.
type Category struct {
	Key   string
	Path  string
	Title string
}

// Calculator is one page of the site.
type Calculator struct {
	Name     string
	Category string
	Path     string
	Title    string
	Template string

	// compute is nil for calculators that only have a placeholder page.
	compute func(url.Values) (View, error)
}

// Implemented reports whether the calculator computes results server side.
func (c Calculator) Implemented() bool {
	return c.compute != nil
}

// Compute binds values and runs the calculator. Any failure matches
// calculator.ErrValidation.
func (c Calculator) Compute(values url.Values) (View, error) {
	if c.compute == nil {
		return nil, errNotImplemented(c.Name)
	}
	return c.compute(values)
}

// PlaceholderTemplate renders every calculator without a server-side computation.
const PlaceholderTemplate = "placeholder"

var categories = []Category{
	{Key: "finance", Path: "/finance", Title: "금융 · 투자"},
	{Key: "loan", Path: "/loan", Title: "대출 · 이자"},
	{Key: "real-estate", Path: "/real-estate", Title: "부동산"},
	{Key: "salary", Path: "/salary", Title: "직장인 · 세금"},
	{Key: "life", Path: "/life", Title: "생활"},
	{Key: "basic", Path: "/basic", Title: "기본 계산기"},
}

var calculators = []Calculator{
	{Name: "dividend", Category: "finance", Path: "/finance/dividend-calculator", Title: "배당금 계산기", Template: "dividend", compute: computeDividend},
	{Name: "compound-interest", Category: "finance", Path: "/finance/compound-interest-calculator", Title: "복리 계산기", Template: "compound", compute: computeCompound},
	{Name: "stock-return", Category: "finance", Path: "/finance/stock-return-calculator", Title: "주식 수익률 계산기", Template: "stock", compute: computeStock},
	{Name: "average-price", Category: "finance", Path: "/finance/average-price-calculator", Title: "평균단가 계산기", Template: PlaceholderTemplate},
	{Name: "loan-interest", Category: "loan", Path: "/loan/loan-interest-calculator", Title: "대출이자 계산기", Template: "loan", compute: computeLoan},
	{Name: "equal-principal-interest", Category: "loan", Path: "/loan/equal-principal-interest-calculator", Title: "원리금균등상환 계산기", Template: PlaceholderTemplate},
	{Name: "equal-principal", Category: "loan", Path: "/loan/equal-principal-calculator", Title: "원금균등상환 계산기", Template: PlaceholderTemplate},
	{Name: "rent-to-monthly", Category: "real-estate", Path: "/real-estate/rent-to-monthly-calculator", Title: "전월세 전환 계산기", Template: PlaceholderTemplate},
	{Name: "acquisition-tax", Category: "real-estate", Path: "/real-estate/acquisition-tax-calculator", Title: "취득세 계산기", Template: PlaceholderTemplate},
	{Name: "brokerage-fee", Category: "real-estate", Path: "/real-estate/brokerage-fee-calculator", Title: "중개보수 계산기", Template: PlaceholderTemplate},
	{Name: "net-salary", Category: "salary", Path: "/salary/net-salary-calculator", Title: "연봉 실수령액 계산기", Template: "salary", compute: computeSalary},
	{Name: "retirement-pay", Category: "salary", Path: "/salary/retirement-pay-calculator", Title: "퇴직금 계산기", Template: PlaceholderTemplate},
	{Name: "vat", Category: "salary", Path: "/salary/vat-calculator", Title: "부가세 계산기", Template: PlaceholderTemplate},
	{Name: "bmi", Category: "life", Path: "/life/bmi-calculator", Title: "BMI 계산기", Template: PlaceholderTemplate},
	{Name: "age", Category: "life", Path: "/life/age-calculator", Title: "나이 계산기", Template: PlaceholderTemplate},
	{Name: "d-day", Category: "life", Path: "/life/d-day-calculator", Title: "D-day 계산기", Template: PlaceholderTemplate},
}

// Categories returns the navigation sections in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Calculators returns every calculator in display order.
func Calculators() []Calculator {
	return append([]Calculator(nil), calculators...)
}

// InCategory returns the calculators of one category in display order.
func InCategory(key string) []Calculator {
	var matched []Calculator
	for _, c := range calculators {
		if c.Category == key {
			matched = append(matched, c)
		}
	}
	return matched
}

// Lookup finds a calculator by name.
func Lookup(name string) (Calculator, bool) {
	name = strings.TrimSpace(name)
	for _, c := range calculators {
		if c.Name == name {
			return c, true
		}
	}
	return Calculator{}, false
}

// ImplementedNames lists the calculators that compute results, sorted.
func ImplementedNames() []string {
	var names []string
	for _, c := range calculators {
		if c.Implemented() {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}
