package calculator

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// DividendInput holds the dividend calculator form values.
type DividendInput struct {
	InvestmentAmount float64
	DividendYieldPct float64
}

// DividendResult holds the yearly and monthly dividend after withholding tax.
type DividendResult struct {
	InvestmentAmount float64
	DividendYieldPct float64
	AnnualDividend   float64
	TaxAmount        float64
	NetDividend      float64
	MonthlyDividend  float64
}

// Dividend computes the annual dividend of an investment, the 15.4%
// withholding tax on it, and the net amount per year and per month.
func Dividend(in DividendInput) (DividendResult, error) {
	if err := requireFinite([]namedValue{
		{"investment_amount", in.InvestmentAmount},
		{"dividend_yield", in.DividendYieldPct},
	}); err != nil {
		return DividendResult{}, err
	}

	annual := mathutil.ApplyPercentage(in.InvestmentAmount, in.DividendYieldPct)
	tax := annual * constants.DividendTaxRate
	net := annual - tax

	return DividendResult{
		InvestmentAmount: in.InvestmentAmount,
		DividendYieldPct: in.DividendYieldPct,
		AnnualDividend:   annual,
		TaxAmount:        tax,
		NetDividend:      net,
		MonthlyDividend:  net / constants.MonthsPerYear,
	}, nil
}
