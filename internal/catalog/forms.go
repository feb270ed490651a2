package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ErrNotImplemented is returned by Compute for placeholder calculators.
var ErrNotImplemented = errors.New("calculator has no server-side computation")

func errNotImplemented(name string) error {
	return fmt.Errorf("%s: %w", name, ErrNotImplemented)
}

// form reads typed fields out of submitted values. A field that is absent
// is distinct from one submitted empty: only absent fields take defaults.
type form struct {
	values url.Values
}

func (f form) present(field string) bool {
	_, ok := f.values[field]
	return ok
}

func (f form) number(field string) (float64, error) {
	if !f.present(field) {
		return 0, calculator.NewValidationError(field, "missing")
	}
	value, err := validation.ParseNumber(f.values.Get(field))
	if err != nil {
		return 0, calculator.NewValidationError(field, err.Error())
	}
	return value, nil
}

func (f form) numberOr(field string, fallback float64) (float64, error) {
	if !f.present(field) {
		return fallback, nil
	}
	return f.number(field)
}

func (f form) count(field string) (int, error) {
	if !f.present(field) {
		return 0, calculator.NewValidationError(field, "missing")
	}
	value, err := validation.ParseCount(f.values.Get(field))
	if err != nil {
		return 0, calculator.NewValidationError(field, err.Error())
	}
	return value, nil
}

func (f form) choice(field, fallback string) string {
	if !f.present(field) {
		return fallback
	}
	return strings.TrimSpace(f.values.Get(field))
}

// BindDividend reads the dividend calculator form.
func BindDividend(values url.Values) (calculator.DividendInput, error) {
	f := form{values: values}
	var in calculator.DividendInput
	var err error
	if in.InvestmentAmount, err = f.number("investment_amount"); err != nil {
		return calculator.DividendInput{}, err
	}
	if in.DividendYieldPct, err = f.number("dividend_yield"); err != nil {
		return calculator.DividendInput{}, err
	}
	return in, nil
}

// BindCompound reads the compound interest form. Only the fields of the
// selected mode are required.
func BindCompound(values url.Values) (calculator.CompoundInput, error) {
	f := form{values: values}
	in := calculator.CompoundInput{Mode: calculator.ParseCompoundMode(f.choice("mode", "basic"))}
	var err error

	switch in.Mode {
	case calculator.ModeInstallment:
		inst := &in.Installment
		if inst.StartAmount, err = f.number("inst_start_amount"); err != nil {
			return calculator.CompoundInput{}, err
		}
		if inst.MonthlyContribution, err = f.number("inst_monthly_contribution"); err != nil {
			return calculator.CompoundInput{}, err
		}
		if inst.PeriodValue, err = f.count("inst_period_value"); err != nil {
			return calculator.CompoundInput{}, err
		}
		if inst.RatePct, err = f.number("inst_rate_value"); err != nil {
			return calculator.CompoundInput{}, err
		}
		inst.PeriodUnit = calculator.ParsePeriodUnit(f.choice("inst_period_unit", "years"))
		inst.RateUnit = calculator.ParseRateUnit(f.choice("inst_rate_unit", "year"))
		inst.Compounding = calculator.ParseCompounding(f.choice("inst_compounding_method", "annual"))
	default:
		basic := &in.Basic
		if basic.Principal, err = f.number("basic_principal"); err != nil {
			return calculator.CompoundInput{}, err
		}
		if basic.Periods, err = f.count("basic_period"); err != nil {
			return calculator.CompoundInput{}, err
		}
		if basic.RatePct, err = f.number("basic_rate"); err != nil {
			return calculator.CompoundInput{}, err
		}
	}
	return in, nil
}

// BindStock reads the stock return form. Fee and tax rates default to the
// standard brokerage fee and transaction tax when the fields are absent.
func BindStock(values url.Values) (calculator.StockInput, error) {
	f := form{values: values}
	var in calculator.StockInput
	var err error
	if in.BuyPrice, err = f.number("buy_price"); err != nil {
		return calculator.StockInput{}, err
	}
	if in.SellPrice, err = f.number("sell_price"); err != nil {
		return calculator.StockInput{}, err
	}
	if in.Quantity, err = f.count("quantity"); err != nil {
		return calculator.StockInput{}, err
	}
	if in.FeeRatePct, err = f.numberOr("fee_rate", constants.DefaultStockFeeRatePct); err != nil {
		return calculator.StockInput{}, err
	}
	if in.TaxRatePct, err = f.numberOr("tax_rate", constants.DefaultStockTaxRatePct); err != nil {
		return calculator.StockInput{}, err
	}
	return in, nil
}

// BindLoan reads the loan interest form.
func BindLoan(values url.Values) (calculator.LoanInput, error) {
	f := form{values: values}
	var in calculator.LoanInput
	var err error
	if in.LoanAmount, err = f.number("loan_amount"); err != nil {
		return calculator.LoanInput{}, err
	}
	if in.InterestRatePct, err = f.number("interest_rate"); err != nil {
		return calculator.LoanInput{}, err
	}
	if in.TermYears, err = f.count("loan_term"); err != nil {
		return calculator.LoanInput{}, err
	}
	if !f.present("repayment_type") {
		return calculator.LoanInput{}, calculator.NewValidationError("repayment_type", "missing")
	}
	in.RepaymentType = calculator.ParseRepaymentType(f.values.Get("repayment_type"))
	return in, nil
}

// BindSalary reads the net salary form. Amounts are in 만원.
func BindSalary(values url.Values) (calculator.SalaryInput, error) {
	f := form{values: values}
	var in calculator.SalaryInput
	var err error
	if in.AnnualSalary, err = f.number("annual_salary"); err != nil {
		return calculator.SalaryInput{}, err
	}
	if in.Dependents, err = f.count("dependents"); err != nil {
		return calculator.SalaryInput{}, err
	}
	optional := []struct {
		field    string
		fallback float64
		target   *float64
	}{
		{"non_taxable", constants.DefaultNonTaxableManwon, &in.NonTaxable},
		{"meal_allowance", constants.DefaultMealAllowanceManwon, &in.MealAllowance},
		{"night_allowance", constants.DefaultNightAllowanceManwon, &in.NightAllowance},
		{"bonus_annual", constants.DefaultBonusManwon, &in.Bonus},
		{"pension_contrib", constants.DefaultPensionManwon, &in.PensionContrib},
	}
	for _, o := range optional {
		if *o.target, err = f.numberOr(o.field, o.fallback); err != nil {
			return calculator.SalaryInput{}, err
		}
	}
	return in, nil
}

func computeDividend(values url.Values) (View, error) {
	in, err := BindDividend(values)
	if err != nil {
		return nil, err
	}
	result, err := calculator.Dividend(in)
	if err != nil {
		return nil, err
	}
	return NewDividendView(result), nil
}

func computeCompound(values url.Values) (View, error) {
	in, err := BindCompound(values)
	if err != nil {
		return nil, err
	}
	result, err := calculator.Compound(in)
	if err != nil {
		return nil, err
	}
	return NewCompoundView(result), nil
}

func computeStock(values url.Values) (View, error) {
	in, err := BindStock(values)
	if err != nil {
		return nil, err
	}
	result, err := calculator.StockReturn(in)
	if err != nil {
		return nil, err
	}
	return NewStockView(result), nil
}

func computeLoan(values url.Values) (View, error) {
	in, err := BindLoan(values)
	if err != nil {
		return nil, err
	}
	result, err := calculator.Loan(in)
	if err != nil {
		return nil, err
	}
	return NewLoanView(result), nil
}

func computeSalary(values url.Values) (View, error) {
	in, err := BindSalary(values)
	if err != nil {
		return nil, err
	}
	result, err := calculator.NetSalary(in)
	if err != nil {
		return nil, err
	}
	return NewSalaryView(result), nil
}
