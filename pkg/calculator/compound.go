package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// CompoundMode selects which compound calculator runs.
type CompoundMode int

const (
	// ModeBasic compounds a lump sum for a number of periods.
	ModeBasic CompoundMode = iota
	// ModeInstallment adds a monthly contribution to a starting amount.
	ModeInstallment
)

// ParseCompoundMode maps the form value onto a CompoundMode. Anything other
// than "installment" is treated as basic.
func ParseCompoundMode(s string) CompoundMode {
	if strings.TrimSpace(s) == "installment" {
		return ModeInstallment
	}
	return ModeBasic
}

func (m CompoundMode) String() string {
	if m == ModeInstallment {
		return "installment"
	}
	return "basic"
}

// PeriodUnit is the unit an installment period is entered in.
type PeriodUnit int

const (
	PeriodYears PeriodUnit = iota
	PeriodMonths
)

// ParsePeriodUnit maps "years" and "months"; anything but "years" counts as months.
func ParsePeriodUnit(s string) PeriodUnit {
	if strings.TrimSpace(s) == "years" {
		return PeriodYears
	}
	return PeriodMonths
}

// RateUnit tells whether a rate is quoted per year or per month.
type RateUnit int

const (
	RatePerYear RateUnit = iota
	RatePerMonth
)

// ParseRateUnit maps "year" and "month"; anything but "year" counts as monthly.
func ParseRateUnit(s string) RateUnit {
	if strings.TrimSpace(s) == "year" {
		return RatePerYear
	}
	return RatePerMonth
}

// Compounding selects how often installment interest is credited.
type Compounding int

const (
	CompoundAnnually Compounding = iota
	CompoundMonthly
)

// ParseCompounding maps "monthly"; anything else compounds annually.
func ParseCompounding(s string) Compounding {
	if strings.TrimSpace(s) == "monthly" {
		return CompoundMonthly
	}
	return CompoundAnnually
}

// BasicCompoundInput compounds Principal at RatePct for Periods periods.
type BasicCompoundInput struct {
	Principal float64
	Periods   int
	RatePct   float64
}

// InstallmentInput describes a savings plan with a monthly contribution.
type InstallmentInput struct {
	StartAmount         float64
	MonthlyContribution float64
	PeriodValue         int
	PeriodUnit          PeriodUnit
	RatePct             float64
	RateUnit            RateUnit
	Compounding         Compounding
}

// TotalMonths converts the entered period into months.
func (in InstallmentInput) TotalMonths() int {
	if in.PeriodUnit == PeriodYears {
		return in.PeriodValue * constants.MonthsPerYear
	}
	return in.PeriodValue
}

// CompoundInput is the tagged input of the compound calculator; only the
// member selected by Mode is read.
type CompoundInput struct {
	Mode        CompoundMode
	Basic       BasicCompoundInput
	Installment InstallmentInput
}

// CompoundRow is one period of the growth table.
type CompoundRow struct {
	Index         int
	Profit        float64
	Total         float64
	ReturnRatePct float64
}

// CompoundResult holds the growth table and totals.
type CompoundResult struct {
	Mode             CompoundMode
	TotalContributed float64
	TotalProfit      float64
	FinalAmount      float64
	Rows             []CompoundRow
}

// Compound runs the basic or installment compound calculation.
func Compound(in CompoundInput) (CompoundResult, error) {
	switch in.Mode {
	case ModeInstallment:
		return compoundInstallment(in.Installment)
	case ModeBasic:
		return compoundBasic(in.Basic)
	default:
		return CompoundResult{}, invalid("mode", fmt.Sprintf("unknown mode %d", in.Mode))
	}
}

func compoundBasic(in BasicCompoundInput) (CompoundResult, error) {
	if err := requireFinite([]namedValue{
		{"basic_principal", in.Principal},
		{"basic_rate", in.RatePct},
	}); err != nil {
		return CompoundResult{}, err
	}
	if in.Principal < 0 {
		return CompoundResult{}, invalid("basic_principal", "must not be negative")
	}
	if in.Periods <= 0 || in.Periods > constants.MaxCompoundPeriods {
		return CompoundResult{}, invalid("basic_period", fmt.Sprintf("must be between 1 and %d", constants.MaxCompoundPeriods))
	}
	if in.RatePct < 0 {
		return CompoundResult{}, invalid("basic_rate", "must not be negative")
	}

	rate := in.RatePct / constants.PercentageMultiplier
	finalAmount := in.Principal * math.Pow(1.0+rate, float64(in.Periods))

	rows := make([]CompoundRow, 0, in.Periods)
	balance := in.Principal
	for i := 1; i <= in.Periods; i++ {
		profit := balance * rate
		balance += profit
		rows = append(rows, CompoundRow{
			Index:         i,
			Profit:        profit,
			Total:         balance,
			ReturnRatePct: mathutil.GrowthPercentage(balance, in.Principal),
		})
	}

	return CompoundResult{
		Mode:             ModeBasic,
		TotalContributed: in.Principal,
		TotalProfit:      finalAmount - in.Principal,
		FinalAmount:      finalAmount,
		Rows:             rows,
	}, nil
}

func compoundInstallment(in InstallmentInput) (CompoundResult, error) {
	if err := requireFinite([]namedValue{
		{"inst_start_amount", in.StartAmount},
		{"inst_monthly_contribution", in.MonthlyContribution},
		{"inst_rate_value", in.RatePct},
	}); err != nil {
		return CompoundResult{}, err
	}
	if in.PeriodValue <= 0 || in.PeriodValue > constants.MaxCompoundPeriods {
		return CompoundResult{}, invalid("inst_period_value", fmt.Sprintf("must be between 1 and %d", constants.MaxCompoundPeriods))
	}
	if in.StartAmount < 0 || in.MonthlyContribution < 0 {
		return CompoundResult{}, invalid("inst_start_amount", "amounts must not be negative")
	}
	if in.RatePct < 0 {
		return CompoundResult{}, invalid("inst_rate_value", "must not be negative")
	}
	totalMonths := in.TotalMonths()
	if totalMonths <= 0 || totalMonths > constants.MaxCompoundPeriods {
		return CompoundResult{}, invalid("inst_period_value", fmt.Sprintf("must span 1 to %d months", constants.MaxCompoundPeriods))
	}

	rate := in.RatePct / constants.PercentageMultiplier
	rows := make([]CompoundRow, 0, totalMonths)
	balance := in.StartAmount
	contributed := in.StartAmount

	switch in.Compounding {
	case CompoundMonthly:
		monthlyRate := rate
		if in.RateUnit == RatePerYear {
			monthlyRate = math.Pow(1.0+rate, 1.0/constants.MonthsPerYear) - 1.0
		}
		for month := 1; month <= totalMonths; month++ {
			if month >= 2 {
				balance += in.MonthlyContribution
				contributed += in.MonthlyContribution
			}
			gain := balance * monthlyRate
			balance += gain
			rows = append(rows, CompoundRow{
				Index:         month,
				Profit:        gain,
				Total:         balance,
				ReturnRatePct: mathutil.GrowthPercentage(balance, contributed),
			})
		}
	default:
		annualRate := rate
		if in.RateUnit == RatePerMonth {
			annualRate = math.Pow(1.0+rate, constants.MonthsPerYear) - 1.0
		}
		for month := 1; month <= totalMonths; month++ {
			if month >= 2 {
				balance += in.MonthlyContribution
				contributed += in.MonthlyContribution
			}
			gain := 0.0
			if month%constants.MonthsPerYear == 0 {
				gain = balance * annualRate
				balance += gain
			}
			rows = append(rows, CompoundRow{
				Index:         month,
				Profit:        gain,
				Total:         balance,
				ReturnRatePct: mathutil.GrowthPercentage(balance, contributed),
			})
		}
	}

	totalContributed := in.StartAmount + in.MonthlyContribution*float64(totalMonths-1)
	return CompoundResult{
		Mode:             ModeInstallment,
		TotalContributed: totalContributed,
		TotalProfit:      balance - totalContributed,
		FinalAmount:      balance,
		Rows:             rows,
	}, nil
}
