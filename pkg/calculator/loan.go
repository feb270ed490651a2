package calculator

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/loans"
)

// RepaymentType selects how a loan is paid back.
type RepaymentType int

const (
	// EqualPrincipalInterest pays the same total every month (원리금균등상환).
	EqualPrincipalInterest RepaymentType = iota
	// EqualPrincipal pays the same principal every month (원금균등상환).
	EqualPrincipal
)

// ParseRepaymentType maps the form value onto a RepaymentType. Anything that
// is not equal principal & interest repays equal principal.
func ParseRepaymentType(s string) RepaymentType {
	switch strings.TrimSpace(s) {
	case "equal_principal_interest", "equal_pi":
		return EqualPrincipalInterest
	default:
		return EqualPrincipal
	}
}

func (t RepaymentType) String() string {
	if t == EqualPrincipalInterest {
		return "equal_principal_interest"
	}
	return "equal_principal"
}

// LoanInput holds the loan calculator form values.
type LoanInput struct {
	LoanAmount      float64
	InterestRatePct float64
	TermYears       int
	RepaymentType   RepaymentType
}

// LoanResult holds the payment summary and the full schedule.
//
// For equal principal loans MonthlyPayment is the average payment,
// principal plus total interest spread evenly over the term; the actual
// payment of each month is in Schedule.
type LoanResult struct {
	RepaymentType   RepaymentType
	InterestRatePct float64
	TotalMonths     int
	MonthlyPayment  float64
	TotalPayment    float64
	TotalInterest   float64
	Schedule        []loans.Payment
}

// Loan computes the payments of a loan under the chosen repayment type.
func Loan(in LoanInput) (LoanResult, error) {
	if err := requireFinite([]namedValue{
		{"loan_amount", in.LoanAmount},
		{"interest_rate", in.InterestRatePct},
	}); err != nil {
		return LoanResult{}, err
	}
	if in.LoanAmount < 0 {
		return LoanResult{}, invalid("loan_amount", "must not be negative")
	}
	if in.InterestRatePct < 0 {
		return LoanResult{}, invalid("interest_rate", "must not be negative")
	}
	if in.TermYears <= 0 || in.TermYears > constants.MaxLoanTermYears {
		return LoanResult{}, invalid("loan_term", fmt.Sprintf("must be between 1 and %d years", constants.MaxLoanTermYears))
	}

	totalMonths := in.TermYears * constants.MonthsPerYear
	result := LoanResult{
		RepaymentType:   in.RepaymentType,
		InterestRatePct: in.InterestRatePct,
		TotalMonths:     totalMonths,
	}

	switch in.RepaymentType {
	case EqualPrincipalInterest:
		result.MonthlyPayment = loans.CalculateMonthlyPayment(in.LoanAmount, in.InterestRatePct, totalMonths)
		result.TotalPayment = result.MonthlyPayment * float64(totalMonths)
		result.TotalInterest = result.TotalPayment - in.LoanAmount
		result.Schedule = loans.EqualPrincipalInterestSchedule(in.LoanAmount, in.InterestRatePct, totalMonths)
	case EqualPrincipal:
		result.Schedule = loans.EqualPrincipalSchedule(in.LoanAmount, in.InterestRatePct, totalMonths)
		result.TotalInterest = loans.TotalInterest(result.Schedule)
		result.MonthlyPayment = in.LoanAmount/float64(totalMonths) + result.TotalInterest/float64(totalMonths)
		result.TotalPayment = in.LoanAmount + result.TotalInterest
	default:
		return LoanResult{}, invalid("repayment_type", fmt.Sprintf("unknown repayment type %d", in.RepaymentType))
	}

	return result, nil
}
