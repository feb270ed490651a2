// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// Payment holds the values for a given monthly payment.
type Payment struct {
	Month              int
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// MonthlyRate converts an annual percentage rate into a monthly decimal rate.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateMonthlyPayment calculates the level monthly payment of an equal
// principal & interest loan using the standard annuity formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	periodicInterestRate := MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return principal * (periodicInterestRate * power) / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * MonthlyRate(annualInterestRate)
}

// EqualPrincipalInterestSchedule generates the amortization schedule of a
// loan repaid with a fixed total payment every month.
func EqualPrincipalInterestSchedule(principal, annualInterestRate float64, termMonths int) []Payment {
	if termMonths <= 0 {
		return nil
	}

	monthlyPayment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)
	schedule := make([]Payment, 0, termMonths)
	remaining := principal
	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Month = month
		current.Payment = monthlyPayment
		current.Interest = CalculateInterestPayment(remaining, annualInterestRate)
		current.Principal = monthlyPayment - current.Interest
		if month == termMonths {
			// We will get machine error otherwise so just set to 0.
			current.RemainingPrincipal = 0.00
		} else {
			current.RemainingPrincipal = remaining - current.Principal
		}
		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
	}
	return schedule
}

// EqualPrincipalSchedule generates the amortization schedule of a loan repaid
// with a fixed principal amount every month; interest accrues on the
// declining balance.
func EqualPrincipalSchedule(principal, annualInterestRate float64, termMonths int) []Payment {
	if termMonths <= 0 {
		return nil
	}

	principalPayment := principal / float64(termMonths)
	schedule := make([]Payment, 0, termMonths)
	remaining := principal
	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Month = month
		current.Interest = CalculateInterestPayment(remaining, annualInterestRate)
		current.Principal = principalPayment
		current.Payment = principalPayment + current.Interest
		remaining -= principalPayment
		if month == termMonths {
			remaining = 0.00
		}
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)
	}
	return schedule
}

// TotalInterest sums the interest portion of every payment in a schedule.
func TotalInterest(schedule []Payment) float64 {
	total := 0.00
	for _, payment := range schedule {
		total += payment.Interest
	}
	return total
}
