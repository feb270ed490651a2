package calculator

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// SalaryInput holds the net salary form values. Amounts are in 만원;
// allowances and the pension contribution are monthly, salary and bonus yearly.
type SalaryInput struct {
	AnnualSalary   float64
	Dependents     int
	NonTaxable     float64
	MealAllowance  float64
	NightAllowance float64
	Bonus          float64
	PensionContrib float64
}

// SalaryResult holds the yearly payroll breakdown in won.
type SalaryResult struct {
	AnnualSalary        float64
	Bonus               float64
	NightAllowance      float64
	MealTaxFree         float64
	MealTaxable         float64
	OtherNonTaxable     float64
	PensionContrib      float64
	TaxableCash         float64
	GrossCash           float64
	NationalPension     float64
	HealthInsurance     float64
	LongTermCare        float64
	EmploymentInsurance float64
	TaxableIncome       float64
	IncomeTax           float64
	LocalIncomeTax      float64
	TotalDeductions     float64
	NetSalary           float64
	MonthlyNet          float64
}

type taxBracket struct {
	upper float64 // inclusive; 0 means unbounded
	rate  float64
}

// incomeTaxBrackets is the 2025 progressive schedule on annual taxable income.
var incomeTaxBrackets = []taxBracket{
	{upper: 12000000, rate: 0.06},
	{upper: 46000000, rate: 0.15},
	{upper: 88000000, rate: 0.24},
	{upper: 150000000, rate: 0.35},
	{upper: 0, rate: 0.38},
}

// ProgressiveIncomeTax applies the bracket schedule to annual taxable income.
// Non-positive income owes nothing.
func ProgressiveIncomeTax(taxableIncome float64) float64 {
	if taxableIncome <= 0 {
		return 0
	}

	tax := 0.0
	lower := 0.0
	for _, bracket := range incomeTaxBrackets {
		if bracket.upper == 0 || taxableIncome <= bracket.upper {
			return tax + (taxableIncome-lower)*bracket.rate
		}
		tax += (bracket.upper - lower) * bracket.rate
		lower = bracket.upper
	}
	return tax
}

// NetSalary estimates take-home pay after social insurance, income tax and
// local income tax.
func NetSalary(in SalaryInput) (SalaryResult, error) {
	if err := requireFinite([]namedValue{
		{"annual_salary", in.AnnualSalary},
		{"non_taxable", in.NonTaxable},
		{"meal_allowance", in.MealAllowance},
		{"night_allowance", in.NightAllowance},
		{"bonus_annual", in.Bonus},
		{"pension_contrib", in.PensionContrib},
	}); err != nil {
		return SalaryResult{}, err
	}
	switch {
	case in.AnnualSalary < 0:
		return SalaryResult{}, invalid("annual_salary", "must not be negative")
	case in.Dependents < 0:
		return SalaryResult{}, invalid("dependents", "must not be negative")
	case in.NonTaxable < 0, in.MealAllowance < 0, in.NightAllowance < 0:
		return SalaryResult{}, invalid("allowance", "must not be negative")
	case in.Bonus < 0:
		return SalaryResult{}, invalid("bonus_annual", "must not be negative")
	case in.PensionContrib < 0:
		return SalaryResult{}, invalid("pension_contrib", "must not be negative")
	}

	annualSalary := in.AnnualSalary * constants.ManwonUnit
	bonusAnnual := in.Bonus * constants.ManwonUnit
	nonTaxableMonthly := in.NonTaxable * constants.ManwonUnit
	mealMonthly := in.MealAllowance * constants.ManwonUnit
	nightMonthly := in.NightAllowance * constants.ManwonUnit
	pensionContribMonthly := in.PensionContrib * constants.ManwonUnit

	mealTaxFreeMonthly := mathutil.Min(mealMonthly, constants.MealTaxFreeCapMonthly)
	mealTaxableMonthly := mathutil.Max(mealMonthly-constants.MealTaxFreeCapMonthly, 0)

	nightAnnual := nightMonthly * constants.MonthsPerYear
	mealTaxFreeAnnual := mealTaxFreeMonthly * constants.MonthsPerYear
	mealTaxableAnnual := mealTaxableMonthly * constants.MonthsPerYear
	otherNonTaxAnnual := nonTaxableMonthly * constants.MonthsPerYear
	pensionContribAnnual := pensionContribMonthly * constants.MonthsPerYear

	taxableCash := annualSalary + bonusAnnual + nightAnnual + mealTaxableAnnual
	grossCash := taxableCash + mealTaxFreeAnnual + otherNonTaxAnnual

	monthlyTaxable := taxableCash / constants.MonthsPerYear

	pensionMonthly := mathutil.Min(monthlyTaxable*constants.NationalPensionRate, constants.NationalPensionCapMonthly)
	healthMonthly := monthlyTaxable * constants.HealthInsuranceRate
	longTermCareMonthly := healthMonthly * constants.LongTermCareRate
	employmentMonthly := monthlyTaxable * constants.EmploymentInsuranceRate

	nationalPension := pensionMonthly * constants.MonthsPerYear
	healthInsurance := healthMonthly * constants.MonthsPerYear
	longTermCare := longTermCareMonthly * constants.MonthsPerYear
	employmentInsurance := employmentMonthly * constants.MonthsPerYear
	insurance := nationalPension + healthInsurance + longTermCare + employmentInsurance

	taxableIncome := taxableCash - insurance -
		float64(in.Dependents)*constants.DependentDeduction -
		otherNonTaxAnnual - mealTaxFreeAnnual - pensionContribAnnual

	incomeTax := ProgressiveIncomeTax(taxableIncome)
	localIncomeTax := incomeTax * constants.LocalIncomeTaxRate
	totalDeductions := insurance + incomeTax + localIncomeTax + pensionContribAnnual
	netSalary := grossCash - totalDeductions

	return SalaryResult{
		AnnualSalary:        annualSalary,
		Bonus:               bonusAnnual,
		NightAllowance:      nightAnnual,
		MealTaxFree:         mealTaxFreeAnnual,
		MealTaxable:         mealTaxableAnnual,
		OtherNonTaxable:     otherNonTaxAnnual,
		PensionContrib:      pensionContribAnnual,
		TaxableCash:         taxableCash,
		GrossCash:           grossCash,
		NationalPension:     nationalPension,
		HealthInsurance:     healthInsurance,
		LongTermCare:        longTermCare,
		EmploymentInsurance: employmentInsurance,
		TaxableIncome:       taxableIncome,
		IncomeTax:           incomeTax,
		LocalIncomeTax:      localIncomeTax,
		TotalDeductions:     totalDeductions,
		NetSalary:           netSalary,
		MonthlyNet:          netSalary / constants.MonthsPerYear,
	}, nil
}
