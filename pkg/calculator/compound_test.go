package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCompoundBasic(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		periods   int
		ratePct   float64
	}{
		{"Ten years at five percent", 1000000, 10, 5},
		{"Single period", 500, 1, 12.5},
		{"Zero rate", 1000, 24, 0},
		{"Zero principal", 0, 5, 7},
		{"Long horizon", 12345.67, 360, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compound(CompoundInput{
				Mode:  ModeBasic,
				Basic: BasicCompoundInput{Principal: tt.principal, Periods: tt.periods, RatePct: tt.ratePct},
			})
			if err != nil {
				t.Fatalf("Compound() error = %v", err)
			}

			expected := tt.principal * math.Pow(1+tt.ratePct/100, float64(tt.periods))
			if math.Abs(result.FinalAmount-expected) > 1e-6*math.Max(1, expected) {
				t.Errorf("final amount = %.6f, expected %.6f", result.FinalAmount, expected)
			}
			if len(result.Rows) != tt.periods {
				t.Fatalf("expected %d rows, got %d", tt.periods, len(result.Rows))
			}
			last := result.Rows[len(result.Rows)-1]
			if last.Index != tt.periods {
				t.Errorf("last row index = %d, expected %d", last.Index, tt.periods)
			}
			if math.Abs(last.Total-result.FinalAmount) > 1e-6*math.Max(1, expected) {
				t.Errorf("last row total = %.6f, expected final amount %.6f", last.Total, result.FinalAmount)
			}
			if math.Abs(result.TotalProfit-(result.FinalAmount-tt.principal)) > 1e-9 {
				t.Errorf("total profit = %.6f, expected %.6f", result.TotalProfit, result.FinalAmount-tt.principal)
			}
		})
	}
}

func TestCompoundBasicCumulativeReturn(t *testing.T) {
	result, err := Compound(CompoundInput{
		Mode:  ModeBasic,
		Basic: BasicCompoundInput{Principal: 1000000, Periods: 2, RatePct: 10},
	})
	if err != nil {
		t.Fatalf("Compound() error = %v", err)
	}

	if math.Abs(result.Rows[0].Profit-100000) > 1e-6 || math.Abs(result.Rows[0].ReturnRatePct-10) > 1e-9 {
		t.Errorf("unexpected first row %+v", result.Rows[0])
	}
	if math.Abs(result.Rows[1].Profit-110000) > 1e-6 || math.Abs(result.Rows[1].ReturnRatePct-21) > 1e-9 {
		t.Errorf("unexpected second row %+v", result.Rows[1])
	}
}

func TestCompoundBasicValidation(t *testing.T) {
	tests := []struct {
		name  string
		input BasicCompoundInput
	}{
		{"Negative principal", BasicCompoundInput{Principal: -1, Periods: 1, RatePct: 1}},
		{"Zero periods", BasicCompoundInput{Principal: 1, Periods: 0, RatePct: 1}},
		{"Too many periods", BasicCompoundInput{Principal: 1, Periods: 1201, RatePct: 1}},
		{"Negative rate", BasicCompoundInput{Principal: 1, Periods: 1, RatePct: -1}},
		{"NaN principal", BasicCompoundInput{Principal: math.NaN(), Periods: 1, RatePct: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compound(CompoundInput{Mode: ModeBasic, Basic: tt.input})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if result.Rows != nil {
				t.Errorf("expected no rows on error, got %d", len(result.Rows))
			}
		})
	}
}

func TestCompoundInstallment(t *testing.T) {
	tests := []struct {
		name             string
		input            InstallmentInput
		finalAmount      float64
		totalContributed float64
		rows             int
		lastReturnPct    float64
	}{
		{
			name: "Annual compounding, yearly rate",
			input: InstallmentInput{
				StartAmount: 1000000, MonthlyContribution: 100000,
				PeriodValue: 2, PeriodUnit: PeriodYears,
				RatePct: 5, RateUnit: RatePerYear, Compounding: CompoundAnnually,
			},
			finalAmount:      3575250,
			totalContributed: 3300000,
			rows:             24,
			lastReturnPct:    8.340909,
		},
		{
			name: "Monthly compounding, yearly rate",
			input: InstallmentInput{
				StartAmount: 1000000, MonthlyContribution: 100000,
				PeriodValue: 2, PeriodUnit: PeriodYears,
				RatePct: 5, RateUnit: RatePerYear, Compounding: CompoundMonthly,
			},
			finalAmount:      3518378.39,
			totalContributed: 3300000,
			rows:             24,
			lastReturnPct:    6.617527,
		},
		{
			name: "Monthly compounding, monthly rate, months",
			input: InstallmentInput{
				StartAmount: 0, MonthlyContribution: 100000,
				PeriodValue: 12, PeriodUnit: PeriodMonths,
				RatePct: 1, RateUnit: RatePerMonth, Compounding: CompoundMonthly,
			},
			finalAmount:      1168250.30,
			totalContributed: 1100000,
			rows:             12,
			lastReturnPct:    6.204573,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compound(CompoundInput{Mode: ModeInstallment, Installment: tt.input})
			if err != nil {
				t.Fatalf("Compound() error = %v", err)
			}
			if result.Mode != ModeInstallment {
				t.Errorf("mode = %v, expected installment", result.Mode)
			}
			if math.Abs(result.FinalAmount-tt.finalAmount) > 0.01 {
				t.Errorf("final amount = %.2f, expected %.2f", result.FinalAmount, tt.finalAmount)
			}
			if math.Abs(result.TotalContributed-tt.totalContributed) > 1e-6 {
				t.Errorf("total contributed = %.2f, expected %.2f", result.TotalContributed, tt.totalContributed)
			}
			if math.Abs(result.TotalProfit-(tt.finalAmount-tt.totalContributed)) > 0.01 {
				t.Errorf("total profit = %.2f, expected %.2f", result.TotalProfit, tt.finalAmount-tt.totalContributed)
			}
			if len(result.Rows) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(result.Rows))
			}
			if last := result.Rows[len(result.Rows)-1]; math.Abs(last.ReturnRatePct-tt.lastReturnPct) > 1e-4 {
				t.Errorf("last return = %.6f, expected %.6f", last.ReturnRatePct, tt.lastReturnPct)
			}
		})
	}
}

func TestCompoundInstallmentAnnualCreditsOnlyEveryTwelfthMonth(t *testing.T) {
	result, err := Compound(CompoundInput{
		Mode: ModeInstallment,
		Installment: InstallmentInput{
			StartAmount: 1000000, MonthlyContribution: 100000,
			PeriodValue: 2, PeriodUnit: PeriodYears,
			RatePct: 5, RateUnit: RatePerYear, Compounding: CompoundAnnually,
		},
	})
	if err != nil {
		t.Fatalf("Compound() error = %v", err)
	}

	for _, row := range result.Rows {
		credited := row.Profit != 0
		if credited != (row.Index%12 == 0) {
			t.Errorf("month %d: profit %.2f credited out of schedule", row.Index, row.Profit)
		}
	}
	if math.Abs(result.Rows[11].Profit-105000) > 1e-6 {
		t.Errorf("month 12 profit = %.2f, expected 105000", result.Rows[11].Profit)
	}
}

func TestCompoundInstallmentWithoutContributionMatchesBasic(t *testing.T) {
	for _, compounding := range []Compounding{CompoundMonthly, CompoundAnnually} {
		var periods int
		var input InstallmentInput
		if compounding == CompoundMonthly {
			periods = 36
			input = InstallmentInput{
				StartAmount: 2500000, PeriodValue: 36, PeriodUnit: PeriodMonths,
				RatePct: 0.5, RateUnit: RatePerMonth, Compounding: CompoundMonthly,
			}
		} else {
			periods = 3
			input = InstallmentInput{
				StartAmount: 2500000, PeriodValue: 3, PeriodUnit: PeriodYears,
				RatePct: 6, RateUnit: RatePerYear, Compounding: CompoundAnnually,
			}
		}

		installment, err := Compound(CompoundInput{Mode: ModeInstallment, Installment: input})
		if err != nil {
			t.Fatalf("installment error = %v", err)
		}
		basic, err := Compound(CompoundInput{
			Mode:  ModeBasic,
			Basic: BasicCompoundInput{Principal: input.StartAmount, Periods: periods, RatePct: input.RatePct},
		})
		if err != nil {
			t.Fatalf("basic error = %v", err)
		}

		if math.Abs(installment.FinalAmount-basic.FinalAmount) > 1e-6 {
			t.Errorf("compounding %v: installment %.6f != basic %.6f", compounding, installment.FinalAmount, basic.FinalAmount)
		}
		if installment.TotalContributed != input.StartAmount {
			t.Errorf("compounding %v: contributed %.2f, expected %.2f", compounding, installment.TotalContributed, input.StartAmount)
		}
	}
}

func TestCompoundInstallmentValidation(t *testing.T) {
	valid := InstallmentInput{
		StartAmount: 1000, MonthlyContribution: 100,
		PeriodValue: 1, PeriodUnit: PeriodYears,
		RatePct: 3, RateUnit: RatePerYear, Compounding: CompoundAnnually,
	}

	tests := []struct {
		name   string
		mutate func(*InstallmentInput)
	}{
		{"Zero period", func(in *InstallmentInput) { in.PeriodValue = 0 }},
		{"Negative start", func(in *InstallmentInput) { in.StartAmount = -1 }},
		{"Negative contribution", func(in *InstallmentInput) { in.MonthlyContribution = -1 }},
		{"Negative rate", func(in *InstallmentInput) { in.RatePct = -0.1 }},
		{"Too many years", func(in *InstallmentInput) { in.PeriodValue = 101 }},
		{"Year count overflows months", func(in *InstallmentInput) { in.PeriodValue = 1537228672809129302 }},
		{"Too many months", func(in *InstallmentInput) {
			in.PeriodUnit = PeriodMonths
			in.PeriodValue = 1201
		}},
		{"Infinite contribution", func(in *InstallmentInput) { in.MonthlyContribution = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			if _, err := Compound(CompoundInput{Mode: ModeInstallment, Installment: input}); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestParseCompoundEnums(t *testing.T) {
	if ParseCompoundMode("installment") != ModeInstallment || ParseCompoundMode("other") != ModeBasic {
		t.Error("ParseCompoundMode mapped values incorrectly")
	}
	if ParsePeriodUnit("years") != PeriodYears || ParsePeriodUnit("months") != PeriodMonths {
		t.Error("ParsePeriodUnit mapped values incorrectly")
	}
	if ParseRateUnit("year") != RatePerYear || ParseRateUnit("month") != RatePerMonth {
		t.Error("ParseRateUnit mapped values incorrectly")
	}
	if ParseCompounding("monthly") != CompoundMonthly || ParseCompounding("annual") != CompoundAnnually {
		t.Error("ParseCompounding mapped values incorrectly")
	}
}
