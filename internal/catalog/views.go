package catalog

import (
	"github.com/iwvelando/finance-calculators/pkg/calculator"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/loans"
)

// Field is one labelled line of a result.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// View is a calculator result made of display strings only.
type View interface {
	// Summary lists the headline values in display order.
	Summary() []Field
}

// Table is implemented by views that also carry per-period rows.
type Table interface {
	View
	Header() []string
	Records() [][]string
}

// DividendView is the formatted dividend result.
type DividendView struct {
	InvestmentAmount string `json:"investment_amount"`
	DividendYield    string `json:"dividend_yield"`
	AnnualDividend   string `json:"annual_dividend"`
	TaxAmount        string `json:"tax_amount"`
	NetDividend      string `json:"net_dividend"`
	MonthlyDividend  string `json:"monthly_dividend"`
}

// NewDividendView formats a dividend result.
func NewDividendView(r calculator.DividendResult) DividendView {
	return DividendView{
		InvestmentAmount: format.Won(r.InvestmentAmount),
		DividendYield:    format.Echo(r.DividendYieldPct) + "%",
		AnnualDividend:   format.Won(r.AnnualDividend),
		TaxAmount:        format.Won(r.TaxAmount),
		NetDividend:      format.Won(r.NetDividend),
		MonthlyDividend:  format.Won(r.MonthlyDividend),
	}
}

func (v DividendView) Summary() []Field {
	return []Field{
		{"investment_amount", "투자금액", v.InvestmentAmount},
		{"dividend_yield", "배당수익률", v.DividendYield},
		{"annual_dividend", "연간 배당금(세전)", v.AnnualDividend},
		{"tax_amount", "배당소득세(15.4%)", v.TaxAmount},
		{"net_dividend", "연간 배당금(세후)", v.NetDividend},
		{"monthly_dividend", "월 배당금(세후)", v.MonthlyDividend},
	}
}

// CompoundRowView is one formatted row of the growth table.
type CompoundRowView struct {
	Index      int    `json:"idx"`
	Profit     string `json:"profit"`
	Total      string `json:"total"`
	ReturnRate string `json:"return_rate"`
}

// CompoundView is the formatted compound interest result.
type CompoundView struct {
	Mode             string            `json:"mode"`
	TotalContributed string            `json:"total_contributed"`
	TotalProfit      string            `json:"total_profit"`
	FinalAmount      string            `json:"final_amount"`
	Rows             []CompoundRowView `json:"rows"`
}

// NewCompoundView formats a compound result.
func NewCompoundView(r calculator.CompoundResult) CompoundView {
	rows := make([]CompoundRowView, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, CompoundRowView{
			Index:      row.Index,
			Profit:     format.Won(row.Profit),
			Total:      format.Won(row.Total),
			ReturnRate: format.PercentSign(row.ReturnRatePct),
		})
	}
	return CompoundView{
		Mode:             r.Mode.String(),
		TotalContributed: format.Won(r.TotalContributed),
		TotalProfit:      format.Won(r.TotalProfit),
		FinalAmount:      format.Won(r.FinalAmount),
		Rows:             rows,
	}
}

func (v CompoundView) Summary() []Field {
	return []Field{
		{"total_contributed", "총 투자원금", v.TotalContributed},
		{"total_profit", "총 수익", v.TotalProfit},
		{"final_amount", "최종 금액", v.FinalAmount},
	}
}

func (v CompoundView) Header() []string {
	if v.Mode == calculator.ModeInstallment.String() {
		return []string{"개월", "수익", "잔액", "수익률"}
	}
	return []string{"회차", "수익", "잔액", "누적 수익률"}
}

func (v CompoundView) Records() [][]string {
	records := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		records = append(records, []string{format.Integer(int64(row.Index)), row.Profit, row.Total, row.ReturnRate})
	}
	return records
}

// StockView is the formatted stock return result.
type StockView struct {
	BuyPrice   string `json:"buy_price"`
	SellPrice  string `json:"sell_price"`
	Quantity   string `json:"quantity"`
	TotalBuy   string `json:"total_buy"`
	TotalSell  string `json:"total_sell"`
	FeeTotal   string `json:"fee_total"`
	TaxAmount  string `json:"tax_amount"`
	ProfitLoss string `json:"profit_loss"`
	ReturnRate string `json:"return_rate"`
}

// NewStockView formats a stock return result.
func NewStockView(r calculator.StockResult) StockView {
	return StockView{
		BuyPrice:   format.Number(r.BuyPrice),
		SellPrice:  format.Number(r.SellPrice),
		Quantity:   format.Integer(int64(r.Quantity)),
		TotalBuy:   format.Number(r.TotalBuy),
		TotalSell:  format.Number(r.TotalSell),
		FeeTotal:   format.Number(r.FeeTotal),
		TaxAmount:  format.Number(r.TaxAmount),
		ProfitLoss: format.Number(r.ProfitLoss),
		ReturnRate: format.Percent(r.ReturnRatePct),
	}
}

func (v StockView) Summary() []Field {
	return []Field{
		{"buy_price", "매수가", v.BuyPrice},
		{"sell_price", "매도가", v.SellPrice},
		{"quantity", "수량", v.Quantity},
		{"total_buy", "총 매수금액", v.TotalBuy},
		{"total_sell", "총 매도금액", v.TotalSell},
		{"fee_total", "수수료 합계", v.FeeTotal},
		{"tax_amount", "거래세", v.TaxAmount},
		{"profit_loss", "실현 손익", v.ProfitLoss},
		{"return_rate", "수익률(%)", v.ReturnRate},
	}
}

// LoanPaymentView is one formatted month of the amortization schedule.
type LoanPaymentView struct {
	Month     int    `json:"month"`
	Payment   string `json:"payment"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Remaining string `json:"remaining"`
}

// LoanView is the formatted loan result.
type LoanView struct {
	RepaymentType  string            `json:"repayment_type"`
	InterestRate   string            `json:"interest_rate"`
	TotalMonths    int               `json:"total_months"`
	MonthlyPayment string            `json:"monthly_payment"`
	TotalPayment   string            `json:"total_payment"`
	TotalInterest  string            `json:"total_interest"`
	Schedule       []LoanPaymentView `json:"schedule"`
}

// NewLoanView formats a loan result.
func NewLoanView(r calculator.LoanResult) LoanView {
	return LoanView{
		RepaymentType:  r.RepaymentType.String(),
		InterestRate:   format.Echo(r.InterestRatePct),
		TotalMonths:    r.TotalMonths,
		MonthlyPayment: format.Number(r.MonthlyPayment),
		TotalPayment:   format.Number(r.TotalPayment),
		TotalInterest:  format.Number(r.TotalInterest),
		Schedule:       newLoanPaymentViews(r.Schedule),
	}
}

func newLoanPaymentViews(schedule []loans.Payment) []LoanPaymentView {
	views := make([]LoanPaymentView, 0, len(schedule))
	for _, p := range schedule {
		views = append(views, LoanPaymentView{
			Month:     p.Month,
			Payment:   format.Number(p.Payment),
			Principal: format.Number(p.Principal),
			Interest:  format.Number(p.Interest),
			Remaining: format.Number(p.RemainingPrincipal),
		})
	}
	return views
}

func (v LoanView) Summary() []Field {
	monthlyLabel := "월 상환액"
	if v.RepaymentType == calculator.EqualPrincipal.String() {
		monthlyLabel = "평균 월 상환액"
	}
	return []Field{
		{"interest_rate", "연 이자율(%)", v.InterestRate},
		{"monthly_payment", monthlyLabel, v.MonthlyPayment},
		{"total_payment", "총 상환액", v.TotalPayment},
		{"total_interest", "총 이자", v.TotalInterest},
	}
}

func (v LoanView) Header() []string {
	return []string{"회차", "상환액", "원금", "이자", "잔액"}
}

func (v LoanView) Records() [][]string {
	records := make([][]string, 0, len(v.Schedule))
	for _, p := range v.Schedule {
		records = append(records, []string{format.Integer(int64(p.Month)), p.Payment, p.Principal, p.Interest, p.Remaining})
	}
	return records
}

// SalaryView is the formatted net salary result.
type SalaryView struct {
	AnnualSalary        string `json:"annual_salary"`
	BonusAnnual         string `json:"bonus_annual"`
	NightAllowance      string `json:"night_allowance"`
	MealTaxFree         string `json:"meal_tax_free"`
	MealTaxable         string `json:"meal_taxable"`
	OtherNonTax         string `json:"other_non_tax"`
	PensionContrib      string `json:"pension_contrib"`
	TaxableCash         string `json:"taxable_cash"`
	GrossCash           string `json:"gross_cash"`
	NationalPension     string `json:"national_pension"`
	HealthInsurance     string `json:"health_insurance"`
	LongTermCare        string `json:"long_term_care"`
	EmploymentInsurance string `json:"employment_insurance"`
	IncomeTax           string `json:"income_tax"`
	LocalIncomeTax      string `json:"local_income_tax"`
	TotalDeductions     string `json:"total_deductions"`
	NetSalary           string `json:"net_salary"`
	MonthlyNet          string `json:"monthly_net"`
}

// NewSalaryView formats a net salary result.
func NewSalaryView(r calculator.SalaryResult) SalaryView {
	return SalaryView{
		AnnualSalary:        format.Manwon(r.AnnualSalary),
		BonusAnnual:         format.Manwon(r.Bonus),
		NightAllowance:      format.Number(r.NightAllowance),
		MealTaxFree:         format.Number(r.MealTaxFree),
		MealTaxable:         format.Number(r.MealTaxable),
		OtherNonTax:         format.Number(r.OtherNonTaxable),
		PensionContrib:      format.Number(r.PensionContrib),
		TaxableCash:         format.Number(r.TaxableCash),
		GrossCash:           format.Number(r.GrossCash),
		NationalPension:     format.Number(r.NationalPension),
		HealthInsurance:     format.Number(r.HealthInsurance),
		LongTermCare:        format.Number(r.LongTermCare),
		EmploymentInsurance: format.Number(r.EmploymentInsurance),
		IncomeTax:           format.Number(r.IncomeTax),
		LocalIncomeTax:      format.Number(r.LocalIncomeTax),
		TotalDeductions:     format.Number(r.TotalDeductions),
		NetSalary:           format.Number(r.NetSalary),
		MonthlyNet:          format.Number(r.MonthlyNet),
	}
}

func (v SalaryView) Summary() []Field {
	return []Field{
		{"annual_salary", "기본 연봉", v.AnnualSalary},
		{"bonus_annual", "연간 보너스", v.BonusAnnual},
		{"night_allowance", "과세 수당(연)", v.NightAllowance},
		{"meal_tax_free", "식대 비과세(연)", v.MealTaxFree},
		{"meal_taxable", "식대 과세분(연)", v.MealTaxable},
		{"other_non_tax", "기타 비과세(연)", v.OtherNonTax},
		{"pension_contrib", "퇴직연금 본인부담(연)", v.PensionContrib},
		{"taxable_cash", "과세 대상 급여(연)", v.TaxableCash},
		{"gross_cash", "총 수령액(연)", v.GrossCash},
		{"national_pension", "국민연금", v.NationalPension},
		{"health_insurance", "건강보험", v.HealthInsurance},
		{"long_term_care", "장기요양보험", v.LongTermCare},
		{"employment_insurance", "고용보험", v.EmploymentInsurance},
		{"income_tax", "소득세", v.IncomeTax},
		{"local_income_tax", "지방소득세", v.LocalIncomeTax},
		{"total_deductions", "공제 합계", v.TotalDeductions},
		{"net_salary", "연 실수령액", v.NetSalary},
		{"monthly_net", "월 실수령액", v.MonthlyNet},
	}
}
