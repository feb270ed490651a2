package calculator

import (
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// StockInput describes one round-trip trade. Rates are in percent.
type StockInput struct {
	BuyPrice   float64
	SellPrice  float64
	Quantity   int
	FeeRatePct float64
	TaxRatePct float64
}

// StockResult breaks a trade down into both legs, costs, and the realized return.
type StockResult struct {
	BuyPrice      float64
	SellPrice     float64
	Quantity      int
	TotalBuy      float64
	TotalSell     float64
	BuyFee        float64
	SellFee       float64
	FeeTotal      float64
	TaxAmount     float64
	ProfitLoss    float64
	CostBasis     float64
	ReturnRatePct float64
}

// StockReturn computes the profit of buying and selling Quantity shares after
// brokerage fees on both legs and transaction tax on the sell leg.
func StockReturn(in StockInput) (StockResult, error) {
	if err := requireFinite([]namedValue{
		{"buy_price", in.BuyPrice},
		{"sell_price", in.SellPrice},
		{"fee_rate", in.FeeRatePct},
		{"tax_rate", in.TaxRatePct},
	}); err != nil {
		return StockResult{}, err
	}
	switch {
	case in.BuyPrice <= 0:
		return StockResult{}, invalid("buy_price", "must be positive")
	case in.SellPrice < 0:
		return StockResult{}, invalid("sell_price", "must not be negative")
	case in.Quantity <= 0:
		return StockResult{}, invalid("quantity", "must be positive")
	case in.FeeRatePct < 0:
		return StockResult{}, invalid("fee_rate", "must not be negative")
	case in.TaxRatePct < 0:
		return StockResult{}, invalid("tax_rate", "must not be negative")
	}

	quantity := float64(in.Quantity)
	totalBuy := in.BuyPrice * quantity
	totalSell := in.SellPrice * quantity
	buyFee := mathutil.ApplyPercentage(totalBuy, in.FeeRatePct)
	sellFee := mathutil.ApplyPercentage(totalSell, in.FeeRatePct)
	tax := mathutil.ApplyPercentage(totalSell, in.TaxRatePct)
	profit := totalSell - totalBuy - buyFee - sellFee - tax
	costBasis := totalBuy + buyFee

	return StockResult{
		BuyPrice:      in.BuyPrice,
		SellPrice:     in.SellPrice,
		Quantity:      in.Quantity,
		TotalBuy:      totalBuy,
		TotalSell:     totalSell,
		BuyFee:        buyFee,
		SellFee:       sellFee,
		FeeTotal:      buyFee + sellFee,
		TaxAmount:     tax,
		ProfitLoss:    profit,
		CostBasis:     costBasis,
		ReturnRatePct: mathutil.CalculatePercentage(profit, costBasis),
	}, nil
}
