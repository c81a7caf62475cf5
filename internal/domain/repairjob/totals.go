package repairjob

import "github.com/shopspring/decimal"

var serviceTaxRate = decimal.RequireFromString("0.12")

type Totals struct {
	Parts      decimal.Decimal
	Labor      decimal.Decimal
	ServiceTax decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals derives tax (12% of labor) and grand total, both rounded to cents.
func ComputeTotals(parts, labor decimal.Decimal) Totals {
	tax := labor.Mul(serviceTaxRate).Round(2)
	return Totals{
		Parts:      parts,
		Labor:      labor,
		ServiceTax: tax,
		GrandTotal: parts.Add(labor).Add(tax).Round(2),
	}
}

func TotalsFromItems(items []EstimateItem) Totals {
	parts, labor := decimal.Zero, decimal.Zero
	for _, it := range items {
		parts = parts.Add(it.PartCost)
		labor = labor.Add(it.LaborCost)
	}
	return ComputeTotals(parts, labor)
}

func (t Totals) EstimatePrice() decimal.Decimal { return t.Parts.Add(t.Labor) }
