// Package presenter adapts a computation result into the ordered list of
// display-ready metric cards consumed by the presentation layer. The card
// order is fixed and meaningful; every card keeps its underlying numeric
// value alongside the formatted string so callers can inspect it.
package presenter

import (
	"github.com/compintel/ratecard/internal/engine"
	"github.com/compintel/ratecard/internal/refdata"
	"github.com/compintel/ratecard/pkg/format"
)

// Metric is one display card: icon, label, formatted value, subtitle, and
// the raw numeric value behind the formatted string.
type Metric struct {
	Icon     string  `json:"icon"`
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Subtitle string  `json:"subtitle"`
	Numeric  float64 `json:"numeric"`
}

// UndefinedValue is shown for the rate metrics when the target margin is
// 100% and no finite break-even rate exists.
const UndefinedValue = "undefined"

const undefinedSubtitle = "Margin cannot equal 100%"

// Metrics converts a result into the fixed 11-card sequence: Annual Base,
// Monthly Draw, USD Equivalent, Total CTC, Total Hours, Billable Hours,
// Hourly Cost, Min Rate, Client Rate, Profit Margin, Monthly Revenue.
func Metrics(result engine.Result, currency refdata.CurrencyInfo) []Metric {
	sym := currency.Symbol

	cards := []Metric{
		{Icon: "💎", Label: "Annual Base", Value: format.Amount(sym, float64(result.AnnualBaseLocal)), Subtitle: "Primary Compensation", Numeric: float64(result.AnnualBaseLocal)},
		{Icon: "🌙", Label: "Monthly Draw", Value: format.Amount(sym, float64(result.MonthlySalaryLocal)), Subtitle: "Per Month", Numeric: float64(result.MonthlySalaryLocal)},
		{Icon: "🦅", Label: "USD Equivalent", Value: format.USD(float64(result.USDEquivalent)), Subtitle: "Global Standard", Numeric: float64(result.USDEquivalent)},
		{Icon: "🏆", Label: "Total CTC", Value: format.Amount(sym, float64(result.TotalCTCLocal)), Subtitle: format.USD(float64(result.TotalCTCUSD)) + " USD", Numeric: float64(result.TotalCTCLocal)},
		{Icon: "⏱️", Label: "Total Hours", Value: format.Number(float64(result.AnnualHours)), Subtitle: "Annual Capacity", Numeric: float64(result.AnnualHours)},
		{Icon: "🔥", Label: "Billable Hours", Value: format.Number(result.AnnualBillableHours), Subtitle: "Revenue Hours", Numeric: result.AnnualBillableHours},
		{Icon: "⚡", Label: "Hourly Cost", Value: sym + " " + format.Rate(float64(result.HourlyCostLocal)), Subtitle: "Internal Rate", Numeric: float64(result.HourlyCostLocal)},
	}

	if result.DegenerateMargin {
		cards = append(cards,
			Metric{Icon: "📊", Label: "Min Rate", Value: UndefinedValue, Subtitle: undefinedSubtitle},
			Metric{Icon: "🚀", Label: "Client Rate", Value: UndefinedValue, Subtitle: undefinedSubtitle},
			Metric{Icon: "📈", Label: "Profit Margin", Value: UndefinedValue, Subtitle: undefinedSubtitle},
			Metric{Icon: "💰", Label: "Monthly Revenue", Value: UndefinedValue, Subtitle: undefinedSubtitle},
		)
		return cards
	}

	cards = append(cards,
		Metric{Icon: "📊", Label: "Min Rate", Value: "$" + format.Rate(float64(result.MinHourlyRateUSD)), Subtitle: "Break-even Point", Numeric: float64(result.MinHourlyRateUSD)},
		Metric{Icon: "🚀", Label: "Client Rate", Value: "$" + format.Rate(float64(result.ClientRateUSD)) + "/hr", Subtitle: "Premium Billing", Numeric: float64(result.ClientRateUSD)},
		Metric{Icon: "📈", Label: "Profit Margin", Value: format.Percent(result.ActualMarginPercent), Subtitle: "Net Profitability", Numeric: result.ActualMarginPercent},
		Metric{Icon: "💰", Label: "Monthly Revenue", Value: format.USD(float64(result.MonthlyRevenueUSD)), Subtitle: "Projected Income", Numeric: float64(result.MonthlyRevenueUSD)},
	)
	return cards
}
