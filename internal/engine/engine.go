// Package engine computes the compensation and billing metrics for one
// resolved employee profile. Compute is a pure function: no I/O, no shared
// state, and identical inputs always produce identical results. The input is
// guaranteed valid by the profile normalizer, so the engine carries no error
// path; the single residual edge case is a 100% target margin, surfaced as a
// degenerate-margin sentinel on the result.
package engine

import (
	"github.com/compintel/ratecard/internal/profile"
	"github.com/compintel/ratecard/pkg/constants"
	"github.com/compintel/ratecard/pkg/mathutil"
)

// Three numeric domains flow through the formulas. Keeping them as distinct
// types prevents silent unit mixing between them.

// RefAmount is an amount in reference-currency (INR) units.
type RefAmount float64

// LocalAmount is an amount in the profile location's local currency.
type LocalAmount float64

// USDAmount is an amount in US dollars.
type USDAmount float64

// Basis selects which of the two mutually exclusive computation branches
// applies. The two branches are deliberately asymmetric: the derived branch
// applies the 30% overhead after currency conversion, the override branch
// applies none at all.
type Basis interface {
	isBasis()
}

// OverrideBasis uses a negotiated annual compensation figure as-is. The
// experience multiplier and overhead factor are bypassed entirely.
type OverrideBasis struct {
	Annual RefAmount
}

// DerivedBasis builds the annual base from the salary band and experience.
type DerivedBasis struct {
	BandSalary      RefAmount
	ExperienceYears float64
}

func (OverrideBasis) isBasis() {}
func (DerivedBasis) isBasis()  {}

// BasisFor returns the computation basis for a resolved profile: the
// override branch when a positive negotiated compensation is present, the
// derived branch otherwise.
func BasisFor(res profile.Resolved) Basis {
	if res.HasOverride() {
		return OverrideBasis{Annual: RefAmount(res.AnnualCompensationOverride)}
	}
	return DerivedBasis{
		BandSalary:      RefAmount(res.BaseSalary),
		ExperienceYears: res.ExperienceYears,
	}
}

// Result holds the derived metrics for one profile. Currency amounts are
// whole-unit rounded; hourly rates and percentages are rounded to two
// decimals; CostPerBillableHourUSD is the unrounded intermediate the margin
// formulas build on.
type Result struct {
	AnnualBaseRef          RefAmount   `json:"annualBaseRef"`
	AnnualBaseLocal        LocalAmount `json:"annualBaseLocal"`
	MonthlySalaryLocal     LocalAmount `json:"monthlySalaryLocal"`
	USDEquivalent          USDAmount   `json:"usdEquivalent"`
	TotalCTCLocal          LocalAmount `json:"totalCtcLocal"`
	TotalCTCUSD            USDAmount   `json:"totalCtcUsd"`
	AnnualHours            int         `json:"annualHours"`
	AnnualBillableHours    float64     `json:"annualBillableHours"`
	HourlyCostLocal        LocalAmount `json:"hourlyCostLocal"`
	CostPerBillableHourUSD USDAmount   `json:"costPerBillableHourUsd"`
	MinHourlyRateUSD       USDAmount   `json:"minHourlyRateUsd"`
	ClientRateUSD          USDAmount   `json:"clientRateUsd"`
	ActualMarginPercent    float64     `json:"actualMarginPercent"`
	MonthlyRevenueUSD      USDAmount   `json:"monthlyRevenueUsd"`

	// DegenerateMargin is set when the target margin equals 100%, which has
	// no finite break-even rate. The four rate metrics are left zero and
	// must be presented as undefined, never as Inf or NaN.
	DegenerateMargin bool `json:"degenerateMargin"`
}

// Compute derives the full metric set for one resolved profile.
func Compute(res profile.Resolved) Result {
	return computeWith(BasisFor(res), res)
}

func computeWith(basis Basis, res profile.Resolved) Result {
	rate := res.Currency.RateToReference

	var annualRef RefAmount
	var ctcLocal LocalAmount
	var annualLocal LocalAmount

	switch b := basis.(type) {
	case OverrideBasis:
		annualRef = b.Annual
		annualLocal = LocalAmount(mathutil.RoundWhole(float64(annualRef) * rate))
		// The override figure doubles as the CTC verbatim; no overhead and
		// no currency conversion is applied to it.
		ctcLocal = LocalAmount(b.Annual)
	case DerivedBasis:
		multiplier := 1 + b.ExperienceYears*constants.ExperienceStepPerYear
		annualRef = RefAmount(mathutil.RoundWhole(float64(b.BandSalary) * multiplier))
		annualLocal = LocalAmount(mathutil.RoundWhole(float64(annualRef) * rate))
		ctcLocal = LocalAmount(mathutil.RoundWhole(float64(annualLocal) * constants.OverheadMultiplier))
	}

	annualHours := res.AnnualWorkdays * constants.StandardWorkdayHours
	annualBillableHours := float64(res.AnnualWorkdays) * res.DailyBillableHours

	result := Result{
		AnnualBaseRef:       annualRef,
		AnnualBaseLocal:     annualLocal,
		MonthlySalaryLocal:  LocalAmount(mathutil.RoundWhole(float64(annualLocal) / constants.MonthsPerYear)),
		USDEquivalent:       USDAmount(mathutil.RoundWhole(float64(annualRef) / constants.ReferencePerUSD)),
		TotalCTCLocal:       ctcLocal,
		TotalCTCUSD:         USDAmount(mathutil.RoundWhole(float64(annualRef) * constants.OverheadMultiplier / constants.ReferencePerUSD)),
		AnnualHours:         annualHours,
		AnnualBillableHours: annualBillableHours,
		HourlyCostLocal:     LocalAmount(mathutil.Round(float64(annualLocal) / float64(annualHours))),
	}

	costPerBillableHour := USDAmount(float64(annualRef) / constants.ReferencePerUSD / annualBillableHours)
	result.CostPerBillableHourUSD = costPerBillableHour

	if res.TargetMarginPercent >= constants.MaxTargetMarginPercent {
		result.DegenerateMargin = true
		return result
	}

	minRate := USDAmount(mathutil.Round(float64(costPerBillableHour) / (1 - res.TargetMarginPercent/constants.PercentageMultiplier)))
	clientRate := USDAmount(mathutil.Round(float64(minRate) * constants.ClientMarkup))

	result.MinHourlyRateUSD = minRate
	result.ClientRateUSD = clientRate
	result.ActualMarginPercent = mathutil.Round(float64(clientRate-costPerBillableHour) / float64(clientRate) * constants.PercentageMultiplier)
	result.MonthlyRevenueUSD = USDAmount(mathutil.RoundWhole(float64(clientRate) * res.DailyBillableHours * float64(res.AnnualWorkdays) / constants.MonthsPerYear))

	return result
}
