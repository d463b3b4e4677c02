// Package profile normalizes raw, possibly absent or malformed input into a
// resolved employee profile the calculator can consume unconditionally. The
// policy is validate-then-clamp-then-fallback: substitute documented defaults
// for missing fields, clamp every numeric field to its domain, derive
// workdays from the location table, and reset an unresolvable location/grade
// pair to the documented fallback before any computation runs.
package profile

import (
	"github.com/compintel/ratecard/internal/refdata"
	"github.com/compintel/ratecard/pkg/constants"
	"github.com/compintel/ratecard/pkg/mathutil"
)

// RawInput carries the unvalidated fields supplied by the presentation
// layer. Nil pointers mark absent values.
type RawInput struct {
	Location                   string   `json:"location"`
	Grade                      string   `json:"grade"`
	ExperienceYears            *float64 `json:"experienceYears"`
	TargetMarginPercent        *float64 `json:"targetMarginPercent"`
	AnnualCompensationOverride *float64 `json:"annualCompensationOverride"`
	DailyBillableHours         *float64 `json:"dailyBillableHours"`
	AnnualWorkdays             *float64 `json:"annualWorkdays"`
}

// Profile is a validated input snapshot. All numeric fields are within their
// declared domains and the location/grade pair resolves in every reference
// table.
type Profile struct {
	Location                   refdata.LocationCode `json:"location"`
	Grade                      refdata.GradeCode    `json:"grade"`
	ExperienceYears            float64              `json:"experienceYears"`
	TargetMarginPercent        float64              `json:"targetMarginPercent"`
	AnnualCompensationOverride float64              `json:"annualCompensationOverride"`
	DailyBillableHours         float64              `json:"dailyBillableHours"`
	AnnualWorkdays             int                  `json:"annualWorkdays"`
}

// HasOverride reports whether the negotiated-compensation branch applies.
func (p Profile) HasOverride() bool {
	return p.AnnualCompensationOverride > 0
}

// Resolved pairs a normalized Profile with the reference data it resolved
// to, so the calculator needs no lookups and has no error path.
type Resolved struct {
	Profile
	BaseSalary int64                `json:"baseSalary"`
	Currency   refdata.CurrencyInfo `json:"currency"`
}

// Normalize applies the full normalization policy to raw input against the
// given reference store. It always succeeds: invalid fields are defaulted or
// clamped and an unresolvable location/grade pair falls back to BLR/A2.
func Normalize(raw RawInput, store *refdata.Store) Resolved {
	loc := refdata.LocationCode(raw.Location)
	grade := refdata.GradeCode(raw.Grade)

	experience := mathutil.Clamp(
		valueOr(raw.ExperienceYears, constants.DefaultExperienceYears),
		constants.MinExperienceYears, constants.MaxExperienceYears)
	margin := mathutil.Clamp(
		valueOr(raw.TargetMarginPercent, constants.DefaultTargetMarginPercent),
		constants.MinTargetMarginPercent, constants.MaxTargetMarginPercent)
	hours := mathutil.Clamp(
		valueOr(raw.DailyBillableHours, constants.DefaultBillableHoursPerDay),
		constants.MinBillableHoursPerDay, constants.MaxBillableHoursPerDay)

	override := valueOr(raw.AnnualCompensationOverride, 0)
	if override < 0 {
		override = 0
	}

	// The workdays field is location-derived, never independently settable.
	// A raw value only applies when the location itself is unknown, and it
	// is not re-derived after the fallback below. The fallback location's
	// table value equals the default anyway.
	var workdays int
	if tableDays, err := store.WorkdaysFor(loc); err == nil {
		workdays = tableDays
	} else {
		workdays = int(mathutil.Clamp(
			valueOr(raw.AnnualWorkdays, constants.DefaultAnnualWorkdays),
			constants.MinAnnualWorkdays, constants.MaxAnnualWorkdays))
	}

	// Full fallback: any gap in salary band or currency resets both codes.
	baseSalary, salaryErr := store.SalaryFor(loc, grade)
	currency, currencyErr := store.CurrencyFor(loc)
	if salaryErr != nil || currencyErr != nil {
		loc = refdata.FallbackLocation
		grade = refdata.FallbackGrade
		baseSalary, _ = store.SalaryFor(loc, grade)
		currency, _ = store.CurrencyFor(loc)
	}

	return Resolved{
		Profile: Profile{
			Location:                   loc,
			Grade:                      grade,
			ExperienceYears:            experience,
			TargetMarginPercent:        margin,
			AnnualCompensationOverride: override,
			DailyBillableHours:         hours,
			AnnualWorkdays:             workdays,
		},
		BaseSalary: baseSalary,
		Currency:   currency,
	}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
