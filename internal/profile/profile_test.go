package profile

import (
	"testing"

	"github.com/compintel/ratecard/internal/refdata"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestNormalizeDefaults(t *testing.T) {
	store := refdata.NewStore()

	res := Normalize(RawInput{Location: "BLR", Grade: "A2"}, store)

	if res.ExperienceYears != 1.5 {
		t.Errorf("ExperienceYears = %v, expected default 1.5", res.ExperienceYears)
	}
	if res.TargetMarginPercent != 35 {
		t.Errorf("TargetMarginPercent = %v, expected default 35", res.TargetMarginPercent)
	}
	if res.DailyBillableHours != 4 {
		t.Errorf("DailyBillableHours = %v, expected default 4", res.DailyBillableHours)
	}
	if res.AnnualCompensationOverride != 0 {
		t.Errorf("AnnualCompensationOverride = %v, expected absent (0)", res.AnnualCompensationOverride)
	}
	if res.HasOverride() {
		t.Error("HasOverride() = true for absent override")
	}
	if res.BaseSalary != 800000 {
		t.Errorf("BaseSalary = %v, expected 800000", res.BaseSalary)
	}
	if res.Currency.Symbol != "Rs" {
		t.Errorf("Currency.Symbol = %q, expected Rs", res.Currency.Symbol)
	}
}

func TestNormalizeClamping(t *testing.T) {
	store := refdata.NewStore()

	tests := []struct {
		name string
		raw  RawInput
		want Profile
	}{
		{
			name: "values above range clamp to upper bounds",
			raw: RawInput{
				Location:            "BLR",
				Grade:               "A2",
				ExperienceYears:     floatPtr(35),
				TargetMarginPercent: floatPtr(180),
				DailyBillableHours:  floatPtr(16),
			},
			want: Profile{ExperienceYears: 20, TargetMarginPercent: 100, DailyBillableHours: 12},
		},
		{
			name: "values below range clamp to lower bounds",
			raw: RawInput{
				Location:            "BLR",
				Grade:               "A2",
				ExperienceYears:     floatPtr(-3),
				TargetMarginPercent: floatPtr(-10),
				DailyBillableHours:  floatPtr(0),
			},
			want: Profile{ExperienceYears: 0, TargetMarginPercent: 0, DailyBillableHours: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.raw, store)
			if res.ExperienceYears != tt.want.ExperienceYears {
				t.Errorf("ExperienceYears = %v, expected %v", res.ExperienceYears, tt.want.ExperienceYears)
			}
			if res.TargetMarginPercent != tt.want.TargetMarginPercent {
				t.Errorf("TargetMarginPercent = %v, expected %v", res.TargetMarginPercent, tt.want.TargetMarginPercent)
			}
			if res.DailyBillableHours != tt.want.DailyBillableHours {
				t.Errorf("DailyBillableHours = %v, expected %v", res.DailyBillableHours, tt.want.DailyBillableHours)
			}
		})
	}
}

func TestNormalizeNegativeOverrideTreatedAsAbsent(t *testing.T) {
	store := refdata.NewStore()

	res := Normalize(RawInput{
		Location:                   "BLR",
		Grade:                      "A2",
		AnnualCompensationOverride: floatPtr(-100000),
	}, store)

	if res.AnnualCompensationOverride != 0 {
		t.Errorf("AnnualCompensationOverride = %v, expected 0", res.AnnualCompensationOverride)
	}
	if res.HasOverride() {
		t.Error("HasOverride() = true for negative override")
	}
}

func TestNormalizeWorkdaysLocationPriority(t *testing.T) {
	store := refdata.NewStore()

	// Any raw workdays value is overridden by the location table.
	for _, raw := range []*float64{nil, floatPtr(250), floatPtr(999)} {
		res := Normalize(RawInput{Location: "LON", Grade: "A2", AnnualWorkdays: raw}, store)
		if res.AnnualWorkdays != 227 {
			t.Errorf("AnnualWorkdays = %v for raw %v, expected table value 227", res.AnnualWorkdays, raw)
		}
	}
}

func TestNormalizeWorkdaysForUnknownLocation(t *testing.T) {
	store := refdata.NewStore()

	tests := []struct {
		name string
		raw  *float64
		want int
	}{
		{name: "absent falls to default", raw: nil, want: 236},
		{name: "raw value kept", raw: floatPtr(250), want: 250},
		{name: "raw value clamped high", raw: floatPtr(400), want: 300},
		{name: "raw value clamped low", raw: floatPtr(10), want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(RawInput{Location: "ZZZ", Grade: "A2", AnnualWorkdays: tt.raw}, store)
			if res.AnnualWorkdays != tt.want {
				t.Errorf("AnnualWorkdays = %v, expected %v", res.AnnualWorkdays, tt.want)
			}
		})
	}
}

func TestNormalizeFallback(t *testing.T) {
	store := refdata.NewStore()

	tests := []struct {
		name     string
		location string
		grade    string
	}{
		{name: "unknown location", location: "ZZZ", grade: "A2"},
		{name: "band-less grade", location: "LON", grade: "C1"},
		{name: "unknown grade", location: "MTV", grade: "Z9"},
		{name: "both unknown", location: "XXX", grade: "C3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(RawInput{Location: tt.location, Grade: tt.grade}, store)

			if res.Location != refdata.FallbackLocation || res.Grade != refdata.FallbackGrade {
				t.Errorf("resolved pair = %s/%s, expected %s/%s",
					res.Location, res.Grade, refdata.FallbackLocation, refdata.FallbackGrade)
			}
			if res.BaseSalary != 800000 {
				t.Errorf("BaseSalary = %v, expected fallback band 800000", res.BaseSalary)
			}
			if res.Currency.Name != "INR" {
				t.Errorf("Currency.Name = %q, expected INR", res.Currency.Name)
			}
		})
	}
}

func TestNormalizeValidPairsDoNotFallBack(t *testing.T) {
	store := refdata.NewStore()

	for _, loc := range store.Locations() {
		for _, grade := range store.BandGrades() {
			res := Normalize(RawInput{Location: string(loc.Code), Grade: string(grade)}, store)
			if res.Location != loc.Code || res.Grade != grade {
				t.Errorf("pair %s/%s fell back to %s/%s", loc.Code, grade, res.Location, res.Grade)
			}
		}
	}
}
