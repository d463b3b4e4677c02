package presenter

import (
	"testing"

	"github.com/compintel/ratecard/internal/engine"
	"github.com/compintel/ratecard/internal/profile"
	"github.com/compintel/ratecard/internal/refdata"
)

var cardOrder = []string{
	"Annual Base",
	"Monthly Draw",
	"USD Equivalent",
	"Total CTC",
	"Total Hours",
	"Billable Hours",
	"Hourly Cost",
	"Min Rate",
	"Client Rate",
	"Profit Margin",
	"Monthly Revenue",
}

func computeFor(t *testing.T, raw profile.RawInput) (engine.Result, refdata.CurrencyInfo) {
	t.Helper()
	res := profile.Normalize(raw, refdata.NewStore())
	return engine.Compute(res), res.Currency
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestMetricsOrder(t *testing.T) {
	result, currency := computeFor(t, profile.RawInput{Location: "LON", Grade: "A2"})
	metrics := Metrics(result, currency)

	if len(metrics) != 11 {
		t.Fatalf("Metrics() returned %d cards, expected 11", len(metrics))
	}
	for i, label := range cardOrder {
		if metrics[i].Label != label {
			t.Errorf("card %d label = %q, expected %q", i, metrics[i].Label, label)
		}
		if metrics[i].Icon == "" {
			t.Errorf("card %q has no icon", label)
		}
		if metrics[i].Value == "" {
			t.Errorf("card %q has no value", label)
		}
	}
}

func TestMetricsGoldenFormatting(t *testing.T) {
	result, currency := computeFor(t, profile.RawInput{
		Location:        "LON",
		Grade:           "A2",
		ExperienceYears: floatPtr(1.5),
	})
	metrics := Metrics(result, currency)

	want := map[string]string{
		"Annual Base":     "GBP 69,920",
		"Monthly Draw":    "GBP 5,827",
		"USD Equivalent":  "$88,675",
		"Total CTC":       "GBP 90,896",
		"Total Hours":     "1,816",
		"Billable Hours":  "908",
		"Hourly Cost":     "GBP 38.50",
		"Min Rate":        "$150.25",
		"Client Rate":     "$262.94/hr",
		"Profit Margin":   "62.86%",
		"Monthly Revenue": "$19,896",
	}

	for _, m := range metrics {
		if expected, ok := want[m.Label]; ok && m.Value != expected {
			t.Errorf("%s value = %q, expected %q", m.Label, m.Value, expected)
		}
	}
}

func TestMetricsNumericMatchesResult(t *testing.T) {
	result, currency := computeFor(t, profile.RawInput{Location: "TLV", Grade: "B1"})
	metrics := Metrics(result, currency)

	byLabel := make(map[string]Metric, len(metrics))
	for _, m := range metrics {
		byLabel[m.Label] = m
	}

	if byLabel["Annual Base"].Numeric != float64(result.AnnualBaseLocal) {
		t.Errorf("Annual Base numeric = %v, expected %v", byLabel["Annual Base"].Numeric, result.AnnualBaseLocal)
	}
	if byLabel["Min Rate"].Numeric != float64(result.MinHourlyRateUSD) {
		t.Errorf("Min Rate numeric = %v, expected %v", byLabel["Min Rate"].Numeric, result.MinHourlyRateUSD)
	}
	if byLabel["Profit Margin"].Numeric != result.ActualMarginPercent {
		t.Errorf("Profit Margin numeric = %v, expected %v", byLabel["Profit Margin"].Numeric, result.ActualMarginPercent)
	}
}

func TestMetricsDegenerateMargin(t *testing.T) {
	result, currency := computeFor(t, profile.RawInput{
		Location:            "BLR",
		Grade:               "A2",
		TargetMarginPercent: floatPtr(100),
	})
	metrics := Metrics(result, currency)

	if len(metrics) != 11 {
		t.Fatalf("Metrics() returned %d cards, expected 11", len(metrics))
	}

	undefinedLabels := map[string]bool{
		"Min Rate":        true,
		"Client Rate":     true,
		"Profit Margin":   true,
		"Monthly Revenue": true,
	}

	for _, m := range metrics {
		if undefinedLabels[m.Label] {
			if m.Value != UndefinedValue {
				t.Errorf("%s value = %q, expected %q", m.Label, m.Value, UndefinedValue)
			}
			continue
		}
		if m.Value == UndefinedValue {
			t.Errorf("%s unexpectedly undefined", m.Label)
		}
	}
}

func TestGlossaryMatchesCardCount(t *testing.T) {
	if got := len(Glossary()); got != 11 {
		t.Errorf("Glossary() has %d entries, expected 11", got)
	}
	for _, entry := range Glossary() {
		if entry.Title == "" || entry.Description == "" || entry.Formula == "" {
			t.Errorf("incomplete glossary entry: %+v", entry)
		}
	}
	if len(Assumptions()) == 0 {
		t.Error("Assumptions() is empty")
	}
}
