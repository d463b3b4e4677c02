package format

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		amount   float64
		expected string
	}{
		{name: "grouped thousands", symbol: "GBP", amount: 69920, expected: "GBP 69,920"},
		{name: "millions", symbol: "Rs", amount: 2000000, expected: "Rs 2,000,000"},
		{name: "small amount", symbol: "EUR", amount: 950, expected: "EUR 950"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.symbol, tt.amount); got != tt.expected {
				t.Errorf("Amount(%q, %v) = %q, expected %q", tt.symbol, tt.amount, got, tt.expected)
			}
		})
	}
}

func TestUSD(t *testing.T) {
	if got := USD(88675); got != "$88,675" {
		t.Errorf("USD(88675) = %q, expected $88,675", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 1816, expected: "1,816"},
		{input: 908, expected: "908"},
		{input: 1021.5, expected: "1,021.5"},
	}

	for _, tt := range tests {
		if got := Number(tt.input); got != tt.expected {
			t.Errorf("Number(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 38.5, expected: "38.50"},
		{input: 262.94, expected: "262.94"},
		{input: 150, expected: "150.00"},
	}

	for _, tt := range tests {
		if got := Rate(tt.input); got != tt.expected {
			t.Errorf("Rate(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(62.86); got != "62.86%" {
		t.Errorf("Percent(62.86) = %q, expected 62.86%%", got)
	}
}
