package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "round down", input: 38.5022, expected: 38.50},
		{name: "round up", input: 97.659, expected: 97.66},
		{name: "half away from zero", input: 262.9375, expected: 262.94},
		{name: "negative", input: -1.005, expected: -1.0},
		{name: "whole number", input: 42, expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "round down", input: 88674.6988, expected: 88675},
		{name: "round up half", input: 166666.5, expected: 166667},
		{name: "round down below half", input: 5826.4, expected: 5826},
		{name: "exact", input: 69920, expected: 69920},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundWhole(tt.input); got != tt.expected {
				t.Errorf("RoundWhole(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{name: "within range", val: 5, min: 0, max: 20, expected: 5},
		{name: "below min", val: -1, min: 0, max: 20, expected: 0},
		{name: "above max", val: 35, min: 0, max: 20, expected: 20},
		{name: "at min", val: 0, min: 0, max: 20, expected: 0},
		{name: "at max", val: 20, min: 0, max: 20, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.001, 1.002, 0.01) {
		t.Error("WithinTolerance(1.001, 1.002, 0.01) = false, expected true")
	}
	if WithinTolerance(1.0, 1.1, 0.01) {
		t.Error("WithinTolerance(1.0, 1.1, 0.01) = true, expected false")
	}
}
