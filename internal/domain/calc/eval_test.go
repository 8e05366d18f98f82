package calc

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"simple sum", "10+20", 30},
		{"trailing operator dropped", "10+", 10},
		{"trailing operator run dropped", "10++", 10},
		{"letters only", "abc", 0},
		{"empty", "", 0},
		{"division by zero", "10/0", 0},
		{"precedence", "2+3*4", 14},
		{"multiply divide", "10*2/4", 5},
		{"decimals", "10.5+0.5", 11},
		{"letters stripped around digits", "abc12def3", 123},
		{"negative result", "10-20", -10},
		{"lone dot", ".", 0},
		{"operators only", "+-*/", 0},
		{"spaces stripped", " 10 + 20 ", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.expr); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateNeverPanics(t *testing.T) {
	inputs := []string{"((", "1//", "*/*", "1.2.3", "--5", "9999999999*9999999999"}
	for _, in := range inputs {
		got := Evaluate(in)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Evaluate(%q) = %v, want finite", in, got)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "1000", 1000},
		{"decimal", "42.5", 42.5},
		{"padded", "  42.5  ", 42.5},
		{"empty", "", 0},
		{"garbage", "12abc", 0},
		{"negative", "-7", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.in); got != tt.want {
				t.Errorf("Number(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
