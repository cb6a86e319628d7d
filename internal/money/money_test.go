package money

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		contains []string
	}{
		{"dollar symbol", 12.5, "USD", []string{"$", "12.50"}},
		{"lowercase code", 12.5, "usd", []string{"$", "12.50"}},
		{"grouping", 1234.5, "EUR", []string{"€", "1,234.50"}},
		{"zero decimal currency", 1500, "JPY", []string{"1,500"}},
		{"unknown code", 12.5, "NOPE", []string{"NOPE 12.50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.amount, tt.code)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("Format(%v, %q) = %q, want it to contain %q", tt.amount, tt.code, got, want)
				}
			}
		})
	}
}

func TestCodeUsesISO(t *testing.T) {
	got := Code(1250, "ZAR")
	if !strings.HasPrefix(got, "ZAR") || !strings.Contains(got, "1,250.00") {
		t.Fatalf("Code = %q", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("ZAR") || Valid("ZZZZ") {
		t.Fatal("Valid misclassified currency codes")
	}
}
