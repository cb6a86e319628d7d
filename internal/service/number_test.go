package service

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`12.5`, 12.5},
		{`"7"`, 7},
		{`" 3.25 "`, 3.25},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
		{`-4`, 0},
		{`"-4"`, 0},
		{`"NaN"`, 0},
		{`"Inf"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var item LineItemRequest
			if err := json.Unmarshal([]byte(`{"quantity":`+tt.input+`}`), &item); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if got := item.Quantity.Float64(); got != tt.want {
				t.Fatalf("quantity = %v, want %v", got, tt.want)
			}
		})
	}
}
