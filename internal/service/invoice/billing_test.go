package invoice

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name            string
		subtotal        int64
		discountFixed   int64
		discountPercent float64
		taxRate         float64
		want            Totals
	}{
		{
			name:     "no discount no tax",
			subtotal: 5000,
			want:     Totals{Subtotal: 5000, GrandTotal: 5000},
		},
		{
			name:     "ten percent tax",
			subtotal: 8000,
			taxRate:  10,
			want:     Totals{Subtotal: 8000, TaxAmount: 800, GrandTotal: 8800},
		},
		{
			name:            "percent discount then tax",
			subtotal:        8000,
			discountPercent: 10,
			taxRate:         10,
			want:            Totals{Subtotal: 8000, Discount: 800, TaxAmount: 720, GrandTotal: 7920},
		},
		{
			name:          "fixed discount",
			subtotal:      10000,
			discountFixed: 2500,
			want:          Totals{Subtotal: 10000, Discount: 2500, GrandTotal: 7500},
		},
		{
			name:          "fixed discount exceeding subtotal clamps",
			subtotal:      1000,
			discountFixed: 5000,
			want:          Totals{Subtotal: 1000, Discount: 1000, GrandTotal: 0},
		},
		{
			name:          "negative discount clamps to zero",
			subtotal:      1000,
			discountFixed: -50,
			want:          Totals{Subtotal: 1000, GrandTotal: 1000},
		},
		{
			name:            "fractional cents round half up",
			subtotal:        333,
			discountPercent: 50,
			want:            Totals{Subtotal: 333, Discount: 167, GrandTotal: 166},
		},
		{
			name:     "tax rounds half up",
			subtotal: 1005,
			taxRate:  9,
			// 1005 * 0.09 = 90.45 -> 90
			want: Totals{Subtotal: 1005, TaxAmount: 90, GrandTotal: 1095},
		},
		{
			name:     "zero subtotal",
			subtotal: 0,
			taxRate:  10,
			want:     Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.subtotal, tt.discountFixed, tt.discountPercent, tt.taxRate)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	if got := LineTotal(3, 2500); got != 7500 {
		t.Errorf("LineTotal(3, 2500) = %d, want 7500", got)
	}
	if got := LineTotal(1, 0); got != 0 {
		t.Errorf("LineTotal(1, 0) = %d, want 0", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0.4, 0},
		{0.5, 1},
		{0.6, 1},
		{799.5, 800},
		{720.0, 720},
		{166.5, 167},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		grand    int64
		paid     int64
		refunded int64
		want     string
	}{
		{"nothing paid", 8800, 0, 0, StatusUnpaid},
		{"partial payment", 8800, 4000, 0, StatusPartiallyPaid},
		{"paid in full", 8800, 8800, 0, StatusPaid},
		{"fully refunded", 8800, 8800, 8800, StatusRefunded},
		{"partial refund", 8800, 8800, 4000, StatusPartiallyPaid},
		{"zero total", 0, 0, 0, StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.grand, tt.paid, tt.refunded); got != tt.want {
				t.Errorf("DeriveStatus(%d, %d, %d) = %q, want %q",
					tt.grand, tt.paid, tt.refunded, got, tt.want)
			}
		})
	}
}
