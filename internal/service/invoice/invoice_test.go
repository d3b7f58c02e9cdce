package invoice

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int
		want string
	}{
		{2026, 1, "INV2026-00001"},
		{2026, 17, "INV2026-00017"},
		{2025, 99999, "INV2025-99999"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatNumber(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{8800, "88.00"},
		{7920, "79.20"},
		{5, "0.05"},
		{0, "0.00"},
		{-150, "-1.50"},
	}

	for _, tt := range tests {
		if got := formatCents(tt.in); got != tt.want {
			t.Errorf("formatCents(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestValidateDiscount(t *testing.T) {
	tests := []struct {
		name    string
		fixed   int64
		percent float64
		reason  *string
		wantErr error
	}{
		{"none", 0, 0, nil, nil},
		{"fixed with reason", 500, 0, strPtr("staff family"), nil},
		{"percent with reason", 0, 10, strPtr("loyalty"), nil},
		{"both set", 500, 10, strPtr("loyalty"), ErrDiscountConflict},
		{"negative fixed", -1, 0, strPtr("typo"), ErrInvalidDiscount},
		{"percent over 100", 0, 101, strPtr("typo"), ErrInvalidDiscount},
		{"fixed without reason", 500, 0, nil, ErrMissingDiscountReason},
		{"percent without reason", 0, 10, nil, ErrMissingDiscountReason},
		{"blank reason", 0, 10, strPtr("   "), ErrMissingDiscountReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateDiscount(tt.fixed, tt.percent, tt.reason); err != tt.wantErr {
				t.Errorf("validateDiscount(%d, %v, %v) = %v, want %v",
					tt.fixed, tt.percent, tt.reason, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItems(t *testing.T) {
	valid := [][]ItemInput{
		{{Description: "Consultation", Quantity: 1, UnitPrice: 5000}},
		// Zero-quantity lines are legal, e.g. waived services kept on the bill.
		{{Description: "Follow-up call", Quantity: 0, UnitPrice: 100}},
	}
	for i, items := range valid {
		if err := validateItems(items); err != nil {
			t.Errorf("case %d: unexpected error for valid items: %v", i, err)
		}
	}

	invalid := [][]ItemInput{
		{{Description: "", Quantity: 1, UnitPrice: 100}},
		{{Description: "X-ray", Quantity: -1, UnitPrice: 100}},
		{{Description: "X-ray", Quantity: 1, UnitPrice: -1}},
	}
	for i, items := range invalid {
		if err := validateItems(items); err != ErrInvalidItem {
			t.Errorf("case %d: expected ErrInvalidItem, got %v", i, err)
		}
	}
}
