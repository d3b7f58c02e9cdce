package patient

import "testing"

func TestFormatCode(t *testing.T) {
	tests := []struct {
		year int
		seq  int
		want string
	}{
		{2026, 1, "P2026-00001"},
		{2026, 42, "P2026-00042"},
		{2025, 99999, "P2025-99999"},
		{2026, 100000, "P2026-100000"},
	}

	for _, tt := range tests {
		if got := FormatCode(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatCode(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		code     string
		wantYear int
		wantSeq  int
		wantOK   bool
	}{
		{"P2026-00042", 2026, 42, true},
		{"P2025-99999", 2025, 99999, true},
		{"P26-00042", 0, 0, false},
		{"INV2026-00042", 0, 0, false},
		{"", 0, 0, false},
		{"P2026-42", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			year, seq, ok := ParseCode(tt.code)
			if ok != tt.wantOK || year != tt.wantYear || seq != tt.wantSeq {
				t.Errorf("ParseCode(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.code, year, seq, ok, tt.wantYear, tt.wantSeq, tt.wantOK)
			}
		})
	}
}
