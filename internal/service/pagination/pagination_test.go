package pagination

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantPage   int
		wantPP     int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 20, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"over cap clamps to 100", 2, 500, 2, 100, 100},
		{"at cap", 1, 100, 1, 100, 0},
		{"second page", 2, 20, 2, 20, 20},
		{"third page small", 3, 5, 3, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, pp, off := Clamp(tt.page, tt.perPage)
			if p != tt.wantPage || pp != tt.wantPP || off != tt.wantOffset {
				t.Errorf("Clamp(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.page, tt.perPage, p, pp, off, tt.wantPage, tt.wantPP, tt.wantOffset)
			}
		})
	}
}

func TestNewTotalPages(t *testing.T) {
	tests := []struct {
		total   int
		perPage int
		want    int
	}{
		{45, 20, 3},
		{40, 20, 2},
		{0, 20, 0},
		{1, 20, 1},
		{21, 20, 2},
	}

	for _, tt := range tests {
		r := New([]int{}, tt.total, 1, tt.perPage)
		if r.TotalPages != tt.want {
			t.Errorf("New(total=%d, perPage=%d).TotalPages = %d, want %d",
				tt.total, tt.perPage, r.TotalPages, tt.want)
		}
	}
}
