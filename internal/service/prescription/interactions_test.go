package prescription

import (
	"strings"
	"testing"
)

func TestCheckAllergies(t *testing.T) {
	tests := []struct {
		name      string
		allergies []string
		meds      []string
		want      int
	}{
		{
			name:      "no allergies",
			allergies: nil,
			meds:      []string{"Amoxicillin"},
			want:      0,
		},
		{
			name:      "exact match",
			allergies: []string{"Penicillin"},
			meds:      []string{"penicillin"},
			want:      1,
		},
		{
			name:      "allergy contained in medication",
			allergies: []string{"sulfa"},
			meds:      []string{"Sulfamethoxazole"},
			want:      1,
		},
		{
			name:      "medication contained in allergy",
			allergies: []string{"aspirin and NSAIDs"},
			meds:      []string{"Aspirin"},
			want:      1,
		},
		{
			name:      "no overlap",
			allergies: []string{"Penicillin", "Latex"},
			meds:      []string{"Metformin"},
			want:      0,
		},
		{
			name:      "generic name triggers",
			allergies: []string{"ibuprofen"},
			meds:      []string{"Advil", "Ibuprofen"},
			want:      1,
		},
		{
			name:      "two allergies both match",
			allergies: []string{"penicillin", "amoxicillin"},
			meds:      []string{"Amoxicillin-Penicillin Combo"},
			want:      2,
		},
		{
			name:      "blank entries ignored",
			allergies: []string{"", "  "},
			meds:      []string{"Amoxicillin", ""},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAllergies(tt.allergies, tt.meds...)
			if len(got) != tt.want {
				t.Errorf("CheckAllergies() = %d warnings %v, want %d", len(got), got, tt.want)
			}
			for _, w := range got {
				if !strings.Contains(w, "allergy") {
					t.Errorf("warning %q does not mention allergy", w)
				}
			}
		})
	}
}
