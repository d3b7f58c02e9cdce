package visit

import (
	"errors"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestVitalsValidate(t *testing.T) {
	tests := []struct {
		name    string
		vitals  Vitals
		wantErr bool
		field   string
	}{
		{
			name:   "empty vitals",
			vitals: Vitals{},
		},
		{
			name: "normal adult",
			vitals: Vitals{
				BPSystolic:       intPtr(120),
				BPDiastolic:      intPtr(80),
				HeartRate:        intPtr(72),
				RespiratoryRate:  intPtr(16),
				Temperature:      floatPtr(36.8),
				OxygenSaturation: intPtr(98),
				WeightKg:         floatPtr(70.5),
				HeightCm:         floatPtr(175),
				PainScale:        intPtr(2),
			},
		},
		{
			name:    "systolic too high",
			vitals:  Vitals{BPSystolic: intPtr(310)},
			wantErr: true,
			field:   "bp_systolic",
		},
		{
			name:    "systolic too low",
			vitals:  Vitals{BPSystolic: intPtr(40)},
			wantErr: true,
			field:   "bp_systolic",
		},
		{
			// Fields are independent; an inverted BP reading is still
			// within each bound and must be accepted as entered.
			name:   "diastolic above systolic accepted",
			vitals: Vitals{BPSystolic: intPtr(110), BPDiastolic: intPtr(120)},
		},
		{
			name:    "heart rate out of range",
			vitals:  Vitals{HeartRate: intPtr(250)},
			wantErr: true,
			field:   "heart_rate",
		},
		{
			name:    "temperature too low",
			vitals:  Vitals{Temperature: floatPtr(25.0)},
			wantErr: true,
			field:   "temperature",
		},
		{
			name:    "oxygen saturation over 100",
			vitals:  Vitals{OxygenSaturation: intPtr(101)},
			wantErr: true,
			field:   "oxygen_saturation",
		},
		{
			name:   "boundary values pass",
			vitals: Vitals{BPSystolic: intPtr(300), Temperature: floatPtr(45.0), PainScale: intPtr(10)},
		},
		{
			name:    "pain scale negative",
			vitals:  Vitals{PainScale: intPtr(-1)},
			wantErr: true,
			field:   "pain_scale",
		},
		{
			name:    "weight too low",
			vitals:  Vitals{WeightKg: floatPtr(0.1)},
			wantErr: true,
			field:   "weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vitals.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrVitalsOutOfRange) {
					t.Errorf("expected ErrVitalsOutOfRange, got %v", err)
				}
				if tt.field != "" && !strings.Contains(err.Error(), tt.field) {
					t.Errorf("error %q does not mention field %q", err, tt.field)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
