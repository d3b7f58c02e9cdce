package prescription

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateInputValidation(t *testing.T) {
	svc := New(nil, nil)

	base := CreateRequest{
		PatientID:      uuid.New(),
		ProviderID:     uuid.New(),
		MedicationName: "Amoxicillin",
		Dosage:         "500mg",
		Frequency:      "three times daily",
		Route:          "oral",
		Duration:       "7 days",
		Quantity:       21,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateRequest)
		wantErr error
	}{
		{
			name:    "missing medication name",
			mutate:  func(r *CreateRequest) { r.MedicationName = "  " },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing dosage",
			mutate:  func(r *CreateRequest) { r.Dosage = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *CreateRequest) { r.Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative refills",
			mutate:  func(r *CreateRequest) { r.Refills = -1 },
			wantErr: ErrInvalidRefills,
		},
		{
			name:    "refills above cap",
			mutate:  func(r *CreateRequest) { r.Refills = MaxRefills + 1 },
			wantErr: ErrInvalidRefills,
		},
		{
			name:    "refills far above cap",
			mutate:  func(r *CreateRequest) { r.Refills = 50 },
			wantErr: ErrInvalidRefills,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, _, err := svc.Create(context.Background(), uuid.New(), uuid.New(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
