package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/pkg/reqctx"
)

// mockClaims implements reqctx.AuthClaims for testing
type mockClaims struct {
	userID uuid.UUID
}

func (m *mockClaims) GetUserID() uuid.UUID     { return m.userID }
func (m *mockClaims) GetSessionID() *uuid.UUID { return nil }
func (m *mockClaims) GetTokenType() string     { return "access" }
func (m *mockClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: uuid.Nil})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics when no claims", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject when claims exist", func(t *testing.T) {
		validUUID := uuid.New()
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestDomainFromResource(t *testing.T) {
	clinicID := "clinic-123"
	userID := "user-456"

	tests := []struct {
		name       string
		clinicID   *string
		userID     *string
		wantDomain Domain
	}{
		{
			name:       "clinic domain when clinicID provided",
			clinicID:   &clinicID,
			userID:     nil,
			wantDomain: Domain("clinic:clinic-123"),
		},
		{
			name:       "user domain when userID provided",
			clinicID:   nil,
			userID:     &userID,
			wantDomain: Domain("user:user-456"),
		},
		{
			name:       "clinic takes precedence over user",
			clinicID:   &clinicID,
			userID:     &userID,
			wantDomain: Domain("clinic:clinic-123"),
		},
		{
			name:       "sys domain when neither provided",
			clinicID:   nil,
			userID:     nil,
			wantDomain: DomainSys,
		},
		{
			name:       "sys domain when empty strings provided",
			clinicID:   strPtr(""),
			userID:     strPtr(""),
			wantDomain: DomainSys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DomainFromResource(tt.clinicID, tt.userID)
			if result != tt.wantDomain {
				t.Errorf("DomainFromResource() = %q, want %q", result, tt.wantDomain)
			}
		})
	}
}

func TestDomainFromContext(t *testing.T) {
	userID := uuid.New()
	clinicID := uuid.New()

	t.Run("clinic domain when tenant is set", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: userID})
		ctx = reqctx.WithTenant(ctx, &reqctx.Tenant{ClinicID: clinicID})

		domain, err := DomainFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if domain != ClinicDomain(clinicID.String()) {
			t.Errorf("DomainFromContext() = %q, want %q", domain, ClinicDomain(clinicID.String()))
		}
	})

	t.Run("user domain without tenant", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: userID})

		domain, err := DomainFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if domain != UserDomain(userID.String()) {
			t.Errorf("DomainFromContext() = %q, want %q", domain, UserDomain(userID.String()))
		}
	})

	t.Run("error without claims", func(t *testing.T) {
		_, err := DomainFromContext(context.Background())
		if err == nil {
			t.Error("Expected error but got nil")
		}
	})
}

func strPtr(s string) *string {
	return &s
}
