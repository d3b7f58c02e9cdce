package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Tenant holds the clinic scope resolved by the tenant middleware from the
// X-Clinic-ID header and the caller's membership.
type Tenant struct {
	// ClinicID is the clinic the request operates on.
	ClinicID uuid.UUID

	// MemberID is the caller's clinic_members row ID.
	MemberID uuid.UUID

	// Role is the caller's membership role (admin, doctor, nurse, receptionist).
	Role string
}

// WithTenant stores tenant info in the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, keyTenant, t)
}

// TenantFromContext retrieves tenant info from the context.
// Returns nil, false if the request is not clinic-scoped.
func TenantFromContext(ctx context.Context) (*Tenant, bool) {
	v := ctx.Value(keyTenant)
	if v == nil {
		return nil, false
	}
	t, ok := v.(*Tenant)
	return t, ok
}

// MustTenant retrieves tenant info from the context.
// Panics if not set. Use only after the tenant middleware.
func MustTenant(ctx context.Context) *Tenant {
	t, ok := TenantFromContext(ctx)
	if !ok || t == nil {
		panic("reqctx: Tenant not found in context")
	}
	return t
}

// ClinicIDFromContext returns the clinic ID, or uuid.Nil if not clinic-scoped.
func ClinicIDFromContext(ctx context.Context) uuid.UUID {
	t, ok := TenantFromContext(ctx)
	if !ok || t == nil {
		return uuid.Nil
	}
	return t.ClinicID
}
