package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// Admin: full control within the clinic
		{RoleClinicAdmin, WildcardDomain, ResourceClinic, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceClinicMember, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePatient, ActionRestore, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceVisit, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceVisit, ActionLock, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePrescription, ActionRead, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePrescription, ActionList, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceInvoice, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePayment, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRefund, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAudit, ActionRead, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAudit, ActionList, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Doctor: clinical records, no deletion, no billing writes
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceVisit, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceVisit, ActionLock, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePrescription, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePrescription, ActionDiscontinue, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePrescription, ActionComplete, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceInvoice, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceInvoice, ActionList, EffectAllow},

		// Nurse: patient intake and visit documentation, read-only elsewhere
		{RoleClinicNurse, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourceVisit, ActionCreate, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourceVisit, ActionRead, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourceVisit, ActionList, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourcePrescription, ActionRead, EffectAllow},
		{RoleClinicNurse, WildcardDomain, ResourcePrescription, ActionList, EffectAllow},

		// Receptionist: registration and the front desk billing flow
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionList, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceInvoice, ActionManage, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePayment, ActionManage, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceRefund, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceOTP, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicRole assigns a clinic role to a user for a specific clinic.
// Call this when creating or updating a clinic membership.
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	switch role {
	case RoleClinicAdmin, RoleClinicDoctor, RoleClinicNurse, RoleClinicReceptionist:
	default:
		return ErrInvalidArgs
	}

	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveClinicRole removes a clinic role from a user for a specific clinic.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSuperAdminRole grants the platform superadmin role.
// Assign manually and with caution.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
