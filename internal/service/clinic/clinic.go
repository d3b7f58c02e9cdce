package clinic

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entclinic "github.com/clinovahq/clinova_backend/internal/repo/clinic"
	entmember "github.com/clinovahq/clinova_backend/internal/repo/clinicmember"
	entuser "github.com/clinovahq/clinova_backend/internal/repo/user"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateClinicRequest struct {
	Name    string
	Address *string
	Phone   *string
	Email   *string
}

type UpdateClinicRequest struct {
	Name     *string
	Address  *string
	Phone    *string
	Email    *string
	IsActive *bool
}

type ListClinicsRequest struct {
	Active  *bool
	Page    int
	PerPage int
}

type AddMemberRequest struct {
	UserID        uuid.UUID
	Role          string // admin | doctor | nurse | receptionist
	Title         *string
	LicenseNumber *string
}

type UpdateMemberRequest struct {
	Role          *string
	Title         *string
	LicenseNumber *string
	IsActive      *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create registers a clinic and makes the creator its first admin.
	Create(ctx context.Context, creatorID uuid.UUID, req CreateClinicRequest) (*repo.Clinic, error)
	GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error)
	List(ctx context.Context, req ListClinicsRequest) (*pagination.Result[*repo.Clinic], error)
	Update(ctx context.Context, clinicID, actorID uuid.UUID, req UpdateClinicRequest) (*repo.Clinic, error)

	ListMembers(ctx context.Context, clinicID uuid.UUID) ([]*repo.ClinicMember, error)
	GetMember(ctx context.Context, clinicID, memberID uuid.UUID) (*repo.ClinicMember, error)
	MemberByUser(ctx context.Context, clinicID, userID uuid.UUID) (*repo.ClinicMember, error)
	AddMember(ctx context.Context, clinicID, actorID uuid.UUID, req AddMemberRequest) (*repo.ClinicMember, error)
	UpdateMember(ctx context.Context, clinicID, actorID, memberID uuid.UUID, req UpdateMemberRequest) (*repo.ClinicMember, error)
	RemoveMember(ctx context.Context, clinicID, actorID, memberID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicService struct {
	db   *repo.Client
	auth authorize.IAuthorization
	aud  *audit.Publisher
}

func New(db *repo.Client, auth authorize.IAuthorization, aud *audit.Publisher) Service {
	return &clinicService{db: db, auth: auth, aud: aud}
}

func (s *clinicService) Create(ctx context.Context, creatorID uuid.UUID, req CreateClinicRequest) (*repo.Clinic, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrMissingName
	}

	c, err := s.db.Clinic.Create().
		SetName(strings.TrimSpace(req.Name)).
		SetNillableAddress(req.Address).
		SetNillablePhone(req.Phone).
		SetNillableEmail(req.Email).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}

	_, err = s.db.ClinicMember.Create().
		SetClinicID(c.ID).
		SetUserID(creatorID).
		SetRole(entmember.RoleAdmin).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create founding member: %w", err)
	}

	if err := authorize.AssignClinicRole(ctx, s.auth, creatorID.String(), c.ID.String(), authorize.RoleClinicAdmin); err != nil {
		return nil, fmt.Errorf("grant admin role: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &c.ID,
		ActorID:    creatorID,
		Action:     "create",
		EntityType: audit.EntityClinic,
		EntityID:   c.ID,
		Changes:    map[string]any{"name": c.Name},
	})
	return c, nil
}

func (s *clinicService) GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.ID(clinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) List(ctx context.Context, req ListClinicsRequest) (*pagination.Result[*repo.Clinic], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.Clinic.Query().
		Where(entclinic.DeletedAtIsNil())

	if req.Active != nil {
		q = q.Where(entclinic.IsActive(*req.Active))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clinics: %w", err)
	}

	clinics, err := q.
		Order(entclinic.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}

	return pagination.New(clinics, total, page, perPage), nil
}

func (s *clinicService) Update(ctx context.Context, clinicID, actorID uuid.UUID, req UpdateClinicRequest) (*repo.Clinic, error) {
	c, err := s.GetByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	u := s.db.Clinic.UpdateOne(c)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrMissingName
		}
		u = u.SetName(strings.TrimSpace(*req.Name))
		changes["name"] = *req.Name
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
		changes["address"] = *req.Address
	}
	if req.Phone != nil {
		u = u.SetNillablePhone(req.Phone)
		changes["phone"] = *req.Phone
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
		changes["email"] = *req.Email
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
		changes["is_active"] = *req.IsActive
	}

	c, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityClinic,
			EntityID:   c.ID,
			Changes:    changes,
		})
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

func (s *clinicService) ListMembers(ctx context.Context, clinicID uuid.UUID) ([]*repo.ClinicMember, error) {
	members, err := s.db.ClinicMember.Query().
		Where(entmember.ClinicID(clinicID)).
		WithUser().
		Order(entmember.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *clinicService) GetMember(ctx context.Context, clinicID, memberID uuid.UUID) (*repo.ClinicMember, error) {
	m, err := s.db.ClinicMember.Query().
		Where(entmember.ID(memberID), entmember.ClinicID(clinicID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (s *clinicService) MemberByUser(ctx context.Context, clinicID, userID uuid.UUID) (*repo.ClinicMember, error) {
	m, err := s.db.ClinicMember.Query().
		Where(entmember.ClinicID(clinicID), entmember.UserID(userID), entmember.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by user: %w", err)
	}
	return m, nil
}

func (s *clinicService) AddMember(ctx context.Context, clinicID, actorID uuid.UUID, req AddMemberRequest) (*repo.ClinicMember, error) {
	rbacRole, ok := authorize.ClinicMemberRoleToRBACRole[req.Role]
	if !ok {
		return nil, ErrInvalidRole
	}

	c, err := s.GetByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrClinicDeactivated
	}

	userExists, err := s.db.User.Query().
		Where(entuser.ID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		return nil, ErrUserNotFound
	}

	taken, err := s.db.ClinicMember.Query().
		Where(entmember.ClinicID(clinicID), entmember.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if taken {
		return nil, ErrAlreadyMember
	}

	m, err := s.db.ClinicMember.Create().
		SetClinicID(clinicID).
		SetUserID(req.UserID).
		SetRole(entmember.Role(req.Role)).
		SetNillableTitle(req.Title).
		SetNillableLicenseNumber(req.LicenseNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	if err := authorize.AssignClinicRole(ctx, s.auth, req.UserID.String(), clinicID.String(), rbacRole); err != nil {
		return nil, fmt.Errorf("grant member role: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityClinicMember,
		EntityID:   m.ID,
		Changes: map[string]any{
			"user_id": req.UserID.String(),
			"role":    req.Role,
		},
	})
	return m, nil
}

func (s *clinicService) UpdateMember(ctx context.Context, clinicID, actorID, memberID uuid.UUID, req UpdateMemberRequest) (*repo.ClinicMember, error) {
	m, err := s.GetMember(ctx, clinicID, memberID)
	if err != nil {
		return nil, err
	}

	demoting := req.Role != nil && *req.Role != m.Role.String()
	deactivating := req.IsActive != nil && !*req.IsActive && m.IsActive
	if m.Role == entmember.RoleAdmin && (demoting || deactivating) {
		if err := s.ensureAnotherAdmin(ctx, clinicID, m.ID); err != nil {
			return nil, err
		}
	}

	changes := map[string]any{}
	u := s.db.ClinicMember.UpdateOne(m)

	if req.Role != nil {
		newRole, ok := authorize.ClinicMemberRoleToRBACRole[*req.Role]
		if !ok {
			return nil, ErrInvalidRole
		}
		u = u.SetRole(entmember.Role(*req.Role))
		changes["role"] = *req.Role

		oldRole := authorize.ClinicMemberRoleToRBACRole[m.Role.String()]
		if oldRole != newRole {
			if err := authorize.RemoveClinicRole(ctx, s.auth, m.UserID.String(), clinicID.String(), oldRole); err != nil {
				return nil, fmt.Errorf("revoke member role: %w", err)
			}
			if err := authorize.AssignClinicRole(ctx, s.auth, m.UserID.String(), clinicID.String(), newRole); err != nil {
				return nil, fmt.Errorf("grant member role: %w", err)
			}
		}
	}
	if req.Title != nil {
		u = u.SetNillableTitle(req.Title)
		changes["title"] = *req.Title
	}
	if req.LicenseNumber != nil {
		u = u.SetNillableLicenseNumber(req.LicenseNumber)
		changes["license_number"] = *req.LicenseNumber
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
		changes["is_active"] = *req.IsActive
	}

	m, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityClinicMember,
			EntityID:   m.ID,
			Changes:    changes,
		})
	}
	return m, nil
}

func (s *clinicService) RemoveMember(ctx context.Context, clinicID, actorID, memberID uuid.UUID) error {
	m, err := s.GetMember(ctx, clinicID, memberID)
	if err != nil {
		return err
	}

	if m.Role == entmember.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, clinicID, m.ID); err != nil {
			return err
		}
	}

	role := authorize.ClinicMemberRoleToRBACRole[m.Role.String()]
	if err := authorize.RemoveClinicRole(ctx, s.auth, m.UserID.String(), clinicID.String(), role); err != nil {
		return fmt.Errorf("revoke member role: %w", err)
	}

	if err := s.db.ClinicMember.DeleteOne(m).Exec(ctx); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "delete",
		EntityType: audit.EntityClinicMember,
		EntityID:   m.ID,
		Changes:    map[string]any{"user_id": m.UserID.String()},
	})
	return nil
}

// ensureAnotherAdmin fails with ErrLastAdmin when no other active admin
// would remain in the clinic.
func (s *clinicService) ensureAnotherAdmin(ctx context.Context, clinicID, excludeMemberID uuid.UUID) error {
	n, err := s.db.ClinicMember.Query().
		Where(
			entmember.ClinicID(clinicID),
			entmember.RoleEQ(entmember.RoleAdmin),
			entmember.IsActive(true),
			entmember.IDNEQ(excludeMemberID),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n == 0 {
		return ErrLastAdmin
	}
	return nil
}
