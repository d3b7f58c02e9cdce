package prescription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	entrx "github.com/clinovahq/clinova_backend/internal/repo/prescription"
	entvisit "github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
)

// MaxRefills caps how many refills a single prescription may authorize.
const MaxRefills = 12

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID      uuid.UUID
	VisitID        *uuid.UUID
	ProviderID     uuid.UUID
	MedicationName string
	GenericName    *string
	BrandName      *string
	Dosage         string
	Frequency      string
	Route          string
	Duration       string
	Quantity       int
	Refills        int
	Instructions   *string
	Notes          *string
}

type UpdateRequest struct {
	Dosage       *string
	Frequency    *string
	Route        *string
	Duration     *string
	Quantity     *int
	Refills      *int
	Instructions *string
	Notes        *string
}

type SearchRequest struct {
	PatientID *uuid.UUID
	VisitID   *uuid.UUID
	Status    *string
	// Token matches medication, generic and brand names.
	Token   string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create returns the prescription and any allergy warnings for the
	// patient. Warnings do not block creation.
	Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Prescription, []string, error)
	GetByID(ctx context.Context, clinicID, rxID uuid.UUID) (*repo.Prescription, error)
	Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Prescription], error)
	Update(ctx context.Context, clinicID, actorID, rxID uuid.UUID, req UpdateRequest) (*repo.Prescription, error)
	Discontinue(ctx context.Context, clinicID, actorID, rxID uuid.UUID, reason string) (*repo.Prescription, error)
	Complete(ctx context.Context, clinicID, actorID, rxID uuid.UUID) (*repo.Prescription, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type prescriptionService struct {
	db  *repo.Client
	aud *audit.Publisher
}

func New(db *repo.Client, aud *audit.Publisher) Service {
	return &prescriptionService{db: db, aud: aud}
}

func (s *prescriptionService) Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Prescription, []string, error) {
	if strings.TrimSpace(req.MedicationName) == "" ||
		strings.TrimSpace(req.Dosage) == "" ||
		strings.TrimSpace(req.Frequency) == "" ||
		strings.TrimSpace(req.Route) == "" ||
		strings.TrimSpace(req.Duration) == "" {
		return nil, nil, ErrMissingFields
	}
	if req.Quantity < 1 {
		return nil, nil, ErrInvalidQuantity
	}
	if req.Refills < 0 || req.Refills > MaxRefills {
		return nil, nil, ErrInvalidRefills
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrPatientNotFound
		}
		return nil, nil, fmt.Errorf("get patient: %w", err)
	}

	if req.VisitID != nil {
		v, err := s.db.Visit.Query().
			Where(entvisit.ID(*req.VisitID), entvisit.ClinicID(clinicID), entvisit.PatientID(req.PatientID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, nil, ErrVisitNotFound
			}
			return nil, nil, fmt.Errorf("get visit: %w", err)
		}
		if v.Locked {
			return nil, nil, ErrVisitLocked
		}
	}

	names := []string{req.MedicationName}
	if req.GenericName != nil {
		names = append(names, *req.GenericName)
	}
	if req.BrandName != nil {
		names = append(names, *req.BrandName)
	}
	warnings := CheckAllergies(p.Allergies, names...)

	c := s.db.Prescription.Create().
		SetClinicID(clinicID).
		SetPatientID(req.PatientID).
		SetProviderID(req.ProviderID).
		SetMedicationName(strings.TrimSpace(req.MedicationName)).
		SetDosage(req.Dosage).
		SetFrequency(req.Frequency).
		SetRoute(req.Route).
		SetDuration(req.Duration).
		SetQuantity(req.Quantity).
		SetRefills(req.Refills).
		SetNillableVisitID(req.VisitID).
		SetNillableGenericName(req.GenericName).
		SetNillableBrandName(req.BrandName).
		SetNillableInstructions(req.Instructions).
		SetNillableNotes(req.Notes)

	rx, err := c.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create prescription: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityPrescription,
		EntityID:   rx.ID,
		Changes: map[string]any{
			"patient_id": rx.PatientID.String(),
			"medication": rx.MedicationName,
			"dosage":     rx.Dosage,
		},
	})

	return rx, warnings, nil
}

func (s *prescriptionService) GetByID(ctx context.Context, clinicID, rxID uuid.UUID) (*repo.Prescription, error) {
	rx, err := s.db.Prescription.Query().
		Where(entrx.ID(rxID), entrx.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return rx, nil
}

func (s *prescriptionService) Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Prescription], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.Prescription.Query().
		Where(entrx.ClinicID(clinicID))

	if req.PatientID != nil {
		q = q.Where(entrx.PatientID(*req.PatientID))
	}
	if req.VisitID != nil {
		q = q.Where(entrx.VisitID(*req.VisitID))
	}
	if req.Status != nil {
		if entrx.StatusValidator(entrx.Status(*req.Status)) != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entrx.StatusEQ(entrx.Status(*req.Status)))
	}
	if token := strings.TrimSpace(req.Token); token != "" {
		q = q.Where(entrx.Or(
			entrx.MedicationNameContainsFold(token),
			entrx.GenericNameContainsFold(token),
			entrx.BrandNameContainsFold(token),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prescriptions: %w", err)
	}

	rxs, err := q.
		Order(entrx.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search prescriptions: %w", err)
	}

	return pagination.New(rxs, total, page, perPage), nil
}

func (s *prescriptionService) Update(ctx context.Context, clinicID, actorID, rxID uuid.UUID, req UpdateRequest) (*repo.Prescription, error) {
	rx, err := s.GetByID(ctx, clinicID, rxID)
	if err != nil {
		return nil, err
	}
	if rx.Status != entrx.StatusActive {
		return nil, ErrNotActive
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if req.Refills != nil && (*req.Refills < 0 || *req.Refills > MaxRefills) {
		return nil, ErrInvalidRefills
	}

	changes := map[string]any{}
	u := s.db.Prescription.UpdateOne(rx)

	if req.Dosage != nil {
		u = u.SetDosage(*req.Dosage)
		changes["dosage"] = *req.Dosage
	}
	if req.Frequency != nil {
		u = u.SetFrequency(*req.Frequency)
		changes["frequency"] = *req.Frequency
	}
	if req.Route != nil {
		u = u.SetRoute(*req.Route)
		changes["route"] = *req.Route
	}
	if req.Duration != nil {
		u = u.SetDuration(*req.Duration)
		changes["duration"] = *req.Duration
	}
	if req.Quantity != nil {
		u = u.SetQuantity(*req.Quantity)
		changes["quantity"] = *req.Quantity
	}
	if req.Refills != nil {
		u = u.SetRefills(*req.Refills)
		changes["refills"] = *req.Refills
	}
	if req.Instructions != nil {
		u = u.SetNillableInstructions(req.Instructions)
		changes["instructions"] = *req.Instructions
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	rx, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update prescription: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityPrescription,
			EntityID:   rx.ID,
			Changes:    changes,
		})
	}
	return rx, nil
}

func (s *prescriptionService) Discontinue(ctx context.Context, clinicID, actorID, rxID uuid.UUID, reason string) (*repo.Prescription, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}

	rx, err := s.GetByID(ctx, clinicID, rxID)
	if err != nil {
		return nil, err
	}
	if rx.Status != entrx.StatusActive {
		return nil, ErrNotActive
	}

	rx, err = s.db.Prescription.UpdateOne(rx).
		SetStatus(entrx.StatusDiscontinued).
		SetDiscontinuedReason(reason).
		SetDiscontinuedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("discontinue prescription: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "discontinue",
		EntityType: audit.EntityPrescription,
		EntityID:   rx.ID,
		Changes:    map[string]any{"reason": reason},
	})
	return rx, nil
}

func (s *prescriptionService) Complete(ctx context.Context, clinicID, actorID, rxID uuid.UUID) (*repo.Prescription, error) {
	rx, err := s.GetByID(ctx, clinicID, rxID)
	if err != nil {
		return nil, err
	}
	if rx.Status != entrx.StatusActive {
		return nil, ErrNotActive
	}

	rx, err = s.db.Prescription.UpdateOne(rx).
		SetStatus(entrx.StatusCompleted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete prescription: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "complete",
		EntityType: audit.EntityPrescription,
		EntityID:   rx.ID,
	})
	return rx, nil
}
