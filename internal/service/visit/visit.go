package visit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	entvisit "github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
)

// SubjectFollowUpScheduled carries FollowUpEvent payloads consumed by the
// reminder worker.
const SubjectFollowUpScheduled = "clinova.visit.followup"

// FollowUpEvent is published when a visit is saved with a follow-up date.
type FollowUpEvent struct {
	VisitID   uuid.UUID `json:"visit_id"`
	ClinicID  uuid.UUID `json:"clinic_id"`
	PatientID uuid.UUID `json:"patient_id"`
	DueAt     time.Time `json:"due_at"`
	Reason    string    `json:"reason,omitempty"`
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID      uuid.UUID
	ProviderID     uuid.UUID
	VisitType      string
	VisitDate      *time.Time
	ChiefComplaint *string
	Vitals         Vitals
	Subjective     *string
	Objective      *string
	Assessment     *string
	Plan           *string
	PrimaryDx      *string
	SecondaryDx    []string
	ICD10Codes     []string
	FollowUpDate   *time.Time
	FollowUpReason *string
	Notes          *string
}

type UpdateRequest struct {
	VisitType      *string
	VisitDate      *time.Time
	ChiefComplaint *string
	Vitals         *Vitals
	Subjective     *string
	Objective      *string
	Assessment     *string
	Plan           *string
	PrimaryDx      *string
	SecondaryDx    []string
	ICD10Codes     []string
	FollowUpDate   *time.Time
	FollowUpReason *string
	Notes          *string
}

type SearchRequest struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	VisitType  *string
	From       *time.Time
	To         *time.Time
	Locked     *bool
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Visit, error)
	GetByID(ctx context.Context, clinicID, visitID uuid.UUID) (*repo.Visit, error)
	Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Visit], error)
	Update(ctx context.Context, clinicID, actorID, visitID uuid.UUID, req UpdateRequest) (*repo.Visit, error)
	// Lock makes the visit record immutable. Locking is terminal.
	Lock(ctx context.Context, clinicID, actorID, visitID uuid.UUID) (*repo.Visit, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type visitService struct {
	db  *repo.Client
	nc  *nats.Conn
	aud *audit.Publisher
}

func New(db *repo.Client, nc *nats.Conn, aud *audit.Publisher) Service {
	return &visitService{db: db, nc: nc, aud: aud}
}

func (s *visitService) Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Visit, error) {
	if req.ProviderID == uuid.Nil {
		return nil, ErrMissingProvider
	}
	if err := req.Vitals.Validate(); err != nil {
		return nil, err
	}

	// The patient must exist, be active in this clinic and not deleted.
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	visitDate := time.Now().UTC()
	if req.VisitDate != nil {
		visitDate = *req.VisitDate
	}
	if req.FollowUpDate != nil && req.FollowUpDate.Before(visitDate) {
		return nil, ErrFollowUpInPast
	}

	c := s.db.Visit.Create().
		SetClinicID(clinicID).
		SetPatientID(req.PatientID).
		SetProviderID(req.ProviderID).
		SetVisitDate(visitDate)

	if req.VisitType != "" {
		c = c.SetVisitType(req.VisitType)
	}
	c = applyVitalsCreate(c, req.Vitals).
		SetNillableChiefComplaint(req.ChiefComplaint).
		SetNillableSubjective(req.Subjective).
		SetNillableObjective(req.Objective).
		SetNillableAssessment(req.Assessment).
		SetNillablePlan(req.Plan).
		SetNillablePrimaryDiagnosis(req.PrimaryDx).
		SetNillableFollowUpDate(req.FollowUpDate).
		SetNillableFollowUpReason(req.FollowUpReason).
		SetNillableNotes(req.Notes)

	if req.SecondaryDx != nil {
		c = c.SetSecondaryDiagnoses(req.SecondaryDx)
	}
	if req.ICD10Codes != nil {
		c = c.SetIcd10Codes(req.ICD10Codes)
	}

	v, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityVisit,
		EntityID:   v.ID,
		Changes: map[string]any{
			"patient_id": v.PatientID.String(),
			"visit_type": v.VisitType,
			"visit_date": v.VisitDate.Format(time.RFC3339),
		},
	})
	s.publishFollowUp(v)

	return v, nil
}

func (s *visitService) GetByID(ctx context.Context, clinicID, visitID uuid.UUID) (*repo.Visit, error) {
	v, err := s.db.Visit.Query().
		Where(entvisit.ID(visitID), entvisit.ClinicID(clinicID)).
		WithPatient().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVisitNotFound
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return v, nil
}

func (s *visitService) Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Visit], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.Visit.Query().
		Where(entvisit.ClinicID(clinicID))

	if req.PatientID != nil {
		q = q.Where(entvisit.PatientID(*req.PatientID))
	}
	if req.ProviderID != nil {
		q = q.Where(entvisit.ProviderID(*req.ProviderID))
	}
	if req.VisitType != nil {
		q = q.Where(entvisit.VisitType(*req.VisitType))
	}
	if req.From != nil {
		q = q.Where(entvisit.VisitDateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entvisit.VisitDateLT(*req.To))
	}
	if req.Locked != nil {
		q = q.Where(entvisit.Locked(*req.Locked))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	visits, err := q.
		Order(entvisit.ByVisitDate(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search visits: %w", err)
	}

	return pagination.New(visits, total, page, perPage), nil
}

func (s *visitService) Update(ctx context.Context, clinicID, actorID, visitID uuid.UUID, req UpdateRequest) (*repo.Visit, error) {
	v, err := s.GetByID(ctx, clinicID, visitID)
	if err != nil {
		return nil, err
	}
	if v.Locked {
		return nil, ErrVisitLocked
	}
	if req.Vitals != nil {
		if err := req.Vitals.Validate(); err != nil {
			return nil, err
		}
	}

	changes := map[string]any{}
	u := s.db.Visit.UpdateOne(v)

	if req.VisitType != nil {
		u = u.SetVisitType(*req.VisitType)
		changes["visit_type"] = *req.VisitType
	}
	if req.VisitDate != nil {
		u = u.SetVisitDate(*req.VisitDate)
		changes["visit_date"] = req.VisitDate.Format(time.RFC3339)
	}
	if req.ChiefComplaint != nil {
		u = u.SetNillableChiefComplaint(req.ChiefComplaint)
		changes["chief_complaint"] = *req.ChiefComplaint
	}
	if req.Vitals != nil {
		u = applyVitalsUpdate(u, *req.Vitals)
		changes["vitals"] = "updated"
	}
	if req.Subjective != nil {
		u = u.SetNillableSubjective(req.Subjective)
		changes["subjective"] = "updated"
	}
	if req.Objective != nil {
		u = u.SetNillableObjective(req.Objective)
		changes["objective"] = "updated"
	}
	if req.Assessment != nil {
		u = u.SetNillableAssessment(req.Assessment)
		changes["assessment"] = "updated"
	}
	if req.Plan != nil {
		u = u.SetNillablePlan(req.Plan)
		changes["plan"] = "updated"
	}
	if req.PrimaryDx != nil {
		u = u.SetNillablePrimaryDiagnosis(req.PrimaryDx)
		changes["primary_diagnosis"] = *req.PrimaryDx
	}
	if req.SecondaryDx != nil {
		u = u.SetSecondaryDiagnoses(req.SecondaryDx)
		changes["secondary_diagnoses"] = req.SecondaryDx
	}
	if req.ICD10Codes != nil {
		u = u.SetIcd10Codes(req.ICD10Codes)
		changes["icd10_codes"] = req.ICD10Codes
	}
	if req.FollowUpDate != nil {
		if req.FollowUpDate.Before(time.Now()) {
			return nil, ErrFollowUpInPast
		}
		u = u.SetFollowUpDate(*req.FollowUpDate)
		changes["follow_up_date"] = req.FollowUpDate.Format(time.RFC3339)
	}
	if req.FollowUpReason != nil {
		u = u.SetNillableFollowUpReason(req.FollowUpReason)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	v, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update visit: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityVisit,
			EntityID:   v.ID,
			Changes:    changes,
		})
	}
	if req.FollowUpDate != nil {
		s.publishFollowUp(v)
	}

	return v, nil
}

func (s *visitService) Lock(ctx context.Context, clinicID, actorID, visitID uuid.UUID) (*repo.Visit, error) {
	v, err := s.GetByID(ctx, clinicID, visitID)
	if err != nil {
		return nil, err
	}
	if v.Locked {
		return nil, ErrVisitLocked
	}

	v, err = s.db.Visit.UpdateOne(v).
		SetLocked(true).
		SetLockedAt(time.Now().UTC()).
		SetLockedBy(actorID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock visit: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "lock",
		EntityType: audit.EntityVisit,
		EntityID:   v.ID,
	})
	return v, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *visitService) publishFollowUp(v *repo.Visit) {
	if s.nc == nil || v.FollowUpDate == nil {
		return
	}
	ev := FollowUpEvent{
		VisitID:   v.ID,
		ClinicID:  v.ClinicID,
		PatientID: v.PatientID,
		DueAt:     *v.FollowUpDate,
	}
	if v.FollowUpReason != nil {
		ev.Reason = *v.FollowUpReason
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_ = s.nc.Publish(SubjectFollowUpScheduled, payload)
}

func applyVitalsCreate(c *repo.VisitCreate, v Vitals) *repo.VisitCreate {
	return c.
		SetNillableBpSystolic(v.BPSystolic).
		SetNillableBpDiastolic(v.BPDiastolic).
		SetNillableHeartRate(v.HeartRate).
		SetNillableRespiratoryRate(v.RespiratoryRate).
		SetNillableTemperature(v.Temperature).
		SetNillableOxygenSaturation(v.OxygenSaturation).
		SetNillableWeight(v.WeightKg).
		SetNillableHeight(v.HeightCm).
		SetNillablePainScale(v.PainScale)
}

func applyVitalsUpdate(u *repo.VisitUpdateOne, v Vitals) *repo.VisitUpdateOne {
	return u.
		SetNillableBpSystolic(v.BPSystolic).
		SetNillableBpDiastolic(v.BPDiastolic).
		SetNillableHeartRate(v.HeartRate).
		SetNillableRespiratoryRate(v.RespiratoryRate).
		SetNillableTemperature(v.Temperature).
		SetNillableOxygenSaturation(v.OxygenSaturation).
		SetNillableWeight(v.WeightKg).
		SetNillableHeight(v.HeightCm).
		SetNillablePainScale(v.PainScale)
}
