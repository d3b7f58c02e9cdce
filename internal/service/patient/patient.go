package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	entrx "github.com/clinovahq/clinova_backend/internal/repo/prescription"
	entvisit "github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
	"github.com/clinovahq/clinova_backend/pkg/crypto"
)

// defaultPhoneRegion is used when a phone number is given without a
// country prefix.
const defaultPhoneRegion = "IR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	FirstName              string
	LastName               string
	DateOfBirth            *time.Time
	Gender                 *string
	Phone                  string
	Email                  *string
	Address                *string
	EmergencyContactName   *string
	EmergencyContactPhone  *string
	EmergencyContactRel    *string
	BloodType              *string
	Allergies              []string
	ChronicConditions      []string
	CurrentMedications     []string
	FamilyHistory          *string
	InsuranceProvider      *string
	InsurancePolicyNumber  *string
	InsuranceExpiry        *time.Time
	Notes                  *string
}

type UpdateRequest struct {
	FirstName              *string
	LastName               *string
	DateOfBirth            *time.Time
	Gender                 *string
	Phone                  *string
	Email                  *string
	Address                *string
	EmergencyContactName   *string
	EmergencyContactPhone  *string
	EmergencyContactRel    *string
	BloodType              *string
	Allergies              []string
	ChronicConditions      []string
	CurrentMedications     []string
	FamilyHistory          *string
	InsuranceProvider      *string
	InsurancePolicyNumber  *string
	InsuranceExpiry        *time.Time
	Notes                  *string
}

type SearchRequest struct {
	// Token matches code, first name, last name and phone. Email is only
	// matched when the token contains an "@".
	Token   string
	Status  *string
	Page    int
	PerPage int
}

// SearchRow is one search result with its activity counts.
type SearchRow struct {
	*repo.Patient
	VisitCount        int `json:"visit_count"`
	PrescriptionCount int `json:"prescription_count"`
}

type Stats struct {
	Total         int
	Active        int
	Inactive      int
	NewLast30Days int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, clinicID, actorID uuid.UUID, req RegisterRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error)
	GetByCode(ctx context.Context, clinicID uuid.UUID, code string) (*repo.Patient, error)
	Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*SearchRow], error)
	Update(ctx context.Context, clinicID, actorID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	SetStatus(ctx context.Context, clinicID, actorID, patientID uuid.UUID, status string) (*repo.Patient, error)
	SoftDelete(ctx context.Context, clinicID, actorID, patientID uuid.UUID) error
	Restore(ctx context.Context, clinicID, actorID, patientID uuid.UUID) (*repo.Patient, error)
	Stats(ctx context.Context, clinicID uuid.UUID) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	aud    *audit.Publisher
	encKey []byte
}

func New(db *repo.Client, aud *audit.Publisher, encryptionKey []byte) Service {
	return &patientService{db: db, aud: aud, encKey: encryptionKey}
}

func (s *patientService) Register(ctx context.Context, clinicID, actorID uuid.UUID, req RegisterRequest) (*repo.Patient, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrMissingName
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, clinicID, phone, req.Email, nil); err != nil {
		return nil, err
	}

	code, err := s.nextCode(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	c := s.db.Patient.Create().
		SetClinicID(clinicID).
		SetCode(code).
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetPhone(phone)

	if req.Gender != nil {
		if entpatient.GenderValidator(entpatient.Gender(*req.Gender)) != nil {
			return nil, ErrInvalidGender
		}
		c = c.SetGender(entpatient.Gender(*req.Gender))
	}
	c = c.SetNillableDateOfBirth(req.DateOfBirth).
		SetNillableEmail(req.Email).
		SetNillableAddress(req.Address).
		SetNillableEmergencyContactName(req.EmergencyContactName).
		SetNillableEmergencyContactPhone(req.EmergencyContactPhone).
		SetNillableEmergencyContactRelation(req.EmergencyContactRel).
		SetNillableBloodType(req.BloodType).
		SetNillableFamilyHistory(req.FamilyHistory).
		SetNillableInsuranceProvider(req.InsuranceProvider).
		SetNillableInsuranceExpiry(req.InsuranceExpiry).
		SetNillableNotes(req.Notes)

	if req.Allergies != nil {
		c = c.SetAllergies(req.Allergies)
	}
	if req.ChronicConditions != nil {
		c = c.SetChronicConditions(req.ChronicConditions)
	}
	if req.CurrentMedications != nil {
		c = c.SetCurrentMedications(req.CurrentMedications)
	}

	if req.InsurancePolicyNumber != nil && *req.InsurancePolicyNumber != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.InsurancePolicyNumber)
		if err != nil {
			return nil, ErrEncryptionFailed
		}
		c = c.SetInsurancePolicyNumber(enc)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("register patient: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityPatient,
		EntityID:   p.ID,
		Changes: map[string]any{
			"code":       p.Code,
			"first_name": p.FirstName,
			"last_name":  p.LastName,
			"phone":      p.Phone,
		},
	})

	s.decryptInsurance(p)
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	s.decryptInsurance(p)
	return p, nil
}

func (s *patientService) GetByCode(ctx context.Context, clinicID uuid.UUID, code string) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.Code(code), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by code: %w", err)
	}
	s.decryptInsurance(p)
	return p, nil
}

func (s *patientService) Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*SearchRow], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil())

	if token := strings.TrimSpace(req.Token); token != "" {
		preds := []predicate.Patient{
			entpatient.CodeContainsFold(token),
			entpatient.FirstNameContainsFold(token),
			entpatient.LastNameContainsFold(token),
			entpatient.PhoneContains(token),
		}
		if strings.Contains(token, "@") {
			preds = append(preds, entpatient.EmailContainsFold(token))
		}
		q = q.Where(entpatient.Or(preds...))
	}
	if req.Status != nil {
		if entpatient.StatusValidator(entpatient.Status(*req.Status)) != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entpatient.StatusEQ(entpatient.Status(*req.Status)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}

	rows, err := s.attachCounts(ctx, patients)
	if err != nil {
		return nil, err
	}

	return pagination.New(rows, total, page, perPage), nil
}

// attachCounts decorates the page of patients with their visit and
// prescription counts, one grouped query per association.
func (s *patientService) attachCounts(ctx context.Context, patients []*repo.Patient) ([]*SearchRow, error) {
	ids := make([]uuid.UUID, 0, len(patients))
	for _, p := range patients {
		s.decryptInsurance(p)
		ids = append(ids, p.ID)
	}

	type groupCount struct {
		PatientID uuid.UUID `json:"patient_id"`
		Count     int       `json:"count"`
	}

	visitCounts := make(map[uuid.UUID]int, len(ids))
	if len(ids) > 0 {
		var vc []groupCount
		if err := s.db.Visit.Query().
			Where(entvisit.PatientIDIn(ids...)).
			GroupBy(entvisit.FieldPatientID).
			Aggregate(repo.Count()).
			Scan(ctx, &vc); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
		for _, c := range vc {
			visitCounts[c.PatientID] = c.Count
		}
	}

	rxCounts := make(map[uuid.UUID]int, len(ids))
	if len(ids) > 0 {
		var rc []groupCount
		if err := s.db.Prescription.Query().
			Where(entrx.PatientIDIn(ids...)).
			GroupBy(entrx.FieldPatientID).
			Aggregate(repo.Count()).
			Scan(ctx, &rc); err != nil {
			return nil, fmt.Errorf("count prescriptions: %w", err)
		}
		for _, c := range rc {
			rxCounts[c.PatientID] = c.Count
		}
	}

	rows := make([]*SearchRow, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, &SearchRow{
			Patient:           p,
			VisitCount:        visitCounts[p.ID],
			PrescriptionCount: rxCounts[p.ID],
		})
	}
	return rows, nil
}

func (s *patientService) Update(ctx context.Context, clinicID, actorID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	u := s.db.Patient.UpdateOne(p)

	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		if err := s.checkUnique(ctx, clinicID, phone, nil, &patientID); err != nil {
			return nil, err
		}
		u = u.SetPhone(phone)
		changes["phone"] = phone
	}
	if req.Email != nil {
		if err := s.checkUnique(ctx, clinicID, "", req.Email, &patientID); err != nil {
			return nil, err
		}
		u = u.SetNillableEmail(req.Email)
		changes["email"] = *req.Email
	}
	if req.FirstName != nil {
		u = u.SetFirstName(strings.TrimSpace(*req.FirstName))
		changes["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		u = u.SetLastName(strings.TrimSpace(*req.LastName))
		changes["last_name"] = *req.LastName
	}
	if req.Gender != nil {
		if entpatient.GenderValidator(entpatient.Gender(*req.Gender)) != nil {
			return nil, ErrInvalidGender
		}
		u = u.SetGender(entpatient.Gender(*req.Gender))
		changes["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		u = u.SetDateOfBirth(*req.DateOfBirth)
		changes["date_of_birth"] = req.DateOfBirth.Format(time.DateOnly)
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
		changes["address"] = *req.Address
	}
	if req.EmergencyContactName != nil {
		u = u.SetNillableEmergencyContactName(req.EmergencyContactName)
		changes["emergency_contact_name"] = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		u = u.SetNillableEmergencyContactPhone(req.EmergencyContactPhone)
		changes["emergency_contact_phone"] = *req.EmergencyContactPhone
	}
	if req.EmergencyContactRel != nil {
		u = u.SetNillableEmergencyContactRelation(req.EmergencyContactRel)
		changes["emergency_contact_relation"] = *req.EmergencyContactRel
	}
	if req.BloodType != nil {
		u = u.SetNillableBloodType(req.BloodType)
		changes["blood_type"] = *req.BloodType
	}
	if req.Allergies != nil {
		u = u.SetAllergies(req.Allergies)
		changes["allergies"] = req.Allergies
	}
	if req.ChronicConditions != nil {
		u = u.SetChronicConditions(req.ChronicConditions)
		changes["chronic_conditions"] = req.ChronicConditions
	}
	if req.CurrentMedications != nil {
		u = u.SetCurrentMedications(req.CurrentMedications)
		changes["current_medications"] = req.CurrentMedications
	}
	if req.FamilyHistory != nil {
		u = u.SetNillableFamilyHistory(req.FamilyHistory)
		changes["family_history"] = *req.FamilyHistory
	}
	if req.InsuranceProvider != nil {
		u = u.SetNillableInsuranceProvider(req.InsuranceProvider)
		changes["insurance_provider"] = *req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != nil {
		if *req.InsurancePolicyNumber == "" {
			u = u.ClearInsurancePolicyNumber()
		} else {
			enc, err := crypto.Encrypt(s.encKey, *req.InsurancePolicyNumber)
			if err != nil {
				return nil, ErrEncryptionFailed
			}
			u = u.SetInsurancePolicyNumber(enc)
		}
		changes["insurance_policy_number"] = *req.InsurancePolicyNumber
	}
	if req.InsuranceExpiry != nil {
		u = u.SetInsuranceExpiry(*req.InsuranceExpiry)
		changes["insurance_expiry"] = req.InsuranceExpiry.Format(time.DateOnly)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
		changes["notes"] = *req.Notes
	}

	p, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityPatient,
			EntityID:   p.ID,
			Changes:    changes,
		})
	}

	s.decryptInsurance(p)
	return p, nil
}

func (s *patientService) SetStatus(ctx context.Context, clinicID, actorID, patientID uuid.UUID, status string) (*repo.Patient, error) {
	if status != entpatient.StatusActive.String() && status != entpatient.StatusInactive.String() {
		return nil, ErrInvalidStatus
	}

	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	p, err = s.db.Patient.UpdateOne(p).
		SetStatus(entpatient.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set patient status: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "update",
		EntityType: audit.EntityPatient,
		EntityID:   p.ID,
		Changes:    map[string]any{"status": status},
	})
	return p, nil
}

func (s *patientService) SoftDelete(ctx context.Context, clinicID, actorID, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return err
	}

	hasVisits, err := s.db.Visit.Query().
		Where(entvisit.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient visits: %w", err)
	}
	if hasVisits {
		return ErrHasVisits
	}

	// A deleted patient is always inactive, whatever the status was before.
	if err := s.db.Patient.UpdateOne(p).
		SetDeletedAt(time.Now().UTC()).
		SetStatus(entpatient.StatusInactive).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "delete",
		EntityType: audit.EntityPatient,
		EntityID:   p.ID,
	})
	return nil
}

func (s *patientService) Restore(ctx context.Context, clinicID, actorID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.DeletedAt == nil {
		return nil, ErrNotDeleted
	}

	// Restoring reactivates the record regardless of its pre-delete status.
	p, err = s.db.Patient.UpdateOne(p).
		ClearDeletedAt().
		SetStatus(entpatient.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore patient: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "restore",
		EntityType: audit.EntityPatient,
		EntityID:   p.ID,
	})

	s.decryptInsurance(p)
	return p, nil
}

func (s *patientService) Stats(ctx context.Context, clinicID uuid.UUID) (*Stats, error) {
	base := func() *repo.PatientQuery {
		return s.db.Patient.Query().
			Where(entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil())
	}

	total, err := base().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	active, err := base().Where(entpatient.StatusEQ(entpatient.StatusActive)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active patients: %w", err)
	}
	recent, err := base().
		Where(entpatient.CreatedAtGTE(time.Now().UTC().AddDate(0, 0, -30))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recent patients: %w", err)
	}

	return &Stats{
		Total:         total,
		Active:        active,
		Inactive:      total - active,
		NewLast30Days: recent,
	}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// checkUnique verifies phone and email uniqueness among non-deleted patients
// of the clinic. exclude skips the patient being updated.
func (s *patientService) checkUnique(ctx context.Context, clinicID uuid.UUID, phone string, email *string, exclude *uuid.UUID) error {
	if phone != "" {
		q := s.db.Patient.Query().
			Where(entpatient.ClinicID(clinicID), entpatient.Phone(phone), entpatient.DeletedAtIsNil())
		if exclude != nil {
			q = q.Where(entpatient.IDNEQ(*exclude))
		}
		taken, err := q.Exist(ctx)
		if err != nil {
			return fmt.Errorf("check phone uniqueness: %w", err)
		}
		if taken {
			return ErrPhoneTaken
		}
	}

	if email != nil && *email != "" {
		q := s.db.Patient.Query().
			Where(entpatient.ClinicID(clinicID), entpatient.EmailEqualFold(*email), entpatient.DeletedAtIsNil())
		if exclude != nil {
			q = q.Where(entpatient.IDNEQ(*exclude))
		}
		taken, err := q.Exist(ctx)
		if err != nil {
			return fmt.Errorf("check email uniqueness: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
	}
	return nil
}

// nextCode reserves the next sequence number for the clinic's current year.
// Soft-deleted patients keep their code, so the count includes them.
func (s *patientService) nextCode(ctx context.Context, clinicID uuid.UUID) (string, error) {
	year := time.Now().Year()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	n, err := s.db.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.CreatedAtGTE(startOfYear)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count patients for code: %w", err)
	}
	return FormatCode(year, n+1), nil
}

func (s *patientService) decryptInsurance(p *repo.Patient) {
	if p == nil || p.InsurancePolicyNumber == nil || *p.InsurancePolicyNumber == "" || len(s.encKey) == 0 {
		return
	}
	if plain, err := crypto.Decrypt(s.encKey, *p.InsurancePolicyNumber); err == nil {
		p.InsurancePolicyNumber = &plain
	}
}
