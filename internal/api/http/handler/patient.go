package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/api/http/middleware"
	"github.com/clinovahq/clinova_backend/internal/service/patient"
	pasetotoken "github.com/clinovahq/clinova_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func clinicIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsClinicID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func actorIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

// parseTimeParam accepts RFC 3339 or a bare date.
func parseTimeParam(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrPhoneTaken):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrInvalidGender):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrMissingName):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrHasVisits):
		return unprocessable(c, err.Error())
	case errors.Is(err, patient.ErrNotDeleted):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

type patientBody struct {
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	DateOfBirth            *time.Time `json:"date_of_birth"`
	Gender                 *string    `json:"gender"`
	Phone                  string     `json:"phone"`
	Email                  *string    `json:"email"`
	Address                *string    `json:"address"`
	EmergencyContactName   *string    `json:"emergency_contact_name"`
	EmergencyContactPhone  *string    `json:"emergency_contact_phone"`
	EmergencyContactRel    *string    `json:"emergency_contact_relationship"`
	BloodType              *string    `json:"blood_type"`
	Allergies              []string   `json:"allergies"`
	ChronicConditions      []string   `json:"chronic_conditions"`
	CurrentMedications     []string   `json:"current_medications"`
	FamilyHistory          *string    `json:"family_history"`
	InsuranceProvider      *string    `json:"insurance_provider"`
	InsurancePolicyNumber  *string    `json:"insurance_policy_number"`
	InsuranceExpiry        *time.Time `json:"insurance_expiry"`
	Notes                  *string    `json:"notes"`
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Register(c.Context(), clinicID, actorID, patient.RegisterRequest{
		FirstName:             body.FirstName,
		LastName:              body.LastName,
		DateOfBirth:           body.DateOfBirth,
		Gender:                body.Gender,
		Phone:                 body.Phone,
		Email:                 body.Email,
		Address:               body.Address,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
		EmergencyContactRel:   body.EmergencyContactRel,
		BloodType:             body.BloodType,
		Allergies:             body.Allergies,
		ChronicConditions:     body.ChronicConditions,
		CurrentMedications:    body.CurrentMedications,
		FamilyHistory:         body.FamilyHistory,
		InsuranceProvider:     body.InsuranceProvider,
		InsurancePolicyNumber: body.InsurancePolicyNumber,
		InsuranceExpiry:       body.InsuranceExpiry,
		Notes:                 body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"limit"`
		Q       string `query:"q"`
		Status  string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	req := patient.SearchRequest{
		Token:   q.Q,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.Search(c.Context(), clinicID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return paged(c, result)
}

// GET /patients/stats
func (h *PatientHandler) Stats(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	stats, err := h.svc.Stats(c.Context(), clinicID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, stats)
}

// GET /patients/code/:code
func (h *PatientHandler) GetByCode(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	p, err := h.svc.GetByCode(c.Context(), clinicID, c.Params("code"))
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), clinicID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName             *string    `json:"first_name"`
		LastName              *string    `json:"last_name"`
		DateOfBirth           *time.Time `json:"date_of_birth"`
		Gender                *string    `json:"gender"`
		Phone                 *string    `json:"phone"`
		Email                 *string    `json:"email"`
		Address               *string    `json:"address"`
		EmergencyContactName  *string    `json:"emergency_contact_name"`
		EmergencyContactPhone *string    `json:"emergency_contact_phone"`
		EmergencyContactRel   *string    `json:"emergency_contact_relationship"`
		BloodType             *string    `json:"blood_type"`
		Allergies             []string   `json:"allergies"`
		ChronicConditions     []string   `json:"chronic_conditions"`
		CurrentMedications    []string   `json:"current_medications"`
		FamilyHistory         *string    `json:"family_history"`
		InsuranceProvider     *string    `json:"insurance_provider"`
		InsurancePolicyNumber *string    `json:"insurance_policy_number"`
		InsuranceExpiry       *time.Time `json:"insurance_expiry"`
		Notes                 *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), clinicID, actorID, patientID, patient.UpdateRequest{
		FirstName:             body.FirstName,
		LastName:              body.LastName,
		DateOfBirth:           body.DateOfBirth,
		Gender:                body.Gender,
		Phone:                 body.Phone,
		Email:                 body.Email,
		Address:               body.Address,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
		EmergencyContactRel:   body.EmergencyContactRel,
		BloodType:             body.BloodType,
		Allergies:             body.Allergies,
		ChronicConditions:     body.ChronicConditions,
		CurrentMedications:    body.CurrentMedications,
		FamilyHistory:         body.FamilyHistory,
		InsuranceProvider:     body.InsuranceProvider,
		InsurancePolicyNumber: body.InsurancePolicyNumber,
		InsuranceExpiry:       body.InsuranceExpiry,
		Notes:                 body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id/status
func (h *PatientHandler) SetStatus(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.SetStatus(c.Context(), clinicID, actorID, patientID, body.Status)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.SoftDelete(c.Context(), clinicID, actorID, patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// POST /patients/:id/restore
func (h *PatientHandler) Restore(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.Restore(c.Context(), clinicID, actorID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}
