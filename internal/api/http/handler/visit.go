package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/service/visit"
)

type VisitHandler struct {
	svc visit.Service
}

func NewVisitHandler(svc visit.Service) *VisitHandler {
	return &VisitHandler{svc: svc}
}

func mapVisitError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, visit.ErrVisitNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, visit.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, visit.ErrVisitLocked):
		return unprocessable(c, err.Error())
	case errors.Is(err, visit.ErrVitalsOutOfRange):
		return badRequest(c, err.Error())
	case errors.Is(err, visit.ErrFollowUpInPast):
		return badRequest(c, err.Error())
	case errors.Is(err, visit.ErrMissingProvider):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type vitalsBody struct {
	BPSystolic       *int     `json:"bp_systolic"`
	BPDiastolic      *int     `json:"bp_diastolic"`
	HeartRate        *int     `json:"heart_rate"`
	RespiratoryRate  *int     `json:"respiratory_rate"`
	Temperature      *float64 `json:"temperature"`
	OxygenSaturation *int     `json:"oxygen_saturation"`
	WeightKg         *float64 `json:"weight_kg"`
	HeightCm         *float64 `json:"height_cm"`
	PainScale        *int     `json:"pain_scale"`
}

func (b *vitalsBody) toVitals() visit.Vitals {
	if b == nil {
		return visit.Vitals{}
	}
	return visit.Vitals{
		BPSystolic:       b.BPSystolic,
		BPDiastolic:      b.BPDiastolic,
		HeartRate:        b.HeartRate,
		RespiratoryRate:  b.RespiratoryRate,
		Temperature:      b.Temperature,
		OxygenSaturation: b.OxygenSaturation,
		WeightKg:         b.WeightKg,
		HeightCm:         b.HeightCm,
		PainScale:        b.PainScale,
	}
}

// POST /visits
func (h *VisitHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID      string     `json:"patient_id"`
		ProviderID     string     `json:"provider_id"`
		VisitType      string     `json:"visit_type"`
		VisitDate      *time.Time `json:"visit_date"`
		ChiefComplaint *string    `json:"chief_complaint"`
		Vitals         vitalsBody `json:"vitals"`
		Subjective     *string    `json:"subjective"`
		Objective      *string    `json:"objective"`
		Assessment     *string    `json:"assessment"`
		Plan           *string    `json:"plan"`
		PrimaryDx      *string    `json:"primary_diagnosis"`
		SecondaryDx    []string   `json:"secondary_diagnoses"`
		ICD10Codes     []string   `json:"icd10_codes"`
		FollowUpDate   *time.Time `json:"follow_up_date"`
		FollowUpReason *string    `json:"follow_up_reason"`
		Notes          *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}

	v, err := h.svc.Create(c.Context(), clinicID, actorID, visit.CreateRequest{
		PatientID:      patientID,
		ProviderID:     providerID,
		VisitType:      body.VisitType,
		VisitDate:      body.VisitDate,
		ChiefComplaint: body.ChiefComplaint,
		Vitals:         body.Vitals.toVitals(),
		Subjective:     body.Subjective,
		Objective:      body.Objective,
		Assessment:     body.Assessment,
		Plan:           body.Plan,
		PrimaryDx:      body.PrimaryDx,
		SecondaryDx:    body.SecondaryDx,
		ICD10Codes:     body.ICD10Codes,
		FollowUpDate:   body.FollowUpDate,
		FollowUpReason: body.FollowUpReason,
		Notes:          body.Notes,
	})
	if err != nil {
		return mapVisitError(c, err)
	}

	return created(c, v)
}

// GET /visits
func (h *VisitHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Page       int    `query:"page"`
		PerPage    int    `query:"limit"`
		PatientID  string `query:"patient_id"`
		ProviderID string `query:"provider_id"`
		VisitType  string `query:"visit_type"`
		From       string `query:"from"`
		To         string `query:"to"`
		Locked     *bool  `query:"locked"`
	}
	_ = c.Bind().Query(&q)

	req := visit.SearchRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Locked:  q.Locked,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.VisitType != "" {
		req.VisitType = &q.VisitType
	}
	from, okFrom := parseTimeParam(q.From)
	if !okFrom {
		return badRequest(c, "invalid from date")
	}
	req.From = from
	to, okTo := parseTimeParam(q.To)
	if !okTo {
		return badRequest(c, "invalid to date")
	}
	req.To = to

	result, err := h.svc.Search(c.Context(), clinicID, req)
	if err != nil {
		return mapVisitError(c, err)
	}

	return paged(c, result)
}

// GET /visits/:id
func (h *VisitHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	visitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid visit id")
	}

	v, err := h.svc.GetByID(c.Context(), clinicID, visitID)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, v)
}

// PATCH /visits/:id
func (h *VisitHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	visitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid visit id")
	}

	var body struct {
		VisitType      *string     `json:"visit_type"`
		VisitDate      *time.Time  `json:"visit_date"`
		ChiefComplaint *string     `json:"chief_complaint"`
		Vitals         *vitalsBody `json:"vitals"`
		Subjective     *string     `json:"subjective"`
		Objective      *string     `json:"objective"`
		Assessment     *string     `json:"assessment"`
		Plan           *string     `json:"plan"`
		PrimaryDx      *string     `json:"primary_diagnosis"`
		SecondaryDx    []string    `json:"secondary_diagnoses"`
		ICD10Codes     []string    `json:"icd10_codes"`
		FollowUpDate   *time.Time  `json:"follow_up_date"`
		FollowUpReason *string     `json:"follow_up_reason"`
		Notes          *string     `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := visit.UpdateRequest{
		VisitType:      body.VisitType,
		VisitDate:      body.VisitDate,
		ChiefComplaint: body.ChiefComplaint,
		Subjective:     body.Subjective,
		Objective:      body.Objective,
		Assessment:     body.Assessment,
		Plan:           body.Plan,
		PrimaryDx:      body.PrimaryDx,
		SecondaryDx:    body.SecondaryDx,
		ICD10Codes:     body.ICD10Codes,
		FollowUpDate:   body.FollowUpDate,
		FollowUpReason: body.FollowUpReason,
		Notes:          body.Notes,
	}
	if body.Vitals != nil {
		v := body.Vitals.toVitals()
		req.Vitals = &v
	}

	v, err := h.svc.Update(c.Context(), clinicID, actorID, visitID, req)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, v)
}

// POST /visits/:id/lock
func (h *VisitHandler) Lock(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	visitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid visit id")
	}

	v, err := h.svc.Lock(c.Context(), clinicID, actorID, visitID)
	if err != nil {
		return mapVisitError(c, err)
	}

	return ok(c, v)
}
