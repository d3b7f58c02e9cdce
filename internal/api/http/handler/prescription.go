package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/service/prescription"
)

type PrescriptionHandler struct {
	svc prescription.Service
}

func NewPrescriptionHandler(svc prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc}
}

func mapPrescriptionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, prescription.ErrPrescriptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrVisitNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrVisitLocked):
		return unprocessable(c, err.Error())
	case errors.Is(err, prescription.ErrNotActive):
		return unprocessable(c, err.Error())
	case errors.Is(err, prescription.ErrMissingReason):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrMissingFields):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrInvalidQuantity):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrInvalidRefills):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /prescriptions
func (h *PrescriptionHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID      string  `json:"patient_id"`
		VisitID        string  `json:"visit_id"`
		ProviderID     string  `json:"provider_id"`
		MedicationName string  `json:"medication_name"`
		GenericName    *string `json:"generic_name"`
		BrandName      *string `json:"brand_name"`
		Dosage         string  `json:"dosage"`
		Frequency      string  `json:"frequency"`
		Route          string  `json:"route"`
		Duration       string  `json:"duration"`
		Quantity       int     `json:"quantity"`
		Refills        int     `json:"refills"`
		Instructions   *string `json:"instructions"`
		Notes          *string `json:"notes"`
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

	req := prescription.CreateRequest{
		PatientID:      patientID,
		ProviderID:     providerID,
		MedicationName: body.MedicationName,
		GenericName:    body.GenericName,
		BrandName:      body.BrandName,
		Dosage:         body.Dosage,
		Frequency:      body.Frequency,
		Route:          body.Route,
		Duration:       body.Duration,
		Quantity:       body.Quantity,
		Refills:        body.Refills,
		Instructions:   body.Instructions,
		Notes:          body.Notes,
	}
	if body.VisitID != "" {
		id, err := uuid.Parse(body.VisitID)
		if err != nil {
			return badRequest(c, "invalid visit_id")
		}
		req.VisitID = &id
	}

	rx, warnings, err := h.svc.Create(c.Context(), clinicID, actorID, req)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return created(c, fiber.Map{
		"prescription": rx,
		"warnings":     warnings,
	})
}

// GET /prescriptions
func (h *PrescriptionHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Page      int    `query:"page"`
		PerPage   int    `query:"limit"`
		PatientID string `query:"patient_id"`
		VisitID   string `query:"visit_id"`
		Status    string `query:"status"`
		Q         string `query:"q"`
	}
	_ = c.Bind().Query(&q)

	req := prescription.SearchRequest{
		Token:   q.Q,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.VisitID != "" {
		id, err := uuid.Parse(q.VisitID)
		if err != nil {
			return badRequest(c, "invalid visit_id")
		}
		req.VisitID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.Search(c.Context(), clinicID, req)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return paged(c, result)
}

// GET /prescriptions/:id
func (h *PrescriptionHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	rx, err := h.svc.GetByID(c.Context(), clinicID, rxID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, rx)
}

// PATCH /prescriptions/:id
func (h *PrescriptionHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		Dosage       *string `json:"dosage"`
		Frequency    *string `json:"frequency"`
		Route        *string `json:"route"`
		Duration     *string `json:"duration"`
		Quantity     *int    `json:"quantity"`
		Refills      *int    `json:"refills"`
		Instructions *string `json:"instructions"`
		Notes        *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rx, err := h.svc.Update(c.Context(), clinicID, actorID, rxID, prescription.UpdateRequest{
		Dosage:       body.Dosage,
		Frequency:    body.Frequency,
		Route:        body.Route,
		Duration:     body.Duration,
		Quantity:     body.Quantity,
		Refills:      body.Refills,
		Instructions: body.Instructions,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, rx)
}

// POST /prescriptions/:id/discontinue
func (h *PrescriptionHandler) Discontinue(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rx, err := h.svc.Discontinue(c.Context(), clinicID, actorID, rxID, body.Reason)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, rx)
}

// POST /prescriptions/:id/complete
func (h *PrescriptionHandler) Complete(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	rx, err := h.svc.Complete(c.Context(), clinicID, actorID, rxID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, rx)
}
