package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/service/clinic"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrClinicNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrAlreadyMember):
		return conflict(c, err.Error())
	case errors.Is(err, clinic.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, clinic.ErrMissingName):
		return badRequest(c, err.Error())
	case errors.Is(err, clinic.ErrLastAdmin):
		return unprocessable(c, err.Error())
	case errors.Is(err, clinic.ErrClinicDeactivated):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /clinics
func (h *ClinicHandler) Create(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name    string  `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Create(c.Context(), actorID, clinic.CreateClinicRequest{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
		Email:   body.Email,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return created(c, cl)
}

// GET /clinics
func (h *ClinicHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int   `query:"page"`
		PerPage int   `query:"limit"`
		Active  *bool `query:"active"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), clinic.ListClinicsRequest{
		Active:  q.Active,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return paged(c, result)
}

// GET /clinics/:id
func (h *ClinicHandler) Get(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	cl, err := h.svc.GetByID(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// PATCH /clinics/:id
func (h *ClinicHandler) Update(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), clinicID, actorID, clinic.UpdateClinicRequest{
		Name:     body.Name,
		Address:  body.Address,
		Phone:    body.Phone,
		Email:    body.Email,
		IsActive: body.IsActive,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// GET /clinics/:id/members
func (h *ClinicHandler) ListMembers(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	members, err := h.svc.ListMembers(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, fiber.Map{"members": members})
}

// GET /clinics/:id/members/:mid
func (h *ClinicHandler) GetMember(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	memberID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	m, err := h.svc.GetMember(c.Context(), clinicID, memberID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, m)
}

// POST /clinics/:id/members
func (h *ClinicHandler) AddMember(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		UserID        string  `json:"user_id"`
		Role          string  `json:"role"`
		Title         *string `json:"title"`
		LicenseNumber *string `json:"license_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	m, err := h.svc.AddMember(c.Context(), clinicID, actorID, clinic.AddMemberRequest{
		UserID:        userID,
		Role:          body.Role,
		Title:         body.Title,
		LicenseNumber: body.LicenseNumber,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return created(c, m)
}

// PATCH /clinics/:id/members/:mid
func (h *ClinicHandler) UpdateMember(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	memberID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	var body struct {
		Role          *string `json:"role"`
		Title         *string `json:"title"`
		LicenseNumber *string `json:"license_number"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.UpdateMember(c.Context(), clinicID, actorID, memberID, clinic.UpdateMemberRequest{
		Role:          body.Role,
		Title:         body.Title,
		LicenseNumber: body.LicenseNumber,
		IsActive:      body.IsActive,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, m)
}

// DELETE /clinics/:id/members/:mid
func (h *ClinicHandler) RemoveMember(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	memberID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	if err := h.svc.RemoveMember(c.Context(), clinicID, actorID, memberID); err != nil {
		return mapClinicError(c, err)
	}

	return noContent(c)
}

// GET /clinics/:id/members/me
func (h *ClinicHandler) MyMembership(c fiber.Ctx) error {
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	m, err := h.svc.MemberByUser(c.Context(), clinicID, actorID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, m)
}
