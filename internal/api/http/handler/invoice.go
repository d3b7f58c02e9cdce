package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/service/invoice"
)

type InvoiceHandler struct {
	svc invoice.Service
}

func NewInvoiceHandler(svc invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func mapInvoiceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, invoice.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, invoice.ErrVisitNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, invoice.ErrNoItems),
		errors.Is(err, invoice.ErrInvalidItem),
		errors.Is(err, invoice.ErrDiscountConflict),
		errors.Is(err, invoice.ErrInvalidDiscount),
		errors.Is(err, invoice.ErrMissingDiscountReason),
		errors.Is(err, invoice.ErrInvalidStatus),
		errors.Is(err, invoice.ErrInvalidMethod),
		errors.Is(err, invoice.ErrInvalidTaxRate),
		errors.Is(err, invoice.ErrInvalidAmount),
		errors.Is(err, invoice.ErrMissingReason):
		return badRequest(c, err.Error())
	case errors.Is(err, invoice.ErrOverpayment),
		errors.Is(err, invoice.ErrRefundExceedsPaid),
		errors.Is(err, invoice.ErrNotEditable):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

type invoiceItemBody struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

func toItemInputs(items []invoiceItemBody) []invoice.ItemInput {
	out := make([]invoice.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, invoice.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

// POST /invoices
func (h *InvoiceHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID       string            `json:"patient_id"`
		VisitID         string            `json:"visit_id"`
		Items           []invoiceItemBody `json:"items"`
		DiscountFixed   int64             `json:"discount_fixed"`
		DiscountPercent float64           `json:"discount_percent"`
		DiscountReason  *string           `json:"discount_reason"`
		TaxRate         float64           `json:"tax_rate"`
		Notes           *string           `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := invoice.CreateRequest{
		PatientID:       patientID,
		Items:           toItemInputs(body.Items),
		DiscountFixed:   body.DiscountFixed,
		DiscountPercent: body.DiscountPercent,
		DiscountReason:  body.DiscountReason,
		TaxRate:         body.TaxRate,
		Notes:           body.Notes,
	}
	if body.VisitID != "" {
		id, err := uuid.Parse(body.VisitID)
		if err != nil {
			return badRequest(c, "invalid visit_id")
		}
		req.VisitID = &id
	}

	inv, err := h.svc.Create(c.Context(), clinicID, actorID, req)
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return created(c, inv)
}

// GET /invoices
func (h *InvoiceHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Query     string `query:"q"`
		Page      int    `query:"page"`
		PerPage   int    `query:"limit"`
		PatientID string `query:"patient_id"`
		VisitID   string `query:"visit_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	req := invoice.SearchRequest{
		Query:   q.Query,
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
		return mapInvoiceError(c, err)
	}

	return paged(c, result)
}

// GET /invoices/:id
func (h *InvoiceHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.GetByID(c.Context(), clinicID, invoiceID)
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return ok(c, inv)
}

// PATCH /invoices/:id
func (h *InvoiceHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Items   []invoiceItemBody `json:"items"`
		TaxRate *float64          `json:"tax_rate"`
		Notes   *string           `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := invoice.UpdateRequest{
		TaxRate: body.TaxRate,
		Notes:   body.Notes,
	}
	if body.Items != nil {
		req.Items = toItemInputs(body.Items)
	}

	inv, err := h.svc.Update(c.Context(), clinicID, actorID, invoiceID, req)
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return ok(c, inv)
}

// POST /invoices/:id/discount
func (h *InvoiceHandler) ApplyDiscount(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Fixed   int64   `json:"fixed"`
		Percent float64 `json:"percent"`
		Reason  *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inv, err := h.svc.ApplyDiscount(c.Context(), clinicID, actorID, invoiceID, invoice.DiscountRequest{
		Fixed:   body.Fixed,
		Percent: body.Percent,
		Reason:  body.Reason,
	})
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return ok(c, inv)
}

// POST /invoices/:id/payments
func (h *InvoiceHandler) RecordPayment(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Amount    int64   `json:"amount"`
		Method    string  `json:"method"`
		ReceiptNo *string `json:"receipt_no"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inv, err := h.svc.RecordPayment(c.Context(), clinicID, actorID, invoiceID, invoice.PaymentRequest{
		Amount:    body.Amount,
		Method:    body.Method,
		ReceiptNo: body.ReceiptNo,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return ok(c, inv)
}

// POST /invoices/:id/refunds
func (h *InvoiceHandler) RecordRefund(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	actorID, valid := actorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Amount int64   `json:"amount"`
		Reason string  `json:"reason"`
		Notes  *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inv, err := h.svc.RecordRefund(c.Context(), clinicID, actorID, invoiceID, invoice.RefundRequest{
		Amount: body.Amount,
		Reason: body.Reason,
		Notes:  body.Notes,
	})
	if err != nil {
		return mapInvoiceError(c, err)
	}

	return ok(c, inv)
}
