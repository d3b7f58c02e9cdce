package invoice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entclinic "github.com/clinovahq/clinova_backend/internal/repo/clinic"
	entinvoice "github.com/clinovahq/clinova_backend/internal/repo/invoice"
	entitem "github.com/clinovahq/clinova_backend/internal/repo/invoiceitem"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	entpayment "github.com/clinovahq/clinova_backend/internal/repo/payment"
	entrefund "github.com/clinovahq/clinova_backend/internal/repo/refund"
	entvisit "github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
	"github.com/clinovahq/clinova_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ItemInput struct {
	Description string
	Quantity    int
	UnitPrice   int64
}

type CreateRequest struct {
	PatientID       uuid.UUID
	VisitID         *uuid.UUID
	Items           []ItemInput
	DiscountFixed   int64
	DiscountPercent float64
	DiscountReason  *string
	TaxRate         float64
	Notes           *string
}

type DiscountRequest struct {
	Fixed   int64
	Percent float64
	Reason  *string
}

type PaymentRequest struct {
	Amount    int64
	Method    string
	ReceiptNo *string
	Notes     *string
}

type RefundRequest struct {
	Amount int64
	Reason string
	Notes  *string
}

type UpdateRequest struct {
	Items   []ItemInput
	TaxRate *float64
	Notes   *string
}

type SearchRequest struct {
	Query     string
	PatientID *uuid.UUID
	VisitID   *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Invoice, error)
	GetByID(ctx context.Context, clinicID, invoiceID uuid.UUID) (*repo.Invoice, error)
	Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Invoice], error)
	Update(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req UpdateRequest) (*repo.Invoice, error)
	ApplyDiscount(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req DiscountRequest) (*repo.Invoice, error)
	RecordPayment(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req PaymentRequest) (*repo.Invoice, error)
	RecordRefund(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req RefundRequest) (*repo.Invoice, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type invoiceService struct {
	db   *repo.Client
	aud  *audit.Publisher
	mail *email.Client
}

func New(db *repo.Client, aud *audit.Publisher, mail *email.Client) Service {
	return &invoiceService{db: db, aud: aud, mail: mail}
}

func (s *invoiceService) Create(ctx context.Context, clinicID, actorID uuid.UUID, req CreateRequest) (*repo.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if err := validateDiscount(req.DiscountFixed, req.DiscountPercent, req.DiscountReason); err != nil {
		return nil, err
	}
	if req.TaxRate < 0 || req.TaxRate > 100 {
		return nil, ErrInvalidTaxRate
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}
	if req.VisitID != nil {
		ok, err := s.db.Visit.Query().
			Where(entvisit.ID(*req.VisitID), entvisit.ClinicID(clinicID), entvisit.PatientID(req.PatientID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check visit: %w", err)
		}
		if !ok {
			return nil, ErrVisitNotFound
		}
	}

	var subtotal int64
	for _, it := range req.Items {
		subtotal += LineTotal(it.Quantity, it.UnitPrice)
	}
	totals := Compute(subtotal, req.DiscountFixed, req.DiscountPercent, req.TaxRate)

	number, err := s.nextNumber(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	inv, err := s.db.Invoice.Create().
		SetClinicID(clinicID).
		SetPatientID(req.PatientID).
		SetNillableVisitID(req.VisitID).
		SetNumber(number).
		SetSubtotal(totals.Subtotal).
		SetDiscountAmount(req.DiscountFixed).
		SetDiscountPercent(req.DiscountPercent).
		SetNillableDiscountReason(req.DiscountReason).
		SetTaxRate(req.TaxRate).
		SetDiscount(totals.Discount).
		SetTaxAmount(totals.TaxAmount).
		SetGrandTotal(totals.GrandTotal).
		SetStatus(entinvoice.Status(DeriveStatus(totals.GrandTotal, 0, 0))).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	if err := s.insertItems(ctx, inv.ID, req.Items); err != nil {
		return nil, err
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityInvoice,
		EntityID:   inv.ID,
		Changes: map[string]any{
			"number":      inv.Number,
			"patient_id":  inv.PatientID.String(),
			"grand_total": inv.GrandTotal,
		},
	})

	return s.GetByID(ctx, clinicID, inv.ID)
}

func (s *invoiceService) GetByID(ctx context.Context, clinicID, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.db.Invoice.Query().
		Where(entinvoice.ID(invoiceID), entinvoice.ClinicID(clinicID)).
		WithItems(func(q *repo.InvoiceItemQuery) {
			q.Order(entitem.ByPosition())
		}).
		WithPayments(func(q *repo.PaymentQuery) {
			q.Order(entpayment.ByCreatedAt())
		}).
		WithRefunds(func(q *repo.RefundQuery) {
			q.Order(entrefund.ByCreatedAt())
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.Invoice], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.Invoice.Query().
		Where(entinvoice.ClinicID(clinicID))

	if t := strings.TrimSpace(req.Query); t != "" {
		q = q.Where(entinvoice.Or(
			entinvoice.NumberContainsFold(t),
			entinvoice.HasPatientWith(entpatient.Or(
				entpatient.FirstNameContainsFold(t),
				entpatient.LastNameContainsFold(t),
			)),
		))
	}
	if req.PatientID != nil {
		q = q.Where(entinvoice.PatientID(*req.PatientID))
	}
	if req.VisitID != nil {
		q = q.Where(entinvoice.VisitID(*req.VisitID))
	}
	if req.Status != nil {
		if entinvoice.StatusValidator(entinvoice.Status(*req.Status)) != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entinvoice.StatusEQ(entinvoice.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entinvoice.CreatedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entinvoice.CreatedAtLT(*req.To))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}

	invoices, err := q.
		Order(entinvoice.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search invoices: %w", err)
	}

	return pagination.New(invoices, total, page, perPage), nil
}

func (s *invoiceService) Update(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req UpdateRequest) (*repo.Invoice, error) {
	inv, err := s.GetByID(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, err
	}

	// Only notes may change once money has moved.
	if len(inv.Edges.Payments) > 0 && (req.Items != nil || req.TaxRate != nil) {
		return nil, ErrNotEditable
	}

	changes := map[string]any{}
	u := s.db.Invoice.UpdateOne(inv)

	if req.Items != nil {
		if len(req.Items) == 0 {
			return nil, ErrNoItems
		}
		if err := validateItems(req.Items); err != nil {
			return nil, err
		}
		if _, err := s.db.InvoiceItem.Delete().
			Where(entitem.InvoiceID(inv.ID)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("clear invoice items: %w", err)
		}
		if err := s.insertItems(ctx, inv.ID, req.Items); err != nil {
			return nil, err
		}
		changes["items"] = len(req.Items)
	}
	if req.TaxRate != nil {
		if *req.TaxRate < 0 || *req.TaxRate > 100 {
			return nil, ErrInvalidTaxRate
		}
		u = u.SetTaxRate(*req.TaxRate)
		inv.TaxRate = *req.TaxRate
		changes["tax_rate"] = *req.TaxRate
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
		changes["notes"] = "updated"
	}

	if req.Items != nil || req.TaxRate != nil {
		var subtotal int64
		if req.Items != nil {
			for _, it := range req.Items {
				subtotal += LineTotal(it.Quantity, it.UnitPrice)
			}
		} else {
			subtotal = inv.Subtotal
		}
		totals := Compute(subtotal, inv.DiscountAmount, inv.DiscountPercent, inv.TaxRate)
		u = u.SetSubtotal(totals.Subtotal).
			SetDiscount(totals.Discount).
			SetTaxAmount(totals.TaxAmount).
			SetGrandTotal(totals.GrandTotal).
			SetStatus(entinvoice.Status(DeriveStatus(totals.GrandTotal, 0, 0)))
		changes["grand_total"] = totals.GrandTotal
	}

	if _, err := u.Save(ctx); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	if len(changes) > 0 {
		s.aud.Publish(ctx, audit.Event{
			ClinicID:   &clinicID,
			ActorID:    actorID,
			Action:     "update",
			EntityType: audit.EntityInvoice,
			EntityID:   inv.ID,
			Changes:    changes,
		})
	}

	return s.GetByID(ctx, clinicID, invoiceID)
}

func (s *invoiceService) ApplyDiscount(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req DiscountRequest) (*repo.Invoice, error) {
	if err := validateDiscount(req.Fixed, req.Percent, req.Reason); err != nil {
		return nil, err
	}

	inv, err := s.GetByID(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, err
	}
	if len(inv.Edges.Payments) > 0 {
		return nil, ErrNotEditable
	}

	totals := Compute(inv.Subtotal, req.Fixed, req.Percent, inv.TaxRate)

	_, err = s.db.Invoice.UpdateOne(inv).
		SetDiscountAmount(req.Fixed).
		SetDiscountPercent(req.Percent).
		SetNillableDiscountReason(req.Reason).
		SetDiscount(totals.Discount).
		SetTaxAmount(totals.TaxAmount).
		SetGrandTotal(totals.GrandTotal).
		SetStatus(entinvoice.Status(DeriveStatus(totals.GrandTotal, 0, 0))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply discount: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "update",
		EntityType: audit.EntityInvoice,
		EntityID:   inv.ID,
		Changes: map[string]any{
			"discount_amount":  req.Fixed,
			"discount_percent": req.Percent,
			"grand_total":      totals.GrandTotal,
		},
	})

	return s.GetByID(ctx, clinicID, invoiceID)
}

func (s *invoiceService) RecordPayment(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req PaymentRequest) (*repo.Invoice, error) {
	if req.Amount < 1 {
		return nil, ErrInvalidAmount
	}
	if entpayment.MethodValidator(entpayment.Method(req.Method)) != nil {
		return nil, ErrInvalidMethod
	}

	inv, err := s.GetByID(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, err
	}

	paid, refunded := sums(inv)
	if paid-refunded+req.Amount > inv.GrandTotal {
		return nil, ErrOverpayment
	}

	if err := s.db.Payment.Create().
		SetInvoiceID(inv.ID).
		SetAmount(req.Amount).
		SetMethod(entpayment.Method(req.Method)).
		SetNillableReceiptNo(req.ReceiptNo).
		SetNillableNotes(req.Notes).
		SetReceivedBy(actorID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	status := DeriveStatus(inv.GrandTotal, paid+req.Amount, refunded)
	if err := s.db.Invoice.UpdateOne(inv).
		SetStatus(entinvoice.Status(status)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityPayment,
		EntityID:   inv.ID,
		Changes: map[string]any{
			"amount": req.Amount,
			"method": req.Method,
			"status": status,
		},
	})

	s.sendReceipt(ctx, inv, req.Amount, paid+req.Amount-refunded)

	return s.GetByID(ctx, clinicID, invoiceID)
}

func (s *invoiceService) RecordRefund(ctx context.Context, clinicID, actorID, invoiceID uuid.UUID, req RefundRequest) (*repo.Invoice, error) {
	if req.Amount < 1 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrMissingReason
	}

	inv, err := s.GetByID(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, err
	}

	paid, refunded := sums(inv)
	if refunded+req.Amount > paid {
		return nil, ErrRefundExceedsPaid
	}

	if err := s.db.Refund.Create().
		SetInvoiceID(inv.ID).
		SetAmount(req.Amount).
		SetReason(req.Reason).
		SetNillableNotes(req.Notes).
		SetRefundedBy(actorID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("record refund: %w", err)
	}

	status := DeriveStatus(inv.GrandTotal, paid, refunded+req.Amount)
	if err := s.db.Invoice.UpdateOne(inv).
		SetStatus(entinvoice.Status(status)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ClinicID:   &clinicID,
		ActorID:    actorID,
		Action:     "create",
		EntityType: audit.EntityRefund,
		EntityID:   inv.ID,
		Changes: map[string]any{
			"amount": req.Amount,
			"reason": req.Reason,
			"status": status,
		},
	})

	return s.GetByID(ctx, clinicID, invoiceID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// FormatNumber builds an invoice number such as "INV2026-00017". The
// sequence restarts every calendar year and is scoped to a clinic.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("INV%d-%05d", year, seq)
}

func (s *invoiceService) nextNumber(ctx context.Context, clinicID uuid.UUID) (string, error) {
	year := time.Now().Year()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	n, err := s.db.Invoice.Query().
		Where(entinvoice.ClinicID(clinicID), entinvoice.CreatedAtGTE(startOfYear)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count invoices for number: %w", err)
	}
	return FormatNumber(year, n+1), nil
}

func (s *invoiceService) insertItems(ctx context.Context, invoiceID uuid.UUID, items []ItemInput) error {
	builders := make([]*repo.InvoiceItemCreate, len(items))
	for i, it := range items {
		builders[i] = s.db.InvoiceItem.Create().
			SetInvoiceID(invoiceID).
			SetDescription(strings.TrimSpace(it.Description)).
			SetQuantity(it.Quantity).
			SetUnitPrice(it.UnitPrice).
			SetTotal(LineTotal(it.Quantity, it.UnitPrice)).
			SetPosition(i)
	}
	if _, err := s.db.InvoiceItem.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create invoice items: %w", err)
	}
	return nil
}

func validateItems(items []ItemInput) error {
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity < 0 || it.UnitPrice < 0 {
			return ErrInvalidItem
		}
	}
	return nil
}

func validateDiscount(fixed int64, percent float64, reason *string) error {
	if fixed != 0 && percent != 0 {
		return ErrDiscountConflict
	}
	if fixed < 0 || percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	// Any non-zero discount must say why it was given.
	if (fixed != 0 || percent != 0) && (reason == nil || strings.TrimSpace(*reason) == "") {
		return ErrMissingDiscountReason
	}
	return nil
}

func sums(inv *repo.Invoice) (paid, refunded int64) {
	for _, p := range inv.Edges.Payments {
		paid += p.Amount
	}
	for _, r := range inv.Edges.Refunds {
		refunded += r.Amount
	}
	return paid, refunded
}

// sendReceipt emails a payment receipt when the patient has an email on
// file. Failures are logged by the mail client and never fail the payment.
func (s *invoiceService) sendReceipt(ctx context.Context, inv *repo.Invoice, amount, balanceApplied int64) {
	if s.mail == nil {
		return
	}
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(inv.PatientID)).
		Only(ctx)
	if err != nil || p.Email == nil || *p.Email == "" {
		return
	}
	clinicName := ""
	if c, err := s.db.Clinic.Query().
		Where(entclinic.ID(inv.ClinicID)).
		Only(ctx); err == nil {
		clinicName = c.Name
	}

	msg := email.BuildPaymentReceiptEmail(email.ReceiptEmailData{
		Email:         *p.Email,
		PatientName:   p.FirstName + " " + p.LastName,
		ClinicName:    clinicName,
		InvoiceNumber: inv.Number,
		AmountPaid:    formatCents(amount),
		Balance:       formatCents(inv.GrandTotal - balanceApplied),
	})
	_ = s.mail.Send(ctx, msg)
}

func formatCents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
