// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/invoiceitem"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/payment"
	"github.com/clinovahq/clinova_backend/internal/repo/refund"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *InvoiceCreate) SetClinicID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *InvoiceCreate) SetPatientID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVisitID sets the "visit_id" field.
func (_c *InvoiceCreate) SetVisitID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetVisitID(v)
	return _c
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVisitID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetVisitID(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *InvoiceCreate) SetNumber(v string) *InvoiceCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v int64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetDiscountAmount sets the "discount_amount" field.
func (_c *InvoiceCreate) SetDiscountAmount(v int64) *InvoiceCreate {
	_c.mutation.SetDiscountAmount(v)
	return _c
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscountAmount(v *int64) *InvoiceCreate {
	if v != nil {
		_c.SetDiscountAmount(*v)
	}
	return _c
}

// SetDiscountPercent sets the "discount_percent" field.
func (_c *InvoiceCreate) SetDiscountPercent(v float64) *InvoiceCreate {
	_c.mutation.SetDiscountPercent(v)
	return _c
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscountPercent(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetDiscountPercent(*v)
	}
	return _c
}

// SetDiscountReason sets the "discount_reason" field.
func (_c *InvoiceCreate) SetDiscountReason(v string) *InvoiceCreate {
	_c.mutation.SetDiscountReason(v)
	return _c
}

// SetNillableDiscountReason sets the "discount_reason" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscountReason(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetDiscountReason(*v)
	}
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *InvoiceCreate) SetTaxRate(v float64) *InvoiceCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTaxRate(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTaxRate(*v)
	}
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *InvoiceCreate) SetDiscount(v int64) *InvoiceCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscount(v *int64) *InvoiceCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *InvoiceCreate) SetTaxAmount(v int64) *InvoiceCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTaxAmount(v *int64) *InvoiceCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetGrandTotal sets the "grand_total" field.
func (_c *InvoiceCreate) SetGrandTotal(v int64) *InvoiceCreate {
	_c.mutation.SetGrandTotal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v invoice.Status) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *invoice.Status) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InvoiceCreate) SetNotes(v string) *InvoiceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNotes(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *InvoiceCreate) SetPatient(v *Patient) *InvoiceCreate {
	return _c.SetPatientID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_c *InvoiceCreate) AddItemIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_c *InvoiceCreate) AddItems(v ...*InvoiceItem) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_c *InvoiceCreate) AddPaymentIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddPaymentIDs(ids...)
	return _c
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_c *InvoiceCreate) AddPayments(v ...*Payment) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentIDs(ids...)
}

// AddRefundIDs adds the "refunds" edge to the Refund entity by IDs.
func (_c *InvoiceCreate) AddRefundIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddRefundIDs(ids...)
	return _c
}

// AddRefunds adds the "refunds" edges to the Refund entity.
func (_c *InvoiceCreate) AddRefunds(v ...*Refund) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRefundIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DiscountAmount(); !ok {
		v := invoice.DefaultDiscountAmount
		_c.mutation.SetDiscountAmount(v)
	}
	if _, ok := _c.mutation.DiscountPercent(); !ok {
		v := invoice.DefaultDiscountPercent
		_c.mutation.SetDiscountPercent(v)
	}
	if _, ok := _c.mutation.TaxRate(); !ok {
		v := invoice.DefaultTaxRate
		_c.mutation.SetTaxRate(v)
	}
	if _, ok := _c.mutation.Discount(); !ok {
		v := invoice.DefaultDiscount
		_c.mutation.SetDiscount(v)
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		v := invoice.DefaultTaxAmount
		_c.mutation.SetTaxAmount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Invoice.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Invoice.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Invoice.patient_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`repo: missing required field "Invoice.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := invoice.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Invoice.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`repo: missing required field "Invoice.subtotal"`)}
	}
	if _, ok := _c.mutation.DiscountAmount(); !ok {
		return &ValidationError{Name: "discount_amount", err: errors.New(`repo: missing required field "Invoice.discount_amount"`)}
	}
	if _, ok := _c.mutation.DiscountPercent(); !ok {
		return &ValidationError{Name: "discount_percent", err: errors.New(`repo: missing required field "Invoice.discount_percent"`)}
	}
	if _, ok := _c.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`repo: missing required field "Invoice.tax_rate"`)}
	}
	if _, ok := _c.mutation.Discount(); !ok {
		return &ValidationError{Name: "discount", err: errors.New(`repo: missing required field "Invoice.discount"`)}
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`repo: missing required field "Invoice.tax_amount"`)}
	}
	if _, ok := _c.mutation.GrandTotal(); !ok {
		return &ValidationError{Name: "grand_total", err: errors.New(`repo: missing required field "Invoice.grand_total"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Invoice.patient"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(invoice.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.VisitID(); ok {
		_spec.SetField(invoice.FieldVisitID, field.TypeUUID, value)
		_node.VisitID = &value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeInt64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeInt64, value)
		_node.DiscountAmount = value
	}
	if value, ok := _c.mutation.DiscountPercent(); ok {
		_spec.SetField(invoice.FieldDiscountPercent, field.TypeFloat64, value)
		_node.DiscountPercent = value
	}
	if value, ok := _c.mutation.DiscountReason(); ok {
		_spec.SetField(invoice.FieldDiscountReason, field.TypeString, value)
		_node.DiscountReason = &value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeInt64, value)
		_node.Discount = value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeInt64, value)
		_node.TaxAmount = value
	}
	if value, ok := _c.mutation.GrandTotal(); ok {
		_spec.SetField(invoice.FieldGrandTotal, field.TypeInt64, value)
		_node.GrandTotal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.PatientTable,
			Columns: []string{invoice.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.PaymentsTable,
			Columns: []string{invoice.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RefundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.RefundsTable,
			Columns: []string{invoice.RefundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertOne {
	_c.conflict = opts
	return &InvoiceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflictColumns(columns ...string) *InvoiceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertOne{
		create: _c,
	}
}

type (
	// InvoiceUpsertOne is the builder for "upsert"-ing
	//  one Invoice node.
	InvoiceUpsertOne struct {
		create *InvoiceCreate
	}

	// InvoiceUpsert is the "OnConflict" setter.
	InvoiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsert) SetUpdatedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *InvoiceUpsert) SetClinicID(v uuid.UUID) *InvoiceUpsert {
	u.Set(invoice.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateClinicID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldClinicID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsert) SetPatientID(v uuid.UUID) *InvoiceUpsert {
	u.Set(invoice.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePatientID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPatientID)
	return u
}

// SetVisitID sets the "visit_id" field.
func (u *InvoiceUpsert) SetVisitID(v uuid.UUID) *InvoiceUpsert {
	u.Set(invoice.FieldVisitID, v)
	return u
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateVisitID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldVisitID)
	return u
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *InvoiceUpsert) ClearVisitID() *InvoiceUpsert {
	u.SetNull(invoice.FieldVisitID)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsert) SetSubtotal(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateSubtotal() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsert) AddSubtotal(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldSubtotal, v)
	return u
}

// SetDiscountAmount sets the "discount_amount" field.
func (u *InvoiceUpsert) SetDiscountAmount(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldDiscountAmount, v)
	return u
}

// UpdateDiscountAmount sets the "discount_amount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDiscountAmount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDiscountAmount)
	return u
}

// AddDiscountAmount adds v to the "discount_amount" field.
func (u *InvoiceUpsert) AddDiscountAmount(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldDiscountAmount, v)
	return u
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *InvoiceUpsert) SetDiscountPercent(v float64) *InvoiceUpsert {
	u.Set(invoice.FieldDiscountPercent, v)
	return u
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDiscountPercent() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDiscountPercent)
	return u
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *InvoiceUpsert) AddDiscountPercent(v float64) *InvoiceUpsert {
	u.Add(invoice.FieldDiscountPercent, v)
	return u
}

// SetDiscountReason sets the "discount_reason" field.
func (u *InvoiceUpsert) SetDiscountReason(v string) *InvoiceUpsert {
	u.Set(invoice.FieldDiscountReason, v)
	return u
}

// UpdateDiscountReason sets the "discount_reason" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDiscountReason() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDiscountReason)
	return u
}

// ClearDiscountReason clears the value of the "discount_reason" field.
func (u *InvoiceUpsert) ClearDiscountReason() *InvoiceUpsert {
	u.SetNull(invoice.FieldDiscountReason)
	return u
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsert) SetTaxRate(v float64) *InvoiceUpsert {
	u.Set(invoice.FieldTaxRate, v)
	return u
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTaxRate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTaxRate)
	return u
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsert) AddTaxRate(v float64) *InvoiceUpsert {
	u.Add(invoice.FieldTaxRate, v)
	return u
}

// SetDiscount sets the "discount" field.
func (u *InvoiceUpsert) SetDiscount(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldDiscount, v)
	return u
}

// UpdateDiscount sets the "discount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDiscount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDiscount)
	return u
}

// AddDiscount adds v to the "discount" field.
func (u *InvoiceUpsert) AddDiscount(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldDiscount, v)
	return u
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsert) SetTaxAmount(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldTaxAmount, v)
	return u
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTaxAmount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTaxAmount)
	return u
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsert) AddTaxAmount(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldTaxAmount, v)
	return u
}

// SetGrandTotal sets the "grand_total" field.
func (u *InvoiceUpsert) SetGrandTotal(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldGrandTotal, v)
	return u
}

// UpdateGrandTotal sets the "grand_total" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateGrandTotal() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldGrandTotal)
	return u
}

// AddGrandTotal adds v to the "grand_total" field.
func (u *InvoiceUpsert) AddGrandTotal(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldGrandTotal, v)
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsert) SetStatus(v invoice.Status) *InvoiceUpsert {
	u.Set(invoice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldStatus)
	return u
}

// SetNotes sets the "notes" field.
func (u *InvoiceUpsert) SetNotes(v string) *InvoiceUpsert {
	u.Set(invoice.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateNotes() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *InvoiceUpsert) ClearNotes() *InvoiceUpsert {
	u.SetNull(invoice.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertOne) UpdateNewValues() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(invoice.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Number(); exists {
			s.SetIgnore(invoice.FieldNumber)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceUpsertOne) Ignore() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertOne) DoNothing() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreate.OnConflict
// documentation for more info.
func (u *InvoiceUpsertOne) Update(set func(*InvoiceUpsert)) *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertOne) SetUpdatedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *InvoiceUpsertOne) SetClinicID(v uuid.UUID) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateClinicID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsertOne) SetPatientID(v uuid.UUID) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePatientID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *InvoiceUpsertOne) SetVisitID(v uuid.UUID) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateVisitID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVisitID()
	})
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *InvoiceUpsertOne) ClearVisitID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVisitID()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsertOne) SetSubtotal(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsertOne) AddSubtotal(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateSubtotal() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSubtotal()
	})
}

// SetDiscountAmount sets the "discount_amount" field.
func (u *InvoiceUpsertOne) SetDiscountAmount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountAmount(v)
	})
}

// AddDiscountAmount adds v to the "discount_amount" field.
func (u *InvoiceUpsertOne) AddDiscountAmount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscountAmount(v)
	})
}

// UpdateDiscountAmount sets the "discount_amount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDiscountAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountAmount()
	})
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *InvoiceUpsertOne) SetDiscountPercent(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountPercent(v)
	})
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *InvoiceUpsertOne) AddDiscountPercent(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscountPercent(v)
	})
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDiscountPercent() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountPercent()
	})
}

// SetDiscountReason sets the "discount_reason" field.
func (u *InvoiceUpsertOne) SetDiscountReason(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountReason(v)
	})
}

// UpdateDiscountReason sets the "discount_reason" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDiscountReason() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountReason()
	})
}

// ClearDiscountReason clears the value of the "discount_reason" field.
func (u *InvoiceUpsertOne) ClearDiscountReason() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDiscountReason()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsertOne) SetTaxRate(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxRate(v)
	})
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsertOne) AddTaxRate(v float64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTaxRate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxRate()
	})
}

// SetDiscount sets the "discount" field.
func (u *InvoiceUpsertOne) SetDiscount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscount(v)
	})
}

// AddDiscount adds v to the "discount" field.
func (u *InvoiceUpsertOne) AddDiscount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscount(v)
	})
}

// UpdateDiscount sets the "discount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDiscount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscount()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsertOne) SetTaxAmount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsertOne) AddTaxAmount(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTaxAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetGrandTotal sets the "grand_total" field.
func (u *InvoiceUpsertOne) SetGrandTotal(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetGrandTotal(v)
	})
}

// AddGrandTotal adds v to the "grand_total" field.
func (u *InvoiceUpsertOne) AddGrandTotal(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddGrandTotal(v)
	})
}

// UpdateGrandTotal sets the "grand_total" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateGrandTotal() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateGrandTotal()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertOne) SetStatus(v invoice.Status) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *InvoiceUpsertOne) SetNotes(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateNotes() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InvoiceUpsertOne) ClearNotes() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InvoiceUpsertOne.ID is not supported by MySQL driver. Use InvoiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertBulk {
	_c.conflict = opts
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflictColumns(columns ...string) *InvoiceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// InvoiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Invoice nodes.
type InvoiceUpsertBulk struct {
	create *InvoiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) UpdateNewValues() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(invoice.FieldCreatedAt)
			}
			if _, exists := b.mutation.Number(); exists {
				s.SetIgnore(invoice.FieldNumber)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) Ignore() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertBulk) DoNothing() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceUpsertBulk) Update(set func(*InvoiceUpsert)) *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertBulk) SetUpdatedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *InvoiceUpsertBulk) SetClinicID(v uuid.UUID) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateClinicID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsertBulk) SetPatientID(v uuid.UUID) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePatientID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *InvoiceUpsertBulk) SetVisitID(v uuid.UUID) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateVisitID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateVisitID()
	})
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *InvoiceUpsertBulk) ClearVisitID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearVisitID()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsertBulk) SetSubtotal(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsertBulk) AddSubtotal(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateSubtotal() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSubtotal()
	})
}

// SetDiscountAmount sets the "discount_amount" field.
func (u *InvoiceUpsertBulk) SetDiscountAmount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountAmount(v)
	})
}

// AddDiscountAmount adds v to the "discount_amount" field.
func (u *InvoiceUpsertBulk) AddDiscountAmount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscountAmount(v)
	})
}

// UpdateDiscountAmount sets the "discount_amount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDiscountAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountAmount()
	})
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *InvoiceUpsertBulk) SetDiscountPercent(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountPercent(v)
	})
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *InvoiceUpsertBulk) AddDiscountPercent(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscountPercent(v)
	})
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDiscountPercent() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountPercent()
	})
}

// SetDiscountReason sets the "discount_reason" field.
func (u *InvoiceUpsertBulk) SetDiscountReason(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscountReason(v)
	})
}

// UpdateDiscountReason sets the "discount_reason" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDiscountReason() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscountReason()
	})
}

// ClearDiscountReason clears the value of the "discount_reason" field.
func (u *InvoiceUpsertBulk) ClearDiscountReason() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDiscountReason()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsertBulk) SetTaxRate(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxRate(v)
	})
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsertBulk) AddTaxRate(v float64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTaxRate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxRate()
	})
}

// SetDiscount sets the "discount" field.
func (u *InvoiceUpsertBulk) SetDiscount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDiscount(v)
	})
}

// AddDiscount adds v to the "discount" field.
func (u *InvoiceUpsertBulk) AddDiscount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddDiscount(v)
	})
}

// UpdateDiscount sets the "discount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDiscount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDiscount()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsertBulk) SetTaxAmount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsertBulk) AddTaxAmount(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTaxAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetGrandTotal sets the "grand_total" field.
func (u *InvoiceUpsertBulk) SetGrandTotal(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetGrandTotal(v)
	})
}

// AddGrandTotal adds v to the "grand_total" field.
func (u *InvoiceUpsertBulk) AddGrandTotal(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddGrandTotal(v)
	})
}

// UpdateGrandTotal sets the "grand_total" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateGrandTotal() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateGrandTotal()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertBulk) SetStatus(v invoice.Status) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *InvoiceUpsertBulk) SetNotes(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateNotes() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InvoiceUpsertBulk) ClearNotes() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InvoiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
