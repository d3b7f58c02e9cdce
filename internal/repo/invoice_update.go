// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/invoiceitem"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/payment"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/clinovahq/clinova_backend/internal/repo/refund"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *InvoiceUpdate) SetClinicID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableClinicID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *InvoiceUpdate) SetPatientID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePatientID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *InvoiceUpdate) SetVisitID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVisitID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// ClearVisitID clears the value of the "visit_id" field.
func (_u *InvoiceUpdate) ClearVisitID() *InvoiceUpdate {
	_u.mutation.ClearVisitID()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v int64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v int64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetDiscountAmount sets the "discount_amount" field.
func (_u *InvoiceUpdate) SetDiscountAmount(v int64) *InvoiceUpdate {
	_u.mutation.ResetDiscountAmount()
	_u.mutation.SetDiscountAmount(v)
	return _u
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscountAmount(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscountAmount(*v)
	}
	return _u
}

// AddDiscountAmount adds value to the "discount_amount" field.
func (_u *InvoiceUpdate) AddDiscountAmount(v int64) *InvoiceUpdate {
	_u.mutation.AddDiscountAmount(v)
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *InvoiceUpdate) SetDiscountPercent(v float64) *InvoiceUpdate {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscountPercent(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *InvoiceUpdate) AddDiscountPercent(v float64) *InvoiceUpdate {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// SetDiscountReason sets the "discount_reason" field.
func (_u *InvoiceUpdate) SetDiscountReason(v string) *InvoiceUpdate {
	_u.mutation.SetDiscountReason(v)
	return _u
}

// SetNillableDiscountReason sets the "discount_reason" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscountReason(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscountReason(*v)
	}
	return _u
}

// ClearDiscountReason clears the value of the "discount_reason" field.
func (_u *InvoiceUpdate) ClearDiscountReason() *InvoiceUpdate {
	_u.mutation.ClearDiscountReason()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceUpdate) SetTaxRate(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxRate(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceUpdate) AddTaxRate(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *InvoiceUpdate) SetDiscount(v int64) *InvoiceUpdate {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscount(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *InvoiceUpdate) AddDiscount(v int64) *InvoiceUpdate {
	_u.mutation.AddDiscount(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v int64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v int64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *InvoiceUpdate) SetGrandTotal(v int64) *InvoiceUpdate {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableGrandTotal(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *InvoiceUpdate) AddGrandTotal(v int64) *InvoiceUpdate {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v invoice.Status) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *invoice.Status) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *InvoiceUpdate) SetPatient(v *Patient) *InvoiceUpdate {
	return _u.SetPatientID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_u *InvoiceUpdate) AddPaymentIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_u *InvoiceUpdate) AddPayments(v ...*Payment) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddRefundIDs adds the "refunds" edge to the Refund entity by IDs.
func (_u *InvoiceUpdate) AddRefundIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddRefundIDs(ids...)
	return _u
}

// AddRefunds adds the "refunds" edges to the Refund entity.
func (_u *InvoiceUpdate) AddRefunds(v ...*Refund) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRefundIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *InvoiceUpdate) ClearPatient() *InvoiceUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearPayments clears all "payments" edges to the Payment entity.
func (_u *InvoiceUpdate) ClearPayments() *InvoiceUpdate {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to Payment entities by IDs.
func (_u *InvoiceUpdate) RemovePaymentIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to Payment entities.
func (_u *InvoiceUpdate) RemovePayments(v ...*Payment) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearRefunds clears all "refunds" edges to the Refund entity.
func (_u *InvoiceUpdate) ClearRefunds() *InvoiceUpdate {
	_u.mutation.ClearRefunds()
	return _u
}

// RemoveRefundIDs removes the "refunds" edge to Refund entities by IDs.
func (_u *InvoiceUpdate) RemoveRefundIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveRefundIDs(ids...)
	return _u
}

// RemoveRefunds removes "refunds" edges to Refund entities.
func (_u *InvoiceUpdate) RemoveRefunds(v ...*Refund) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRefundIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Invoice.patient"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(invoice.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(invoice.FieldVisitID, field.TypeUUID, value)
	}
	if _u.mutation.VisitIDCleared() {
		_spec.ClearField(invoice.FieldVisitID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountAmount(); ok {
		_spec.AddField(invoice.FieldDiscountAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(invoice.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(invoice.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountReason(); ok {
		_spec.SetField(invoice.FieldDiscountReason, field.TypeString, value)
	}
	if _u.mutation.DiscountReasonCleared() {
		_spec.ClearField(invoice.FieldDiscountReason, field.TypeString)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(invoice.FieldDiscount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(invoice.FieldGrandTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(invoice.FieldGrandTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RefundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRefundsIDs(); len(nodes) > 0 && !_u.mutation.RefundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RefundsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *InvoiceUpdateOne) SetClinicID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableClinicID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *InvoiceUpdateOne) SetPatientID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePatientID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *InvoiceUpdateOne) SetVisitID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVisitID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// ClearVisitID clears the value of the "visit_id" field.
func (_u *InvoiceUpdateOne) ClearVisitID() *InvoiceUpdateOne {
	_u.mutation.ClearVisitID()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v int64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetDiscountAmount sets the "discount_amount" field.
func (_u *InvoiceUpdateOne) SetDiscountAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetDiscountAmount()
	_u.mutation.SetDiscountAmount(v)
	return _u
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscountAmount(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscountAmount(*v)
	}
	return _u
}

// AddDiscountAmount adds value to the "discount_amount" field.
func (_u *InvoiceUpdateOne) AddDiscountAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.AddDiscountAmount(v)
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *InvoiceUpdateOne) SetDiscountPercent(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscountPercent(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *InvoiceUpdateOne) AddDiscountPercent(v float64) *InvoiceUpdateOne {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// SetDiscountReason sets the "discount_reason" field.
func (_u *InvoiceUpdateOne) SetDiscountReason(v string) *InvoiceUpdateOne {
	_u.mutation.SetDiscountReason(v)
	return _u
}

// SetNillableDiscountReason sets the "discount_reason" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscountReason(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscountReason(*v)
	}
	return _u
}

// ClearDiscountReason clears the value of the "discount_reason" field.
func (_u *InvoiceUpdateOne) ClearDiscountReason() *InvoiceUpdateOne {
	_u.mutation.ClearDiscountReason()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceUpdateOne) SetTaxRate(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxRate(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceUpdateOne) AddTaxRate(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *InvoiceUpdateOne) SetDiscount(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscount(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *InvoiceUpdateOne) AddDiscount(v int64) *InvoiceUpdateOne {
	_u.mutation.AddDiscount(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *InvoiceUpdateOne) SetGrandTotal(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableGrandTotal(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *InvoiceUpdateOne) AddGrandTotal(v int64) *InvoiceUpdateOne {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v invoice.Status) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *invoice.Status) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *InvoiceUpdateOne) SetPatient(v *Patient) *InvoiceUpdateOne {
	return _u.SetPatientID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddPaymentIDs adds the "payments" edge to the Payment entity by IDs.
func (_u *InvoiceUpdateOne) AddPaymentIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the Payment entity.
func (_u *InvoiceUpdateOne) AddPayments(v ...*Payment) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddRefundIDs adds the "refunds" edge to the Refund entity by IDs.
func (_u *InvoiceUpdateOne) AddRefundIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddRefundIDs(ids...)
	return _u
}

// AddRefunds adds the "refunds" edges to the Refund entity.
func (_u *InvoiceUpdateOne) AddRefunds(v ...*Refund) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRefundIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *InvoiceUpdateOne) ClearPatient() *InvoiceUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearPayments clears all "payments" edges to the Payment entity.
func (_u *InvoiceUpdateOne) ClearPayments() *InvoiceUpdateOne {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to Payment entities by IDs.
func (_u *InvoiceUpdateOne) RemovePaymentIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to Payment entities.
func (_u *InvoiceUpdateOne) RemovePayments(v ...*Payment) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearRefunds clears all "refunds" edges to the Refund entity.
func (_u *InvoiceUpdateOne) ClearRefunds() *InvoiceUpdateOne {
	_u.mutation.ClearRefunds()
	return _u
}

// RemoveRefundIDs removes the "refunds" edge to Refund entities by IDs.
func (_u *InvoiceUpdateOne) RemoveRefundIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveRefundIDs(ids...)
	return _u
}

// RemoveRefunds removes "refunds" edges to Refund entities.
func (_u *InvoiceUpdateOne) RemoveRefunds(v ...*Refund) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRefundIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Invoice.patient"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(invoice.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitID(); ok {
		_spec.SetField(invoice.FieldVisitID, field.TypeUUID, value)
	}
	if _u.mutation.VisitIDCleared() {
		_spec.ClearField(invoice.FieldVisitID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountAmount(); ok {
		_spec.AddField(invoice.FieldDiscountAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(invoice.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(invoice.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountReason(); ok {
		_spec.SetField(invoice.FieldDiscountReason, field.TypeString, value)
	}
	if _u.mutation.DiscountReasonCleared() {
		_spec.ClearField(invoice.FieldDiscountReason, field.TypeString)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(invoice.FieldDiscount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(invoice.FieldGrandTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(invoice.FieldGrandTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RefundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRefundsIDs(); len(nodes) > 0 && !_u.mutation.RefundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RefundsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
