// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/payment"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *PaymentUpdate) SetInvoiceID(v uuid.UUID) *PaymentUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableInvoiceID(v *uuid.UUID) *PaymentUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentUpdate) SetAmount(v int64) *PaymentUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableAmount(v *int64) *PaymentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentUpdate) AddAmount(v int64) *PaymentUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdate) SetMethod(v payment.Method) *PaymentUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableMethod(v *payment.Method) *PaymentUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetReceiptNo sets the "receipt_no" field.
func (_u *PaymentUpdate) SetReceiptNo(v string) *PaymentUpdate {
	_u.mutation.SetReceiptNo(v)
	return _u
}

// SetNillableReceiptNo sets the "receipt_no" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReceiptNo(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetReceiptNo(*v)
	}
	return _u
}

// ClearReceiptNo clears the value of the "receipt_no" field.
func (_u *PaymentUpdate) ClearReceiptNo() *PaymentUpdate {
	_u.mutation.ClearReceiptNo()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PaymentUpdate) SetNotes(v string) *PaymentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableNotes(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PaymentUpdate) ClearNotes() *PaymentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetReceivedBy sets the "received_by" field.
func (_u *PaymentUpdate) SetReceivedBy(v uuid.UUID) *PaymentUpdate {
	_u.mutation.SetReceivedBy(v)
	return _u
}

// SetNillableReceivedBy sets the "received_by" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReceivedBy(v *uuid.UUID) *PaymentUpdate {
	if v != nil {
		_u.SetReceivedBy(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *PaymentUpdate) SetInvoice(v *Invoice) *PaymentUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *PaymentUpdate) ClearInvoice() *PaymentUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiptNo(); ok {
		if err := payment.ReceiptNoValidator(v); err != nil {
			return &ValidationError{Name: "receipt_no", err: fmt.Errorf(`repo: validator failed for field "Payment.receipt_no": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Payment.invoice"`)
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiptNo(); ok {
		_spec.SetField(payment.FieldReceiptNo, field.TypeString, value)
	}
	if _u.mutation.ReceiptNoCleared() {
		_spec.ClearField(payment.FieldReceiptNo, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(payment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(payment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedBy(); ok {
		_spec.SetField(payment.FieldReceivedBy, field.TypeUUID, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.InvoiceTable,
			Columns: []string{payment.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.InvoiceTable,
			Columns: []string{payment.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *PaymentUpdateOne) SetInvoiceID(v uuid.UUID) *PaymentUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *PaymentUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentUpdateOne) SetAmount(v int64) *PaymentUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableAmount(v *int64) *PaymentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentUpdateOne) AddAmount(v int64) *PaymentUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdateOne) SetMethod(v payment.Method) *PaymentUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableMethod(v *payment.Method) *PaymentUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetReceiptNo sets the "receipt_no" field.
func (_u *PaymentUpdateOne) SetReceiptNo(v string) *PaymentUpdateOne {
	_u.mutation.SetReceiptNo(v)
	return _u
}

// SetNillableReceiptNo sets the "receipt_no" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReceiptNo(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetReceiptNo(*v)
	}
	return _u
}

// ClearReceiptNo clears the value of the "receipt_no" field.
func (_u *PaymentUpdateOne) ClearReceiptNo() *PaymentUpdateOne {
	_u.mutation.ClearReceiptNo()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PaymentUpdateOne) SetNotes(v string) *PaymentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableNotes(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PaymentUpdateOne) ClearNotes() *PaymentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetReceivedBy sets the "received_by" field.
func (_u *PaymentUpdateOne) SetReceivedBy(v uuid.UUID) *PaymentUpdateOne {
	_u.mutation.SetReceivedBy(v)
	return _u
}

// SetNillableReceivedBy sets the "received_by" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReceivedBy(v *uuid.UUID) *PaymentUpdateOne {
	if v != nil {
		_u.SetReceivedBy(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *PaymentUpdateOne) SetInvoice(v *Invoice) *PaymentUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *PaymentUpdateOne) ClearInvoice() *PaymentUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiptNo(); ok {
		if err := payment.ReceiptNoValidator(v); err != nil {
			return &ValidationError{Name: "receipt_no", err: fmt.Errorf(`repo: validator failed for field "Payment.receipt_no": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Payment.invoice"`)
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiptNo(); ok {
		_spec.SetField(payment.FieldReceiptNo, field.TypeString, value)
	}
	if _u.mutation.ReceiptNoCleared() {
		_spec.ClearField(payment.FieldReceiptNo, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(payment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(payment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedBy(); ok {
		_spec.SetField(payment.FieldReceivedBy, field.TypeUUID, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.InvoiceTable,
			Columns: []string{payment.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payment.InvoiceTable,
			Columns: []string{payment.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
