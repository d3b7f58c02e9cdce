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
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/clinovahq/clinova_backend/internal/repo/refund"
	"github.com/google/uuid"
)

// RefundUpdate is the builder for updating Refund entities.
type RefundUpdate struct {
	config
	hooks    []Hook
	mutation *RefundMutation
}

// Where appends a list predicates to the RefundUpdate builder.
func (_u *RefundUpdate) Where(ps ...predicate.Refund) *RefundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *RefundUpdate) SetInvoiceID(v uuid.UUID) *RefundUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *RefundUpdate) SetNillableInvoiceID(v *uuid.UUID) *RefundUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RefundUpdate) SetAmount(v int64) *RefundUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RefundUpdate) SetNillableAmount(v *int64) *RefundUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RefundUpdate) AddAmount(v int64) *RefundUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RefundUpdate) SetReason(v string) *RefundUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RefundUpdate) SetNillableReason(v *string) *RefundUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RefundUpdate) SetNotes(v string) *RefundUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RefundUpdate) SetNillableNotes(v *string) *RefundUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RefundUpdate) ClearNotes() *RefundUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetRefundedBy sets the "refunded_by" field.
func (_u *RefundUpdate) SetRefundedBy(v uuid.UUID) *RefundUpdate {
	_u.mutation.SetRefundedBy(v)
	return _u
}

// SetNillableRefundedBy sets the "refunded_by" field if the given value is not nil.
func (_u *RefundUpdate) SetNillableRefundedBy(v *uuid.UUID) *RefundUpdate {
	if v != nil {
		_u.SetRefundedBy(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *RefundUpdate) SetInvoice(v *Invoice) *RefundUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the RefundMutation object of the builder.
func (_u *RefundUpdate) Mutation() *RefundMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *RefundUpdate) ClearInvoice() *RefundUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RefundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RefundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefundUpdate) check() error {
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Refund.invoice"`)
	}
	return nil
}

func (_u *RefundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refund.Table, refund.Columns, sqlgraph.NewFieldSpec(refund.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(refund.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(refund.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(refund.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(refund.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(refund.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RefundedBy(); ok {
		_spec.SetField(refund.FieldRefundedBy, field.TypeUUID, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refund.InvoiceTable,
			Columns: []string{refund.InvoiceColumn},
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
			Table:   refund.InvoiceTable,
			Columns: []string{refund.InvoiceColumn},
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
			err = &NotFoundError{refund.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RefundUpdateOne is the builder for updating a single Refund entity.
type RefundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefundMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *RefundUpdateOne) SetInvoiceID(v uuid.UUID) *RefundUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *RefundUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *RefundUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RefundUpdateOne) SetAmount(v int64) *RefundUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RefundUpdateOne) SetNillableAmount(v *int64) *RefundUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RefundUpdateOne) AddAmount(v int64) *RefundUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RefundUpdateOne) SetReason(v string) *RefundUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RefundUpdateOne) SetNillableReason(v *string) *RefundUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RefundUpdateOne) SetNotes(v string) *RefundUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RefundUpdateOne) SetNillableNotes(v *string) *RefundUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RefundUpdateOne) ClearNotes() *RefundUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetRefundedBy sets the "refunded_by" field.
func (_u *RefundUpdateOne) SetRefundedBy(v uuid.UUID) *RefundUpdateOne {
	_u.mutation.SetRefundedBy(v)
	return _u
}

// SetNillableRefundedBy sets the "refunded_by" field if the given value is not nil.
func (_u *RefundUpdateOne) SetNillableRefundedBy(v *uuid.UUID) *RefundUpdateOne {
	if v != nil {
		_u.SetRefundedBy(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *RefundUpdateOne) SetInvoice(v *Invoice) *RefundUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the RefundMutation object of the builder.
func (_u *RefundUpdateOne) Mutation() *RefundMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *RefundUpdateOne) ClearInvoice() *RefundUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the RefundUpdate builder.
func (_u *RefundUpdateOne) Where(ps ...predicate.Refund) *RefundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RefundUpdateOne) Select(field string, fields ...string) *RefundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Refund entity.
func (_u *RefundUpdateOne) Save(ctx context.Context) (*Refund, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefundUpdateOne) SaveX(ctx context.Context) *Refund {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RefundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefundUpdateOne) check() error {
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Refund.invoice"`)
	}
	return nil
}

func (_u *RefundUpdateOne) sqlSave(ctx context.Context) (_node *Refund, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refund.Table, refund.Columns, sqlgraph.NewFieldSpec(refund.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Refund.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refund.FieldID)
		for _, f := range fields {
			if !refund.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != refund.FieldID {
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
		_spec.SetField(refund.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(refund.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(refund.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(refund.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(refund.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RefundedBy(); ok {
		_spec.SetField(refund.FieldRefundedBy, field.TypeUUID, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refund.InvoiceTable,
			Columns: []string{refund.InvoiceColumn},
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
			Table:   refund.InvoiceTable,
			Columns: []string{refund.InvoiceColumn},
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
	_node = &Refund{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refund.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
