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
	"github.com/clinovahq/clinova_backend/internal/repo/payment"
	"github.com/google/uuid"
)

// PaymentCreate is the builder for creating a Payment entity.
type PaymentCreate struct {
	config
	mutation *PaymentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentCreate) SetCreatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableCreatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *PaymentCreate) SetInvoiceID(v uuid.UUID) *PaymentCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PaymentCreate) SetAmount(v int64) *PaymentCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *PaymentCreate) SetMethod(v payment.Method) *PaymentCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetReceiptNo sets the "receipt_no" field.
func (_c *PaymentCreate) SetReceiptNo(v string) *PaymentCreate {
	_c.mutation.SetReceiptNo(v)
	return _c
}

// SetNillableReceiptNo sets the "receipt_no" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableReceiptNo(v *string) *PaymentCreate {
	if v != nil {
		_c.SetReceiptNo(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PaymentCreate) SetNotes(v string) *PaymentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableNotes(v *string) *PaymentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetReceivedBy sets the "received_by" field.
func (_c *PaymentCreate) SetReceivedBy(v uuid.UUID) *PaymentCreate {
	_c.mutation.SetReceivedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentCreate) SetID(v uuid.UUID) *PaymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableID(v *uuid.UUID) *PaymentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *PaymentCreate) SetInvoice(v *Invoice) *PaymentCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the PaymentMutation object of the builder.
func (_c *PaymentCreate) Mutation() *PaymentMutation {
	return _c.mutation
}

// Save creates the Payment in the database.
func (_c *PaymentCreate) Save(ctx context.Context) (*Payment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentCreate) SaveX(ctx context.Context) *Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := payment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Payment.created_at"`)}
	}
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`repo: missing required field "Payment.invoice_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Payment.amount"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`repo: missing required field "Payment.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReceiptNo(); ok {
		if err := payment.ReceiptNoValidator(v); err != nil {
			return &ValidationError{Name: "receipt_no", err: fmt.Errorf(`repo: validator failed for field "Payment.receipt_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedBy(); !ok {
		return &ValidationError{Name: "received_by", err: errors.New(`repo: missing required field "Payment.received_by"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`repo: missing required edge "Payment.invoice"`)}
	}
	return nil
}

func (_c *PaymentCreate) sqlSave(ctx context.Context) (*Payment, error) {
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

func (_c *PaymentCreate) createSpec() (*Payment, *sqlgraph.CreateSpec) {
	var (
		_node = &Payment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payment.Table, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.ReceiptNo(); ok {
		_spec.SetField(payment.FieldReceiptNo, field.TypeString, value)
		_node.ReceiptNo = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(payment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ReceivedBy(); ok {
		_spec.SetField(payment.FieldReceivedBy, field.TypeUUID, value)
		_node.ReceivedBy = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Payment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertOne {
	_c.conflict = opts
	return &PaymentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreate) OnConflictColumns(columns ...string) *PaymentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertOne{
		create: _c,
	}
}

type (
	// PaymentUpsertOne is the builder for "upsert"-ing
	//  one Payment node.
	PaymentUpsertOne struct {
		create *PaymentCreate
	}

	// PaymentUpsert is the "OnConflict" setter.
	PaymentUpsert struct {
		*sql.UpdateSet
	}
)

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentUpsert) SetInvoiceID(v uuid.UUID) *PaymentUpsert {
	u.Set(payment.FieldInvoiceID, v)
	return u
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateInvoiceID() *PaymentUpsert {
	u.SetExcluded(payment.FieldInvoiceID)
	return u
}

// SetAmount sets the "amount" field.
func (u *PaymentUpsert) SetAmount(v int64) *PaymentUpsert {
	u.Set(payment.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateAmount() *PaymentUpsert {
	u.SetExcluded(payment.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *PaymentUpsert) AddAmount(v int64) *PaymentUpsert {
	u.Add(payment.FieldAmount, v)
	return u
}

// SetMethod sets the "method" field.
func (u *PaymentUpsert) SetMethod(v payment.Method) *PaymentUpsert {
	u.Set(payment.FieldMethod, v)
	return u
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateMethod() *PaymentUpsert {
	u.SetExcluded(payment.FieldMethod)
	return u
}

// SetReceiptNo sets the "receipt_no" field.
func (u *PaymentUpsert) SetReceiptNo(v string) *PaymentUpsert {
	u.Set(payment.FieldReceiptNo, v)
	return u
}

// UpdateReceiptNo sets the "receipt_no" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateReceiptNo() *PaymentUpsert {
	u.SetExcluded(payment.FieldReceiptNo)
	return u
}

// ClearReceiptNo clears the value of the "receipt_no" field.
func (u *PaymentUpsert) ClearReceiptNo() *PaymentUpsert {
	u.SetNull(payment.FieldReceiptNo)
	return u
}

// SetNotes sets the "notes" field.
func (u *PaymentUpsert) SetNotes(v string) *PaymentUpsert {
	u.Set(payment.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateNotes() *PaymentUpsert {
	u.SetExcluded(payment.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PaymentUpsert) ClearNotes() *PaymentUpsert {
	u.SetNull(payment.FieldNotes)
	return u
}

// SetReceivedBy sets the "received_by" field.
func (u *PaymentUpsert) SetReceivedBy(v uuid.UUID) *PaymentUpsert {
	u.Set(payment.FieldReceivedBy, v)
	return u
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *PaymentUpsert) UpdateReceivedBy() *PaymentUpsert {
	u.SetExcluded(payment.FieldReceivedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertOne) UpdateNewValues() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(payment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(payment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentUpsertOne) Ignore() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertOne) DoNothing() *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreate.OnConflict
// documentation for more info.
func (u *PaymentUpsertOne) Update(set func(*PaymentUpsert)) *PaymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentUpsertOne) SetInvoiceID(v uuid.UUID) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateInvoiceID() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentUpsertOne) SetAmount(v int64) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PaymentUpsertOne) AddAmount(v int64) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateAmount() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAmount()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentUpsertOne) SetMethod(v payment.Method) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateMethod() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateMethod()
	})
}

// SetReceiptNo sets the "receipt_no" field.
func (u *PaymentUpsertOne) SetReceiptNo(v string) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceiptNo(v)
	})
}

// UpdateReceiptNo sets the "receipt_no" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateReceiptNo() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceiptNo()
	})
}

// ClearReceiptNo clears the value of the "receipt_no" field.
func (u *PaymentUpsertOne) ClearReceiptNo() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReceiptNo()
	})
}

// SetNotes sets the "notes" field.
func (u *PaymentUpsertOne) SetNotes(v string) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateNotes() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PaymentUpsertOne) ClearNotes() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearNotes()
	})
}

// SetReceivedBy sets the "received_by" field.
func (u *PaymentUpsertOne) SetReceivedBy(v uuid.UUID) *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceivedBy(v)
	})
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *PaymentUpsertOne) UpdateReceivedBy() *PaymentUpsertOne {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceivedBy()
	})
}

// Exec executes the query.
func (u *PaymentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PaymentUpsertOne.ID is not supported by MySQL driver. Use PaymentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentCreateBulk is the builder for creating many Payment entities in bulk.
type PaymentCreateBulk struct {
	config
	err      error
	builders []*PaymentCreate
	conflict []sql.ConflictOption
}

// Save creates the Payment entities in the database.
func (_c *PaymentCreateBulk) Save(ctx context.Context) ([]*Payment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Payment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMutation)
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
func (_c *PaymentCreateBulk) SaveX(ctx context.Context) []*Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Payment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentUpsertBulk {
	_c.conflict = opts
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentCreateBulk) OnConflictColumns(columns ...string) *PaymentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentUpsertBulk{
		create: _c,
	}
}

// PaymentUpsertBulk is the builder for "upsert"-ing
// a bulk of Payment nodes.
type PaymentUpsertBulk struct {
	create *PaymentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(payment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentUpsertBulk) UpdateNewValues() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(payment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(payment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Payment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentUpsertBulk) Ignore() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentUpsertBulk) DoNothing() *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentUpsertBulk) Update(set func(*PaymentUpsert)) *PaymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentUpsertBulk) SetInvoiceID(v uuid.UUID) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateInvoiceID() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentUpsertBulk) SetAmount(v int64) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PaymentUpsertBulk) AddAmount(v int64) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateAmount() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateAmount()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentUpsertBulk) SetMethod(v payment.Method) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateMethod() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateMethod()
	})
}

// SetReceiptNo sets the "receipt_no" field.
func (u *PaymentUpsertBulk) SetReceiptNo(v string) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceiptNo(v)
	})
}

// UpdateReceiptNo sets the "receipt_no" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateReceiptNo() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceiptNo()
	})
}

// ClearReceiptNo clears the value of the "receipt_no" field.
func (u *PaymentUpsertBulk) ClearReceiptNo() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearReceiptNo()
	})
}

// SetNotes sets the "notes" field.
func (u *PaymentUpsertBulk) SetNotes(v string) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateNotes() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PaymentUpsertBulk) ClearNotes() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.ClearNotes()
	})
}

// SetReceivedBy sets the "received_by" field.
func (u *PaymentUpsertBulk) SetReceivedBy(v uuid.UUID) *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.SetReceivedBy(v)
	})
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *PaymentUpsertBulk) UpdateReceivedBy() *PaymentUpsertBulk {
	return u.Update(func(s *PaymentUpsert) {
		s.UpdateReceivedBy()
	})
}

// Exec executes the query.
func (u *PaymentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PaymentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
