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
	"github.com/clinovahq/clinova_backend/internal/repo/refund"
	"github.com/google/uuid"
)

// RefundCreate is the builder for creating a Refund entity.
type RefundCreate struct {
	config
	mutation *RefundMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RefundCreate) SetCreatedAt(v time.Time) *RefundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RefundCreate) SetNillableCreatedAt(v *time.Time) *RefundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *RefundCreate) SetInvoiceID(v uuid.UUID) *RefundCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *RefundCreate) SetAmount(v int64) *RefundCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RefundCreate) SetReason(v string) *RefundCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *RefundCreate) SetNotes(v string) *RefundCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *RefundCreate) SetNillableNotes(v *string) *RefundCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetRefundedBy sets the "refunded_by" field.
func (_c *RefundCreate) SetRefundedBy(v uuid.UUID) *RefundCreate {
	_c.mutation.SetRefundedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RefundCreate) SetID(v uuid.UUID) *RefundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RefundCreate) SetNillableID(v *uuid.UUID) *RefundCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *RefundCreate) SetInvoice(v *Invoice) *RefundCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the RefundMutation object of the builder.
func (_c *RefundCreate) Mutation() *RefundMutation {
	return _c.mutation
}

// Save creates the Refund in the database.
func (_c *RefundCreate) Save(ctx context.Context) (*Refund, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RefundCreate) SaveX(ctx context.Context) *Refund {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RefundCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := refund.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := refund.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RefundCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Refund.created_at"`)}
	}
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`repo: missing required field "Refund.invoice_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Refund.amount"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "Refund.reason"`)}
	}
	if _, ok := _c.mutation.RefundedBy(); !ok {
		return &ValidationError{Name: "refunded_by", err: errors.New(`repo: missing required field "Refund.refunded_by"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`repo: missing required edge "Refund.invoice"`)}
	}
	return nil
}

func (_c *RefundCreate) sqlSave(ctx context.Context) (*Refund, error) {
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

func (_c *RefundCreate) createSpec() (*Refund, *sqlgraph.CreateSpec) {
	var (
		_node = &Refund{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(refund.Table, sqlgraph.NewFieldSpec(refund.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(refund.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(refund.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(refund.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(refund.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.RefundedBy(); ok {
		_spec.SetField(refund.FieldRefundedBy, field.TypeUUID, value)
		_node.RefundedBy = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Refund.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefundUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RefundCreate) OnConflict(opts ...sql.ConflictOption) *RefundUpsertOne {
	_c.conflict = opts
	return &RefundUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Refund.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RefundCreate) OnConflictColumns(columns ...string) *RefundUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RefundUpsertOne{
		create: _c,
	}
}

type (
	// RefundUpsertOne is the builder for "upsert"-ing
	//  one Refund node.
	RefundUpsertOne struct {
		create *RefundCreate
	}

	// RefundUpsert is the "OnConflict" setter.
	RefundUpsert struct {
		*sql.UpdateSet
	}
)

// SetInvoiceID sets the "invoice_id" field.
func (u *RefundUpsert) SetInvoiceID(v uuid.UUID) *RefundUpsert {
	u.Set(refund.FieldInvoiceID, v)
	return u
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *RefundUpsert) UpdateInvoiceID() *RefundUpsert {
	u.SetExcluded(refund.FieldInvoiceID)
	return u
}

// SetAmount sets the "amount" field.
func (u *RefundUpsert) SetAmount(v int64) *RefundUpsert {
	u.Set(refund.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *RefundUpsert) UpdateAmount() *RefundUpsert {
	u.SetExcluded(refund.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *RefundUpsert) AddAmount(v int64) *RefundUpsert {
	u.Add(refund.FieldAmount, v)
	return u
}

// SetReason sets the "reason" field.
func (u *RefundUpsert) SetReason(v string) *RefundUpsert {
	u.Set(refund.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RefundUpsert) UpdateReason() *RefundUpsert {
	u.SetExcluded(refund.FieldReason)
	return u
}

// SetNotes sets the "notes" field.
func (u *RefundUpsert) SetNotes(v string) *RefundUpsert {
	u.Set(refund.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RefundUpsert) UpdateNotes() *RefundUpsert {
	u.SetExcluded(refund.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *RefundUpsert) ClearNotes() *RefundUpsert {
	u.SetNull(refund.FieldNotes)
	return u
}

// SetRefundedBy sets the "refunded_by" field.
func (u *RefundUpsert) SetRefundedBy(v uuid.UUID) *RefundUpsert {
	u.Set(refund.FieldRefundedBy, v)
	return u
}

// UpdateRefundedBy sets the "refunded_by" field to the value that was provided on create.
func (u *RefundUpsert) UpdateRefundedBy() *RefundUpsert {
	u.SetExcluded(refund.FieldRefundedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Refund.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(refund.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RefundUpsertOne) UpdateNewValues() *RefundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(refund.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(refund.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Refund.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RefundUpsertOne) Ignore() *RefundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefundUpsertOne) DoNothing() *RefundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefundCreate.OnConflict
// documentation for more info.
func (u *RefundUpsertOne) Update(set func(*RefundUpsert)) *RefundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefundUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *RefundUpsertOne) SetInvoiceID(v uuid.UUID) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *RefundUpsertOne) UpdateInvoiceID() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetAmount sets the "amount" field.
func (u *RefundUpsertOne) SetAmount(v int64) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *RefundUpsertOne) AddAmount(v int64) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *RefundUpsertOne) UpdateAmount() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateAmount()
	})
}

// SetReason sets the "reason" field.
func (u *RefundUpsertOne) SetReason(v string) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RefundUpsertOne) UpdateReason() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateReason()
	})
}

// SetNotes sets the "notes" field.
func (u *RefundUpsertOne) SetNotes(v string) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RefundUpsertOne) UpdateNotes() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *RefundUpsertOne) ClearNotes() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.ClearNotes()
	})
}

// SetRefundedBy sets the "refunded_by" field.
func (u *RefundUpsertOne) SetRefundedBy(v uuid.UUID) *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.SetRefundedBy(v)
	})
}

// UpdateRefundedBy sets the "refunded_by" field to the value that was provided on create.
func (u *RefundUpsertOne) UpdateRefundedBy() *RefundUpsertOne {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateRefundedBy()
	})
}

// Exec executes the query.
func (u *RefundUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RefundCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefundUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RefundUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RefundUpsertOne.ID is not supported by MySQL driver. Use RefundUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RefundUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RefundCreateBulk is the builder for creating many Refund entities in bulk.
type RefundCreateBulk struct {
	config
	err      error
	builders []*RefundCreate
	conflict []sql.ConflictOption
}

// Save creates the Refund entities in the database.
func (_c *RefundCreateBulk) Save(ctx context.Context) ([]*Refund, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Refund, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefundMutation)
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
func (_c *RefundCreateBulk) SaveX(ctx context.Context) []*Refund {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Refund.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefundUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RefundCreateBulk) OnConflict(opts ...sql.ConflictOption) *RefundUpsertBulk {
	_c.conflict = opts
	return &RefundUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Refund.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RefundCreateBulk) OnConflictColumns(columns ...string) *RefundUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RefundUpsertBulk{
		create: _c,
	}
}

// RefundUpsertBulk is the builder for "upsert"-ing
// a bulk of Refund nodes.
type RefundUpsertBulk struct {
	create *RefundCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Refund.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(refund.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RefundUpsertBulk) UpdateNewValues() *RefundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(refund.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(refund.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Refund.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RefundUpsertBulk) Ignore() *RefundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefundUpsertBulk) DoNothing() *RefundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefundCreateBulk.OnConflict
// documentation for more info.
func (u *RefundUpsertBulk) Update(set func(*RefundUpsert)) *RefundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefundUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *RefundUpsertBulk) SetInvoiceID(v uuid.UUID) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *RefundUpsertBulk) UpdateInvoiceID() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetAmount sets the "amount" field.
func (u *RefundUpsertBulk) SetAmount(v int64) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *RefundUpsertBulk) AddAmount(v int64) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *RefundUpsertBulk) UpdateAmount() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateAmount()
	})
}

// SetReason sets the "reason" field.
func (u *RefundUpsertBulk) SetReason(v string) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RefundUpsertBulk) UpdateReason() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateReason()
	})
}

// SetNotes sets the "notes" field.
func (u *RefundUpsertBulk) SetNotes(v string) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RefundUpsertBulk) UpdateNotes() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *RefundUpsertBulk) ClearNotes() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.ClearNotes()
	})
}

// SetRefundedBy sets the "refunded_by" field.
func (u *RefundUpsertBulk) SetRefundedBy(v uuid.UUID) *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.SetRefundedBy(v)
	})
}

// UpdateRefundedBy sets the "refunded_by" field to the value that was provided on create.
func (u *RefundUpsertBulk) UpdateRefundedBy() *RefundUpsertBulk {
	return u.Update(func(s *RefundUpsert) {
		s.UpdateRefundedBy()
	})
}

// Exec executes the query.
func (u *RefundUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RefundCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RefundCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefundUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
