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
	"github.com/google/uuid"
)

// InvoiceItemCreate is the builder for creating a InvoiceItem entity.
type InvoiceItemCreate struct {
	config
	mutation *InvoiceItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceItemCreate) SetCreatedAt(v time.Time) *InvoiceItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableCreatedAt(v *time.Time) *InvoiceItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceItemCreate) SetInvoiceID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InvoiceItemCreate) SetDescription(v string) *InvoiceItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InvoiceItemCreate) SetQuantity(v int) *InvoiceItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *InvoiceItemCreate) SetUnitPrice(v int64) *InvoiceItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *InvoiceItemCreate) SetTotal(v int64) *InvoiceItemCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *InvoiceItemCreate) SetPosition(v int) *InvoiceItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillablePosition(v *int) *InvoiceItemCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceItemCreate) SetID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableID(v *uuid.UUID) *InvoiceItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceItemCreate) SetInvoice(v *Invoice) *InvoiceItemCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_c *InvoiceItemCreate) Mutation() *InvoiceItemMutation {
	return _c.mutation
}

// Save creates the InvoiceItem in the database.
func (_c *InvoiceItemCreate) Save(ctx context.Context) (*InvoiceItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceItemCreate) SaveX(ctx context.Context) *InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := invoiceitem.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InvoiceItem.created_at"`)}
	}
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`repo: missing required field "InvoiceItem.invoice_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "InvoiceItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "InvoiceItem.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "InvoiceItem.unit_price"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`repo: missing required field "InvoiceItem.total"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "InvoiceItem.position"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`repo: missing required edge "InvoiceItem.invoice"`)}
	}
	return nil
}

func (_c *InvoiceItemCreate) sqlSave(ctx context.Context) (*InvoiceItem, error) {
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

func (_c *InvoiceItemCreate) createSpec() (*InvoiceItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceitem.Table, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(invoiceitem.FieldTotal, field.TypeInt64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(invoiceitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
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
//	client.InvoiceItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceItemCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceItemUpsertOne {
	_c.conflict = opts
	return &InvoiceItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceItemCreate) OnConflictColumns(columns ...string) *InvoiceItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceItemUpsertOne{
		create: _c,
	}
}

type (
	// InvoiceItemUpsertOne is the builder for "upsert"-ing
	//  one InvoiceItem node.
	InvoiceItemUpsertOne struct {
		create *InvoiceItemCreate
	}

	// InvoiceItemUpsert is the "OnConflict" setter.
	InvoiceItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetInvoiceID sets the "invoice_id" field.
func (u *InvoiceItemUpsert) SetInvoiceID(v uuid.UUID) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldInvoiceID, v)
	return u
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdateInvoiceID() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldInvoiceID)
	return u
}

// SetDescription sets the "description" field.
func (u *InvoiceItemUpsert) SetDescription(v string) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdateDescription() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldDescription)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *InvoiceItemUpsert) SetQuantity(v int) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdateQuantity() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *InvoiceItemUpsert) AddQuantity(v int) *InvoiceItemUpsert {
	u.Add(invoiceitem.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *InvoiceItemUpsert) SetUnitPrice(v int64) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdateUnitPrice() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InvoiceItemUpsert) AddUnitPrice(v int64) *InvoiceItemUpsert {
	u.Add(invoiceitem.FieldUnitPrice, v)
	return u
}

// SetTotal sets the "total" field.
func (u *InvoiceItemUpsert) SetTotal(v int64) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdateTotal() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *InvoiceItemUpsert) AddTotal(v int64) *InvoiceItemUpsert {
	u.Add(invoiceitem.FieldTotal, v)
	return u
}

// SetPosition sets the "position" field.
func (u *InvoiceItemUpsert) SetPosition(v int) *InvoiceItemUpsert {
	u.Set(invoiceitem.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InvoiceItemUpsert) UpdatePosition() *InvoiceItemUpsert {
	u.SetExcluded(invoiceitem.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *InvoiceItemUpsert) AddPosition(v int) *InvoiceItemUpsert {
	u.Add(invoiceitem.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoiceitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceItemUpsertOne) UpdateNewValues() *InvoiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoiceitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(invoiceitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceItemUpsertOne) Ignore() *InvoiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceItemUpsertOne) DoNothing() *InvoiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceItemCreate.OnConflict
// documentation for more info.
func (u *InvoiceItemUpsertOne) Update(set func(*InvoiceItemUpsert)) *InvoiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *InvoiceItemUpsertOne) SetInvoiceID(v uuid.UUID) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdateInvoiceID() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceItemUpsertOne) SetDescription(v string) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdateDescription() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *InvoiceItemUpsertOne) SetQuantity(v int) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *InvoiceItemUpsertOne) AddQuantity(v int) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdateQuantity() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *InvoiceItemUpsertOne) SetUnitPrice(v int64) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InvoiceItemUpsertOne) AddUnitPrice(v int64) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdateUnitPrice() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetTotal sets the "total" field.
func (u *InvoiceItemUpsertOne) SetTotal(v int64) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InvoiceItemUpsertOne) AddTotal(v int64) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdateTotal() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateTotal()
	})
}

// SetPosition sets the "position" field.
func (u *InvoiceItemUpsertOne) SetPosition(v int) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *InvoiceItemUpsertOne) AddPosition(v int) *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InvoiceItemUpsertOne) UpdatePosition() *InvoiceItemUpsertOne {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *InvoiceItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InvoiceItemUpsertOne.ID is not supported by MySQL driver. Use InvoiceItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceItemCreateBulk is the builder for creating many InvoiceItem entities in bulk.
type InvoiceItemCreateBulk struct {
	config
	err      error
	builders []*InvoiceItemCreate
	conflict []sql.ConflictOption
}

// Save creates the InvoiceItem entities in the database.
func (_c *InvoiceItemCreateBulk) Save(ctx context.Context) ([]*InvoiceItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceItemMutation)
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
func (_c *InvoiceItemCreateBulk) SaveX(ctx context.Context) []*InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InvoiceItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceItemUpsertBulk {
	_c.conflict = opts
	return &InvoiceItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceItemCreateBulk) OnConflictColumns(columns ...string) *InvoiceItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceItemUpsertBulk{
		create: _c,
	}
}

// InvoiceItemUpsertBulk is the builder for "upsert"-ing
// a bulk of InvoiceItem nodes.
type InvoiceItemUpsertBulk struct {
	create *InvoiceItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoiceitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceItemUpsertBulk) UpdateNewValues() *InvoiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoiceitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(invoiceitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InvoiceItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceItemUpsertBulk) Ignore() *InvoiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceItemUpsertBulk) DoNothing() *InvoiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceItemCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceItemUpsertBulk) Update(set func(*InvoiceItemUpsert)) *InvoiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *InvoiceItemUpsertBulk) SetInvoiceID(v uuid.UUID) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdateInvoiceID() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateInvoiceID()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceItemUpsertBulk) SetDescription(v string) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdateDescription() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *InvoiceItemUpsertBulk) SetQuantity(v int) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *InvoiceItemUpsertBulk) AddQuantity(v int) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdateQuantity() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *InvoiceItemUpsertBulk) SetUnitPrice(v int64) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InvoiceItemUpsertBulk) AddUnitPrice(v int64) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdateUnitPrice() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetTotal sets the "total" field.
func (u *InvoiceItemUpsertBulk) SetTotal(v int64) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InvoiceItemUpsertBulk) AddTotal(v int64) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdateTotal() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdateTotal()
	})
}

// SetPosition sets the "position" field.
func (u *InvoiceItemUpsertBulk) SetPosition(v int) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *InvoiceItemUpsertBulk) AddPosition(v int) *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InvoiceItemUpsertBulk) UpdatePosition() *InvoiceItemUpsertBulk {
	return u.Update(func(s *InvoiceItemUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *InvoiceItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InvoiceItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
