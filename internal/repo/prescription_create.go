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
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PrescriptionCreate) SetUpdatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableUpdatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *PrescriptionCreate) SetClinicID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVisitID sets the "visit_id" field.
func (_c *PrescriptionCreate) SetVisitID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetVisitID(v)
	return _c
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableVisitID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetVisitID(*v)
	}
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *PrescriptionCreate) SetProviderID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetMedicationName sets the "medication_name" field.
func (_c *PrescriptionCreate) SetMedicationName(v string) *PrescriptionCreate {
	_c.mutation.SetMedicationName(v)
	return _c
}

// SetGenericName sets the "generic_name" field.
func (_c *PrescriptionCreate) SetGenericName(v string) *PrescriptionCreate {
	_c.mutation.SetGenericName(v)
	return _c
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableGenericName(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetGenericName(*v)
	}
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *PrescriptionCreate) SetBrandName(v string) *PrescriptionCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableBrandName(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetBrandName(*v)
	}
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *PrescriptionCreate) SetDosage(v string) *PrescriptionCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *PrescriptionCreate) SetFrequency(v string) *PrescriptionCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetRoute sets the "route" field.
func (_c *PrescriptionCreate) SetRoute(v string) *PrescriptionCreate {
	_c.mutation.SetRoute(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *PrescriptionCreate) SetDuration(v string) *PrescriptionCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *PrescriptionCreate) SetQuantity(v int) *PrescriptionCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetRefills sets the "refills" field.
func (_c *PrescriptionCreate) SetRefills(v int) *PrescriptionCreate {
	_c.mutation.SetRefills(v)
	return _c
}

// SetNillableRefills sets the "refills" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableRefills(v *int) *PrescriptionCreate {
	if v != nil {
		_c.SetRefills(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PrescriptionCreate) SetInstructions(v string) *PrescriptionCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableInstructions(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PrescriptionCreate) SetNotes(v string) *PrescriptionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableNotes(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PrescriptionCreate) SetStatus(v prescription.Status) *PrescriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableStatus(v *prescription.Status) *PrescriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (_c *PrescriptionCreate) SetDiscontinuedReason(v string) *PrescriptionCreate {
	_c.mutation.SetDiscontinuedReason(v)
	return _c
}

// SetNillableDiscontinuedReason sets the "discontinued_reason" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDiscontinuedReason(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetDiscontinuedReason(*v)
	}
	return _c
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (_c *PrescriptionCreate) SetDiscontinuedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetDiscontinuedAt(v)
	return _c
}

// SetNillableDiscontinuedAt sets the "discontinued_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDiscontinuedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetDiscontinuedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PrescriptionCreate) SetPatient(v *Patient) *PrescriptionCreate {
	return _c.SetPatientID(v.ID)
}

// SetVisit sets the "visit" edge to the Visit entity.
func (_c *PrescriptionCreate) SetVisit(v *Visit) *PrescriptionCreate {
	return _c.SetVisitID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prescription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Refills(); !ok {
		v := prescription.DefaultRefills
		_c.mutation.SetRefills(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := prescription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Prescription.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Prescription.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Prescription.provider_id"`)}
	}
	if _, ok := _c.mutation.MedicationName(); !ok {
		return &ValidationError{Name: "medication_name", err: errors.New(`repo: missing required field "Prescription.medication_name"`)}
	}
	if v, ok := _c.mutation.MedicationName(); ok {
		if err := prescription.MedicationNameValidator(v); err != nil {
			return &ValidationError{Name: "medication_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GenericName(); ok {
		if err := prescription.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.generic_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BrandName(); ok {
		if err := prescription.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.brand_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dosage(); !ok {
		return &ValidationError{Name: "dosage", err: errors.New(`repo: missing required field "Prescription.dosage"`)}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`repo: missing required field "Prescription.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := prescription.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Prescription.frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Route(); !ok {
		return &ValidationError{Name: "route", err: errors.New(`repo: missing required field "Prescription.route"`)}
	}
	if v, ok := _c.mutation.Route(); ok {
		if err := prescription.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "Prescription.route": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`repo: missing required field "Prescription.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := prescription.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Prescription.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "Prescription.quantity"`)}
	}
	if _, ok := _c.mutation.Refills(); !ok {
		return &ValidationError{Name: "refills", err: errors.New(`repo: missing required field "Prescription.refills"`)}
	}
	if v, ok := _c.mutation.Refills(); ok {
		if err := prescription.RefillsValidator(v); err != nil {
			return &ValidationError{Name: "refills", err: fmt.Errorf(`repo: validator failed for field "Prescription.refills": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Prescription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Prescription.patient"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(prescription.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(prescription.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.MedicationName(); ok {
		_spec.SetField(prescription.FieldMedicationName, field.TypeString, value)
		_node.MedicationName = value
	}
	if value, ok := _c.mutation.GenericName(); ok {
		_spec.SetField(prescription.FieldGenericName, field.TypeString, value)
		_node.GenericName = &value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(prescription.FieldBrandName, field.TypeString, value)
		_node.BrandName = &value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(prescription.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Route(); ok {
		_spec.SetField(prescription.FieldRoute, field.TypeString, value)
		_node.Route = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(prescription.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(prescription.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Refills(); ok {
		_spec.SetField(prescription.FieldRefills, field.TypeInt, value)
		_node.Refills = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DiscontinuedReason(); ok {
		_spec.SetField(prescription.FieldDiscontinuedReason, field.TypeString, value)
		_node.DiscontinuedReason = &value
	}
	if value, ok := _c.mutation.DiscontinuedAt(); ok {
		_spec.SetField(prescription.FieldDiscontinuedAt, field.TypeTime, value)
		_node.DiscontinuedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
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
	if nodes := _c.mutation.VisitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.VisitTable,
			Columns: []string{prescription.VisitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VisitID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertOne {
	_c.conflict = opts
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflictColumns(columns ...string) *PrescriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionUpsertOne is the builder for "upsert"-ing
	//  one Prescription node.
	PrescriptionUpsertOne struct {
		create *PrescriptionCreate
	}

	// PrescriptionUpsert is the "OnConflict" setter.
	PrescriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsert) SetUpdatedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateUpdatedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *PrescriptionUpsert) SetClinicID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateClinicID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldClinicID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsert) SetPatientID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePatientID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPatientID)
	return u
}

// SetVisitID sets the "visit_id" field.
func (u *PrescriptionUpsert) SetVisitID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldVisitID, v)
	return u
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateVisitID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldVisitID)
	return u
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *PrescriptionUpsert) ClearVisitID() *PrescriptionUpsert {
	u.SetNull(prescription.FieldVisitID)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *PrescriptionUpsert) SetProviderID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateProviderID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldProviderID)
	return u
}

// SetMedicationName sets the "medication_name" field.
func (u *PrescriptionUpsert) SetMedicationName(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldMedicationName, v)
	return u
}

// UpdateMedicationName sets the "medication_name" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateMedicationName() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldMedicationName)
	return u
}

// SetGenericName sets the "generic_name" field.
func (u *PrescriptionUpsert) SetGenericName(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldGenericName, v)
	return u
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateGenericName() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldGenericName)
	return u
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *PrescriptionUpsert) ClearGenericName() *PrescriptionUpsert {
	u.SetNull(prescription.FieldGenericName)
	return u
}

// SetBrandName sets the "brand_name" field.
func (u *PrescriptionUpsert) SetBrandName(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldBrandName, v)
	return u
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateBrandName() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldBrandName)
	return u
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *PrescriptionUpsert) ClearBrandName() *PrescriptionUpsert {
	u.SetNull(prescription.FieldBrandName)
	return u
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsert) SetDosage(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDosage() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDosage)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionUpsert) SetFrequency(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateFrequency() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldFrequency)
	return u
}

// SetRoute sets the "route" field.
func (u *PrescriptionUpsert) SetRoute(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldRoute, v)
	return u
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateRoute() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldRoute)
	return u
}

// SetDuration sets the "duration" field.
func (u *PrescriptionUpsert) SetDuration(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDuration() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDuration)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *PrescriptionUpsert) SetQuantity(v int) *PrescriptionUpsert {
	u.Set(prescription.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateQuantity() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *PrescriptionUpsert) AddQuantity(v int) *PrescriptionUpsert {
	u.Add(prescription.FieldQuantity, v)
	return u
}

// SetRefills sets the "refills" field.
func (u *PrescriptionUpsert) SetRefills(v int) *PrescriptionUpsert {
	u.Set(prescription.FieldRefills, v)
	return u
}

// UpdateRefills sets the "refills" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateRefills() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldRefills)
	return u
}

// AddRefills adds v to the "refills" field.
func (u *PrescriptionUpsert) AddRefills(v int) *PrescriptionUpsert {
	u.Add(prescription.FieldRefills, v)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsert) SetInstructions(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateInstructions() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsert) ClearInstructions() *PrescriptionUpsert {
	u.SetNull(prescription.FieldInstructions)
	return u
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsert) SetNotes(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateNotes() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsert) ClearNotes() *PrescriptionUpsert {
	u.SetNull(prescription.FieldNotes)
	return u
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsert) SetStatus(v prescription.Status) *PrescriptionUpsert {
	u.Set(prescription.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateStatus() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldStatus)
	return u
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (u *PrescriptionUpsert) SetDiscontinuedReason(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDiscontinuedReason, v)
	return u
}

// UpdateDiscontinuedReason sets the "discontinued_reason" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDiscontinuedReason() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDiscontinuedReason)
	return u
}

// ClearDiscontinuedReason clears the value of the "discontinued_reason" field.
func (u *PrescriptionUpsert) ClearDiscontinuedReason() *PrescriptionUpsert {
	u.SetNull(prescription.FieldDiscontinuedReason)
	return u
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (u *PrescriptionUpsert) SetDiscontinuedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldDiscontinuedAt, v)
	return u
}

// UpdateDiscontinuedAt sets the "discontinued_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDiscontinuedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDiscontinuedAt)
	return u
}

// ClearDiscontinuedAt clears the value of the "discontinued_at" field.
func (u *PrescriptionUpsert) ClearDiscontinuedAt() *PrescriptionUpsert {
	u.SetNull(prescription.FieldDiscontinuedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertOne) UpdateNewValues() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescription.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionUpsertOne) Ignore() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertOne) DoNothing() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreate.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertOne) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertOne) SetUpdatedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateUpdatedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PrescriptionUpsertOne) SetClinicID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateClinicID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertOne) SetPatientID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePatientID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *PrescriptionUpsertOne) SetVisitID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateVisitID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateVisitID()
	})
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *PrescriptionUpsertOne) ClearVisitID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearVisitID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *PrescriptionUpsertOne) SetProviderID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateProviderID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateProviderID()
	})
}

// SetMedicationName sets the "medication_name" field.
func (u *PrescriptionUpsertOne) SetMedicationName(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedicationName(v)
	})
}

// UpdateMedicationName sets the "medication_name" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateMedicationName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedicationName()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *PrescriptionUpsertOne) SetGenericName(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateGenericName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateGenericName()
	})
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *PrescriptionUpsertOne) ClearGenericName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearGenericName()
	})
}

// SetBrandName sets the "brand_name" field.
func (u *PrescriptionUpsertOne) SetBrandName(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetBrandName(v)
	})
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateBrandName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateBrandName()
	})
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *PrescriptionUpsertOne) ClearBrandName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearBrandName()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsertOne) SetDosage(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDosage() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionUpsertOne) SetFrequency(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateFrequency() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateFrequency()
	})
}

// SetRoute sets the "route" field.
func (u *PrescriptionUpsertOne) SetRoute(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateRoute() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateRoute()
	})
}

// SetDuration sets the "duration" field.
func (u *PrescriptionUpsertOne) SetDuration(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDuration() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDuration()
	})
}

// SetQuantity sets the "quantity" field.
func (u *PrescriptionUpsertOne) SetQuantity(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *PrescriptionUpsertOne) AddQuantity(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateQuantity() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateQuantity()
	})
}

// SetRefills sets the "refills" field.
func (u *PrescriptionUpsertOne) SetRefills(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetRefills(v)
	})
}

// AddRefills adds v to the "refills" field.
func (u *PrescriptionUpsertOne) AddRefills(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddRefills(v)
	})
}

// UpdateRefills sets the "refills" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateRefills() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateRefills()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertOne) SetInstructions(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateInstructions() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsertOne) ClearInstructions() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearInstructions()
	})
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsertOne) SetNotes(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateNotes() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsertOne) ClearNotes() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsertOne) SetStatus(v prescription.Status) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateStatus() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateStatus()
	})
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (u *PrescriptionUpsertOne) SetDiscontinuedReason(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiscontinuedReason(v)
	})
}

// UpdateDiscontinuedReason sets the "discontinued_reason" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDiscontinuedReason() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiscontinuedReason()
	})
}

// ClearDiscontinuedReason clears the value of the "discontinued_reason" field.
func (u *PrescriptionUpsertOne) ClearDiscontinuedReason() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDiscontinuedReason()
	})
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (u *PrescriptionUpsertOne) SetDiscontinuedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiscontinuedAt(v)
	})
}

// UpdateDiscontinuedAt sets the "discontinued_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDiscontinuedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiscontinuedAt()
	})
}

// ClearDiscontinuedAt clears the value of the "discontinued_at" field.
func (u *PrescriptionUpsertOne) ClearDiscontinuedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDiscontinuedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionUpsertOne.ID is not supported by MySQL driver. Use PrescriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertBulk {
	_c.conflict = opts
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflictColumns(columns ...string) *PrescriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// PrescriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Prescription nodes.
type PrescriptionUpsertBulk struct {
	create *PrescriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) UpdateNewValues() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescription.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) Ignore() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertBulk) DoNothing() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertBulk) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertBulk) SetUpdatedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateUpdatedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PrescriptionUpsertBulk) SetClinicID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateClinicID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertBulk) SetPatientID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePatientID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetVisitID sets the "visit_id" field.
func (u *PrescriptionUpsertBulk) SetVisitID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetVisitID(v)
	})
}

// UpdateVisitID sets the "visit_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateVisitID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateVisitID()
	})
}

// ClearVisitID clears the value of the "visit_id" field.
func (u *PrescriptionUpsertBulk) ClearVisitID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearVisitID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *PrescriptionUpsertBulk) SetProviderID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateProviderID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateProviderID()
	})
}

// SetMedicationName sets the "medication_name" field.
func (u *PrescriptionUpsertBulk) SetMedicationName(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedicationName(v)
	})
}

// UpdateMedicationName sets the "medication_name" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateMedicationName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedicationName()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *PrescriptionUpsertBulk) SetGenericName(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateGenericName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateGenericName()
	})
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *PrescriptionUpsertBulk) ClearGenericName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearGenericName()
	})
}

// SetBrandName sets the "brand_name" field.
func (u *PrescriptionUpsertBulk) SetBrandName(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetBrandName(v)
	})
}

// UpdateBrandName sets the "brand_name" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateBrandName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateBrandName()
	})
}

// ClearBrandName clears the value of the "brand_name" field.
func (u *PrescriptionUpsertBulk) ClearBrandName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearBrandName()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsertBulk) SetDosage(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDosage() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionUpsertBulk) SetFrequency(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateFrequency() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateFrequency()
	})
}

// SetRoute sets the "route" field.
func (u *PrescriptionUpsertBulk) SetRoute(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateRoute() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateRoute()
	})
}

// SetDuration sets the "duration" field.
func (u *PrescriptionUpsertBulk) SetDuration(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDuration() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDuration()
	})
}

// SetQuantity sets the "quantity" field.
func (u *PrescriptionUpsertBulk) SetQuantity(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *PrescriptionUpsertBulk) AddQuantity(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateQuantity() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateQuantity()
	})
}

// SetRefills sets the "refills" field.
func (u *PrescriptionUpsertBulk) SetRefills(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetRefills(v)
	})
}

// AddRefills adds v to the "refills" field.
func (u *PrescriptionUpsertBulk) AddRefills(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddRefills(v)
	})
}

// UpdateRefills sets the "refills" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateRefills() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateRefills()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertBulk) SetInstructions(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateInstructions() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsertBulk) ClearInstructions() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearInstructions()
	})
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsertBulk) SetNotes(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateNotes() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsertBulk) ClearNotes() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsertBulk) SetStatus(v prescription.Status) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateStatus() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateStatus()
	})
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (u *PrescriptionUpsertBulk) SetDiscontinuedReason(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiscontinuedReason(v)
	})
}

// UpdateDiscontinuedReason sets the "discontinued_reason" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDiscontinuedReason() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiscontinuedReason()
	})
}

// ClearDiscontinuedReason clears the value of the "discontinued_reason" field.
func (u *PrescriptionUpsertBulk) ClearDiscontinuedReason() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDiscontinuedReason()
	})
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (u *PrescriptionUpsertBulk) SetDiscontinuedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiscontinuedAt(v)
	})
}

// UpdateDiscontinuedAt sets the "discontinued_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDiscontinuedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiscontinuedAt()
	})
}

// ClearDiscontinuedAt clears the value of the "discontinued_at" field.
func (u *PrescriptionUpsertBulk) ClearDiscontinuedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDiscontinuedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
