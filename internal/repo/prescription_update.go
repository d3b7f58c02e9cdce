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
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PrescriptionUpdate) SetClinicID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableClinicID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *PrescriptionUpdate) SetVisitID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableVisitID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// ClearVisitID clears the value of the "visit_id" field.
func (_u *PrescriptionUpdate) ClearVisitID() *PrescriptionUpdate {
	_u.mutation.ClearVisitID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *PrescriptionUpdate) SetProviderID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableProviderID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetMedicationName sets the "medication_name" field.
func (_u *PrescriptionUpdate) SetMedicationName(v string) *PrescriptionUpdate {
	_u.mutation.SetMedicationName(v)
	return _u
}

// SetNillableMedicationName sets the "medication_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMedicationName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetMedicationName(*v)
	}
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *PrescriptionUpdate) SetGenericName(v string) *PrescriptionUpdate {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableGenericName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// ClearGenericName clears the value of the "generic_name" field.
func (_u *PrescriptionUpdate) ClearGenericName() *PrescriptionUpdate {
	_u.mutation.ClearGenericName()
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *PrescriptionUpdate) SetBrandName(v string) *PrescriptionUpdate {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableBrandName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *PrescriptionUpdate) ClearBrandName() *PrescriptionUpdate {
	_u.mutation.ClearBrandName()
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdate) SetDosage(v string) *PrescriptionUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDosage(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionUpdate) SetFrequency(v string) *PrescriptionUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFrequency(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetRoute sets the "route" field.
func (_u *PrescriptionUpdate) SetRoute(v string) *PrescriptionUpdate {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableRoute(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PrescriptionUpdate) SetDuration(v string) *PrescriptionUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDuration(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PrescriptionUpdate) SetQuantity(v int) *PrescriptionUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableQuantity(v *int) *PrescriptionUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PrescriptionUpdate) AddQuantity(v int) *PrescriptionUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetRefills sets the "refills" field.
func (_u *PrescriptionUpdate) SetRefills(v int) *PrescriptionUpdate {
	_u.mutation.ResetRefills()
	_u.mutation.SetRefills(v)
	return _u
}

// SetNillableRefills sets the "refills" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableRefills(v *int) *PrescriptionUpdate {
	if v != nil {
		_u.SetRefills(*v)
	}
	return _u
}

// AddRefills adds value to the "refills" field.
func (_u *PrescriptionUpdate) AddRefills(v int) *PrescriptionUpdate {
	_u.mutation.AddRefills(v)
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdate) SetInstructions(v string) *PrescriptionUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableInstructions(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdate) ClearInstructions() *PrescriptionUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdate) SetNotes(v string) *PrescriptionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableNotes(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdate) ClearNotes() *PrescriptionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdate) SetStatus(v prescription.Status) *PrescriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableStatus(v *prescription.Status) *PrescriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (_u *PrescriptionUpdate) SetDiscontinuedReason(v string) *PrescriptionUpdate {
	_u.mutation.SetDiscontinuedReason(v)
	return _u
}

// SetNillableDiscontinuedReason sets the "discontinued_reason" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDiscontinuedReason(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDiscontinuedReason(*v)
	}
	return _u
}

// ClearDiscontinuedReason clears the value of the "discontinued_reason" field.
func (_u *PrescriptionUpdate) ClearDiscontinuedReason() *PrescriptionUpdate {
	_u.mutation.ClearDiscontinuedReason()
	return _u
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (_u *PrescriptionUpdate) SetDiscontinuedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetDiscontinuedAt(v)
	return _u
}

// SetNillableDiscontinuedAt sets the "discontinued_at" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDiscontinuedAt(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetDiscontinuedAt(*v)
	}
	return _u
}

// ClearDiscontinuedAt clears the value of the "discontinued_at" field.
func (_u *PrescriptionUpdate) ClearDiscontinuedAt() *PrescriptionUpdate {
	_u.mutation.ClearDiscontinuedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) SetPatient(v *Patient) *PrescriptionUpdate {
	return _u.SetPatientID(v.ID)
}

// SetVisit sets the "visit" edge to the Visit entity.
func (_u *PrescriptionUpdate) SetVisit(v *Visit) *PrescriptionUpdate {
	return _u.SetVisitID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) ClearPatient() *PrescriptionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearVisit clears the "visit" edge to the Visit entity.
func (_u *PrescriptionUpdate) ClearVisit() *PrescriptionUpdate {
	_u.mutation.ClearVisit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.MedicationName(); ok {
		if err := prescription.MedicationNameValidator(v); err != nil {
			return &ValidationError{Name: "medication_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenericName(); ok {
		if err := prescription.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := prescription.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescription.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Prescription.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Route(); ok {
		if err := prescription.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "Prescription.route": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := prescription.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Prescription.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Refills(); ok {
		if err := prescription.RefillsValidator(v); err != nil {
			return &ValidationError{Name: "refills", err: fmt.Errorf(`repo: validator failed for field "Prescription.refills": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(prescription.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(prescription.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicationName(); ok {
		_spec.SetField(prescription.FieldMedicationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(prescription.FieldGenericName, field.TypeString, value)
	}
	if _u.mutation.GenericNameCleared() {
		_spec.ClearField(prescription.FieldGenericName, field.TypeString)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(prescription.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(prescription.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescription.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(prescription.FieldRoute, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(prescription.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(prescription.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(prescription.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Refills(); ok {
		_spec.SetField(prescription.FieldRefills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefills(); ok {
		_spec.AddField(prescription.FieldRefills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscontinuedReason(); ok {
		_spec.SetField(prescription.FieldDiscontinuedReason, field.TypeString, value)
	}
	if _u.mutation.DiscontinuedReasonCleared() {
		_spec.ClearField(prescription.FieldDiscontinuedReason, field.TypeString)
	}
	if value, ok := _u.mutation.DiscontinuedAt(); ok {
		_spec.SetField(prescription.FieldDiscontinuedAt, field.TypeTime, value)
	}
	if _u.mutation.DiscontinuedAtCleared() {
		_spec.ClearField(prescription.FieldDiscontinuedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PrescriptionUpdateOne) SetClinicID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableClinicID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVisitID sets the "visit_id" field.
func (_u *PrescriptionUpdateOne) SetVisitID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetVisitID(v)
	return _u
}

// SetNillableVisitID sets the "visit_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableVisitID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetVisitID(*v)
	}
	return _u
}

// ClearVisitID clears the value of the "visit_id" field.
func (_u *PrescriptionUpdateOne) ClearVisitID() *PrescriptionUpdateOne {
	_u.mutation.ClearVisitID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *PrescriptionUpdateOne) SetProviderID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableProviderID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetMedicationName sets the "medication_name" field.
func (_u *PrescriptionUpdateOne) SetMedicationName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetMedicationName(v)
	return _u
}

// SetNillableMedicationName sets the "medication_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMedicationName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMedicationName(*v)
	}
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *PrescriptionUpdateOne) SetGenericName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableGenericName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// ClearGenericName clears the value of the "generic_name" field.
func (_u *PrescriptionUpdateOne) ClearGenericName() *PrescriptionUpdateOne {
	_u.mutation.ClearGenericName()
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *PrescriptionUpdateOne) SetBrandName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableBrandName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// ClearBrandName clears the value of the "brand_name" field.
func (_u *PrescriptionUpdateOne) ClearBrandName() *PrescriptionUpdateOne {
	_u.mutation.ClearBrandName()
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdateOne) SetDosage(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDosage(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionUpdateOne) SetFrequency(v string) *PrescriptionUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFrequency(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetRoute sets the "route" field.
func (_u *PrescriptionUpdateOne) SetRoute(v string) *PrescriptionUpdateOne {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableRoute(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PrescriptionUpdateOne) SetDuration(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDuration(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *PrescriptionUpdateOne) SetQuantity(v int) *PrescriptionUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableQuantity(v *int) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *PrescriptionUpdateOne) AddQuantity(v int) *PrescriptionUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetRefills sets the "refills" field.
func (_u *PrescriptionUpdateOne) SetRefills(v int) *PrescriptionUpdateOne {
	_u.mutation.ResetRefills()
	_u.mutation.SetRefills(v)
	return _u
}

// SetNillableRefills sets the "refills" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableRefills(v *int) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetRefills(*v)
	}
	return _u
}

// AddRefills adds value to the "refills" field.
func (_u *PrescriptionUpdateOne) AddRefills(v int) *PrescriptionUpdateOne {
	_u.mutation.AddRefills(v)
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdateOne) SetInstructions(v string) *PrescriptionUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableInstructions(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdateOne) ClearInstructions() *PrescriptionUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdateOne) SetNotes(v string) *PrescriptionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableNotes(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdateOne) ClearNotes() *PrescriptionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdateOne) SetStatus(v prescription.Status) *PrescriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableStatus(v *prescription.Status) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscontinuedReason sets the "discontinued_reason" field.
func (_u *PrescriptionUpdateOne) SetDiscontinuedReason(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDiscontinuedReason(v)
	return _u
}

// SetNillableDiscontinuedReason sets the "discontinued_reason" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDiscontinuedReason(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDiscontinuedReason(*v)
	}
	return _u
}

// ClearDiscontinuedReason clears the value of the "discontinued_reason" field.
func (_u *PrescriptionUpdateOne) ClearDiscontinuedReason() *PrescriptionUpdateOne {
	_u.mutation.ClearDiscontinuedReason()
	return _u
}

// SetDiscontinuedAt sets the "discontinued_at" field.
func (_u *PrescriptionUpdateOne) SetDiscontinuedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetDiscontinuedAt(v)
	return _u
}

// SetNillableDiscontinuedAt sets the "discontinued_at" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDiscontinuedAt(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDiscontinuedAt(*v)
	}
	return _u
}

// ClearDiscontinuedAt clears the value of the "discontinued_at" field.
func (_u *PrescriptionUpdateOne) ClearDiscontinuedAt() *PrescriptionUpdateOne {
	_u.mutation.ClearDiscontinuedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) SetPatient(v *Patient) *PrescriptionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetVisit sets the "visit" edge to the Visit entity.
func (_u *PrescriptionUpdateOne) SetVisit(v *Visit) *PrescriptionUpdateOne {
	return _u.SetVisitID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) ClearPatient() *PrescriptionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearVisit clears the "visit" edge to the Visit entity.
func (_u *PrescriptionUpdateOne) ClearVisit() *PrescriptionUpdateOne {
	_u.mutation.ClearVisit()
	return _u
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.MedicationName(); ok {
		if err := prescription.MedicationNameValidator(v); err != nil {
			return &ValidationError{Name: "medication_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenericName(); ok {
		if err := prescription.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := prescription.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescription.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Prescription.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Route(); ok {
		if err := prescription.RouteValidator(v); err != nil {
			return &ValidationError{Name: "route", err: fmt.Errorf(`repo: validator failed for field "Prescription.route": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := prescription.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Prescription.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Refills(); ok {
		if err := prescription.RefillsValidator(v); err != nil {
			return &ValidationError{Name: "refills", err: fmt.Errorf(`repo: validator failed for field "Prescription.refills": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(prescription.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(prescription.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicationName(); ok {
		_spec.SetField(prescription.FieldMedicationName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(prescription.FieldGenericName, field.TypeString, value)
	}
	if _u.mutation.GenericNameCleared() {
		_spec.ClearField(prescription.FieldGenericName, field.TypeString)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(prescription.FieldBrandName, field.TypeString, value)
	}
	if _u.mutation.BrandNameCleared() {
		_spec.ClearField(prescription.FieldBrandName, field.TypeString)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescription.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(prescription.FieldRoute, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(prescription.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(prescription.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(prescription.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Refills(); ok {
		_spec.SetField(prescription.FieldRefills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefills(); ok {
		_spec.AddField(prescription.FieldRefills, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscontinuedReason(); ok {
		_spec.SetField(prescription.FieldDiscontinuedReason, field.TypeString, value)
	}
	if _u.mutation.DiscontinuedReasonCleared() {
		_spec.ClearField(prescription.FieldDiscontinuedReason, field.TypeString)
	}
	if value, ok := _u.mutation.DiscontinuedAt(); ok {
		_spec.SetField(prescription.FieldDiscontinuedAt, field.TypeTime, value)
	}
	if _u.mutation.DiscontinuedAtCleared() {
		_spec.ClearField(prescription.FieldDiscontinuedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
