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

// VisitCreate is the builder for creating a Visit entity.
type VisitCreate struct {
	config
	mutation *VisitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitCreate) SetCreatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCreatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VisitCreate) SetUpdatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableUpdatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *VisitCreate) SetClinicID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *VisitCreate) SetPatientID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *VisitCreate) SetProviderID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetVisitType sets the "visit_type" field.
func (_c *VisitCreate) SetVisitType(v string) *VisitCreate {
	_c.mutation.SetVisitType(v)
	return _c
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_c *VisitCreate) SetNillableVisitType(v *string) *VisitCreate {
	if v != nil {
		_c.SetVisitType(*v)
	}
	return _c
}

// SetVisitDate sets the "visit_date" field.
func (_c *VisitCreate) SetVisitDate(v time.Time) *VisitCreate {
	_c.mutation.SetVisitDate(v)
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *VisitCreate) SetChiefComplaint(v string) *VisitCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_c *VisitCreate) SetNillableChiefComplaint(v *string) *VisitCreate {
	if v != nil {
		_c.SetChiefComplaint(*v)
	}
	return _c
}

// SetBpSystolic sets the "bp_systolic" field.
func (_c *VisitCreate) SetBpSystolic(v int) *VisitCreate {
	_c.mutation.SetBpSystolic(v)
	return _c
}

// SetNillableBpSystolic sets the "bp_systolic" field if the given value is not nil.
func (_c *VisitCreate) SetNillableBpSystolic(v *int) *VisitCreate {
	if v != nil {
		_c.SetBpSystolic(*v)
	}
	return _c
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (_c *VisitCreate) SetBpDiastolic(v int) *VisitCreate {
	_c.mutation.SetBpDiastolic(v)
	return _c
}

// SetNillableBpDiastolic sets the "bp_diastolic" field if the given value is not nil.
func (_c *VisitCreate) SetNillableBpDiastolic(v *int) *VisitCreate {
	if v != nil {
		_c.SetBpDiastolic(*v)
	}
	return _c
}

// SetHeartRate sets the "heart_rate" field.
func (_c *VisitCreate) SetHeartRate(v int) *VisitCreate {
	_c.mutation.SetHeartRate(v)
	return _c
}

// SetNillableHeartRate sets the "heart_rate" field if the given value is not nil.
func (_c *VisitCreate) SetNillableHeartRate(v *int) *VisitCreate {
	if v != nil {
		_c.SetHeartRate(*v)
	}
	return _c
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (_c *VisitCreate) SetRespiratoryRate(v int) *VisitCreate {
	_c.mutation.SetRespiratoryRate(v)
	return _c
}

// SetNillableRespiratoryRate sets the "respiratory_rate" field if the given value is not nil.
func (_c *VisitCreate) SetNillableRespiratoryRate(v *int) *VisitCreate {
	if v != nil {
		_c.SetRespiratoryRate(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *VisitCreate) SetTemperature(v float64) *VisitCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *VisitCreate) SetNillableTemperature(v *float64) *VisitCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (_c *VisitCreate) SetOxygenSaturation(v int) *VisitCreate {
	_c.mutation.SetOxygenSaturation(v)
	return _c
}

// SetNillableOxygenSaturation sets the "oxygen_saturation" field if the given value is not nil.
func (_c *VisitCreate) SetNillableOxygenSaturation(v *int) *VisitCreate {
	if v != nil {
		_c.SetOxygenSaturation(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *VisitCreate) SetWeight(v float64) *VisitCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *VisitCreate) SetNillableWeight(v *float64) *VisitCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *VisitCreate) SetHeight(v float64) *VisitCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *VisitCreate) SetNillableHeight(v *float64) *VisitCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetPainScale sets the "pain_scale" field.
func (_c *VisitCreate) SetPainScale(v int) *VisitCreate {
	_c.mutation.SetPainScale(v)
	return _c
}

// SetNillablePainScale sets the "pain_scale" field if the given value is not nil.
func (_c *VisitCreate) SetNillablePainScale(v *int) *VisitCreate {
	if v != nil {
		_c.SetPainScale(*v)
	}
	return _c
}

// SetSubjective sets the "subjective" field.
func (_c *VisitCreate) SetSubjective(v string) *VisitCreate {
	_c.mutation.SetSubjective(v)
	return _c
}

// SetNillableSubjective sets the "subjective" field if the given value is not nil.
func (_c *VisitCreate) SetNillableSubjective(v *string) *VisitCreate {
	if v != nil {
		_c.SetSubjective(*v)
	}
	return _c
}

// SetObjective sets the "objective" field.
func (_c *VisitCreate) SetObjective(v string) *VisitCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_c *VisitCreate) SetNillableObjective(v *string) *VisitCreate {
	if v != nil {
		_c.SetObjective(*v)
	}
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *VisitCreate) SetAssessment(v string) *VisitCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_c *VisitCreate) SetNillableAssessment(v *string) *VisitCreate {
	if v != nil {
		_c.SetAssessment(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *VisitCreate) SetPlan(v string) *VisitCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_c *VisitCreate) SetNillablePlan(v *string) *VisitCreate {
	if v != nil {
		_c.SetPlan(*v)
	}
	return _c
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (_c *VisitCreate) SetPrimaryDiagnosis(v string) *VisitCreate {
	_c.mutation.SetPrimaryDiagnosis(v)
	return _c
}

// SetNillablePrimaryDiagnosis sets the "primary_diagnosis" field if the given value is not nil.
func (_c *VisitCreate) SetNillablePrimaryDiagnosis(v *string) *VisitCreate {
	if v != nil {
		_c.SetPrimaryDiagnosis(*v)
	}
	return _c
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (_c *VisitCreate) SetSecondaryDiagnoses(v []string) *VisitCreate {
	_c.mutation.SetSecondaryDiagnoses(v)
	return _c
}

// SetIcd10Codes sets the "icd10_codes" field.
func (_c *VisitCreate) SetIcd10Codes(v []string) *VisitCreate {
	_c.mutation.SetIcd10Codes(v)
	return _c
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_c *VisitCreate) SetFollowUpDate(v time.Time) *VisitCreate {
	_c.mutation.SetFollowUpDate(v)
	return _c
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_c *VisitCreate) SetNillableFollowUpDate(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetFollowUpDate(*v)
	}
	return _c
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (_c *VisitCreate) SetFollowUpReason(v string) *VisitCreate {
	_c.mutation.SetFollowUpReason(v)
	return _c
}

// SetNillableFollowUpReason sets the "follow_up_reason" field if the given value is not nil.
func (_c *VisitCreate) SetNillableFollowUpReason(v *string) *VisitCreate {
	if v != nil {
		_c.SetFollowUpReason(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *VisitCreate) SetNotes(v string) *VisitCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *VisitCreate) SetNillableNotes(v *string) *VisitCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetLocked sets the "locked" field.
func (_c *VisitCreate) SetLocked(v bool) *VisitCreate {
	_c.mutation.SetLocked(v)
	return _c
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_c *VisitCreate) SetNillableLocked(v *bool) *VisitCreate {
	if v != nil {
		_c.SetLocked(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *VisitCreate) SetLockedAt(v time.Time) *VisitCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableLockedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *VisitCreate) SetLockedBy(v uuid.UUID) *VisitCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *VisitCreate) SetNillableLockedBy(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitCreate) SetID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitCreate) SetNillableID(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *VisitCreate) SetPatient(v *Patient) *VisitCreate {
	return _c.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *VisitCreate) AddPrescriptionIDs(ids ...uuid.UUID) *VisitCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *VisitCreate) AddPrescriptions(v ...*Prescription) *VisitCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// Mutation returns the VisitMutation object of the builder.
func (_c *VisitCreate) Mutation() *VisitMutation {
	return _c.mutation
}

// Save creates the Visit in the database.
func (_c *VisitCreate) Save(ctx context.Context) (*Visit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitCreate) SaveX(ctx context.Context) *Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := visit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		v := visit.DefaultVisitType
		_c.mutation.SetVisitType(v)
	}
	if _, ok := _c.mutation.Locked(); !ok {
		v := visit.DefaultLocked
		_c.mutation.SetLocked(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Visit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Visit.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Visit.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Visit.patient_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Visit.provider_id"`)}
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		return &ValidationError{Name: "visit_type", err: errors.New(`repo: missing required field "Visit.visit_type"`)}
	}
	if v, ok := _c.mutation.VisitType(); ok {
		if err := visit.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VisitDate(); !ok {
		return &ValidationError{Name: "visit_date", err: errors.New(`repo: missing required field "Visit.visit_date"`)}
	}
	if v, ok := _c.mutation.PrimaryDiagnosis(); ok {
		if err := visit.PrimaryDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "primary_diagnosis", err: fmt.Errorf(`repo: validator failed for field "Visit.primary_diagnosis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Locked(); !ok {
		return &ValidationError{Name: "locked", err: errors.New(`repo: missing required field "Visit.locked"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Visit.patient"`)}
	}
	return nil
}

func (_c *VisitCreate) sqlSave(ctx context.Context) (*Visit, error) {
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

func (_c *VisitCreate) createSpec() (*Visit, *sqlgraph.CreateSpec) {
	var (
		_node = &Visit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visit.Table, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(visit.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.VisitType(); ok {
		_spec.SetField(visit.FieldVisitType, field.TypeString, value)
		_node.VisitType = value
	}
	if value, ok := _c.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
		_node.VisitDate = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = &value
	}
	if value, ok := _c.mutation.BpSystolic(); ok {
		_spec.SetField(visit.FieldBpSystolic, field.TypeInt, value)
		_node.BpSystolic = &value
	}
	if value, ok := _c.mutation.BpDiastolic(); ok {
		_spec.SetField(visit.FieldBpDiastolic, field.TypeInt, value)
		_node.BpDiastolic = &value
	}
	if value, ok := _c.mutation.HeartRate(); ok {
		_spec.SetField(visit.FieldHeartRate, field.TypeInt, value)
		_node.HeartRate = &value
	}
	if value, ok := _c.mutation.RespiratoryRate(); ok {
		_spec.SetField(visit.FieldRespiratoryRate, field.TypeInt, value)
		_node.RespiratoryRate = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(visit.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.OxygenSaturation(); ok {
		_spec.SetField(visit.FieldOxygenSaturation, field.TypeInt, value)
		_node.OxygenSaturation = &value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(visit.FieldWeight, field.TypeFloat64, value)
		_node.Weight = &value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(visit.FieldHeight, field.TypeFloat64, value)
		_node.Height = &value
	}
	if value, ok := _c.mutation.PainScale(); ok {
		_spec.SetField(visit.FieldPainScale, field.TypeInt, value)
		_node.PainScale = &value
	}
	if value, ok := _c.mutation.Subjective(); ok {
		_spec.SetField(visit.FieldSubjective, field.TypeString, value)
		_node.Subjective = &value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
		_node.Objective = &value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(visit.FieldAssessment, field.TypeString, value)
		_node.Assessment = &value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(visit.FieldPlan, field.TypeString, value)
		_node.Plan = &value
	}
	if value, ok := _c.mutation.PrimaryDiagnosis(); ok {
		_spec.SetField(visit.FieldPrimaryDiagnosis, field.TypeString, value)
		_node.PrimaryDiagnosis = &value
	}
	if value, ok := _c.mutation.SecondaryDiagnoses(); ok {
		_spec.SetField(visit.FieldSecondaryDiagnoses, field.TypeJSON, value)
		_node.SecondaryDiagnoses = value
	}
	if value, ok := _c.mutation.Icd10Codes(); ok {
		_spec.SetField(visit.FieldIcd10Codes, field.TypeJSON, value)
		_node.Icd10Codes = value
	}
	if value, ok := _c.mutation.FollowUpDate(); ok {
		_spec.SetField(visit.FieldFollowUpDate, field.TypeTime, value)
		_node.FollowUpDate = &value
	}
	if value, ok := _c.mutation.FollowUpReason(); ok {
		_spec.SetField(visit.FieldFollowUpReason, field.TypeString, value)
		_node.FollowUpReason = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(visit.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Locked(); ok {
		_spec.SetField(visit.FieldLocked, field.TypeBool, value)
		_node.Locked = value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(visit.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(visit.FieldLockedBy, field.TypeUUID, value)
		_node.LockedBy = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.PatientTable,
			Columns: []string{visit.PatientColumn},
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
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visit.PrescriptionsTable,
			Columns: []string{visit.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
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
//	client.Visit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitCreate) OnConflict(opts ...sql.ConflictOption) *VisitUpsertOne {
	_c.conflict = opts
	return &VisitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitCreate) OnConflictColumns(columns ...string) *VisitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitUpsertOne{
		create: _c,
	}
}

type (
	// VisitUpsertOne is the builder for "upsert"-ing
	//  one Visit node.
	VisitUpsertOne struct {
		create *VisitCreate
	}

	// VisitUpsert is the "OnConflict" setter.
	VisitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsert) SetUpdatedAt(v time.Time) *VisitUpsert {
	u.Set(visit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsert) UpdateUpdatedAt() *VisitUpsert {
	u.SetExcluded(visit.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsert) SetClinicID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdateClinicID() *VisitUpsert {
	u.SetExcluded(visit.FieldClinicID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsert) SetPatientID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePatientID() *VisitUpsert {
	u.SetExcluded(visit.FieldPatientID)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *VisitUpsert) SetProviderID(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *VisitUpsert) UpdateProviderID() *VisitUpsert {
	u.SetExcluded(visit.FieldProviderID)
	return u
}

// SetVisitType sets the "visit_type" field.
func (u *VisitUpsert) SetVisitType(v string) *VisitUpsert {
	u.Set(visit.FieldVisitType, v)
	return u
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *VisitUpsert) UpdateVisitType() *VisitUpsert {
	u.SetExcluded(visit.FieldVisitType)
	return u
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsert) SetVisitDate(v time.Time) *VisitUpsert {
	u.Set(visit.FieldVisitDate, v)
	return u
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsert) UpdateVisitDate() *VisitUpsert {
	u.SetExcluded(visit.FieldVisitDate)
	return u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsert) SetChiefComplaint(v string) *VisitUpsert {
	u.Set(visit.FieldChiefComplaint, v)
	return u
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsert) UpdateChiefComplaint() *VisitUpsert {
	u.SetExcluded(visit.FieldChiefComplaint)
	return u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsert) ClearChiefComplaint() *VisitUpsert {
	u.SetNull(visit.FieldChiefComplaint)
	return u
}

// SetBpSystolic sets the "bp_systolic" field.
func (u *VisitUpsert) SetBpSystolic(v int) *VisitUpsert {
	u.Set(visit.FieldBpSystolic, v)
	return u
}

// UpdateBpSystolic sets the "bp_systolic" field to the value that was provided on create.
func (u *VisitUpsert) UpdateBpSystolic() *VisitUpsert {
	u.SetExcluded(visit.FieldBpSystolic)
	return u
}

// AddBpSystolic adds v to the "bp_systolic" field.
func (u *VisitUpsert) AddBpSystolic(v int) *VisitUpsert {
	u.Add(visit.FieldBpSystolic, v)
	return u
}

// ClearBpSystolic clears the value of the "bp_systolic" field.
func (u *VisitUpsert) ClearBpSystolic() *VisitUpsert {
	u.SetNull(visit.FieldBpSystolic)
	return u
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (u *VisitUpsert) SetBpDiastolic(v int) *VisitUpsert {
	u.Set(visit.FieldBpDiastolic, v)
	return u
}

// UpdateBpDiastolic sets the "bp_diastolic" field to the value that was provided on create.
func (u *VisitUpsert) UpdateBpDiastolic() *VisitUpsert {
	u.SetExcluded(visit.FieldBpDiastolic)
	return u
}

// AddBpDiastolic adds v to the "bp_diastolic" field.
func (u *VisitUpsert) AddBpDiastolic(v int) *VisitUpsert {
	u.Add(visit.FieldBpDiastolic, v)
	return u
}

// ClearBpDiastolic clears the value of the "bp_diastolic" field.
func (u *VisitUpsert) ClearBpDiastolic() *VisitUpsert {
	u.SetNull(visit.FieldBpDiastolic)
	return u
}

// SetHeartRate sets the "heart_rate" field.
func (u *VisitUpsert) SetHeartRate(v int) *VisitUpsert {
	u.Set(visit.FieldHeartRate, v)
	return u
}

// UpdateHeartRate sets the "heart_rate" field to the value that was provided on create.
func (u *VisitUpsert) UpdateHeartRate() *VisitUpsert {
	u.SetExcluded(visit.FieldHeartRate)
	return u
}

// AddHeartRate adds v to the "heart_rate" field.
func (u *VisitUpsert) AddHeartRate(v int) *VisitUpsert {
	u.Add(visit.FieldHeartRate, v)
	return u
}

// ClearHeartRate clears the value of the "heart_rate" field.
func (u *VisitUpsert) ClearHeartRate() *VisitUpsert {
	u.SetNull(visit.FieldHeartRate)
	return u
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (u *VisitUpsert) SetRespiratoryRate(v int) *VisitUpsert {
	u.Set(visit.FieldRespiratoryRate, v)
	return u
}

// UpdateRespiratoryRate sets the "respiratory_rate" field to the value that was provided on create.
func (u *VisitUpsert) UpdateRespiratoryRate() *VisitUpsert {
	u.SetExcluded(visit.FieldRespiratoryRate)
	return u
}

// AddRespiratoryRate adds v to the "respiratory_rate" field.
func (u *VisitUpsert) AddRespiratoryRate(v int) *VisitUpsert {
	u.Add(visit.FieldRespiratoryRate, v)
	return u
}

// ClearRespiratoryRate clears the value of the "respiratory_rate" field.
func (u *VisitUpsert) ClearRespiratoryRate() *VisitUpsert {
	u.SetNull(visit.FieldRespiratoryRate)
	return u
}

// SetTemperature sets the "temperature" field.
func (u *VisitUpsert) SetTemperature(v float64) *VisitUpsert {
	u.Set(visit.FieldTemperature, v)
	return u
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *VisitUpsert) UpdateTemperature() *VisitUpsert {
	u.SetExcluded(visit.FieldTemperature)
	return u
}

// AddTemperature adds v to the "temperature" field.
func (u *VisitUpsert) AddTemperature(v float64) *VisitUpsert {
	u.Add(visit.FieldTemperature, v)
	return u
}

// ClearTemperature clears the value of the "temperature" field.
func (u *VisitUpsert) ClearTemperature() *VisitUpsert {
	u.SetNull(visit.FieldTemperature)
	return u
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (u *VisitUpsert) SetOxygenSaturation(v int) *VisitUpsert {
	u.Set(visit.FieldOxygenSaturation, v)
	return u
}

// UpdateOxygenSaturation sets the "oxygen_saturation" field to the value that was provided on create.
func (u *VisitUpsert) UpdateOxygenSaturation() *VisitUpsert {
	u.SetExcluded(visit.FieldOxygenSaturation)
	return u
}

// AddOxygenSaturation adds v to the "oxygen_saturation" field.
func (u *VisitUpsert) AddOxygenSaturation(v int) *VisitUpsert {
	u.Add(visit.FieldOxygenSaturation, v)
	return u
}

// ClearOxygenSaturation clears the value of the "oxygen_saturation" field.
func (u *VisitUpsert) ClearOxygenSaturation() *VisitUpsert {
	u.SetNull(visit.FieldOxygenSaturation)
	return u
}

// SetWeight sets the "weight" field.
func (u *VisitUpsert) SetWeight(v float64) *VisitUpsert {
	u.Set(visit.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *VisitUpsert) UpdateWeight() *VisitUpsert {
	u.SetExcluded(visit.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *VisitUpsert) AddWeight(v float64) *VisitUpsert {
	u.Add(visit.FieldWeight, v)
	return u
}

// ClearWeight clears the value of the "weight" field.
func (u *VisitUpsert) ClearWeight() *VisitUpsert {
	u.SetNull(visit.FieldWeight)
	return u
}

// SetHeight sets the "height" field.
func (u *VisitUpsert) SetHeight(v float64) *VisitUpsert {
	u.Set(visit.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *VisitUpsert) UpdateHeight() *VisitUpsert {
	u.SetExcluded(visit.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *VisitUpsert) AddHeight(v float64) *VisitUpsert {
	u.Add(visit.FieldHeight, v)
	return u
}

// ClearHeight clears the value of the "height" field.
func (u *VisitUpsert) ClearHeight() *VisitUpsert {
	u.SetNull(visit.FieldHeight)
	return u
}

// SetPainScale sets the "pain_scale" field.
func (u *VisitUpsert) SetPainScale(v int) *VisitUpsert {
	u.Set(visit.FieldPainScale, v)
	return u
}

// UpdatePainScale sets the "pain_scale" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePainScale() *VisitUpsert {
	u.SetExcluded(visit.FieldPainScale)
	return u
}

// AddPainScale adds v to the "pain_scale" field.
func (u *VisitUpsert) AddPainScale(v int) *VisitUpsert {
	u.Add(visit.FieldPainScale, v)
	return u
}

// ClearPainScale clears the value of the "pain_scale" field.
func (u *VisitUpsert) ClearPainScale() *VisitUpsert {
	u.SetNull(visit.FieldPainScale)
	return u
}

// SetSubjective sets the "subjective" field.
func (u *VisitUpsert) SetSubjective(v string) *VisitUpsert {
	u.Set(visit.FieldSubjective, v)
	return u
}

// UpdateSubjective sets the "subjective" field to the value that was provided on create.
func (u *VisitUpsert) UpdateSubjective() *VisitUpsert {
	u.SetExcluded(visit.FieldSubjective)
	return u
}

// ClearSubjective clears the value of the "subjective" field.
func (u *VisitUpsert) ClearSubjective() *VisitUpsert {
	u.SetNull(visit.FieldSubjective)
	return u
}

// SetObjective sets the "objective" field.
func (u *VisitUpsert) SetObjective(v string) *VisitUpsert {
	u.Set(visit.FieldObjective, v)
	return u
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *VisitUpsert) UpdateObjective() *VisitUpsert {
	u.SetExcluded(visit.FieldObjective)
	return u
}

// ClearObjective clears the value of the "objective" field.
func (u *VisitUpsert) ClearObjective() *VisitUpsert {
	u.SetNull(visit.FieldObjective)
	return u
}

// SetAssessment sets the "assessment" field.
func (u *VisitUpsert) SetAssessment(v string) *VisitUpsert {
	u.Set(visit.FieldAssessment, v)
	return u
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *VisitUpsert) UpdateAssessment() *VisitUpsert {
	u.SetExcluded(visit.FieldAssessment)
	return u
}

// ClearAssessment clears the value of the "assessment" field.
func (u *VisitUpsert) ClearAssessment() *VisitUpsert {
	u.SetNull(visit.FieldAssessment)
	return u
}

// SetPlan sets the "plan" field.
func (u *VisitUpsert) SetPlan(v string) *VisitUpsert {
	u.Set(visit.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePlan() *VisitUpsert {
	u.SetExcluded(visit.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *VisitUpsert) ClearPlan() *VisitUpsert {
	u.SetNull(visit.FieldPlan)
	return u
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (u *VisitUpsert) SetPrimaryDiagnosis(v string) *VisitUpsert {
	u.Set(visit.FieldPrimaryDiagnosis, v)
	return u
}

// UpdatePrimaryDiagnosis sets the "primary_diagnosis" field to the value that was provided on create.
func (u *VisitUpsert) UpdatePrimaryDiagnosis() *VisitUpsert {
	u.SetExcluded(visit.FieldPrimaryDiagnosis)
	return u
}

// ClearPrimaryDiagnosis clears the value of the "primary_diagnosis" field.
func (u *VisitUpsert) ClearPrimaryDiagnosis() *VisitUpsert {
	u.SetNull(visit.FieldPrimaryDiagnosis)
	return u
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (u *VisitUpsert) SetSecondaryDiagnoses(v []string) *VisitUpsert {
	u.Set(visit.FieldSecondaryDiagnoses, v)
	return u
}

// UpdateSecondaryDiagnoses sets the "secondary_diagnoses" field to the value that was provided on create.
func (u *VisitUpsert) UpdateSecondaryDiagnoses() *VisitUpsert {
	u.SetExcluded(visit.FieldSecondaryDiagnoses)
	return u
}

// ClearSecondaryDiagnoses clears the value of the "secondary_diagnoses" field.
func (u *VisitUpsert) ClearSecondaryDiagnoses() *VisitUpsert {
	u.SetNull(visit.FieldSecondaryDiagnoses)
	return u
}

// SetIcd10Codes sets the "icd10_codes" field.
func (u *VisitUpsert) SetIcd10Codes(v []string) *VisitUpsert {
	u.Set(visit.FieldIcd10Codes, v)
	return u
}

// UpdateIcd10Codes sets the "icd10_codes" field to the value that was provided on create.
func (u *VisitUpsert) UpdateIcd10Codes() *VisitUpsert {
	u.SetExcluded(visit.FieldIcd10Codes)
	return u
}

// ClearIcd10Codes clears the value of the "icd10_codes" field.
func (u *VisitUpsert) ClearIcd10Codes() *VisitUpsert {
	u.SetNull(visit.FieldIcd10Codes)
	return u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *VisitUpsert) SetFollowUpDate(v time.Time) *VisitUpsert {
	u.Set(visit.FieldFollowUpDate, v)
	return u
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *VisitUpsert) UpdateFollowUpDate() *VisitUpsert {
	u.SetExcluded(visit.FieldFollowUpDate)
	return u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *VisitUpsert) ClearFollowUpDate() *VisitUpsert {
	u.SetNull(visit.FieldFollowUpDate)
	return u
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (u *VisitUpsert) SetFollowUpReason(v string) *VisitUpsert {
	u.Set(visit.FieldFollowUpReason, v)
	return u
}

// UpdateFollowUpReason sets the "follow_up_reason" field to the value that was provided on create.
func (u *VisitUpsert) UpdateFollowUpReason() *VisitUpsert {
	u.SetExcluded(visit.FieldFollowUpReason)
	return u
}

// ClearFollowUpReason clears the value of the "follow_up_reason" field.
func (u *VisitUpsert) ClearFollowUpReason() *VisitUpsert {
	u.SetNull(visit.FieldFollowUpReason)
	return u
}

// SetNotes sets the "notes" field.
func (u *VisitUpsert) SetNotes(v string) *VisitUpsert {
	u.Set(visit.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VisitUpsert) UpdateNotes() *VisitUpsert {
	u.SetExcluded(visit.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *VisitUpsert) ClearNotes() *VisitUpsert {
	u.SetNull(visit.FieldNotes)
	return u
}

// SetLocked sets the "locked" field.
func (u *VisitUpsert) SetLocked(v bool) *VisitUpsert {
	u.Set(visit.FieldLocked, v)
	return u
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *VisitUpsert) UpdateLocked() *VisitUpsert {
	u.SetExcluded(visit.FieldLocked)
	return u
}

// SetLockedAt sets the "locked_at" field.
func (u *VisitUpsert) SetLockedAt(v time.Time) *VisitUpsert {
	u.Set(visit.FieldLockedAt, v)
	return u
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *VisitUpsert) UpdateLockedAt() *VisitUpsert {
	u.SetExcluded(visit.FieldLockedAt)
	return u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *VisitUpsert) ClearLockedAt() *VisitUpsert {
	u.SetNull(visit.FieldLockedAt)
	return u
}

// SetLockedBy sets the "locked_by" field.
func (u *VisitUpsert) SetLockedBy(v uuid.UUID) *VisitUpsert {
	u.Set(visit.FieldLockedBy, v)
	return u
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *VisitUpsert) UpdateLockedBy() *VisitUpsert {
	u.SetExcluded(visit.FieldLockedBy)
	return u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *VisitUpsert) ClearLockedBy() *VisitUpsert {
	u.SetNull(visit.FieldLockedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitUpsertOne) UpdateNewValues() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(visit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(visit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VisitUpsertOne) Ignore() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitUpsertOne) DoNothing() *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitCreate.OnConflict
// documentation for more info.
func (u *VisitUpsertOne) Update(set func(*VisitUpsert)) *VisitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsertOne) SetUpdatedAt(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateUpdatedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsertOne) SetClinicID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateClinicID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsertOne) SetPatientID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePatientID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePatientID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *VisitUpsertOne) SetProviderID(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateProviderID() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateProviderID()
	})
}

// SetVisitType sets the "visit_type" field.
func (u *VisitUpsertOne) SetVisitType(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitType(v)
	})
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateVisitType() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitType()
	})
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsertOne) SetVisitDate(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitDate(v)
	})
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateVisitDate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitDate()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsertOne) SetChiefComplaint(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateChiefComplaint() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsertOne) ClearChiefComplaint() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetBpSystolic sets the "bp_systolic" field.
func (u *VisitUpsertOne) SetBpSystolic(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetBpSystolic(v)
	})
}

// AddBpSystolic adds v to the "bp_systolic" field.
func (u *VisitUpsertOne) AddBpSystolic(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddBpSystolic(v)
	})
}

// UpdateBpSystolic sets the "bp_systolic" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateBpSystolic() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateBpSystolic()
	})
}

// ClearBpSystolic clears the value of the "bp_systolic" field.
func (u *VisitUpsertOne) ClearBpSystolic() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearBpSystolic()
	})
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (u *VisitUpsertOne) SetBpDiastolic(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetBpDiastolic(v)
	})
}

// AddBpDiastolic adds v to the "bp_diastolic" field.
func (u *VisitUpsertOne) AddBpDiastolic(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddBpDiastolic(v)
	})
}

// UpdateBpDiastolic sets the "bp_diastolic" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateBpDiastolic() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateBpDiastolic()
	})
}

// ClearBpDiastolic clears the value of the "bp_diastolic" field.
func (u *VisitUpsertOne) ClearBpDiastolic() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearBpDiastolic()
	})
}

// SetHeartRate sets the "heart_rate" field.
func (u *VisitUpsertOne) SetHeartRate(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetHeartRate(v)
	})
}

// AddHeartRate adds v to the "heart_rate" field.
func (u *VisitUpsertOne) AddHeartRate(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddHeartRate(v)
	})
}

// UpdateHeartRate sets the "heart_rate" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateHeartRate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateHeartRate()
	})
}

// ClearHeartRate clears the value of the "heart_rate" field.
func (u *VisitUpsertOne) ClearHeartRate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearHeartRate()
	})
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (u *VisitUpsertOne) SetRespiratoryRate(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetRespiratoryRate(v)
	})
}

// AddRespiratoryRate adds v to the "respiratory_rate" field.
func (u *VisitUpsertOne) AddRespiratoryRate(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddRespiratoryRate(v)
	})
}

// UpdateRespiratoryRate sets the "respiratory_rate" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateRespiratoryRate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateRespiratoryRate()
	})
}

// ClearRespiratoryRate clears the value of the "respiratory_rate" field.
func (u *VisitUpsertOne) ClearRespiratoryRate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearRespiratoryRate()
	})
}

// SetTemperature sets the "temperature" field.
func (u *VisitUpsertOne) SetTemperature(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *VisitUpsertOne) AddTemperature(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateTemperature() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateTemperature()
	})
}

// ClearTemperature clears the value of the "temperature" field.
func (u *VisitUpsertOne) ClearTemperature() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearTemperature()
	})
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (u *VisitUpsertOne) SetOxygenSaturation(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetOxygenSaturation(v)
	})
}

// AddOxygenSaturation adds v to the "oxygen_saturation" field.
func (u *VisitUpsertOne) AddOxygenSaturation(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddOxygenSaturation(v)
	})
}

// UpdateOxygenSaturation sets the "oxygen_saturation" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateOxygenSaturation() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateOxygenSaturation()
	})
}

// ClearOxygenSaturation clears the value of the "oxygen_saturation" field.
func (u *VisitUpsertOne) ClearOxygenSaturation() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearOxygenSaturation()
	})
}

// SetWeight sets the "weight" field.
func (u *VisitUpsertOne) SetWeight(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *VisitUpsertOne) AddWeight(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateWeight() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateWeight()
	})
}

// ClearWeight clears the value of the "weight" field.
func (u *VisitUpsertOne) ClearWeight() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearWeight()
	})
}

// SetHeight sets the "height" field.
func (u *VisitUpsertOne) SetHeight(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *VisitUpsertOne) AddHeight(v float64) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateHeight() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *VisitUpsertOne) ClearHeight() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearHeight()
	})
}

// SetPainScale sets the "pain_scale" field.
func (u *VisitUpsertOne) SetPainScale(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPainScale(v)
	})
}

// AddPainScale adds v to the "pain_scale" field.
func (u *VisitUpsertOne) AddPainScale(v int) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.AddPainScale(v)
	})
}

// UpdatePainScale sets the "pain_scale" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePainScale() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePainScale()
	})
}

// ClearPainScale clears the value of the "pain_scale" field.
func (u *VisitUpsertOne) ClearPainScale() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPainScale()
	})
}

// SetSubjective sets the "subjective" field.
func (u *VisitUpsertOne) SetSubjective(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetSubjective(v)
	})
}

// UpdateSubjective sets the "subjective" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateSubjective() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateSubjective()
	})
}

// ClearSubjective clears the value of the "subjective" field.
func (u *VisitUpsertOne) ClearSubjective() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearSubjective()
	})
}

// SetObjective sets the "objective" field.
func (u *VisitUpsertOne) SetObjective(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateObjective() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateObjective()
	})
}

// ClearObjective clears the value of the "objective" field.
func (u *VisitUpsertOne) ClearObjective() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearObjective()
	})
}

// SetAssessment sets the "assessment" field.
func (u *VisitUpsertOne) SetAssessment(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetAssessment(v)
	})
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateAssessment() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateAssessment()
	})
}

// ClearAssessment clears the value of the "assessment" field.
func (u *VisitUpsertOne) ClearAssessment() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearAssessment()
	})
}

// SetPlan sets the "plan" field.
func (u *VisitUpsertOne) SetPlan(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePlan() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *VisitUpsertOne) ClearPlan() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPlan()
	})
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (u *VisitUpsertOne) SetPrimaryDiagnosis(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetPrimaryDiagnosis(v)
	})
}

// UpdatePrimaryDiagnosis sets the "primary_diagnosis" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdatePrimaryDiagnosis() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePrimaryDiagnosis()
	})
}

// ClearPrimaryDiagnosis clears the value of the "primary_diagnosis" field.
func (u *VisitUpsertOne) ClearPrimaryDiagnosis() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPrimaryDiagnosis()
	})
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (u *VisitUpsertOne) SetSecondaryDiagnoses(v []string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetSecondaryDiagnoses(v)
	})
}

// UpdateSecondaryDiagnoses sets the "secondary_diagnoses" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateSecondaryDiagnoses() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateSecondaryDiagnoses()
	})
}

// ClearSecondaryDiagnoses clears the value of the "secondary_diagnoses" field.
func (u *VisitUpsertOne) ClearSecondaryDiagnoses() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearSecondaryDiagnoses()
	})
}

// SetIcd10Codes sets the "icd10_codes" field.
func (u *VisitUpsertOne) SetIcd10Codes(v []string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetIcd10Codes(v)
	})
}

// UpdateIcd10Codes sets the "icd10_codes" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateIcd10Codes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateIcd10Codes()
	})
}

// ClearIcd10Codes clears the value of the "icd10_codes" field.
func (u *VisitUpsertOne) ClearIcd10Codes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearIcd10Codes()
	})
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *VisitUpsertOne) SetFollowUpDate(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetFollowUpDate(v)
	})
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateFollowUpDate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateFollowUpDate()
	})
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *VisitUpsertOne) ClearFollowUpDate() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearFollowUpDate()
	})
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (u *VisitUpsertOne) SetFollowUpReason(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetFollowUpReason(v)
	})
}

// UpdateFollowUpReason sets the "follow_up_reason" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateFollowUpReason() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateFollowUpReason()
	})
}

// ClearFollowUpReason clears the value of the "follow_up_reason" field.
func (u *VisitUpsertOne) ClearFollowUpReason() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearFollowUpReason()
	})
}

// SetNotes sets the "notes" field.
func (u *VisitUpsertOne) SetNotes(v string) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateNotes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VisitUpsertOne) ClearNotes() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearNotes()
	})
}

// SetLocked sets the "locked" field.
func (u *VisitUpsertOne) SetLocked(v bool) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetLocked(v)
	})
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateLocked() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLocked()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *VisitUpsertOne) SetLockedAt(v time.Time) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateLockedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *VisitUpsertOne) ClearLockedAt() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearLockedAt()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *VisitUpsertOne) SetLockedBy(v uuid.UUID) *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *VisitUpsertOne) UpdateLockedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *VisitUpsertOne) ClearLockedBy() *VisitUpsertOne {
	return u.Update(func(s *VisitUpsert) {
		s.ClearLockedBy()
	})
}

// Exec executes the query.
func (u *VisitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VisitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VisitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VisitUpsertOne.ID is not supported by MySQL driver. Use VisitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VisitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VisitCreateBulk is the builder for creating many Visit entities in bulk.
type VisitCreateBulk struct {
	config
	err      error
	builders []*VisitCreate
	conflict []sql.ConflictOption
}

// Save creates the Visit entities in the database.
func (_c *VisitCreateBulk) Save(ctx context.Context) ([]*Visit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Visit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitMutation)
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
func (_c *VisitCreateBulk) SaveX(ctx context.Context) []*Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Visit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitCreateBulk) OnConflict(opts ...sql.ConflictOption) *VisitUpsertBulk {
	_c.conflict = opts
	return &VisitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitCreateBulk) OnConflictColumns(columns ...string) *VisitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitUpsertBulk{
		create: _c,
	}
}

// VisitUpsertBulk is the builder for "upsert"-ing
// a bulk of Visit nodes.
type VisitUpsertBulk struct {
	create *VisitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitUpsertBulk) UpdateNewValues() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(visit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(visit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Visit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VisitUpsertBulk) Ignore() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitUpsertBulk) DoNothing() *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitCreateBulk.OnConflict
// documentation for more info.
func (u *VisitUpsertBulk) Update(set func(*VisitUpsert)) *VisitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitUpsertBulk) SetUpdatedAt(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateUpdatedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VisitUpsertBulk) SetClinicID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateClinicID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateClinicID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *VisitUpsertBulk) SetPatientID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePatientID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePatientID()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *VisitUpsertBulk) SetProviderID(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateProviderID() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateProviderID()
	})
}

// SetVisitType sets the "visit_type" field.
func (u *VisitUpsertBulk) SetVisitType(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitType(v)
	})
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateVisitType() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitType()
	})
}

// SetVisitDate sets the "visit_date" field.
func (u *VisitUpsertBulk) SetVisitDate(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetVisitDate(v)
	})
}

// UpdateVisitDate sets the "visit_date" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateVisitDate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateVisitDate()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *VisitUpsertBulk) SetChiefComplaint(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateChiefComplaint() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *VisitUpsertBulk) ClearChiefComplaint() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetBpSystolic sets the "bp_systolic" field.
func (u *VisitUpsertBulk) SetBpSystolic(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetBpSystolic(v)
	})
}

// AddBpSystolic adds v to the "bp_systolic" field.
func (u *VisitUpsertBulk) AddBpSystolic(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddBpSystolic(v)
	})
}

// UpdateBpSystolic sets the "bp_systolic" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateBpSystolic() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateBpSystolic()
	})
}

// ClearBpSystolic clears the value of the "bp_systolic" field.
func (u *VisitUpsertBulk) ClearBpSystolic() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearBpSystolic()
	})
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (u *VisitUpsertBulk) SetBpDiastolic(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetBpDiastolic(v)
	})
}

// AddBpDiastolic adds v to the "bp_diastolic" field.
func (u *VisitUpsertBulk) AddBpDiastolic(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddBpDiastolic(v)
	})
}

// UpdateBpDiastolic sets the "bp_diastolic" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateBpDiastolic() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateBpDiastolic()
	})
}

// ClearBpDiastolic clears the value of the "bp_diastolic" field.
func (u *VisitUpsertBulk) ClearBpDiastolic() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearBpDiastolic()
	})
}

// SetHeartRate sets the "heart_rate" field.
func (u *VisitUpsertBulk) SetHeartRate(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetHeartRate(v)
	})
}

// AddHeartRate adds v to the "heart_rate" field.
func (u *VisitUpsertBulk) AddHeartRate(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddHeartRate(v)
	})
}

// UpdateHeartRate sets the "heart_rate" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateHeartRate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateHeartRate()
	})
}

// ClearHeartRate clears the value of the "heart_rate" field.
func (u *VisitUpsertBulk) ClearHeartRate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearHeartRate()
	})
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (u *VisitUpsertBulk) SetRespiratoryRate(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetRespiratoryRate(v)
	})
}

// AddRespiratoryRate adds v to the "respiratory_rate" field.
func (u *VisitUpsertBulk) AddRespiratoryRate(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddRespiratoryRate(v)
	})
}

// UpdateRespiratoryRate sets the "respiratory_rate" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateRespiratoryRate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateRespiratoryRate()
	})
}

// ClearRespiratoryRate clears the value of the "respiratory_rate" field.
func (u *VisitUpsertBulk) ClearRespiratoryRate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearRespiratoryRate()
	})
}

// SetTemperature sets the "temperature" field.
func (u *VisitUpsertBulk) SetTemperature(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *VisitUpsertBulk) AddTemperature(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateTemperature() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateTemperature()
	})
}

// ClearTemperature clears the value of the "temperature" field.
func (u *VisitUpsertBulk) ClearTemperature() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearTemperature()
	})
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (u *VisitUpsertBulk) SetOxygenSaturation(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetOxygenSaturation(v)
	})
}

// AddOxygenSaturation adds v to the "oxygen_saturation" field.
func (u *VisitUpsertBulk) AddOxygenSaturation(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddOxygenSaturation(v)
	})
}

// UpdateOxygenSaturation sets the "oxygen_saturation" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateOxygenSaturation() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateOxygenSaturation()
	})
}

// ClearOxygenSaturation clears the value of the "oxygen_saturation" field.
func (u *VisitUpsertBulk) ClearOxygenSaturation() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearOxygenSaturation()
	})
}

// SetWeight sets the "weight" field.
func (u *VisitUpsertBulk) SetWeight(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *VisitUpsertBulk) AddWeight(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateWeight() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateWeight()
	})
}

// ClearWeight clears the value of the "weight" field.
func (u *VisitUpsertBulk) ClearWeight() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearWeight()
	})
}

// SetHeight sets the "height" field.
func (u *VisitUpsertBulk) SetHeight(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *VisitUpsertBulk) AddHeight(v float64) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateHeight() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *VisitUpsertBulk) ClearHeight() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearHeight()
	})
}

// SetPainScale sets the "pain_scale" field.
func (u *VisitUpsertBulk) SetPainScale(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPainScale(v)
	})
}

// AddPainScale adds v to the "pain_scale" field.
func (u *VisitUpsertBulk) AddPainScale(v int) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.AddPainScale(v)
	})
}

// UpdatePainScale sets the "pain_scale" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePainScale() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePainScale()
	})
}

// ClearPainScale clears the value of the "pain_scale" field.
func (u *VisitUpsertBulk) ClearPainScale() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPainScale()
	})
}

// SetSubjective sets the "subjective" field.
func (u *VisitUpsertBulk) SetSubjective(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetSubjective(v)
	})
}

// UpdateSubjective sets the "subjective" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateSubjective() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateSubjective()
	})
}

// ClearSubjective clears the value of the "subjective" field.
func (u *VisitUpsertBulk) ClearSubjective() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearSubjective()
	})
}

// SetObjective sets the "objective" field.
func (u *VisitUpsertBulk) SetObjective(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateObjective() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateObjective()
	})
}

// ClearObjective clears the value of the "objective" field.
func (u *VisitUpsertBulk) ClearObjective() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearObjective()
	})
}

// SetAssessment sets the "assessment" field.
func (u *VisitUpsertBulk) SetAssessment(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetAssessment(v)
	})
}

// UpdateAssessment sets the "assessment" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateAssessment() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateAssessment()
	})
}

// ClearAssessment clears the value of the "assessment" field.
func (u *VisitUpsertBulk) ClearAssessment() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearAssessment()
	})
}

// SetPlan sets the "plan" field.
func (u *VisitUpsertBulk) SetPlan(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePlan() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *VisitUpsertBulk) ClearPlan() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPlan()
	})
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (u *VisitUpsertBulk) SetPrimaryDiagnosis(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetPrimaryDiagnosis(v)
	})
}

// UpdatePrimaryDiagnosis sets the "primary_diagnosis" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdatePrimaryDiagnosis() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdatePrimaryDiagnosis()
	})
}

// ClearPrimaryDiagnosis clears the value of the "primary_diagnosis" field.
func (u *VisitUpsertBulk) ClearPrimaryDiagnosis() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearPrimaryDiagnosis()
	})
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (u *VisitUpsertBulk) SetSecondaryDiagnoses(v []string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetSecondaryDiagnoses(v)
	})
}

// UpdateSecondaryDiagnoses sets the "secondary_diagnoses" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateSecondaryDiagnoses() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateSecondaryDiagnoses()
	})
}

// ClearSecondaryDiagnoses clears the value of the "secondary_diagnoses" field.
func (u *VisitUpsertBulk) ClearSecondaryDiagnoses() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearSecondaryDiagnoses()
	})
}

// SetIcd10Codes sets the "icd10_codes" field.
func (u *VisitUpsertBulk) SetIcd10Codes(v []string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetIcd10Codes(v)
	})
}

// UpdateIcd10Codes sets the "icd10_codes" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateIcd10Codes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateIcd10Codes()
	})
}

// ClearIcd10Codes clears the value of the "icd10_codes" field.
func (u *VisitUpsertBulk) ClearIcd10Codes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearIcd10Codes()
	})
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *VisitUpsertBulk) SetFollowUpDate(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetFollowUpDate(v)
	})
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateFollowUpDate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateFollowUpDate()
	})
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *VisitUpsertBulk) ClearFollowUpDate() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearFollowUpDate()
	})
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (u *VisitUpsertBulk) SetFollowUpReason(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetFollowUpReason(v)
	})
}

// UpdateFollowUpReason sets the "follow_up_reason" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateFollowUpReason() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateFollowUpReason()
	})
}

// ClearFollowUpReason clears the value of the "follow_up_reason" field.
func (u *VisitUpsertBulk) ClearFollowUpReason() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearFollowUpReason()
	})
}

// SetNotes sets the "notes" field.
func (u *VisitUpsertBulk) SetNotes(v string) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateNotes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VisitUpsertBulk) ClearNotes() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearNotes()
	})
}

// SetLocked sets the "locked" field.
func (u *VisitUpsertBulk) SetLocked(v bool) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetLocked(v)
	})
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateLocked() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLocked()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *VisitUpsertBulk) SetLockedAt(v time.Time) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateLockedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *VisitUpsertBulk) ClearLockedAt() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearLockedAt()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *VisitUpsertBulk) SetLockedBy(v uuid.UUID) *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *VisitUpsertBulk) UpdateLockedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *VisitUpsertBulk) ClearLockedBy() *VisitUpsertBulk {
	return u.Update(func(s *VisitUpsert) {
		s.ClearLockedBy()
	})
}

// Exec executes the query.
func (u *VisitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VisitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VisitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
