// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// VisitUpdate is the builder for updating Visit entities.
type VisitUpdate struct {
	config
	hooks    []Hook
	mutation *VisitMutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdate) Where(ps ...predicate.Visit) *VisitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdate) SetUpdatedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VisitUpdate) SetClinicID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableClinicID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VisitUpdate) SetPatientID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePatientID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *VisitUpdate) SetProviderID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableProviderID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *VisitUpdate) SetVisitType(v string) *VisitUpdate {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitType(v *string) *VisitUpdate {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *VisitUpdate) SetVisitDate(v time.Time) *VisitUpdate {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitDate(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *VisitUpdate) SetChiefComplaint(v string) *VisitUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableChiefComplaint(v *string) *VisitUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *VisitUpdate) ClearChiefComplaint() *VisitUpdate {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetBpSystolic sets the "bp_systolic" field.
func (_u *VisitUpdate) SetBpSystolic(v int) *VisitUpdate {
	_u.mutation.ResetBpSystolic()
	_u.mutation.SetBpSystolic(v)
	return _u
}

// SetNillableBpSystolic sets the "bp_systolic" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableBpSystolic(v *int) *VisitUpdate {
	if v != nil {
		_u.SetBpSystolic(*v)
	}
	return _u
}

// AddBpSystolic adds value to the "bp_systolic" field.
func (_u *VisitUpdate) AddBpSystolic(v int) *VisitUpdate {
	_u.mutation.AddBpSystolic(v)
	return _u
}

// ClearBpSystolic clears the value of the "bp_systolic" field.
func (_u *VisitUpdate) ClearBpSystolic() *VisitUpdate {
	_u.mutation.ClearBpSystolic()
	return _u
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (_u *VisitUpdate) SetBpDiastolic(v int) *VisitUpdate {
	_u.mutation.ResetBpDiastolic()
	_u.mutation.SetBpDiastolic(v)
	return _u
}

// SetNillableBpDiastolic sets the "bp_diastolic" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableBpDiastolic(v *int) *VisitUpdate {
	if v != nil {
		_u.SetBpDiastolic(*v)
	}
	return _u
}

// AddBpDiastolic adds value to the "bp_diastolic" field.
func (_u *VisitUpdate) AddBpDiastolic(v int) *VisitUpdate {
	_u.mutation.AddBpDiastolic(v)
	return _u
}

// ClearBpDiastolic clears the value of the "bp_diastolic" field.
func (_u *VisitUpdate) ClearBpDiastolic() *VisitUpdate {
	_u.mutation.ClearBpDiastolic()
	return _u
}

// SetHeartRate sets the "heart_rate" field.
func (_u *VisitUpdate) SetHeartRate(v int) *VisitUpdate {
	_u.mutation.ResetHeartRate()
	_u.mutation.SetHeartRate(v)
	return _u
}

// SetNillableHeartRate sets the "heart_rate" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableHeartRate(v *int) *VisitUpdate {
	if v != nil {
		_u.SetHeartRate(*v)
	}
	return _u
}

// AddHeartRate adds value to the "heart_rate" field.
func (_u *VisitUpdate) AddHeartRate(v int) *VisitUpdate {
	_u.mutation.AddHeartRate(v)
	return _u
}

// ClearHeartRate clears the value of the "heart_rate" field.
func (_u *VisitUpdate) ClearHeartRate() *VisitUpdate {
	_u.mutation.ClearHeartRate()
	return _u
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (_u *VisitUpdate) SetRespiratoryRate(v int) *VisitUpdate {
	_u.mutation.ResetRespiratoryRate()
	_u.mutation.SetRespiratoryRate(v)
	return _u
}

// SetNillableRespiratoryRate sets the "respiratory_rate" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableRespiratoryRate(v *int) *VisitUpdate {
	if v != nil {
		_u.SetRespiratoryRate(*v)
	}
	return _u
}

// AddRespiratoryRate adds value to the "respiratory_rate" field.
func (_u *VisitUpdate) AddRespiratoryRate(v int) *VisitUpdate {
	_u.mutation.AddRespiratoryRate(v)
	return _u
}

// ClearRespiratoryRate clears the value of the "respiratory_rate" field.
func (_u *VisitUpdate) ClearRespiratoryRate() *VisitUpdate {
	_u.mutation.ClearRespiratoryRate()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *VisitUpdate) SetTemperature(v float64) *VisitUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableTemperature(v *float64) *VisitUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *VisitUpdate) AddTemperature(v float64) *VisitUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *VisitUpdate) ClearTemperature() *VisitUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (_u *VisitUpdate) SetOxygenSaturation(v int) *VisitUpdate {
	_u.mutation.ResetOxygenSaturation()
	_u.mutation.SetOxygenSaturation(v)
	return _u
}

// SetNillableOxygenSaturation sets the "oxygen_saturation" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableOxygenSaturation(v *int) *VisitUpdate {
	if v != nil {
		_u.SetOxygenSaturation(*v)
	}
	return _u
}

// AddOxygenSaturation adds value to the "oxygen_saturation" field.
func (_u *VisitUpdate) AddOxygenSaturation(v int) *VisitUpdate {
	_u.mutation.AddOxygenSaturation(v)
	return _u
}

// ClearOxygenSaturation clears the value of the "oxygen_saturation" field.
func (_u *VisitUpdate) ClearOxygenSaturation() *VisitUpdate {
	_u.mutation.ClearOxygenSaturation()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *VisitUpdate) SetWeight(v float64) *VisitUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableWeight(v *float64) *VisitUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *VisitUpdate) AddWeight(v float64) *VisitUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *VisitUpdate) ClearWeight() *VisitUpdate {
	_u.mutation.ClearWeight()
	return _u
}

// SetHeight sets the "height" field.
func (_u *VisitUpdate) SetHeight(v float64) *VisitUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableHeight(v *float64) *VisitUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *VisitUpdate) AddHeight(v float64) *VisitUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *VisitUpdate) ClearHeight() *VisitUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetPainScale sets the "pain_scale" field.
func (_u *VisitUpdate) SetPainScale(v int) *VisitUpdate {
	_u.mutation.ResetPainScale()
	_u.mutation.SetPainScale(v)
	return _u
}

// SetNillablePainScale sets the "pain_scale" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePainScale(v *int) *VisitUpdate {
	if v != nil {
		_u.SetPainScale(*v)
	}
	return _u
}

// AddPainScale adds value to the "pain_scale" field.
func (_u *VisitUpdate) AddPainScale(v int) *VisitUpdate {
	_u.mutation.AddPainScale(v)
	return _u
}

// ClearPainScale clears the value of the "pain_scale" field.
func (_u *VisitUpdate) ClearPainScale() *VisitUpdate {
	_u.mutation.ClearPainScale()
	return _u
}

// SetSubjective sets the "subjective" field.
func (_u *VisitUpdate) SetSubjective(v string) *VisitUpdate {
	_u.mutation.SetSubjective(v)
	return _u
}

// SetNillableSubjective sets the "subjective" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableSubjective(v *string) *VisitUpdate {
	if v != nil {
		_u.SetSubjective(*v)
	}
	return _u
}

// ClearSubjective clears the value of the "subjective" field.
func (_u *VisitUpdate) ClearSubjective() *VisitUpdate {
	_u.mutation.ClearSubjective()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *VisitUpdate) SetObjective(v string) *VisitUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableObjective(v *string) *VisitUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *VisitUpdate) ClearObjective() *VisitUpdate {
	_u.mutation.ClearObjective()
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *VisitUpdate) SetAssessment(v string) *VisitUpdate {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableAssessment(v *string) *VisitUpdate {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *VisitUpdate) ClearAssessment() *VisitUpdate {
	_u.mutation.ClearAssessment()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *VisitUpdate) SetPlan(v string) *VisitUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePlan(v *string) *VisitUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *VisitUpdate) ClearPlan() *VisitUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (_u *VisitUpdate) SetPrimaryDiagnosis(v string) *VisitUpdate {
	_u.mutation.SetPrimaryDiagnosis(v)
	return _u
}

// SetNillablePrimaryDiagnosis sets the "primary_diagnosis" field if the given value is not nil.
func (_u *VisitUpdate) SetNillablePrimaryDiagnosis(v *string) *VisitUpdate {
	if v != nil {
		_u.SetPrimaryDiagnosis(*v)
	}
	return _u
}

// ClearPrimaryDiagnosis clears the value of the "primary_diagnosis" field.
func (_u *VisitUpdate) ClearPrimaryDiagnosis() *VisitUpdate {
	_u.mutation.ClearPrimaryDiagnosis()
	return _u
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (_u *VisitUpdate) SetSecondaryDiagnoses(v []string) *VisitUpdate {
	_u.mutation.SetSecondaryDiagnoses(v)
	return _u
}

// AppendSecondaryDiagnoses appends value to the "secondary_diagnoses" field.
func (_u *VisitUpdate) AppendSecondaryDiagnoses(v []string) *VisitUpdate {
	_u.mutation.AppendSecondaryDiagnoses(v)
	return _u
}

// ClearSecondaryDiagnoses clears the value of the "secondary_diagnoses" field.
func (_u *VisitUpdate) ClearSecondaryDiagnoses() *VisitUpdate {
	_u.mutation.ClearSecondaryDiagnoses()
	return _u
}

// SetIcd10Codes sets the "icd10_codes" field.
func (_u *VisitUpdate) SetIcd10Codes(v []string) *VisitUpdate {
	_u.mutation.SetIcd10Codes(v)
	return _u
}

// AppendIcd10Codes appends value to the "icd10_codes" field.
func (_u *VisitUpdate) AppendIcd10Codes(v []string) *VisitUpdate {
	_u.mutation.AppendIcd10Codes(v)
	return _u
}

// ClearIcd10Codes clears the value of the "icd10_codes" field.
func (_u *VisitUpdate) ClearIcd10Codes() *VisitUpdate {
	_u.mutation.ClearIcd10Codes()
	return _u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_u *VisitUpdate) SetFollowUpDate(v time.Time) *VisitUpdate {
	_u.mutation.SetFollowUpDate(v)
	return _u
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableFollowUpDate(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetFollowUpDate(*v)
	}
	return _u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (_u *VisitUpdate) ClearFollowUpDate() *VisitUpdate {
	_u.mutation.ClearFollowUpDate()
	return _u
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (_u *VisitUpdate) SetFollowUpReason(v string) *VisitUpdate {
	_u.mutation.SetFollowUpReason(v)
	return _u
}

// SetNillableFollowUpReason sets the "follow_up_reason" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableFollowUpReason(v *string) *VisitUpdate {
	if v != nil {
		_u.SetFollowUpReason(*v)
	}
	return _u
}

// ClearFollowUpReason clears the value of the "follow_up_reason" field.
func (_u *VisitUpdate) ClearFollowUpReason() *VisitUpdate {
	_u.mutation.ClearFollowUpReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VisitUpdate) SetNotes(v string) *VisitUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableNotes(v *string) *VisitUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VisitUpdate) ClearNotes() *VisitUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetLocked sets the "locked" field.
func (_u *VisitUpdate) SetLocked(v bool) *VisitUpdate {
	_u.mutation.SetLocked(v)
	return _u
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableLocked(v *bool) *VisitUpdate {
	if v != nil {
		_u.SetLocked(*v)
	}
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *VisitUpdate) SetLockedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableLockedAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *VisitUpdate) ClearLockedAt() *VisitUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *VisitUpdate) SetLockedBy(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableLockedBy(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *VisitUpdate) ClearLockedBy() *VisitUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *VisitUpdate) SetPatient(v *Patient) *VisitUpdate {
	return _u.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *VisitUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *VisitUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *VisitUpdate) AddPrescriptions(v ...*Prescription) *VisitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdate) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *VisitUpdate) ClearPatient() *VisitUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *VisitUpdate) ClearPrescriptions() *VisitUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *VisitUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *VisitUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *VisitUpdate) RemovePrescriptions(v ...*Prescription) *VisitUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdate) check() error {
	if v, ok := _u.mutation.VisitType(); ok {
		if err := visit.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryDiagnosis(); ok {
		if err := visit.PrimaryDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "primary_diagnosis", err: fmt.Errorf(`repo: validator failed for field "Visit.primary_diagnosis": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Visit.patient"`)
	}
	return nil
}

func (_u *VisitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(visit.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(visit.FieldVisitType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(visit.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.BpSystolic(); ok {
		_spec.SetField(visit.FieldBpSystolic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpSystolic(); ok {
		_spec.AddField(visit.FieldBpSystolic, field.TypeInt, value)
	}
	if _u.mutation.BpSystolicCleared() {
		_spec.ClearField(visit.FieldBpSystolic, field.TypeInt)
	}
	if value, ok := _u.mutation.BpDiastolic(); ok {
		_spec.SetField(visit.FieldBpDiastolic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpDiastolic(); ok {
		_spec.AddField(visit.FieldBpDiastolic, field.TypeInt, value)
	}
	if _u.mutation.BpDiastolicCleared() {
		_spec.ClearField(visit.FieldBpDiastolic, field.TypeInt)
	}
	if value, ok := _u.mutation.HeartRate(); ok {
		_spec.SetField(visit.FieldHeartRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartRate(); ok {
		_spec.AddField(visit.FieldHeartRate, field.TypeInt, value)
	}
	if _u.mutation.HeartRateCleared() {
		_spec.ClearField(visit.FieldHeartRate, field.TypeInt)
	}
	if value, ok := _u.mutation.RespiratoryRate(); ok {
		_spec.SetField(visit.FieldRespiratoryRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRespiratoryRate(); ok {
		_spec.AddField(visit.FieldRespiratoryRate, field.TypeInt, value)
	}
	if _u.mutation.RespiratoryRateCleared() {
		_spec.ClearField(visit.FieldRespiratoryRate, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(visit.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(visit.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(visit.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OxygenSaturation(); ok {
		_spec.SetField(visit.FieldOxygenSaturation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOxygenSaturation(); ok {
		_spec.AddField(visit.FieldOxygenSaturation, field.TypeInt, value)
	}
	if _u.mutation.OxygenSaturationCleared() {
		_spec.ClearField(visit.FieldOxygenSaturation, field.TypeInt)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(visit.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(visit.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(visit.FieldWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(visit.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(visit.FieldHeight, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(visit.FieldHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PainScale(); ok {
		_spec.SetField(visit.FieldPainScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPainScale(); ok {
		_spec.AddField(visit.FieldPainScale, field.TypeInt, value)
	}
	if _u.mutation.PainScaleCleared() {
		_spec.ClearField(visit.FieldPainScale, field.TypeInt)
	}
	if value, ok := _u.mutation.Subjective(); ok {
		_spec.SetField(visit.FieldSubjective, field.TypeString, value)
	}
	if _u.mutation.SubjectiveCleared() {
		_spec.ClearField(visit.FieldSubjective, field.TypeString)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(visit.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(visit.FieldAssessment, field.TypeString, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(visit.FieldAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(visit.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(visit.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryDiagnosis(); ok {
		_spec.SetField(visit.FieldPrimaryDiagnosis, field.TypeString, value)
	}
	if _u.mutation.PrimaryDiagnosisCleared() {
		_spec.ClearField(visit.FieldPrimaryDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryDiagnoses(); ok {
		_spec.SetField(visit.FieldSecondaryDiagnoses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryDiagnoses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, visit.FieldSecondaryDiagnoses, value)
		})
	}
	if _u.mutation.SecondaryDiagnosesCleared() {
		_spec.ClearField(visit.FieldSecondaryDiagnoses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Icd10Codes(); ok {
		_spec.SetField(visit.FieldIcd10Codes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIcd10Codes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, visit.FieldIcd10Codes, value)
		})
	}
	if _u.mutation.Icd10CodesCleared() {
		_spec.ClearField(visit.FieldIcd10Codes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpDate(); ok {
		_spec.SetField(visit.FieldFollowUpDate, field.TypeTime, value)
	}
	if _u.mutation.FollowUpDateCleared() {
		_spec.ClearField(visit.FieldFollowUpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowUpReason(); ok {
		_spec.SetField(visit.FieldFollowUpReason, field.TypeString, value)
	}
	if _u.mutation.FollowUpReasonCleared() {
		_spec.ClearField(visit.FieldFollowUpReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(visit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(visit.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Locked(); ok {
		_spec.SetField(visit.FieldLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(visit.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(visit.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(visit.FieldLockedBy, field.TypeUUID, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(visit.FieldLockedBy, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitUpdateOne is the builder for updating a single Visit entity.
type VisitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdateOne) SetUpdatedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VisitUpdateOne) SetClinicID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableClinicID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VisitUpdateOne) SetPatientID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePatientID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *VisitUpdateOne) SetProviderID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableProviderID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *VisitUpdateOne) SetVisitType(v string) *VisitUpdateOne {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitType(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *VisitUpdateOne) SetVisitDate(v time.Time) *VisitUpdateOne {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitDate(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *VisitUpdateOne) SetChiefComplaint(v string) *VisitUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableChiefComplaint(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *VisitUpdateOne) ClearChiefComplaint() *VisitUpdateOne {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetBpSystolic sets the "bp_systolic" field.
func (_u *VisitUpdateOne) SetBpSystolic(v int) *VisitUpdateOne {
	_u.mutation.ResetBpSystolic()
	_u.mutation.SetBpSystolic(v)
	return _u
}

// SetNillableBpSystolic sets the "bp_systolic" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableBpSystolic(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetBpSystolic(*v)
	}
	return _u
}

// AddBpSystolic adds value to the "bp_systolic" field.
func (_u *VisitUpdateOne) AddBpSystolic(v int) *VisitUpdateOne {
	_u.mutation.AddBpSystolic(v)
	return _u
}

// ClearBpSystolic clears the value of the "bp_systolic" field.
func (_u *VisitUpdateOne) ClearBpSystolic() *VisitUpdateOne {
	_u.mutation.ClearBpSystolic()
	return _u
}

// SetBpDiastolic sets the "bp_diastolic" field.
func (_u *VisitUpdateOne) SetBpDiastolic(v int) *VisitUpdateOne {
	_u.mutation.ResetBpDiastolic()
	_u.mutation.SetBpDiastolic(v)
	return _u
}

// SetNillableBpDiastolic sets the "bp_diastolic" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableBpDiastolic(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetBpDiastolic(*v)
	}
	return _u
}

// AddBpDiastolic adds value to the "bp_diastolic" field.
func (_u *VisitUpdateOne) AddBpDiastolic(v int) *VisitUpdateOne {
	_u.mutation.AddBpDiastolic(v)
	return _u
}

// ClearBpDiastolic clears the value of the "bp_diastolic" field.
func (_u *VisitUpdateOne) ClearBpDiastolic() *VisitUpdateOne {
	_u.mutation.ClearBpDiastolic()
	return _u
}

// SetHeartRate sets the "heart_rate" field.
func (_u *VisitUpdateOne) SetHeartRate(v int) *VisitUpdateOne {
	_u.mutation.ResetHeartRate()
	_u.mutation.SetHeartRate(v)
	return _u
}

// SetNillableHeartRate sets the "heart_rate" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableHeartRate(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetHeartRate(*v)
	}
	return _u
}

// AddHeartRate adds value to the "heart_rate" field.
func (_u *VisitUpdateOne) AddHeartRate(v int) *VisitUpdateOne {
	_u.mutation.AddHeartRate(v)
	return _u
}

// ClearHeartRate clears the value of the "heart_rate" field.
func (_u *VisitUpdateOne) ClearHeartRate() *VisitUpdateOne {
	_u.mutation.ClearHeartRate()
	return _u
}

// SetRespiratoryRate sets the "respiratory_rate" field.
func (_u *VisitUpdateOne) SetRespiratoryRate(v int) *VisitUpdateOne {
	_u.mutation.ResetRespiratoryRate()
	_u.mutation.SetRespiratoryRate(v)
	return _u
}

// SetNillableRespiratoryRate sets the "respiratory_rate" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableRespiratoryRate(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetRespiratoryRate(*v)
	}
	return _u
}

// AddRespiratoryRate adds value to the "respiratory_rate" field.
func (_u *VisitUpdateOne) AddRespiratoryRate(v int) *VisitUpdateOne {
	_u.mutation.AddRespiratoryRate(v)
	return _u
}

// ClearRespiratoryRate clears the value of the "respiratory_rate" field.
func (_u *VisitUpdateOne) ClearRespiratoryRate() *VisitUpdateOne {
	_u.mutation.ClearRespiratoryRate()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *VisitUpdateOne) SetTemperature(v float64) *VisitUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableTemperature(v *float64) *VisitUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *VisitUpdateOne) AddTemperature(v float64) *VisitUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *VisitUpdateOne) ClearTemperature() *VisitUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetOxygenSaturation sets the "oxygen_saturation" field.
func (_u *VisitUpdateOne) SetOxygenSaturation(v int) *VisitUpdateOne {
	_u.mutation.ResetOxygenSaturation()
	_u.mutation.SetOxygenSaturation(v)
	return _u
}

// SetNillableOxygenSaturation sets the "oxygen_saturation" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableOxygenSaturation(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetOxygenSaturation(*v)
	}
	return _u
}

// AddOxygenSaturation adds value to the "oxygen_saturation" field.
func (_u *VisitUpdateOne) AddOxygenSaturation(v int) *VisitUpdateOne {
	_u.mutation.AddOxygenSaturation(v)
	return _u
}

// ClearOxygenSaturation clears the value of the "oxygen_saturation" field.
func (_u *VisitUpdateOne) ClearOxygenSaturation() *VisitUpdateOne {
	_u.mutation.ClearOxygenSaturation()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *VisitUpdateOne) SetWeight(v float64) *VisitUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableWeight(v *float64) *VisitUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *VisitUpdateOne) AddWeight(v float64) *VisitUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *VisitUpdateOne) ClearWeight() *VisitUpdateOne {
	_u.mutation.ClearWeight()
	return _u
}

// SetHeight sets the "height" field.
func (_u *VisitUpdateOne) SetHeight(v float64) *VisitUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableHeight(v *float64) *VisitUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *VisitUpdateOne) AddHeight(v float64) *VisitUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *VisitUpdateOne) ClearHeight() *VisitUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetPainScale sets the "pain_scale" field.
func (_u *VisitUpdateOne) SetPainScale(v int) *VisitUpdateOne {
	_u.mutation.ResetPainScale()
	_u.mutation.SetPainScale(v)
	return _u
}

// SetNillablePainScale sets the "pain_scale" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePainScale(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetPainScale(*v)
	}
	return _u
}

// AddPainScale adds value to the "pain_scale" field.
func (_u *VisitUpdateOne) AddPainScale(v int) *VisitUpdateOne {
	_u.mutation.AddPainScale(v)
	return _u
}

// ClearPainScale clears the value of the "pain_scale" field.
func (_u *VisitUpdateOne) ClearPainScale() *VisitUpdateOne {
	_u.mutation.ClearPainScale()
	return _u
}

// SetSubjective sets the "subjective" field.
func (_u *VisitUpdateOne) SetSubjective(v string) *VisitUpdateOne {
	_u.mutation.SetSubjective(v)
	return _u
}

// SetNillableSubjective sets the "subjective" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableSubjective(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetSubjective(*v)
	}
	return _u
}

// ClearSubjective clears the value of the "subjective" field.
func (_u *VisitUpdateOne) ClearSubjective() *VisitUpdateOne {
	_u.mutation.ClearSubjective()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *VisitUpdateOne) SetObjective(v string) *VisitUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableObjective(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *VisitUpdateOne) ClearObjective() *VisitUpdateOne {
	_u.mutation.ClearObjective()
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *VisitUpdateOne) SetAssessment(v string) *VisitUpdateOne {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableAssessment(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// ClearAssessment clears the value of the "assessment" field.
func (_u *VisitUpdateOne) ClearAssessment() *VisitUpdateOne {
	_u.mutation.ClearAssessment()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *VisitUpdateOne) SetPlan(v string) *VisitUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePlan(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *VisitUpdateOne) ClearPlan() *VisitUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetPrimaryDiagnosis sets the "primary_diagnosis" field.
func (_u *VisitUpdateOne) SetPrimaryDiagnosis(v string) *VisitUpdateOne {
	_u.mutation.SetPrimaryDiagnosis(v)
	return _u
}

// SetNillablePrimaryDiagnosis sets the "primary_diagnosis" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillablePrimaryDiagnosis(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetPrimaryDiagnosis(*v)
	}
	return _u
}

// ClearPrimaryDiagnosis clears the value of the "primary_diagnosis" field.
func (_u *VisitUpdateOne) ClearPrimaryDiagnosis() *VisitUpdateOne {
	_u.mutation.ClearPrimaryDiagnosis()
	return _u
}

// SetSecondaryDiagnoses sets the "secondary_diagnoses" field.
func (_u *VisitUpdateOne) SetSecondaryDiagnoses(v []string) *VisitUpdateOne {
	_u.mutation.SetSecondaryDiagnoses(v)
	return _u
}

// AppendSecondaryDiagnoses appends value to the "secondary_diagnoses" field.
func (_u *VisitUpdateOne) AppendSecondaryDiagnoses(v []string) *VisitUpdateOne {
	_u.mutation.AppendSecondaryDiagnoses(v)
	return _u
}

// ClearSecondaryDiagnoses clears the value of the "secondary_diagnoses" field.
func (_u *VisitUpdateOne) ClearSecondaryDiagnoses() *VisitUpdateOne {
	_u.mutation.ClearSecondaryDiagnoses()
	return _u
}

// SetIcd10Codes sets the "icd10_codes" field.
func (_u *VisitUpdateOne) SetIcd10Codes(v []string) *VisitUpdateOne {
	_u.mutation.SetIcd10Codes(v)
	return _u
}

// AppendIcd10Codes appends value to the "icd10_codes" field.
func (_u *VisitUpdateOne) AppendIcd10Codes(v []string) *VisitUpdateOne {
	_u.mutation.AppendIcd10Codes(v)
	return _u
}

// ClearIcd10Codes clears the value of the "icd10_codes" field.
func (_u *VisitUpdateOne) ClearIcd10Codes() *VisitUpdateOne {
	_u.mutation.ClearIcd10Codes()
	return _u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_u *VisitUpdateOne) SetFollowUpDate(v time.Time) *VisitUpdateOne {
	_u.mutation.SetFollowUpDate(v)
	return _u
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableFollowUpDate(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetFollowUpDate(*v)
	}
	return _u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (_u *VisitUpdateOne) ClearFollowUpDate() *VisitUpdateOne {
	_u.mutation.ClearFollowUpDate()
	return _u
}

// SetFollowUpReason sets the "follow_up_reason" field.
func (_u *VisitUpdateOne) SetFollowUpReason(v string) *VisitUpdateOne {
	_u.mutation.SetFollowUpReason(v)
	return _u
}

// SetNillableFollowUpReason sets the "follow_up_reason" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableFollowUpReason(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetFollowUpReason(*v)
	}
	return _u
}

// ClearFollowUpReason clears the value of the "follow_up_reason" field.
func (_u *VisitUpdateOne) ClearFollowUpReason() *VisitUpdateOne {
	_u.mutation.ClearFollowUpReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VisitUpdateOne) SetNotes(v string) *VisitUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableNotes(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VisitUpdateOne) ClearNotes() *VisitUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetLocked sets the "locked" field.
func (_u *VisitUpdateOne) SetLocked(v bool) *VisitUpdateOne {
	_u.mutation.SetLocked(v)
	return _u
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableLocked(v *bool) *VisitUpdateOne {
	if v != nil {
		_u.SetLocked(*v)
	}
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *VisitUpdateOne) SetLockedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableLockedAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *VisitUpdateOne) ClearLockedAt() *VisitUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *VisitUpdateOne) SetLockedBy(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableLockedBy(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *VisitUpdateOne) ClearLockedBy() *VisitUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *VisitUpdateOne) SetPatient(v *Patient) *VisitUpdateOne {
	return _u.SetPatientID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *VisitUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *VisitUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *VisitUpdateOne) AddPrescriptions(v ...*Prescription) *VisitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdateOne) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *VisitUpdateOne) ClearPatient() *VisitUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *VisitUpdateOne) ClearPrescriptions() *VisitUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *VisitUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *VisitUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *VisitUpdateOne) RemovePrescriptions(v ...*Prescription) *VisitUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdateOne) Where(ps ...predicate.Visit) *VisitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitUpdateOne) Select(field string, fields ...string) *VisitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visit entity.
func (_u *VisitUpdateOne) Save(ctx context.Context) (*Visit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdateOne) SaveX(ctx context.Context) *Visit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdateOne) check() error {
	if v, ok := _u.mutation.VisitType(); ok {
		if err := visit.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Visit.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryDiagnosis(); ok {
		if err := visit.PrimaryDiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "primary_diagnosis", err: fmt.Errorf(`repo: validator failed for field "Visit.primary_diagnosis": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Visit.patient"`)
	}
	return nil
}

func (_u *VisitUpdateOne) sqlSave(ctx context.Context) (_node *Visit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Visit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visit.FieldID)
		for _, f := range fields {
			if !visit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != visit.FieldID {
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
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(visit.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(visit.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(visit.FieldVisitType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(visit.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(visit.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(visit.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.BpSystolic(); ok {
		_spec.SetField(visit.FieldBpSystolic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpSystolic(); ok {
		_spec.AddField(visit.FieldBpSystolic, field.TypeInt, value)
	}
	if _u.mutation.BpSystolicCleared() {
		_spec.ClearField(visit.FieldBpSystolic, field.TypeInt)
	}
	if value, ok := _u.mutation.BpDiastolic(); ok {
		_spec.SetField(visit.FieldBpDiastolic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpDiastolic(); ok {
		_spec.AddField(visit.FieldBpDiastolic, field.TypeInt, value)
	}
	if _u.mutation.BpDiastolicCleared() {
		_spec.ClearField(visit.FieldBpDiastolic, field.TypeInt)
	}
	if value, ok := _u.mutation.HeartRate(); ok {
		_spec.SetField(visit.FieldHeartRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartRate(); ok {
		_spec.AddField(visit.FieldHeartRate, field.TypeInt, value)
	}
	if _u.mutation.HeartRateCleared() {
		_spec.ClearField(visit.FieldHeartRate, field.TypeInt)
	}
	if value, ok := _u.mutation.RespiratoryRate(); ok {
		_spec.SetField(visit.FieldRespiratoryRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRespiratoryRate(); ok {
		_spec.AddField(visit.FieldRespiratoryRate, field.TypeInt, value)
	}
	if _u.mutation.RespiratoryRateCleared() {
		_spec.ClearField(visit.FieldRespiratoryRate, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(visit.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(visit.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(visit.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OxygenSaturation(); ok {
		_spec.SetField(visit.FieldOxygenSaturation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOxygenSaturation(); ok {
		_spec.AddField(visit.FieldOxygenSaturation, field.TypeInt, value)
	}
	if _u.mutation.OxygenSaturationCleared() {
		_spec.ClearField(visit.FieldOxygenSaturation, field.TypeInt)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(visit.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(visit.FieldWeight, field.TypeFloat64, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(visit.FieldWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(visit.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(visit.FieldHeight, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(visit.FieldHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PainScale(); ok {
		_spec.SetField(visit.FieldPainScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPainScale(); ok {
		_spec.AddField(visit.FieldPainScale, field.TypeInt, value)
	}
	if _u.mutation.PainScaleCleared() {
		_spec.ClearField(visit.FieldPainScale, field.TypeInt)
	}
	if value, ok := _u.mutation.Subjective(); ok {
		_spec.SetField(visit.FieldSubjective, field.TypeString, value)
	}
	if _u.mutation.SubjectiveCleared() {
		_spec.ClearField(visit.FieldSubjective, field.TypeString)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(visit.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(visit.FieldAssessment, field.TypeString, value)
	}
	if _u.mutation.AssessmentCleared() {
		_spec.ClearField(visit.FieldAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(visit.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(visit.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryDiagnosis(); ok {
		_spec.SetField(visit.FieldPrimaryDiagnosis, field.TypeString, value)
	}
	if _u.mutation.PrimaryDiagnosisCleared() {
		_spec.ClearField(visit.FieldPrimaryDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryDiagnoses(); ok {
		_spec.SetField(visit.FieldSecondaryDiagnoses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryDiagnoses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, visit.FieldSecondaryDiagnoses, value)
		})
	}
	if _u.mutation.SecondaryDiagnosesCleared() {
		_spec.ClearField(visit.FieldSecondaryDiagnoses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Icd10Codes(); ok {
		_spec.SetField(visit.FieldIcd10Codes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIcd10Codes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, visit.FieldIcd10Codes, value)
		})
	}
	if _u.mutation.Icd10CodesCleared() {
		_spec.ClearField(visit.FieldIcd10Codes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpDate(); ok {
		_spec.SetField(visit.FieldFollowUpDate, field.TypeTime, value)
	}
	if _u.mutation.FollowUpDateCleared() {
		_spec.ClearField(visit.FieldFollowUpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowUpReason(); ok {
		_spec.SetField(visit.FieldFollowUpReason, field.TypeString, value)
	}
	if _u.mutation.FollowUpReasonCleared() {
		_spec.ClearField(visit.FieldFollowUpReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(visit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(visit.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Locked(); ok {
		_spec.SetField(visit.FieldLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(visit.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(visit.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(visit.FieldLockedBy, field.TypeUUID, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(visit.FieldLockedBy, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Visit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
