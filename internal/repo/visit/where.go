// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPatientID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldProviderID, v))
}

// VisitType applies equality check predicate on the "visit_type" field. It's identical to VisitTypeEQ.
func VisitType(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitType, v))
}

// VisitDate applies equality check predicate on the "visit_date" field. It's identical to VisitDateEQ.
func VisitDate(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitDate, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldChiefComplaint, v))
}

// BpSystolic applies equality check predicate on the "bp_systolic" field. It's identical to BpSystolicEQ.
func BpSystolic(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldBpSystolic, v))
}

// BpDiastolic applies equality check predicate on the "bp_diastolic" field. It's identical to BpDiastolicEQ.
func BpDiastolic(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldBpDiastolic, v))
}

// HeartRate applies equality check predicate on the "heart_rate" field. It's identical to HeartRateEQ.
func HeartRate(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldHeartRate, v))
}

// RespiratoryRate applies equality check predicate on the "respiratory_rate" field. It's identical to RespiratoryRateEQ.
func RespiratoryRate(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldRespiratoryRate, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldTemperature, v))
}

// OxygenSaturation applies equality check predicate on the "oxygen_saturation" field. It's identical to OxygenSaturationEQ.
func OxygenSaturation(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldOxygenSaturation, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldWeight, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldHeight, v))
}

// PainScale applies equality check predicate on the "pain_scale" field. It's identical to PainScaleEQ.
func PainScale(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPainScale, v))
}

// Subjective applies equality check predicate on the "subjective" field. It's identical to SubjectiveEQ.
func Subjective(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSubjective, v))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldObjective, v))
}

// Assessment applies equality check predicate on the "assessment" field. It's identical to AssessmentEQ.
func Assessment(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldAssessment, v))
}

// Plan applies equality check predicate on the "plan" field. It's identical to PlanEQ.
func Plan(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPlan, v))
}

// PrimaryDiagnosis applies equality check predicate on the "primary_diagnosis" field. It's identical to PrimaryDiagnosisEQ.
func PrimaryDiagnosis(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPrimaryDiagnosis, v))
}

// FollowUpDate applies equality check predicate on the "follow_up_date" field. It's identical to FollowUpDateEQ.
func FollowUpDate(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldFollowUpDate, v))
}

// FollowUpReason applies equality check predicate on the "follow_up_reason" field. It's identical to FollowUpReasonEQ.
func FollowUpReason(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldFollowUpReason, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldNotes, v))
}

// Locked applies equality check predicate on the "locked" field. It's identical to LockedEQ.
func Locked(v bool) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLocked, v))
}

// LockedAt applies equality check predicate on the "locked_at" field. It's identical to LockedAtEQ.
func LockedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLockedAt, v))
}

// LockedBy applies equality check predicate on the "locked_by" field. It's identical to LockedByEQ.
func LockedBy(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLockedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldClinicID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPatientID, vs...))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldProviderID, v))
}

// VisitTypeEQ applies the EQ predicate on the "visit_type" field.
func VisitTypeEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitType, v))
}

// VisitTypeNEQ applies the NEQ predicate on the "visit_type" field.
func VisitTypeNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitType, v))
}

// VisitTypeIn applies the In predicate on the "visit_type" field.
func VisitTypeIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitType, vs...))
}

// VisitTypeNotIn applies the NotIn predicate on the "visit_type" field.
func VisitTypeNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitType, vs...))
}

// VisitTypeGT applies the GT predicate on the "visit_type" field.
func VisitTypeGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitType, v))
}

// VisitTypeGTE applies the GTE predicate on the "visit_type" field.
func VisitTypeGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitType, v))
}

// VisitTypeLT applies the LT predicate on the "visit_type" field.
func VisitTypeLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitType, v))
}

// VisitTypeLTE applies the LTE predicate on the "visit_type" field.
func VisitTypeLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitType, v))
}

// VisitTypeContains applies the Contains predicate on the "visit_type" field.
func VisitTypeContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldVisitType, v))
}

// VisitTypeHasPrefix applies the HasPrefix predicate on the "visit_type" field.
func VisitTypeHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldVisitType, v))
}

// VisitTypeHasSuffix applies the HasSuffix predicate on the "visit_type" field.
func VisitTypeHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldVisitType, v))
}

// VisitTypeEqualFold applies the EqualFold predicate on the "visit_type" field.
func VisitTypeEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldVisitType, v))
}

// VisitTypeContainsFold applies the ContainsFold predicate on the "visit_type" field.
func VisitTypeContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldVisitType, v))
}

// VisitDateEQ applies the EQ predicate on the "visit_date" field.
func VisitDateEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitDate, v))
}

// VisitDateNEQ applies the NEQ predicate on the "visit_date" field.
func VisitDateNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitDate, v))
}

// VisitDateIn applies the In predicate on the "visit_date" field.
func VisitDateIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitDate, vs...))
}

// VisitDateNotIn applies the NotIn predicate on the "visit_date" field.
func VisitDateNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitDate, vs...))
}

// VisitDateGT applies the GT predicate on the "visit_date" field.
func VisitDateGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitDate, v))
}

// VisitDateGTE applies the GTE predicate on the "visit_date" field.
func VisitDateGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitDate, v))
}

// VisitDateLT applies the LT predicate on the "visit_date" field.
func VisitDateLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitDate, v))
}

// VisitDateLTE applies the LTE predicate on the "visit_date" field.
func VisitDateLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitDate, v))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintIsNil applies the IsNil predicate on the "chief_complaint" field.
func ChiefComplaintIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldChiefComplaint))
}

// ChiefComplaintNotNil applies the NotNil predicate on the "chief_complaint" field.
func ChiefComplaintNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldChiefComplaint))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// BpSystolicEQ applies the EQ predicate on the "bp_systolic" field.
func BpSystolicEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldBpSystolic, v))
}

// BpSystolicNEQ applies the NEQ predicate on the "bp_systolic" field.
func BpSystolicNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldBpSystolic, v))
}

// BpSystolicIn applies the In predicate on the "bp_systolic" field.
func BpSystolicIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldBpSystolic, vs...))
}

// BpSystolicNotIn applies the NotIn predicate on the "bp_systolic" field.
func BpSystolicNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldBpSystolic, vs...))
}

// BpSystolicGT applies the GT predicate on the "bp_systolic" field.
func BpSystolicGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldBpSystolic, v))
}

// BpSystolicGTE applies the GTE predicate on the "bp_systolic" field.
func BpSystolicGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldBpSystolic, v))
}

// BpSystolicLT applies the LT predicate on the "bp_systolic" field.
func BpSystolicLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldBpSystolic, v))
}

// BpSystolicLTE applies the LTE predicate on the "bp_systolic" field.
func BpSystolicLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldBpSystolic, v))
}

// BpSystolicIsNil applies the IsNil predicate on the "bp_systolic" field.
func BpSystolicIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldBpSystolic))
}

// BpSystolicNotNil applies the NotNil predicate on the "bp_systolic" field.
func BpSystolicNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldBpSystolic))
}

// BpDiastolicEQ applies the EQ predicate on the "bp_diastolic" field.
func BpDiastolicEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldBpDiastolic, v))
}

// BpDiastolicNEQ applies the NEQ predicate on the "bp_diastolic" field.
func BpDiastolicNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldBpDiastolic, v))
}

// BpDiastolicIn applies the In predicate on the "bp_diastolic" field.
func BpDiastolicIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldBpDiastolic, vs...))
}

// BpDiastolicNotIn applies the NotIn predicate on the "bp_diastolic" field.
func BpDiastolicNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldBpDiastolic, vs...))
}

// BpDiastolicGT applies the GT predicate on the "bp_diastolic" field.
func BpDiastolicGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldBpDiastolic, v))
}

// BpDiastolicGTE applies the GTE predicate on the "bp_diastolic" field.
func BpDiastolicGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldBpDiastolic, v))
}

// BpDiastolicLT applies the LT predicate on the "bp_diastolic" field.
func BpDiastolicLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldBpDiastolic, v))
}

// BpDiastolicLTE applies the LTE predicate on the "bp_diastolic" field.
func BpDiastolicLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldBpDiastolic, v))
}

// BpDiastolicIsNil applies the IsNil predicate on the "bp_diastolic" field.
func BpDiastolicIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldBpDiastolic))
}

// BpDiastolicNotNil applies the NotNil predicate on the "bp_diastolic" field.
func BpDiastolicNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldBpDiastolic))
}

// HeartRateEQ applies the EQ predicate on the "heart_rate" field.
func HeartRateEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldHeartRate, v))
}

// HeartRateNEQ applies the NEQ predicate on the "heart_rate" field.
func HeartRateNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldHeartRate, v))
}

// HeartRateIn applies the In predicate on the "heart_rate" field.
func HeartRateIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldHeartRate, vs...))
}

// HeartRateNotIn applies the NotIn predicate on the "heart_rate" field.
func HeartRateNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldHeartRate, vs...))
}

// HeartRateGT applies the GT predicate on the "heart_rate" field.
func HeartRateGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldHeartRate, v))
}

// HeartRateGTE applies the GTE predicate on the "heart_rate" field.
func HeartRateGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldHeartRate, v))
}

// HeartRateLT applies the LT predicate on the "heart_rate" field.
func HeartRateLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldHeartRate, v))
}

// HeartRateLTE applies the LTE predicate on the "heart_rate" field.
func HeartRateLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldHeartRate, v))
}

// HeartRateIsNil applies the IsNil predicate on the "heart_rate" field.
func HeartRateIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldHeartRate))
}

// HeartRateNotNil applies the NotNil predicate on the "heart_rate" field.
func HeartRateNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldHeartRate))
}

// RespiratoryRateEQ applies the EQ predicate on the "respiratory_rate" field.
func RespiratoryRateEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldRespiratoryRate, v))
}

// RespiratoryRateNEQ applies the NEQ predicate on the "respiratory_rate" field.
func RespiratoryRateNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldRespiratoryRate, v))
}

// RespiratoryRateIn applies the In predicate on the "respiratory_rate" field.
func RespiratoryRateIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldRespiratoryRate, vs...))
}

// RespiratoryRateNotIn applies the NotIn predicate on the "respiratory_rate" field.
func RespiratoryRateNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldRespiratoryRate, vs...))
}

// RespiratoryRateGT applies the GT predicate on the "respiratory_rate" field.
func RespiratoryRateGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldRespiratoryRate, v))
}

// RespiratoryRateGTE applies the GTE predicate on the "respiratory_rate" field.
func RespiratoryRateGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldRespiratoryRate, v))
}

// RespiratoryRateLT applies the LT predicate on the "respiratory_rate" field.
func RespiratoryRateLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldRespiratoryRate, v))
}

// RespiratoryRateLTE applies the LTE predicate on the "respiratory_rate" field.
func RespiratoryRateLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldRespiratoryRate, v))
}

// RespiratoryRateIsNil applies the IsNil predicate on the "respiratory_rate" field.
func RespiratoryRateIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldRespiratoryRate))
}

// RespiratoryRateNotNil applies the NotNil predicate on the "respiratory_rate" field.
func RespiratoryRateNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldRespiratoryRate))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldTemperature))
}

// OxygenSaturationEQ applies the EQ predicate on the "oxygen_saturation" field.
func OxygenSaturationEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldOxygenSaturation, v))
}

// OxygenSaturationNEQ applies the NEQ predicate on the "oxygen_saturation" field.
func OxygenSaturationNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldOxygenSaturation, v))
}

// OxygenSaturationIn applies the In predicate on the "oxygen_saturation" field.
func OxygenSaturationIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldOxygenSaturation, vs...))
}

// OxygenSaturationNotIn applies the NotIn predicate on the "oxygen_saturation" field.
func OxygenSaturationNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldOxygenSaturation, vs...))
}

// OxygenSaturationGT applies the GT predicate on the "oxygen_saturation" field.
func OxygenSaturationGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldOxygenSaturation, v))
}

// OxygenSaturationGTE applies the GTE predicate on the "oxygen_saturation" field.
func OxygenSaturationGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldOxygenSaturation, v))
}

// OxygenSaturationLT applies the LT predicate on the "oxygen_saturation" field.
func OxygenSaturationLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldOxygenSaturation, v))
}

// OxygenSaturationLTE applies the LTE predicate on the "oxygen_saturation" field.
func OxygenSaturationLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldOxygenSaturation, v))
}

// OxygenSaturationIsNil applies the IsNil predicate on the "oxygen_saturation" field.
func OxygenSaturationIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldOxygenSaturation))
}

// OxygenSaturationNotNil applies the NotNil predicate on the "oxygen_saturation" field.
func OxygenSaturationNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldOxygenSaturation))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldWeight, v))
}

// WeightIsNil applies the IsNil predicate on the "weight" field.
func WeightIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldWeight))
}

// WeightNotNil applies the NotNil predicate on the "weight" field.
func WeightNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldWeight))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...float64) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v float64) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldHeight))
}

// PainScaleEQ applies the EQ predicate on the "pain_scale" field.
func PainScaleEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPainScale, v))
}

// PainScaleNEQ applies the NEQ predicate on the "pain_scale" field.
func PainScaleNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPainScale, v))
}

// PainScaleIn applies the In predicate on the "pain_scale" field.
func PainScaleIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPainScale, vs...))
}

// PainScaleNotIn applies the NotIn predicate on the "pain_scale" field.
func PainScaleNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPainScale, vs...))
}

// PainScaleGT applies the GT predicate on the "pain_scale" field.
func PainScaleGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldPainScale, v))
}

// PainScaleGTE applies the GTE predicate on the "pain_scale" field.
func PainScaleGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldPainScale, v))
}

// PainScaleLT applies the LT predicate on the "pain_scale" field.
func PainScaleLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldPainScale, v))
}

// PainScaleLTE applies the LTE predicate on the "pain_scale" field.
func PainScaleLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldPainScale, v))
}

// PainScaleIsNil applies the IsNil predicate on the "pain_scale" field.
func PainScaleIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldPainScale))
}

// PainScaleNotNil applies the NotNil predicate on the "pain_scale" field.
func PainScaleNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldPainScale))
}

// SubjectiveEQ applies the EQ predicate on the "subjective" field.
func SubjectiveEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSubjective, v))
}

// SubjectiveNEQ applies the NEQ predicate on the "subjective" field.
func SubjectiveNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldSubjective, v))
}

// SubjectiveIn applies the In predicate on the "subjective" field.
func SubjectiveIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldSubjective, vs...))
}

// SubjectiveNotIn applies the NotIn predicate on the "subjective" field.
func SubjectiveNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldSubjective, vs...))
}

// SubjectiveGT applies the GT predicate on the "subjective" field.
func SubjectiveGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldSubjective, v))
}

// SubjectiveGTE applies the GTE predicate on the "subjective" field.
func SubjectiveGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldSubjective, v))
}

// SubjectiveLT applies the LT predicate on the "subjective" field.
func SubjectiveLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldSubjective, v))
}

// SubjectiveLTE applies the LTE predicate on the "subjective" field.
func SubjectiveLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldSubjective, v))
}

// SubjectiveContains applies the Contains predicate on the "subjective" field.
func SubjectiveContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldSubjective, v))
}

// SubjectiveHasPrefix applies the HasPrefix predicate on the "subjective" field.
func SubjectiveHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldSubjective, v))
}

// SubjectiveHasSuffix applies the HasSuffix predicate on the "subjective" field.
func SubjectiveHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldSubjective, v))
}

// SubjectiveIsNil applies the IsNil predicate on the "subjective" field.
func SubjectiveIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldSubjective))
}

// SubjectiveNotNil applies the NotNil predicate on the "subjective" field.
func SubjectiveNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldSubjective))
}

// SubjectiveEqualFold applies the EqualFold predicate on the "subjective" field.
func SubjectiveEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldSubjective, v))
}

// SubjectiveContainsFold applies the ContainsFold predicate on the "subjective" field.
func SubjectiveContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldSubjective, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveIsNil applies the IsNil predicate on the "objective" field.
func ObjectiveIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldObjective))
}

// ObjectiveNotNil applies the NotNil predicate on the "objective" field.
func ObjectiveNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldObjective))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldObjective, v))
}

// AssessmentEQ applies the EQ predicate on the "assessment" field.
func AssessmentEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldAssessment, v))
}

// AssessmentNEQ applies the NEQ predicate on the "assessment" field.
func AssessmentNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldAssessment, v))
}

// AssessmentIn applies the In predicate on the "assessment" field.
func AssessmentIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldAssessment, vs...))
}

// AssessmentNotIn applies the NotIn predicate on the "assessment" field.
func AssessmentNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldAssessment, vs...))
}

// AssessmentGT applies the GT predicate on the "assessment" field.
func AssessmentGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldAssessment, v))
}

// AssessmentGTE applies the GTE predicate on the "assessment" field.
func AssessmentGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldAssessment, v))
}

// AssessmentLT applies the LT predicate on the "assessment" field.
func AssessmentLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldAssessment, v))
}

// AssessmentLTE applies the LTE predicate on the "assessment" field.
func AssessmentLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldAssessment, v))
}

// AssessmentContains applies the Contains predicate on the "assessment" field.
func AssessmentContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldAssessment, v))
}

// AssessmentHasPrefix applies the HasPrefix predicate on the "assessment" field.
func AssessmentHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldAssessment, v))
}

// AssessmentHasSuffix applies the HasSuffix predicate on the "assessment" field.
func AssessmentHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldAssessment, v))
}

// AssessmentIsNil applies the IsNil predicate on the "assessment" field.
func AssessmentIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldAssessment))
}

// AssessmentNotNil applies the NotNil predicate on the "assessment" field.
func AssessmentNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldAssessment))
}

// AssessmentEqualFold applies the EqualFold predicate on the "assessment" field.
func AssessmentEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldAssessment, v))
}

// AssessmentContainsFold applies the ContainsFold predicate on the "assessment" field.
func AssessmentContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldAssessment, v))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPlan, vs...))
}

// PlanGT applies the GT predicate on the "plan" field.
func PlanGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldPlan, v))
}

// PlanGTE applies the GTE predicate on the "plan" field.
func PlanGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldPlan, v))
}

// PlanLT applies the LT predicate on the "plan" field.
func PlanLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldPlan, v))
}

// PlanLTE applies the LTE predicate on the "plan" field.
func PlanLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldPlan, v))
}

// PlanContains applies the Contains predicate on the "plan" field.
func PlanContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldPlan, v))
}

// PlanHasPrefix applies the HasPrefix predicate on the "plan" field.
func PlanHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldPlan, v))
}

// PlanHasSuffix applies the HasSuffix predicate on the "plan" field.
func PlanHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldPlan, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldPlan))
}

// PlanEqualFold applies the EqualFold predicate on the "plan" field.
func PlanEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldPlan, v))
}

// PlanContainsFold applies the ContainsFold predicate on the "plan" field.
func PlanContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldPlan, v))
}

// PrimaryDiagnosisEQ applies the EQ predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisNEQ applies the NEQ predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisIn applies the In predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldPrimaryDiagnosis, vs...))
}

// PrimaryDiagnosisNotIn applies the NotIn predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldPrimaryDiagnosis, vs...))
}

// PrimaryDiagnosisGT applies the GT predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisGTE applies the GTE predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisLT applies the LT predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisLTE applies the LTE predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisContains applies the Contains predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisHasPrefix applies the HasPrefix predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisHasSuffix applies the HasSuffix predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisIsNil applies the IsNil predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldPrimaryDiagnosis))
}

// PrimaryDiagnosisNotNil applies the NotNil predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldPrimaryDiagnosis))
}

// PrimaryDiagnosisEqualFold applies the EqualFold predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldPrimaryDiagnosis, v))
}

// PrimaryDiagnosisContainsFold applies the ContainsFold predicate on the "primary_diagnosis" field.
func PrimaryDiagnosisContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldPrimaryDiagnosis, v))
}

// SecondaryDiagnosesIsNil applies the IsNil predicate on the "secondary_diagnoses" field.
func SecondaryDiagnosesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldSecondaryDiagnoses))
}

// SecondaryDiagnosesNotNil applies the NotNil predicate on the "secondary_diagnoses" field.
func SecondaryDiagnosesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldSecondaryDiagnoses))
}

// Icd10CodesIsNil applies the IsNil predicate on the "icd10_codes" field.
func Icd10CodesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldIcd10Codes))
}

// Icd10CodesNotNil applies the NotNil predicate on the "icd10_codes" field.
func Icd10CodesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldIcd10Codes))
}

// FollowUpDateEQ applies the EQ predicate on the "follow_up_date" field.
func FollowUpDateEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldFollowUpDate, v))
}

// FollowUpDateNEQ applies the NEQ predicate on the "follow_up_date" field.
func FollowUpDateNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldFollowUpDate, v))
}

// FollowUpDateIn applies the In predicate on the "follow_up_date" field.
func FollowUpDateIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldFollowUpDate, vs...))
}

// FollowUpDateNotIn applies the NotIn predicate on the "follow_up_date" field.
func FollowUpDateNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldFollowUpDate, vs...))
}

// FollowUpDateGT applies the GT predicate on the "follow_up_date" field.
func FollowUpDateGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldFollowUpDate, v))
}

// FollowUpDateGTE applies the GTE predicate on the "follow_up_date" field.
func FollowUpDateGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldFollowUpDate, v))
}

// FollowUpDateLT applies the LT predicate on the "follow_up_date" field.
func FollowUpDateLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldFollowUpDate, v))
}

// FollowUpDateLTE applies the LTE predicate on the "follow_up_date" field.
func FollowUpDateLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldFollowUpDate, v))
}

// FollowUpDateIsNil applies the IsNil predicate on the "follow_up_date" field.
func FollowUpDateIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldFollowUpDate))
}

// FollowUpDateNotNil applies the NotNil predicate on the "follow_up_date" field.
func FollowUpDateNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldFollowUpDate))
}

// FollowUpReasonEQ applies the EQ predicate on the "follow_up_reason" field.
func FollowUpReasonEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldFollowUpReason, v))
}

// FollowUpReasonNEQ applies the NEQ predicate on the "follow_up_reason" field.
func FollowUpReasonNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldFollowUpReason, v))
}

// FollowUpReasonIn applies the In predicate on the "follow_up_reason" field.
func FollowUpReasonIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldFollowUpReason, vs...))
}

// FollowUpReasonNotIn applies the NotIn predicate on the "follow_up_reason" field.
func FollowUpReasonNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldFollowUpReason, vs...))
}

// FollowUpReasonGT applies the GT predicate on the "follow_up_reason" field.
func FollowUpReasonGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldFollowUpReason, v))
}

// FollowUpReasonGTE applies the GTE predicate on the "follow_up_reason" field.
func FollowUpReasonGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldFollowUpReason, v))
}

// FollowUpReasonLT applies the LT predicate on the "follow_up_reason" field.
func FollowUpReasonLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldFollowUpReason, v))
}

// FollowUpReasonLTE applies the LTE predicate on the "follow_up_reason" field.
func FollowUpReasonLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldFollowUpReason, v))
}

// FollowUpReasonContains applies the Contains predicate on the "follow_up_reason" field.
func FollowUpReasonContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldFollowUpReason, v))
}

// FollowUpReasonHasPrefix applies the HasPrefix predicate on the "follow_up_reason" field.
func FollowUpReasonHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldFollowUpReason, v))
}

// FollowUpReasonHasSuffix applies the HasSuffix predicate on the "follow_up_reason" field.
func FollowUpReasonHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldFollowUpReason, v))
}

// FollowUpReasonIsNil applies the IsNil predicate on the "follow_up_reason" field.
func FollowUpReasonIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldFollowUpReason))
}

// FollowUpReasonNotNil applies the NotNil predicate on the "follow_up_reason" field.
func FollowUpReasonNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldFollowUpReason))
}

// FollowUpReasonEqualFold applies the EqualFold predicate on the "follow_up_reason" field.
func FollowUpReasonEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldFollowUpReason, v))
}

// FollowUpReasonContainsFold applies the ContainsFold predicate on the "follow_up_reason" field.
func FollowUpReasonContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldFollowUpReason, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldNotes, v))
}

// LockedEQ applies the EQ predicate on the "locked" field.
func LockedEQ(v bool) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLocked, v))
}

// LockedNEQ applies the NEQ predicate on the "locked" field.
func LockedNEQ(v bool) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldLocked, v))
}

// LockedAtEQ applies the EQ predicate on the "locked_at" field.
func LockedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLockedAt, v))
}

// LockedAtNEQ applies the NEQ predicate on the "locked_at" field.
func LockedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldLockedAt, v))
}

// LockedAtIn applies the In predicate on the "locked_at" field.
func LockedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldLockedAt, vs...))
}

// LockedAtNotIn applies the NotIn predicate on the "locked_at" field.
func LockedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldLockedAt, vs...))
}

// LockedAtGT applies the GT predicate on the "locked_at" field.
func LockedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldLockedAt, v))
}

// LockedAtGTE applies the GTE predicate on the "locked_at" field.
func LockedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldLockedAt, v))
}

// LockedAtLT applies the LT predicate on the "locked_at" field.
func LockedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldLockedAt, v))
}

// LockedAtLTE applies the LTE predicate on the "locked_at" field.
func LockedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldLockedAt, v))
}

// LockedAtIsNil applies the IsNil predicate on the "locked_at" field.
func LockedAtIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldLockedAt))
}

// LockedAtNotNil applies the NotNil predicate on the "locked_at" field.
func LockedAtNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldLockedAt))
}

// LockedByEQ applies the EQ predicate on the "locked_by" field.
func LockedByEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldLockedBy, v))
}

// LockedByNEQ applies the NEQ predicate on the "locked_by" field.
func LockedByNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldLockedBy, v))
}

// LockedByIn applies the In predicate on the "locked_by" field.
func LockedByIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldLockedBy, vs...))
}

// LockedByNotIn applies the NotIn predicate on the "locked_by" field.
func LockedByNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldLockedBy, vs...))
}

// LockedByGT applies the GT predicate on the "locked_by" field.
func LockedByGT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldLockedBy, v))
}

// LockedByGTE applies the GTE predicate on the "locked_by" field.
func LockedByGTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldLockedBy, v))
}

// LockedByLT applies the LT predicate on the "locked_by" field.
func LockedByLT(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldLockedBy, v))
}

// LockedByLTE applies the LTE predicate on the "locked_by" field.
func LockedByLTE(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldLockedBy, v))
}

// LockedByIsNil applies the IsNil predicate on the "locked_by" field.
func LockedByIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldLockedBy))
}

// LockedByNotNil applies the NotNil predicate on the "locked_by" field.
func LockedByNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldLockedBy))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrescriptions applies the HasEdge predicate on the "prescriptions" edge.
func HasPrescriptions() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionsWith applies the HasEdge predicate on the "prescriptions" edge with a given conditions (other predicates).
func HasPrescriptionsWith(preds ...predicate.Prescription) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newPrescriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.NotPredicates(p))
}
