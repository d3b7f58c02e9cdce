// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldClinicID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// VisitID applies equality check predicate on the "visit_id" field. It's identical to VisitIDEQ.
func VisitID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldVisitID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldProviderID, v))
}

// MedicationName applies equality check predicate on the "medication_name" field. It's identical to MedicationNameEQ.
func MedicationName(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicationName, v))
}

// GenericName applies equality check predicate on the "generic_name" field. It's identical to GenericNameEQ.
func GenericName(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldGenericName, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldBrandName, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDosage, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFrequency, v))
}

// Route applies equality check predicate on the "route" field. It's identical to RouteEQ.
func Route(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldRoute, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDuration, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldQuantity, v))
}

// Refills applies equality check predicate on the "refills" field. It's identical to RefillsEQ.
func Refills(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldRefills, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldInstructions, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// DiscontinuedReason applies equality check predicate on the "discontinued_reason" field. It's identical to DiscontinuedReasonEQ.
func DiscontinuedReason(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiscontinuedReason, v))
}

// DiscontinuedAt applies equality check predicate on the "discontinued_at" field. It's identical to DiscontinuedAtEQ.
func DiscontinuedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiscontinuedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldClinicID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPatientID, vs...))
}

// VisitIDEQ applies the EQ predicate on the "visit_id" field.
func VisitIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldVisitID, v))
}

// VisitIDNEQ applies the NEQ predicate on the "visit_id" field.
func VisitIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldVisitID, v))
}

// VisitIDIn applies the In predicate on the "visit_id" field.
func VisitIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldVisitID, vs...))
}

// VisitIDNotIn applies the NotIn predicate on the "visit_id" field.
func VisitIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldVisitID, vs...))
}

// VisitIDIsNil applies the IsNil predicate on the "visit_id" field.
func VisitIDIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldVisitID))
}

// VisitIDNotNil applies the NotNil predicate on the "visit_id" field.
func VisitIDNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldVisitID))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldProviderID, v))
}

// MedicationNameEQ applies the EQ predicate on the "medication_name" field.
func MedicationNameEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicationName, v))
}

// MedicationNameNEQ applies the NEQ predicate on the "medication_name" field.
func MedicationNameNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldMedicationName, v))
}

// MedicationNameIn applies the In predicate on the "medication_name" field.
func MedicationNameIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldMedicationName, vs...))
}

// MedicationNameNotIn applies the NotIn predicate on the "medication_name" field.
func MedicationNameNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldMedicationName, vs...))
}

// MedicationNameGT applies the GT predicate on the "medication_name" field.
func MedicationNameGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldMedicationName, v))
}

// MedicationNameGTE applies the GTE predicate on the "medication_name" field.
func MedicationNameGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldMedicationName, v))
}

// MedicationNameLT applies the LT predicate on the "medication_name" field.
func MedicationNameLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldMedicationName, v))
}

// MedicationNameLTE applies the LTE predicate on the "medication_name" field.
func MedicationNameLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldMedicationName, v))
}

// MedicationNameContains applies the Contains predicate on the "medication_name" field.
func MedicationNameContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldMedicationName, v))
}

// MedicationNameHasPrefix applies the HasPrefix predicate on the "medication_name" field.
func MedicationNameHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldMedicationName, v))
}

// MedicationNameHasSuffix applies the HasSuffix predicate on the "medication_name" field.
func MedicationNameHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldMedicationName, v))
}

// MedicationNameEqualFold applies the EqualFold predicate on the "medication_name" field.
func MedicationNameEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldMedicationName, v))
}

// MedicationNameContainsFold applies the ContainsFold predicate on the "medication_name" field.
func MedicationNameContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldMedicationName, v))
}

// GenericNameEQ applies the EQ predicate on the "generic_name" field.
func GenericNameEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldGenericName, v))
}

// GenericNameNEQ applies the NEQ predicate on the "generic_name" field.
func GenericNameNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldGenericName, v))
}

// GenericNameIn applies the In predicate on the "generic_name" field.
func GenericNameIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldGenericName, vs...))
}

// GenericNameNotIn applies the NotIn predicate on the "generic_name" field.
func GenericNameNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldGenericName, vs...))
}

// GenericNameGT applies the GT predicate on the "generic_name" field.
func GenericNameGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldGenericName, v))
}

// GenericNameGTE applies the GTE predicate on the "generic_name" field.
func GenericNameGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldGenericName, v))
}

// GenericNameLT applies the LT predicate on the "generic_name" field.
func GenericNameLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldGenericName, v))
}

// GenericNameLTE applies the LTE predicate on the "generic_name" field.
func GenericNameLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldGenericName, v))
}

// GenericNameContains applies the Contains predicate on the "generic_name" field.
func GenericNameContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldGenericName, v))
}

// GenericNameHasPrefix applies the HasPrefix predicate on the "generic_name" field.
func GenericNameHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldGenericName, v))
}

// GenericNameHasSuffix applies the HasSuffix predicate on the "generic_name" field.
func GenericNameHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldGenericName, v))
}

// GenericNameIsNil applies the IsNil predicate on the "generic_name" field.
func GenericNameIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldGenericName))
}

// GenericNameNotNil applies the NotNil predicate on the "generic_name" field.
func GenericNameNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldGenericName))
}

// GenericNameEqualFold applies the EqualFold predicate on the "generic_name" field.
func GenericNameEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldGenericName, v))
}

// GenericNameContainsFold applies the ContainsFold predicate on the "generic_name" field.
func GenericNameContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldGenericName, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameIsNil applies the IsNil predicate on the "brand_name" field.
func BrandNameIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldBrandName))
}

// BrandNameNotNil applies the NotNil predicate on the "brand_name" field.
func BrandNameNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldBrandName))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldBrandName, v))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDosage, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldFrequency, v))
}

// RouteEQ applies the EQ predicate on the "route" field.
func RouteEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldRoute, v))
}

// RouteNEQ applies the NEQ predicate on the "route" field.
func RouteNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldRoute, v))
}

// RouteIn applies the In predicate on the "route" field.
func RouteIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldRoute, vs...))
}

// RouteNotIn applies the NotIn predicate on the "route" field.
func RouteNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldRoute, vs...))
}

// RouteGT applies the GT predicate on the "route" field.
func RouteGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldRoute, v))
}

// RouteGTE applies the GTE predicate on the "route" field.
func RouteGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldRoute, v))
}

// RouteLT applies the LT predicate on the "route" field.
func RouteLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldRoute, v))
}

// RouteLTE applies the LTE predicate on the "route" field.
func RouteLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldRoute, v))
}

// RouteContains applies the Contains predicate on the "route" field.
func RouteContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldRoute, v))
}

// RouteHasPrefix applies the HasPrefix predicate on the "route" field.
func RouteHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldRoute, v))
}

// RouteHasSuffix applies the HasSuffix predicate on the "route" field.
func RouteHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldRoute, v))
}

// RouteEqualFold applies the EqualFold predicate on the "route" field.
func RouteEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldRoute, v))
}

// RouteContainsFold applies the ContainsFold predicate on the "route" field.
func RouteContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldRoute, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDuration, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldQuantity, v))
}

// RefillsEQ applies the EQ predicate on the "refills" field.
func RefillsEQ(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldRefills, v))
}

// RefillsNEQ applies the NEQ predicate on the "refills" field.
func RefillsNEQ(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldRefills, v))
}

// RefillsIn applies the In predicate on the "refills" field.
func RefillsIn(vs ...int) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldRefills, vs...))
}

// RefillsNotIn applies the NotIn predicate on the "refills" field.
func RefillsNotIn(vs ...int) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldRefills, vs...))
}

// RefillsGT applies the GT predicate on the "refills" field.
func RefillsGT(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldRefills, v))
}

// RefillsGTE applies the GTE predicate on the "refills" field.
func RefillsGTE(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldRefills, v))
}

// RefillsLT applies the LT predicate on the "refills" field.
func RefillsLT(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldRefills, v))
}

// RefillsLTE applies the LTE predicate on the "refills" field.
func RefillsLTE(v int) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldRefills, v))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldInstructions))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldInstructions, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldStatus, vs...))
}

// DiscontinuedReasonEQ applies the EQ predicate on the "discontinued_reason" field.
func DiscontinuedReasonEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonNEQ applies the NEQ predicate on the "discontinued_reason" field.
func DiscontinuedReasonNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonIn applies the In predicate on the "discontinued_reason" field.
func DiscontinuedReasonIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDiscontinuedReason, vs...))
}

// DiscontinuedReasonNotIn applies the NotIn predicate on the "discontinued_reason" field.
func DiscontinuedReasonNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDiscontinuedReason, vs...))
}

// DiscontinuedReasonGT applies the GT predicate on the "discontinued_reason" field.
func DiscontinuedReasonGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonGTE applies the GTE predicate on the "discontinued_reason" field.
func DiscontinuedReasonGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonLT applies the LT predicate on the "discontinued_reason" field.
func DiscontinuedReasonLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonLTE applies the LTE predicate on the "discontinued_reason" field.
func DiscontinuedReasonLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonContains applies the Contains predicate on the "discontinued_reason" field.
func DiscontinuedReasonContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonHasPrefix applies the HasPrefix predicate on the "discontinued_reason" field.
func DiscontinuedReasonHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonHasSuffix applies the HasSuffix predicate on the "discontinued_reason" field.
func DiscontinuedReasonHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonIsNil applies the IsNil predicate on the "discontinued_reason" field.
func DiscontinuedReasonIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldDiscontinuedReason))
}

// DiscontinuedReasonNotNil applies the NotNil predicate on the "discontinued_reason" field.
func DiscontinuedReasonNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldDiscontinuedReason))
}

// DiscontinuedReasonEqualFold applies the EqualFold predicate on the "discontinued_reason" field.
func DiscontinuedReasonEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDiscontinuedReason, v))
}

// DiscontinuedReasonContainsFold applies the ContainsFold predicate on the "discontinued_reason" field.
func DiscontinuedReasonContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDiscontinuedReason, v))
}

// DiscontinuedAtEQ applies the EQ predicate on the "discontinued_at" field.
func DiscontinuedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiscontinuedAt, v))
}

// DiscontinuedAtNEQ applies the NEQ predicate on the "discontinued_at" field.
func DiscontinuedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDiscontinuedAt, v))
}

// DiscontinuedAtIn applies the In predicate on the "discontinued_at" field.
func DiscontinuedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDiscontinuedAt, vs...))
}

// DiscontinuedAtNotIn applies the NotIn predicate on the "discontinued_at" field.
func DiscontinuedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDiscontinuedAt, vs...))
}

// DiscontinuedAtGT applies the GT predicate on the "discontinued_at" field.
func DiscontinuedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDiscontinuedAt, v))
}

// DiscontinuedAtGTE applies the GTE predicate on the "discontinued_at" field.
func DiscontinuedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDiscontinuedAt, v))
}

// DiscontinuedAtLT applies the LT predicate on the "discontinued_at" field.
func DiscontinuedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDiscontinuedAt, v))
}

// DiscontinuedAtLTE applies the LTE predicate on the "discontinued_at" field.
func DiscontinuedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDiscontinuedAt, v))
}

// DiscontinuedAtIsNil applies the IsNil predicate on the "discontinued_at" field.
func DiscontinuedAtIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldDiscontinuedAt))
}

// DiscontinuedAtNotNil applies the NotNil predicate on the "discontinued_at" field.
func DiscontinuedAtNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldDiscontinuedAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVisit applies the HasEdge predicate on the "visit" edge.
func HasVisit() predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VisitTable, VisitColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitWith applies the HasEdge predicate on the "visit" edge with a given conditions (other predicates).
func HasVisitWith(preds ...predicate.Visit) predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := newVisitStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.NotPredicates(p))
}
