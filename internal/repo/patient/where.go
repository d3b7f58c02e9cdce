// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldClinicID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCode, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmail, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAddress, v))
}

// EmergencyContactName applies equality check predicate on the "emergency_contact_name" field. It's identical to EmergencyContactNameEQ.
func EmergencyContactName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactPhone applies equality check predicate on the "emergency_contact_phone" field. It's identical to EmergencyContactPhoneEQ.
func EmergencyContactPhone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactRelation applies equality check predicate on the "emergency_contact_relation" field. It's identical to EmergencyContactRelationEQ.
func EmergencyContactRelation(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactRelation, v))
}

// BloodType applies equality check predicate on the "blood_type" field. It's identical to BloodTypeEQ.
func BloodType(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodType, v))
}

// FamilyHistory applies equality check predicate on the "family_history" field. It's identical to FamilyHistoryEQ.
func FamilyHistory(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFamilyHistory, v))
}

// InsuranceProvider applies equality check predicate on the "insurance_provider" field. It's identical to InsuranceProviderEQ.
func InsuranceProvider(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsurancePolicyNumber applies equality check predicate on the "insurance_policy_number" field. It's identical to InsurancePolicyNumberEQ.
func InsurancePolicyNumber(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsurancePolicyNumber, v))
}

// InsuranceExpiry applies equality check predicate on the "insurance_expiry" field. It's identical to InsuranceExpiryEQ.
func InsuranceExpiry(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceExpiry, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldClinicID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldCode, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldLastName, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDateOfBirth))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldGender, vs...))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldGender))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmail, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldAddress, v))
}

// EmergencyContactNameEQ applies the EQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameNEQ applies the NEQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameIn applies the In predicate on the "emergency_contact_name" field.
func EmergencyContactNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameNotIn applies the NotIn predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameGT applies the GT predicate on the "emergency_contact_name" field.
func EmergencyContactNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContactName, v))
}

// EmergencyContactNameGTE applies the GTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameLT applies the LT predicate on the "emergency_contact_name" field.
func EmergencyContactNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContactName, v))
}

// EmergencyContactNameLTE applies the LTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameContains applies the Contains predicate on the "emergency_contact_name" field.
func EmergencyContactNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasPrefix applies the HasPrefix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasSuffix applies the HasSuffix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContactName, v))
}

// EmergencyContactNameIsNil applies the IsNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContactName))
}

// EmergencyContactNameNotNil applies the NotNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContactName))
}

// EmergencyContactNameEqualFold applies the EqualFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContactName, v))
}

// EmergencyContactNameContainsFold applies the ContainsFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContactName, v))
}

// EmergencyContactPhoneEQ applies the EQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneNEQ applies the NEQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIn applies the In predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneNotIn applies the NotIn predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneGT applies the GT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneGTE applies the GTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLT applies the LT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLTE applies the LTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContains applies the Contains predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasPrefix applies the HasPrefix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasSuffix applies the HasSuffix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIsNil applies the IsNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneNotNil applies the NotNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneEqualFold applies the EqualFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContainsFold applies the ContainsFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContactPhone, v))
}

// EmergencyContactRelationEQ applies the EQ predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationNEQ applies the NEQ predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationIn applies the In predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContactRelation, vs...))
}

// EmergencyContactRelationNotIn applies the NotIn predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContactRelation, vs...))
}

// EmergencyContactRelationGT applies the GT predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationGTE applies the GTE predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationLT applies the LT predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationLTE applies the LTE predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationContains applies the Contains predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationHasPrefix applies the HasPrefix predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationHasSuffix applies the HasSuffix predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationIsNil applies the IsNil predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContactRelation))
}

// EmergencyContactRelationNotNil applies the NotNil predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContactRelation))
}

// EmergencyContactRelationEqualFold applies the EqualFold predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContactRelation, v))
}

// EmergencyContactRelationContainsFold applies the ContainsFold predicate on the "emergency_contact_relation" field.
func EmergencyContactRelationContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContactRelation, v))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBloodType, vs...))
}

// BloodTypeGT applies the GT predicate on the "blood_type" field.
func BloodTypeGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBloodType, v))
}

// BloodTypeGTE applies the GTE predicate on the "blood_type" field.
func BloodTypeGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBloodType, v))
}

// BloodTypeLT applies the LT predicate on the "blood_type" field.
func BloodTypeLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBloodType, v))
}

// BloodTypeLTE applies the LTE predicate on the "blood_type" field.
func BloodTypeLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBloodType, v))
}

// BloodTypeContains applies the Contains predicate on the "blood_type" field.
func BloodTypeContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldBloodType, v))
}

// BloodTypeHasPrefix applies the HasPrefix predicate on the "blood_type" field.
func BloodTypeHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldBloodType, v))
}

// BloodTypeHasSuffix applies the HasSuffix predicate on the "blood_type" field.
func BloodTypeHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldBloodType, v))
}

// BloodTypeIsNil applies the IsNil predicate on the "blood_type" field.
func BloodTypeIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBloodType))
}

// BloodTypeNotNil applies the NotNil predicate on the "blood_type" field.
func BloodTypeNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBloodType))
}

// BloodTypeEqualFold applies the EqualFold predicate on the "blood_type" field.
func BloodTypeEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldBloodType, v))
}

// BloodTypeContainsFold applies the ContainsFold predicate on the "blood_type" field.
func BloodTypeContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldBloodType, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAllergies))
}

// ChronicConditionsIsNil applies the IsNil predicate on the "chronic_conditions" field.
func ChronicConditionsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldChronicConditions))
}

// ChronicConditionsNotNil applies the NotNil predicate on the "chronic_conditions" field.
func ChronicConditionsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldChronicConditions))
}

// CurrentMedicationsIsNil applies the IsNil predicate on the "current_medications" field.
func CurrentMedicationsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldCurrentMedications))
}

// CurrentMedicationsNotNil applies the NotNil predicate on the "current_medications" field.
func CurrentMedicationsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldCurrentMedications))
}

// FamilyHistoryEQ applies the EQ predicate on the "family_history" field.
func FamilyHistoryEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFamilyHistory, v))
}

// FamilyHistoryNEQ applies the NEQ predicate on the "family_history" field.
func FamilyHistoryNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFamilyHistory, v))
}

// FamilyHistoryIn applies the In predicate on the "family_history" field.
func FamilyHistoryIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFamilyHistory, vs...))
}

// FamilyHistoryNotIn applies the NotIn predicate on the "family_history" field.
func FamilyHistoryNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFamilyHistory, vs...))
}

// FamilyHistoryGT applies the GT predicate on the "family_history" field.
func FamilyHistoryGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFamilyHistory, v))
}

// FamilyHistoryGTE applies the GTE predicate on the "family_history" field.
func FamilyHistoryGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFamilyHistory, v))
}

// FamilyHistoryLT applies the LT predicate on the "family_history" field.
func FamilyHistoryLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFamilyHistory, v))
}

// FamilyHistoryLTE applies the LTE predicate on the "family_history" field.
func FamilyHistoryLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFamilyHistory, v))
}

// FamilyHistoryContains applies the Contains predicate on the "family_history" field.
func FamilyHistoryContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFamilyHistory, v))
}

// FamilyHistoryHasPrefix applies the HasPrefix predicate on the "family_history" field.
func FamilyHistoryHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFamilyHistory, v))
}

// FamilyHistoryHasSuffix applies the HasSuffix predicate on the "family_history" field.
func FamilyHistoryHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFamilyHistory, v))
}

// FamilyHistoryIsNil applies the IsNil predicate on the "family_history" field.
func FamilyHistoryIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldFamilyHistory))
}

// FamilyHistoryNotNil applies the NotNil predicate on the "family_history" field.
func FamilyHistoryNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldFamilyHistory))
}

// FamilyHistoryEqualFold applies the EqualFold predicate on the "family_history" field.
func FamilyHistoryEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFamilyHistory, v))
}

// FamilyHistoryContainsFold applies the ContainsFold predicate on the "family_history" field.
func FamilyHistoryContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFamilyHistory, v))
}

// InsuranceProviderEQ applies the EQ predicate on the "insurance_provider" field.
func InsuranceProviderEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderNEQ applies the NEQ predicate on the "insurance_provider" field.
func InsuranceProviderNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderIn applies the In predicate on the "insurance_provider" field.
func InsuranceProviderIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderNotIn applies the NotIn predicate on the "insurance_provider" field.
func InsuranceProviderNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderGT applies the GT predicate on the "insurance_provider" field.
func InsuranceProviderGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceProvider, v))
}

// InsuranceProviderGTE applies the GTE predicate on the "insurance_provider" field.
func InsuranceProviderGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceProvider, v))
}

// InsuranceProviderLT applies the LT predicate on the "insurance_provider" field.
func InsuranceProviderLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceProvider, v))
}

// InsuranceProviderLTE applies the LTE predicate on the "insurance_provider" field.
func InsuranceProviderLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceProvider, v))
}

// InsuranceProviderContains applies the Contains predicate on the "insurance_provider" field.
func InsuranceProviderContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsuranceProvider, v))
}

// InsuranceProviderHasPrefix applies the HasPrefix predicate on the "insurance_provider" field.
func InsuranceProviderHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsuranceProvider, v))
}

// InsuranceProviderHasSuffix applies the HasSuffix predicate on the "insurance_provider" field.
func InsuranceProviderHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsuranceProvider, v))
}

// InsuranceProviderIsNil applies the IsNil predicate on the "insurance_provider" field.
func InsuranceProviderIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceProvider))
}

// InsuranceProviderNotNil applies the NotNil predicate on the "insurance_provider" field.
func InsuranceProviderNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceProvider))
}

// InsuranceProviderEqualFold applies the EqualFold predicate on the "insurance_provider" field.
func InsuranceProviderEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsuranceProvider, v))
}

// InsuranceProviderContainsFold applies the ContainsFold predicate on the "insurance_provider" field.
func InsuranceProviderContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsuranceProvider, v))
}

// InsurancePolicyNumberEQ applies the EQ predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberNEQ applies the NEQ predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberIn applies the In predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsurancePolicyNumber, vs...))
}

// InsurancePolicyNumberNotIn applies the NotIn predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsurancePolicyNumber, vs...))
}

// InsurancePolicyNumberGT applies the GT predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberGTE applies the GTE predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberLT applies the LT predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberLTE applies the LTE predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberContains applies the Contains predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberHasPrefix applies the HasPrefix predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberHasSuffix applies the HasSuffix predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberIsNil applies the IsNil predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsurancePolicyNumber))
}

// InsurancePolicyNumberNotNil applies the NotNil predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsurancePolicyNumber))
}

// InsurancePolicyNumberEqualFold applies the EqualFold predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsurancePolicyNumber, v))
}

// InsurancePolicyNumberContainsFold applies the ContainsFold predicate on the "insurance_policy_number" field.
func InsurancePolicyNumberContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsurancePolicyNumber, v))
}

// InsuranceExpiryEQ applies the EQ predicate on the "insurance_expiry" field.
func InsuranceExpiryEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceExpiry, v))
}

// InsuranceExpiryNEQ applies the NEQ predicate on the "insurance_expiry" field.
func InsuranceExpiryNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceExpiry, v))
}

// InsuranceExpiryIn applies the In predicate on the "insurance_expiry" field.
func InsuranceExpiryIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceExpiry, vs...))
}

// InsuranceExpiryNotIn applies the NotIn predicate on the "insurance_expiry" field.
func InsuranceExpiryNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceExpiry, vs...))
}

// InsuranceExpiryGT applies the GT predicate on the "insurance_expiry" field.
func InsuranceExpiryGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceExpiry, v))
}

// InsuranceExpiryGTE applies the GTE predicate on the "insurance_expiry" field.
func InsuranceExpiryGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceExpiry, v))
}

// InsuranceExpiryLT applies the LT predicate on the "insurance_expiry" field.
func InsuranceExpiryLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceExpiry, v))
}

// InsuranceExpiryLTE applies the LTE predicate on the "insurance_expiry" field.
func InsuranceExpiryLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceExpiry, v))
}

// InsuranceExpiryIsNil applies the IsNil predicate on the "insurance_expiry" field.
func InsuranceExpiryIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceExpiry))
}

// InsuranceExpiryNotNil applies the NotNil predicate on the "insurance_expiry" field.
func InsuranceExpiryNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceExpiry))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldStatus, vs...))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVisits applies the HasEdge predicate on the "visits" edge.
func HasVisits() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisitsTable, VisitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitsWith applies the HasEdge predicate on the "visits" edge with a given conditions (other predicates).
func HasVisitsWith(preds ...predicate.Visit) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newVisitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrescriptions applies the HasEdge predicate on the "prescriptions" edge.
func HasPrescriptions() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionsWith applies the HasEdge predicate on the "prescriptions" edge with a given conditions (other predicates).
func HasPrescriptionsWith(preds ...predicate.Prescription) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newPrescriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvoices applies the HasEdge predicate on the "invoices" edge.
func HasInvoices() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoicesWith applies the HasEdge predicate on the "invoices" edge with a given conditions (other predicates).
func HasInvoicesWith(preds ...predicate.Invoice) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newInvoicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
