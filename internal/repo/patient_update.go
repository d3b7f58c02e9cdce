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
	"github.com/clinovahq/clinova_backend/internal/repo/clinic"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PatientUpdate) SetClinicID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableClinicID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdate) SetFirstName(v string) *PatientUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFirstName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdate) SetLastName(v string) *PatientUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdate) SetDateOfBirth(v time.Time) *PatientUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDateOfBirth(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdate) ClearDateOfBirth() *PatientUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientUpdate) SetGender(v patient.Gender) *PatientUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableGender(v *patient.Gender) *PatientUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientUpdate) ClearGender() *PatientUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PatientUpdate) SetEmail(v string) *PatientUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmail(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PatientUpdate) ClearEmail() *PatientUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientUpdate) SetAddress(v string) *PatientUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAddress(v *string) *PatientUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientUpdate) ClearAddress() *PatientUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *PatientUpdate) SetEmergencyContactName(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContactName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *PatientUpdate) ClearEmergencyContactName() *PatientUpdate {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *PatientUpdate) SetEmergencyContactPhone(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContactPhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *PatientUpdate) ClearEmergencyContactPhone() *PatientUpdate {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (_u *PatientUpdate) SetEmergencyContactRelation(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContactRelation(v)
	return _u
}

// SetNillableEmergencyContactRelation sets the "emergency_contact_relation" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContactRelation(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContactRelation(*v)
	}
	return _u
}

// ClearEmergencyContactRelation clears the value of the "emergency_contact_relation" field.
func (_u *PatientUpdate) ClearEmergencyContactRelation() *PatientUpdate {
	_u.mutation.ClearEmergencyContactRelation()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdate) SetBloodType(v string) *PatientUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBloodType(v *string) *PatientUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *PatientUpdate) ClearBloodType() *PatientUpdate {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdate) SetAllergies(v []string) *PatientUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdate) AppendAllergies(v []string) *PatientUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdate) ClearAllergies() *PatientUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdate) SetChronicConditions(v []string) *PatientUpdate {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdate) AppendChronicConditions(v []string) *PatientUpdate {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdate) ClearChronicConditions() *PatientUpdate {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetCurrentMedications sets the "current_medications" field.
func (_u *PatientUpdate) SetCurrentMedications(v []string) *PatientUpdate {
	_u.mutation.SetCurrentMedications(v)
	return _u
}

// AppendCurrentMedications appends value to the "current_medications" field.
func (_u *PatientUpdate) AppendCurrentMedications(v []string) *PatientUpdate {
	_u.mutation.AppendCurrentMedications(v)
	return _u
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (_u *PatientUpdate) ClearCurrentMedications() *PatientUpdate {
	_u.mutation.ClearCurrentMedications()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *PatientUpdate) SetFamilyHistory(v string) *PatientUpdate {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFamilyHistory(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFamilyHistory(*v)
	}
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *PatientUpdate) ClearFamilyHistory() *PatientUpdate {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *PatientUpdate) SetInsuranceProvider(v string) *PatientUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceProvider(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *PatientUpdate) ClearInsuranceProvider() *PatientUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (_u *PatientUpdate) SetInsurancePolicyNumber(v string) *PatientUpdate {
	_u.mutation.SetInsurancePolicyNumber(v)
	return _u
}

// SetNillableInsurancePolicyNumber sets the "insurance_policy_number" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsurancePolicyNumber(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsurancePolicyNumber(*v)
	}
	return _u
}

// ClearInsurancePolicyNumber clears the value of the "insurance_policy_number" field.
func (_u *PatientUpdate) ClearInsurancePolicyNumber() *PatientUpdate {
	_u.mutation.ClearInsurancePolicyNumber()
	return _u
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (_u *PatientUpdate) SetInsuranceExpiry(v time.Time) *PatientUpdate {
	_u.mutation.SetInsuranceExpiry(v)
	return _u
}

// SetNillableInsuranceExpiry sets the "insurance_expiry" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceExpiry(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceExpiry(*v)
	}
	return _u
}

// ClearInsuranceExpiry clears the value of the "insurance_expiry" field.
func (_u *PatientUpdate) ClearInsuranceExpiry() *PatientUpdate {
	_u.mutation.ClearInsuranceExpiry()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdate) SetNotes(v string) *PatientUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNotes(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdate) ClearNotes() *PatientUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdate) SetStatus(v patient.Status) *PatientUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableStatus(v *patient.Status) *PatientUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *PatientUpdate) SetClinic(v *Clinic) *PatientUpdate {
	return _u.SetClinicID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *PatientUpdate) AddVisitIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *PatientUpdate) AddVisits(v ...*Visit) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) AddPrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *PatientUpdate) AddInvoiceIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *PatientUpdate) AddInvoices(v ...*Invoice) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *PatientUpdate) ClearClinic() *PatientUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *PatientUpdate) ClearVisits() *PatientUpdate {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *PatientUpdate) RemoveVisitIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *PatientUpdate) RemoveVisits(v ...*Visit) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) ClearPrescriptions() *PatientUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdate) RemovePrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *PatientUpdate) ClearInvoices() *PatientUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *PatientUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *PatientUpdate) RemoveInvoices(v ...*Invoice) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := patient.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Patient.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactRelation(); ok {
		if err := patient.EmergencyContactRelationValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relation", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_relation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.clinic"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patient.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patient.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(patient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patient.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(patient.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactRelation(); ok {
		_spec.SetField(patient.FieldEmergencyContactRelation, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactRelationCleared() {
		_spec.ClearField(patient.FieldEmergencyContactRelation, field.TypeString)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(patient.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldCurrentMedications, value)
		})
	}
	if _u.mutation.CurrentMedicationsCleared() {
		_spec.ClearField(patient.FieldCurrentMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(patient.FieldFamilyHistory, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(patient.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyNumber(); ok {
		_spec.SetField(patient.FieldInsurancePolicyNumber, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyNumberCleared() {
		_spec.ClearField(patient.FieldInsurancePolicyNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceExpiry(); ok {
		_spec.SetField(patient.FieldInsuranceExpiry, field.TypeTime, value)
	}
	if _u.mutation.InsuranceExpiryCleared() {
		_spec.ClearField(patient.FieldInsuranceExpiry, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PatientUpdateOne) SetClinicID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableClinicID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdateOne) SetFirstName(v string) *PatientUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFirstName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdateOne) SetLastName(v string) *PatientUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdateOne) SetDateOfBirth(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDateOfBirth(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdateOne) ClearDateOfBirth() *PatientUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientUpdateOne) SetGender(v patient.Gender) *PatientUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableGender(v *patient.Gender) *PatientUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientUpdateOne) ClearGender() *PatientUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PatientUpdateOne) SetEmail(v string) *PatientUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmail(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PatientUpdateOne) ClearEmail() *PatientUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PatientUpdateOne) SetAddress(v string) *PatientUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAddress(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PatientUpdateOne) ClearAddress() *PatientUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *PatientUpdateOne) SetEmergencyContactName(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContactName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *PatientUpdateOne) ClearEmergencyContactName() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *PatientUpdateOne) SetEmergencyContactPhone(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContactPhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *PatientUpdateOne) ClearEmergencyContactPhone() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (_u *PatientUpdateOne) SetEmergencyContactRelation(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContactRelation(v)
	return _u
}

// SetNillableEmergencyContactRelation sets the "emergency_contact_relation" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContactRelation(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContactRelation(*v)
	}
	return _u
}

// ClearEmergencyContactRelation clears the value of the "emergency_contact_relation" field.
func (_u *PatientUpdateOne) ClearEmergencyContactRelation() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContactRelation()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdateOne) SetBloodType(v string) *PatientUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBloodType(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *PatientUpdateOne) ClearBloodType() *PatientUpdateOne {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdateOne) SetAllergies(v []string) *PatientUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdateOne) AppendAllergies(v []string) *PatientUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdateOne) ClearAllergies() *PatientUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdateOne) SetChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdateOne) AppendChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdateOne) ClearChronicConditions() *PatientUpdateOne {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetCurrentMedications sets the "current_medications" field.
func (_u *PatientUpdateOne) SetCurrentMedications(v []string) *PatientUpdateOne {
	_u.mutation.SetCurrentMedications(v)
	return _u
}

// AppendCurrentMedications appends value to the "current_medications" field.
func (_u *PatientUpdateOne) AppendCurrentMedications(v []string) *PatientUpdateOne {
	_u.mutation.AppendCurrentMedications(v)
	return _u
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (_u *PatientUpdateOne) ClearCurrentMedications() *PatientUpdateOne {
	_u.mutation.ClearCurrentMedications()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *PatientUpdateOne) SetFamilyHistory(v string) *PatientUpdateOne {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFamilyHistory(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFamilyHistory(*v)
	}
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *PatientUpdateOne) ClearFamilyHistory() *PatientUpdateOne {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *PatientUpdateOne) SetInsuranceProvider(v string) *PatientUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceProvider(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *PatientUpdateOne) ClearInsuranceProvider() *PatientUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (_u *PatientUpdateOne) SetInsurancePolicyNumber(v string) *PatientUpdateOne {
	_u.mutation.SetInsurancePolicyNumber(v)
	return _u
}

// SetNillableInsurancePolicyNumber sets the "insurance_policy_number" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsurancePolicyNumber(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsurancePolicyNumber(*v)
	}
	return _u
}

// ClearInsurancePolicyNumber clears the value of the "insurance_policy_number" field.
func (_u *PatientUpdateOne) ClearInsurancePolicyNumber() *PatientUpdateOne {
	_u.mutation.ClearInsurancePolicyNumber()
	return _u
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (_u *PatientUpdateOne) SetInsuranceExpiry(v time.Time) *PatientUpdateOne {
	_u.mutation.SetInsuranceExpiry(v)
	return _u
}

// SetNillableInsuranceExpiry sets the "insurance_expiry" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceExpiry(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceExpiry(*v)
	}
	return _u
}

// ClearInsuranceExpiry clears the value of the "insurance_expiry" field.
func (_u *PatientUpdateOne) ClearInsuranceExpiry() *PatientUpdateOne {
	_u.mutation.ClearInsuranceExpiry()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdateOne) SetNotes(v string) *PatientUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNotes(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdateOne) ClearNotes() *PatientUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdateOne) SetStatus(v patient.Status) *PatientUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableStatus(v *patient.Status) *PatientUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *PatientUpdateOne) SetClinic(v *Clinic) *PatientUpdateOne {
	return _u.SetClinicID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *PatientUpdateOne) AddVisitIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *PatientUpdateOne) AddVisits(v ...*Visit) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) AddPrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *PatientUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *PatientUpdateOne) AddInvoices(v ...*Invoice) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *PatientUpdateOne) ClearClinic() *PatientUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *PatientUpdateOne) ClearVisits() *PatientUpdateOne {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *PatientUpdateOne) RemoveVisitIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *PatientUpdateOne) RemoveVisits(v ...*Visit) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) ClearPrescriptions() *PatientUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdateOne) RemovePrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *PatientUpdateOne) ClearInvoices() *PatientUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *PatientUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *PatientUpdateOne) RemoveInvoices(v ...*Invoice) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := patient.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Patient.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactRelation(); ok {
		if err := patient.EmergencyContactRelationValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relation", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_relation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.clinic"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patient.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patient.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(patient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(patient.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(patient.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactRelation(); ok {
		_spec.SetField(patient.FieldEmergencyContactRelation, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactRelationCleared() {
		_spec.ClearField(patient.FieldEmergencyContactRelation, field.TypeString)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(patient.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldCurrentMedications, value)
		})
	}
	if _u.mutation.CurrentMedicationsCleared() {
		_spec.ClearField(patient.FieldCurrentMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(patient.FieldFamilyHistory, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(patient.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyNumber(); ok {
		_spec.SetField(patient.FieldInsurancePolicyNumber, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyNumberCleared() {
		_spec.ClearField(patient.FieldInsurancePolicyNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceExpiry(); ok {
		_spec.SetField(patient.FieldInsuranceExpiry, field.TypeTime, value)
	}
	if _u.mutation.InsuranceExpiryCleared() {
		_spec.ClearField(patient.FieldInsuranceExpiry, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.VisitsTable,
			Columns: []string{patient.VisitsColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.InvoicesTable,
			Columns: []string{patient.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
