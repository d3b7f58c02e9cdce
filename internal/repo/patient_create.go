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
	"github.com/clinovahq/clinova_backend/internal/repo/clinic"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *PatientCreate) SetClinicID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *PatientCreate) SetCode(v string) *PatientCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PatientCreate) SetFirstName(v string) *PatientCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PatientCreate) SetLastName(v string) *PatientCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PatientCreate) SetDateOfBirth(v time.Time) *PatientCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDateOfBirth(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PatientCreate) SetGender(v patient.Gender) *PatientCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PatientCreate) SetNillableGender(v *patient.Gender) *PatientCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PatientCreate) SetEmail(v string) *PatientCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmail(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PatientCreate) SetAddress(v string) *PatientCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAddress(v *string) *PatientCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_c *PatientCreate) SetEmergencyContactName(v string) *PatientCreate {
	_c.mutation.SetEmergencyContactName(v)
	return _c
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContactName(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContactName(*v)
	}
	return _c
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_c *PatientCreate) SetEmergencyContactPhone(v string) *PatientCreate {
	_c.mutation.SetEmergencyContactPhone(v)
	return _c
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContactPhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContactPhone(*v)
	}
	return _c
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (_c *PatientCreate) SetEmergencyContactRelation(v string) *PatientCreate {
	_c.mutation.SetEmergencyContactRelation(v)
	return _c
}

// SetNillableEmergencyContactRelation sets the "emergency_contact_relation" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContactRelation(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContactRelation(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *PatientCreate) SetBloodType(v string) *PatientCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBloodType(v *string) *PatientCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *PatientCreate) SetAllergies(v []string) *PatientCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_c *PatientCreate) SetChronicConditions(v []string) *PatientCreate {
	_c.mutation.SetChronicConditions(v)
	return _c
}

// SetCurrentMedications sets the "current_medications" field.
func (_c *PatientCreate) SetCurrentMedications(v []string) *PatientCreate {
	_c.mutation.SetCurrentMedications(v)
	return _c
}

// SetFamilyHistory sets the "family_history" field.
func (_c *PatientCreate) SetFamilyHistory(v string) *PatientCreate {
	_c.mutation.SetFamilyHistory(v)
	return _c
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFamilyHistory(v *string) *PatientCreate {
	if v != nil {
		_c.SetFamilyHistory(*v)
	}
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *PatientCreate) SetInsuranceProvider(v string) *PatientCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceProvider(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (_c *PatientCreate) SetInsurancePolicyNumber(v string) *PatientCreate {
	_c.mutation.SetInsurancePolicyNumber(v)
	return _c
}

// SetNillableInsurancePolicyNumber sets the "insurance_policy_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsurancePolicyNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsurancePolicyNumber(*v)
	}
	return _c
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (_c *PatientCreate) SetInsuranceExpiry(v time.Time) *PatientCreate {
	_c.mutation.SetInsuranceExpiry(v)
	return _c
}

// SetNillableInsuranceExpiry sets the "insurance_expiry" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceExpiry(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetInsuranceExpiry(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PatientCreate) SetNotes(v string) *PatientCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNotes(v *string) *PatientCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientCreate) SetStatus(v patient.Status) *PatientCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientCreate) SetNillableStatus(v *patient.Status) *PatientCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *PatientCreate) SetClinic(v *Clinic) *PatientCreate {
	return _c.SetClinicID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_c *PatientCreate) AddVisitIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddVisitIDs(ids...)
	return _c
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_c *PatientCreate) AddVisits(v ...*Visit) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVisitIDs(ids...)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *PatientCreate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *PatientCreate) AddPrescriptions(v ...*Prescription) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *PatientCreate) AddInvoiceIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *PatientCreate) AddInvoices(v ...*Invoice) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := patient.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Patient.clinic_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`repo: missing required field "Patient.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := patient.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "Patient.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Patient.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Patient.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := patient.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Patient.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "Patient.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactRelation(); ok {
		if err := patient.EmergencyContactRelationValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relation", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_relation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Patient.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "Patient.clinic"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(patient.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(patient.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(patient.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
		_node.EmergencyContactName = &value
	}
	if value, ok := _c.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
		_node.EmergencyContactPhone = &value
	}
	if value, ok := _c.mutation.EmergencyContactRelation(); ok {
		_spec.SetField(patient.FieldEmergencyContactRelation, field.TypeString, value)
		_node.EmergencyContactRelation = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
		_node.BloodType = &value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
		_node.ChronicConditions = value
	}
	if value, ok := _c.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
		_node.CurrentMedications = value
	}
	if value, ok := _c.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
		_node.FamilyHistory = &value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.InsurancePolicyNumber(); ok {
		_spec.SetField(patient.FieldInsurancePolicyNumber, field.TypeString, value)
		_node.InsurancePolicyNumber = &value
	}
	if value, ok := _c.mutation.InsuranceExpiry(); ok {
		_spec.SetField(patient.FieldInsuranceExpiry, field.TypeTime, value)
		_node.InsuranceExpiry = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsert) SetClinicID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateClinicID() *PatientUpsert {
	u.SetExcluded(patient.FieldClinicID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsert) SetFirstName(v string) *PatientUpsert {
	u.Set(patient.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFirstName() *PatientUpsert {
	u.SetExcluded(patient.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsert) SetLastName(v string) *PatientUpsert {
	u.Set(patient.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateLastName() *PatientUpsert {
	u.SetExcluded(patient.FieldLastName)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsert) SetDateOfBirth(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDateOfBirth() *PatientUpsert {
	u.SetExcluded(patient.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsert) ClearDateOfBirth() *PatientUpsert {
	u.SetNull(patient.FieldDateOfBirth)
	return u
}

// SetGender sets the "gender" field.
func (u *PatientUpsert) SetGender(v patient.Gender) *PatientUpsert {
	u.Set(patient.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsert) UpdateGender() *PatientUpsert {
	u.SetExcluded(patient.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsert) ClearGender() *PatientUpsert {
	u.SetNull(patient.FieldGender)
	return u
}

// SetPhone sets the "phone" field.
func (u *PatientUpsert) SetPhone(v string) *PatientUpsert {
	u.Set(patient.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePhone() *PatientUpsert {
	u.SetExcluded(patient.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *PatientUpsert) SetEmail(v string) *PatientUpsert {
	u.Set(patient.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmail() *PatientUpsert {
	u.SetExcluded(patient.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsert) ClearEmail() *PatientUpsert {
	u.SetNull(patient.FieldEmail)
	return u
}

// SetAddress sets the "address" field.
func (u *PatientUpsert) SetAddress(v string) *PatientUpsert {
	u.Set(patient.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAddress() *PatientUpsert {
	u.SetExcluded(patient.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsert) ClearAddress() *PatientUpsert {
	u.SetNull(patient.FieldAddress)
	return u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsert) SetEmergencyContactName(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContactName, v)
	return u
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContactName() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContactName)
	return u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsert) ClearEmergencyContactName() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContactName)
	return u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsert) SetEmergencyContactPhone(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContactPhone, v)
	return u
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContactPhone() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContactPhone)
	return u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsert) ClearEmergencyContactPhone() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContactPhone)
	return u
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (u *PatientUpsert) SetEmergencyContactRelation(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContactRelation, v)
	return u
}

// UpdateEmergencyContactRelation sets the "emergency_contact_relation" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContactRelation() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContactRelation)
	return u
}

// ClearEmergencyContactRelation clears the value of the "emergency_contact_relation" field.
func (u *PatientUpsert) ClearEmergencyContactRelation() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContactRelation)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsert) SetBloodType(v string) *PatientUpsert {
	u.Set(patient.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBloodType() *PatientUpsert {
	u.SetExcluded(patient.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsert) ClearBloodType() *PatientUpsert {
	u.SetNull(patient.FieldBloodType)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsert) SetAllergies(v []string) *PatientUpsert {
	u.Set(patient.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAllergies() *PatientUpsert {
	u.SetExcluded(patient.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsert) ClearAllergies() *PatientUpsert {
	u.SetNull(patient.FieldAllergies)
	return u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsert) SetChronicConditions(v []string) *PatientUpsert {
	u.Set(patient.FieldChronicConditions, v)
	return u
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsert) UpdateChronicConditions() *PatientUpsert {
	u.SetExcluded(patient.FieldChronicConditions)
	return u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsert) ClearChronicConditions() *PatientUpsert {
	u.SetNull(patient.FieldChronicConditions)
	return u
}

// SetCurrentMedications sets the "current_medications" field.
func (u *PatientUpsert) SetCurrentMedications(v []string) *PatientUpsert {
	u.Set(patient.FieldCurrentMedications, v)
	return u
}

// UpdateCurrentMedications sets the "current_medications" field to the value that was provided on create.
func (u *PatientUpsert) UpdateCurrentMedications() *PatientUpsert {
	u.SetExcluded(patient.FieldCurrentMedications)
	return u
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (u *PatientUpsert) ClearCurrentMedications() *PatientUpsert {
	u.SetNull(patient.FieldCurrentMedications)
	return u
}

// SetFamilyHistory sets the "family_history" field.
func (u *PatientUpsert) SetFamilyHistory(v string) *PatientUpsert {
	u.Set(patient.FieldFamilyHistory, v)
	return u
}

// UpdateFamilyHistory sets the "family_history" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFamilyHistory() *PatientUpsert {
	u.SetExcluded(patient.FieldFamilyHistory)
	return u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (u *PatientUpsert) ClearFamilyHistory() *PatientUpsert {
	u.SetNull(patient.FieldFamilyHistory)
	return u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *PatientUpsert) SetInsuranceProvider(v string) *PatientUpsert {
	u.Set(patient.FieldInsuranceProvider, v)
	return u
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *PatientUpsert) UpdateInsuranceProvider() *PatientUpsert {
	u.SetExcluded(patient.FieldInsuranceProvider)
	return u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *PatientUpsert) ClearInsuranceProvider() *PatientUpsert {
	u.SetNull(patient.FieldInsuranceProvider)
	return u
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (u *PatientUpsert) SetInsurancePolicyNumber(v string) *PatientUpsert {
	u.Set(patient.FieldInsurancePolicyNumber, v)
	return u
}

// UpdateInsurancePolicyNumber sets the "insurance_policy_number" field to the value that was provided on create.
func (u *PatientUpsert) UpdateInsurancePolicyNumber() *PatientUpsert {
	u.SetExcluded(patient.FieldInsurancePolicyNumber)
	return u
}

// ClearInsurancePolicyNumber clears the value of the "insurance_policy_number" field.
func (u *PatientUpsert) ClearInsurancePolicyNumber() *PatientUpsert {
	u.SetNull(patient.FieldInsurancePolicyNumber)
	return u
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (u *PatientUpsert) SetInsuranceExpiry(v time.Time) *PatientUpsert {
	u.Set(patient.FieldInsuranceExpiry, v)
	return u
}

// UpdateInsuranceExpiry sets the "insurance_expiry" field to the value that was provided on create.
func (u *PatientUpsert) UpdateInsuranceExpiry() *PatientUpsert {
	u.SetExcluded(patient.FieldInsuranceExpiry)
	return u
}

// ClearInsuranceExpiry clears the value of the "insurance_expiry" field.
func (u *PatientUpsert) ClearInsuranceExpiry() *PatientUpsert {
	u.SetNull(patient.FieldInsuranceExpiry)
	return u
}

// SetNotes sets the "notes" field.
func (u *PatientUpsert) SetNotes(v string) *PatientUpsert {
	u.Set(patient.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNotes() *PatientUpsert {
	u.SetExcluded(patient.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsert) ClearNotes() *PatientUpsert {
	u.SetNull(patient.FieldNotes)
	return u
}

// SetStatus sets the "status" field.
func (u *PatientUpsert) SetStatus(v patient.Status) *PatientUpsert {
	u.Set(patient.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsert) UpdateStatus() *PatientUpsert {
	u.SetExcluded(patient.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(patient.FieldCode)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsertOne) SetClinicID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateClinicID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateClinicID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertOne) SetFirstName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFirstName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertOne) SetLastName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateLastName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertOne) SetDateOfBirth(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertOne) ClearDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *PatientUpsertOne) SetGender(v patient.Gender) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateGender() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsertOne) ClearGender() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGender()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertOne) SetPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertOne) SetEmail(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsertOne) ClearEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmail()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertOne) SetAddress(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertOne) ClearAddress() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsertOne) SetEmergencyContactName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactName(v)
	})
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContactName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactName()
	})
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsertOne) ClearEmergencyContactName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactName()
	})
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsertOne) SetEmergencyContactPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactPhone(v)
	})
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContactPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactPhone()
	})
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsertOne) ClearEmergencyContactPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactPhone()
	})
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (u *PatientUpsertOne) SetEmergencyContactRelation(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactRelation(v)
	})
}

// UpdateEmergencyContactRelation sets the "emergency_contact_relation" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContactRelation() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactRelation()
	})
}

// ClearEmergencyContactRelation clears the value of the "emergency_contact_relation" field.
func (u *PatientUpsertOne) ClearEmergencyContactRelation() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactRelation()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertOne) SetBloodType(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertOne) ClearBloodType() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertOne) SetAllergies(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertOne) ClearAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsertOne) SetChronicConditions(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetChronicConditions(v)
	})
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateChronicConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChronicConditions()
	})
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsertOne) ClearChronicConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChronicConditions()
	})
}

// SetCurrentMedications sets the "current_medications" field.
func (u *PatientUpsertOne) SetCurrentMedications(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetCurrentMedications(v)
	})
}

// UpdateCurrentMedications sets the "current_medications" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateCurrentMedications() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCurrentMedications()
	})
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (u *PatientUpsertOne) ClearCurrentMedications() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCurrentMedications()
	})
}

// SetFamilyHistory sets the "family_history" field.
func (u *PatientUpsertOne) SetFamilyHistory(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFamilyHistory(v)
	})
}

// UpdateFamilyHistory sets the "family_history" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFamilyHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFamilyHistory()
	})
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (u *PatientUpsertOne) ClearFamilyHistory() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFamilyHistory()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *PatientUpsertOne) SetInsuranceProvider(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateInsuranceProvider() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *PatientUpsertOne) ClearInsuranceProvider() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (u *PatientUpsertOne) SetInsurancePolicyNumber(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsurancePolicyNumber(v)
	})
}

// UpdateInsurancePolicyNumber sets the "insurance_policy_number" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateInsurancePolicyNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsurancePolicyNumber()
	})
}

// ClearInsurancePolicyNumber clears the value of the "insurance_policy_number" field.
func (u *PatientUpsertOne) ClearInsurancePolicyNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsurancePolicyNumber()
	})
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (u *PatientUpsertOne) SetInsuranceExpiry(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceExpiry(v)
	})
}

// UpdateInsuranceExpiry sets the "insurance_expiry" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateInsuranceExpiry() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceExpiry()
	})
}

// ClearInsuranceExpiry clears the value of the "insurance_expiry" field.
func (u *PatientUpsertOne) ClearInsuranceExpiry() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceExpiry()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertOne) SetNotes(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertOne) ClearNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *PatientUpsertOne) SetStatus(v patient.Status) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateStatus() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(patient.FieldCode)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsertBulk) SetClinicID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateClinicID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateClinicID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertBulk) SetFirstName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFirstName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertBulk) SetLastName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateLastName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertBulk) SetDateOfBirth(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertBulk) ClearDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *PatientUpsertBulk) SetGender(v patient.Gender) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateGender() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsertBulk) ClearGender() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGender()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertBulk) SetPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertBulk) SetEmail(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsertBulk) ClearEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmail()
	})
}

// SetAddress sets the "address" field.
func (u *PatientUpsertBulk) SetAddress(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PatientUpsertBulk) ClearAddress() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAddress()
	})
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsertBulk) SetEmergencyContactName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactName(v)
	})
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContactName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactName()
	})
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsertBulk) ClearEmergencyContactName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactName()
	})
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsertBulk) SetEmergencyContactPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactPhone(v)
	})
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContactPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactPhone()
	})
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsertBulk) ClearEmergencyContactPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactPhone()
	})
}

// SetEmergencyContactRelation sets the "emergency_contact_relation" field.
func (u *PatientUpsertBulk) SetEmergencyContactRelation(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactRelation(v)
	})
}

// UpdateEmergencyContactRelation sets the "emergency_contact_relation" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContactRelation() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactRelation()
	})
}

// ClearEmergencyContactRelation clears the value of the "emergency_contact_relation" field.
func (u *PatientUpsertBulk) ClearEmergencyContactRelation() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactRelation()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *PatientUpsertBulk) SetBloodType(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *PatientUpsertBulk) ClearBloodType() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertBulk) SetAllergies(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertBulk) ClearAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetChronicConditions sets the "chronic_conditions" field.
func (u *PatientUpsertBulk) SetChronicConditions(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetChronicConditions(v)
	})
}

// UpdateChronicConditions sets the "chronic_conditions" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateChronicConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChronicConditions()
	})
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (u *PatientUpsertBulk) ClearChronicConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChronicConditions()
	})
}

// SetCurrentMedications sets the "current_medications" field.
func (u *PatientUpsertBulk) SetCurrentMedications(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetCurrentMedications(v)
	})
}

// UpdateCurrentMedications sets the "current_medications" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateCurrentMedications() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCurrentMedications()
	})
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (u *PatientUpsertBulk) ClearCurrentMedications() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCurrentMedications()
	})
}

// SetFamilyHistory sets the "family_history" field.
func (u *PatientUpsertBulk) SetFamilyHistory(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFamilyHistory(v)
	})
}

// UpdateFamilyHistory sets the "family_history" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFamilyHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFamilyHistory()
	})
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (u *PatientUpsertBulk) ClearFamilyHistory() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFamilyHistory()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *PatientUpsertBulk) SetInsuranceProvider(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateInsuranceProvider() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *PatientUpsertBulk) ClearInsuranceProvider() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyNumber sets the "insurance_policy_number" field.
func (u *PatientUpsertBulk) SetInsurancePolicyNumber(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsurancePolicyNumber(v)
	})
}

// UpdateInsurancePolicyNumber sets the "insurance_policy_number" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateInsurancePolicyNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsurancePolicyNumber()
	})
}

// ClearInsurancePolicyNumber clears the value of the "insurance_policy_number" field.
func (u *PatientUpsertBulk) ClearInsurancePolicyNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsurancePolicyNumber()
	})
}

// SetInsuranceExpiry sets the "insurance_expiry" field.
func (u *PatientUpsertBulk) SetInsuranceExpiry(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetInsuranceExpiry(v)
	})
}

// UpdateInsuranceExpiry sets the "insurance_expiry" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateInsuranceExpiry() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateInsuranceExpiry()
	})
}

// ClearInsuranceExpiry clears the value of the "insurance_expiry" field.
func (u *PatientUpsertBulk) ClearInsuranceExpiry() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearInsuranceExpiry()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertBulk) SetNotes(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertBulk) ClearNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *PatientUpsertBulk) SetStatus(v patient.Status) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateStatus() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
