// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clinovahq/clinova_backend/internal/repo/clinic"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// Clinic-facing patient code, e.g. P2025-00042
	Code string `json:"code,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *patient.Gender `json:"gender,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// EmergencyContactName holds the value of the "emergency_contact_name" field.
	EmergencyContactName *string `json:"emergency_contact_name,omitempty"`
	// EmergencyContactPhone holds the value of the "emergency_contact_phone" field.
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	// e.g. spouse, parent, sibling
	EmergencyContactRelation *string `json:"emergency_contact_relation,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType *string `json:"blood_type,omitempty"`
	// Allergies holds the value of the "allergies" field.
	Allergies []string `json:"allergies,omitempty"`
	// ChronicConditions holds the value of the "chronic_conditions" field.
	ChronicConditions []string `json:"chronic_conditions,omitempty"`
	// CurrentMedications holds the value of the "current_medications" field.
	CurrentMedications []string `json:"current_medications,omitempty"`
	// FamilyHistory holds the value of the "family_history" field.
	FamilyHistory *string `json:"family_history,omitempty"`
	// InsuranceProvider holds the value of the "insurance_provider" field.
	InsuranceProvider *string `json:"insurance_provider,omitempty"`
	// AES-256-GCM ciphertext, base64
	InsurancePolicyNumber *string `json:"-"`
	// InsuranceExpiry holds the value of the "insurance_expiry" field.
	InsuranceExpiry *time.Time `json:"insurance_expiry,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status patient.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// Visits holds the value of the visits edge.
	Visits []*Visit `json:"visits,omitempty"`
	// Prescriptions holds the value of the prescriptions edge.
	Prescriptions []*Prescription `json:"prescriptions,omitempty"`
	// Invoices holds the value of the invoices edge.
	Invoices []*Invoice `json:"invoices,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// VisitsOrErr returns the Visits value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) VisitsOrErr() ([]*Visit, error) {
	if e.loadedTypes[1] {
		return e.Visits, nil
	}
	return nil, &NotLoadedError{edge: "visits"}
}

// PrescriptionsOrErr returns the Prescriptions value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) PrescriptionsOrErr() ([]*Prescription, error) {
	if e.loadedTypes[2] {
		return e.Prescriptions, nil
	}
	return nil, &NotLoadedError{edge: "prescriptions"}
}

// InvoicesOrErr returns the Invoices value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) InvoicesOrErr() ([]*Invoice, error) {
	if e.loadedTypes[3] {
		return e.Invoices, nil
	}
	return nil, &NotLoadedError{edge: "invoices"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldAllergies, patient.FieldChronicConditions, patient.FieldCurrentMedications:
			values[i] = new([]byte)
		case patient.FieldCode, patient.FieldFirstName, patient.FieldLastName, patient.FieldGender, patient.FieldPhone, patient.FieldEmail, patient.FieldAddress, patient.FieldEmergencyContactName, patient.FieldEmergencyContactPhone, patient.FieldEmergencyContactRelation, patient.FieldBloodType, patient.FieldFamilyHistory, patient.FieldInsuranceProvider, patient.FieldInsurancePolicyNumber, patient.FieldNotes, patient.FieldStatus:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDeletedAt, patient.FieldDateOfBirth, patient.FieldInsuranceExpiry:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldClinicID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patient.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case patient.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case patient.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case patient.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case patient.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case patient.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(patient.Gender)
				*_m.Gender = patient.Gender(value.String)
			}
		case patient.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case patient.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case patient.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case patient.FieldEmergencyContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact_name", values[i])
			} else if value.Valid {
				_m.EmergencyContactName = new(string)
				*_m.EmergencyContactName = value.String
			}
		case patient.FieldEmergencyContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact_phone", values[i])
			} else if value.Valid {
				_m.EmergencyContactPhone = new(string)
				*_m.EmergencyContactPhone = value.String
			}
		case patient.FieldEmergencyContactRelation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact_relation", values[i])
			} else if value.Valid {
				_m.EmergencyContactRelation = new(string)
				*_m.EmergencyContactRelation = value.String
			}
		case patient.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = new(string)
				*_m.BloodType = value.String
			}
		case patient.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case patient.FieldChronicConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chronic_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChronicConditions); err != nil {
					return fmt.Errorf("unmarshal field chronic_conditions: %w", err)
				}
			}
		case patient.FieldCurrentMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentMedications); err != nil {
					return fmt.Errorf("unmarshal field current_medications: %w", err)
				}
			}
		case patient.FieldFamilyHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_history", values[i])
			} else if value.Valid {
				_m.FamilyHistory = new(string)
				*_m.FamilyHistory = value.String
			}
		case patient.FieldInsuranceProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_provider", values[i])
			} else if value.Valid {
				_m.InsuranceProvider = new(string)
				*_m.InsuranceProvider = value.String
			}
		case patient.FieldInsurancePolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_policy_number", values[i])
			} else if value.Valid {
				_m.InsurancePolicyNumber = new(string)
				*_m.InsurancePolicyNumber = value.String
			}
		case patient.FieldInsuranceExpiry:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_expiry", values[i])
			} else if value.Valid {
				_m.InsuranceExpiry = new(time.Time)
				*_m.InsuranceExpiry = value.Time
			}
		case patient.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case patient.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = patient.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the Patient entity.
func (_m *Patient) QueryClinic() *ClinicQuery {
	return NewPatientClient(_m.config).QueryClinic(_m)
}

// QueryVisits queries the "visits" edge of the Patient entity.
func (_m *Patient) QueryVisits() *VisitQuery {
	return NewPatientClient(_m.config).QueryVisits(_m)
}

// QueryPrescriptions queries the "prescriptions" edge of the Patient entity.
func (_m *Patient) QueryPrescriptions() *PrescriptionQuery {
	return NewPatientClient(_m.config).QueryPrescriptions(_m)
}

// QueryInvoices queries the "invoices" edge of the Patient entity.
func (_m *Patient) QueryInvoices() *InvoiceQuery {
	return NewPatientClient(_m.config).QueryInvoices(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContactName; v != nil {
		builder.WriteString("emergency_contact_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContactPhone; v != nil {
		builder.WriteString("emergency_contact_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContactRelation; v != nil {
		builder.WriteString("emergency_contact_relation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BloodType; v != nil {
		builder.WriteString("blood_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	builder.WriteString("chronic_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChronicConditions))
	builder.WriteString(", ")
	builder.WriteString("current_medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentMedications))
	builder.WriteString(", ")
	if v := _m.FamilyHistory; v != nil {
		builder.WriteString("family_history=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InsuranceProvider; v != nil {
		builder.WriteString("insurance_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("insurance_policy_number=<sensitive>")
	builder.WriteString(", ")
	if v := _m.InsuranceExpiry; v != nil {
		builder.WriteString("insurance_expiry=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
