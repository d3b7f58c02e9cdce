// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// Prescription is the model entity for the Prescription schema.
type Prescription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Visit the prescription was written during, if any
	VisitID *uuid.UUID `json:"visit_id,omitempty"`
	// FK → clinic_members.id (prescriber)
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// MedicationName holds the value of the "medication_name" field.
	MedicationName string `json:"medication_name,omitempty"`
	// GenericName holds the value of the "generic_name" field.
	GenericName *string `json:"generic_name,omitempty"`
	// BrandName holds the value of the "brand_name" field.
	BrandName *string `json:"brand_name,omitempty"`
	// e.g. 500mg
	Dosage string `json:"dosage,omitempty"`
	// e.g. twice daily
	Frequency string `json:"frequency,omitempty"`
	// Free-form, e.g. oral, topical, IV
	Route string `json:"route,omitempty"`
	// e.g. 7 days
	Duration string `json:"duration,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Refills holds the value of the "refills" field.
	Refills int `json:"refills,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions *string `json:"instructions,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status prescription.Status `json:"status,omitempty"`
	// DiscontinuedReason holds the value of the "discontinued_reason" field.
	DiscontinuedReason *string `json:"discontinued_reason,omitempty"`
	// DiscontinuedAt holds the value of the "discontinued_at" field.
	DiscontinuedAt *time.Time `json:"discontinued_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PrescriptionQuery when eager-loading is set.
	Edges        PrescriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PrescriptionEdges holds the relations/edges for other nodes in the graph.
type PrescriptionEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Visit holds the value of the visit edge.
	Visit *Visit `json:"visit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrescriptionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// VisitOrErr returns the Visit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrescriptionEdges) VisitOrErr() (*Visit, error) {
	if e.Visit != nil {
		return e.Visit, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: visit.Label}
	}
	return nil, &NotLoadedError{edge: "visit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prescription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prescription.FieldVisitID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case prescription.FieldQuantity, prescription.FieldRefills:
			values[i] = new(sql.NullInt64)
		case prescription.FieldMedicationName, prescription.FieldGenericName, prescription.FieldBrandName, prescription.FieldDosage, prescription.FieldFrequency, prescription.FieldRoute, prescription.FieldDuration, prescription.FieldInstructions, prescription.FieldNotes, prescription.FieldStatus, prescription.FieldDiscontinuedReason:
			values[i] = new(sql.NullString)
		case prescription.FieldCreatedAt, prescription.FieldUpdatedAt, prescription.FieldDiscontinuedAt:
			values[i] = new(sql.NullTime)
		case prescription.FieldID, prescription.FieldClinicID, prescription.FieldPatientID, prescription.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prescription fields.
func (_m *Prescription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prescription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prescription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prescription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case prescription.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case prescription.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case prescription.FieldVisitID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field visit_id", values[i])
			} else if value.Valid {
				_m.VisitID = new(uuid.UUID)
				*_m.VisitID = *value.S.(*uuid.UUID)
			}
		case prescription.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case prescription.FieldMedicationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication_name", values[i])
			} else if value.Valid {
				_m.MedicationName = value.String
			}
		case prescription.FieldGenericName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generic_name", values[i])
			} else if value.Valid {
				_m.GenericName = new(string)
				*_m.GenericName = value.String
			}
		case prescription.FieldBrandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_name", values[i])
			} else if value.Valid {
				_m.BrandName = new(string)
				*_m.BrandName = value.String
			}
		case prescription.FieldDosage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage", values[i])
			} else if value.Valid {
				_m.Dosage = value.String
			}
		case prescription.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = value.String
			}
		case prescription.FieldRoute:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field route", values[i])
			} else if value.Valid {
				_m.Route = value.String
			}
		case prescription.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = value.String
			}
		case prescription.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case prescription.FieldRefills:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field refills", values[i])
			} else if value.Valid {
				_m.Refills = int(value.Int64)
			}
		case prescription.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = new(string)
				*_m.Instructions = value.String
			}
		case prescription.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case prescription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prescription.Status(value.String)
			}
		case prescription.FieldDiscontinuedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discontinued_reason", values[i])
			} else if value.Valid {
				_m.DiscontinuedReason = new(string)
				*_m.DiscontinuedReason = value.String
			}
		case prescription.FieldDiscontinuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field discontinued_at", values[i])
			} else if value.Valid {
				_m.DiscontinuedAt = new(time.Time)
				*_m.DiscontinuedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prescription.
// This includes values selected through modifiers, order, etc.
func (_m *Prescription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Prescription entity.
func (_m *Prescription) QueryPatient() *PatientQuery {
	return NewPrescriptionClient(_m.config).QueryPatient(_m)
}

// QueryVisit queries the "visit" edge of the Prescription entity.
func (_m *Prescription) QueryVisit() *VisitQuery {
	return NewPrescriptionClient(_m.config).QueryVisit(_m)
}

// Update returns a builder for updating this Prescription.
// Note that you need to call Prescription.Unwrap() before calling this method if this Prescription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prescription) Update() *PrescriptionUpdateOne {
	return NewPrescriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prescription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prescription) Unwrap() *Prescription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Prescription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prescription) String() string {
	var builder strings.Builder
	builder.WriteString("Prescription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.VisitID; v != nil {
		builder.WriteString("visit_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("medication_name=")
	builder.WriteString(_m.MedicationName)
	builder.WriteString(", ")
	if v := _m.GenericName; v != nil {
		builder.WriteString("generic_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BrandName; v != nil {
		builder.WriteString("brand_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("dosage=")
	builder.WriteString(_m.Dosage)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(_m.Frequency)
	builder.WriteString(", ")
	builder.WriteString("route=")
	builder.WriteString(_m.Route)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(_m.Duration)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("refills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Refills))
	builder.WriteString(", ")
	if v := _m.Instructions; v != nil {
		builder.WriteString("instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DiscontinuedReason; v != nil {
		builder.WriteString("discontinued_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DiscontinuedAt; v != nil {
		builder.WriteString("discontinued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Prescriptions is a parsable slice of Prescription.
type Prescriptions []*Prescription
