// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/google/uuid"
)

// Visit is the model entity for the Visit schema.
type Visit struct {
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
	// FK → clinic_members.id (attending provider)
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// Free-form, e.g. consultation, follow_up, emergency, procedure
	VisitType string `json:"visit_type,omitempty"`
	// VisitDate holds the value of the "visit_date" field.
	VisitDate time.Time `json:"visit_date,omitempty"`
	// ChiefComplaint holds the value of the "chief_complaint" field.
	ChiefComplaint *string `json:"chief_complaint,omitempty"`
	// BpSystolic holds the value of the "bp_systolic" field.
	BpSystolic *int `json:"bp_systolic,omitempty"`
	// BpDiastolic holds the value of the "bp_diastolic" field.
	BpDiastolic *int `json:"bp_diastolic,omitempty"`
	// HeartRate holds the value of the "heart_rate" field.
	HeartRate *int `json:"heart_rate,omitempty"`
	// RespiratoryRate holds the value of the "respiratory_rate" field.
	RespiratoryRate *int `json:"respiratory_rate,omitempty"`
	// Celsius
	Temperature *float64 `json:"temperature,omitempty"`
	// SpO2 percent
	OxygenSaturation *int `json:"oxygen_saturation,omitempty"`
	// Kilograms
	Weight *float64 `json:"weight,omitempty"`
	// Centimeters
	Height *float64 `json:"height,omitempty"`
	// 0-10
	PainScale *int `json:"pain_scale,omitempty"`
	// Subjective holds the value of the "subjective" field.
	Subjective *string `json:"subjective,omitempty"`
	// Objective holds the value of the "objective" field.
	Objective *string `json:"objective,omitempty"`
	// Assessment holds the value of the "assessment" field.
	Assessment *string `json:"assessment,omitempty"`
	// Plan holds the value of the "plan" field.
	Plan *string `json:"plan,omitempty"`
	// PrimaryDiagnosis holds the value of the "primary_diagnosis" field.
	PrimaryDiagnosis *string `json:"primary_diagnosis,omitempty"`
	// SecondaryDiagnoses holds the value of the "secondary_diagnoses" field.
	SecondaryDiagnoses []string `json:"secondary_diagnoses,omitempty"`
	// Icd10Codes holds the value of the "icd10_codes" field.
	Icd10Codes []string `json:"icd10_codes,omitempty"`
	// FollowUpDate holds the value of the "follow_up_date" field.
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	// FollowUpReason holds the value of the "follow_up_reason" field.
	FollowUpReason *string `json:"follow_up_reason,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Locked holds the value of the "locked" field.
	Locked bool `json:"locked,omitempty"`
	// LockedAt holds the value of the "locked_at" field.
	LockedAt *time.Time `json:"locked_at,omitempty"`
	// LockedBy holds the value of the "locked_by" field.
	LockedBy *uuid.UUID `json:"locked_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VisitQuery when eager-loading is set.
	Edges        VisitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VisitEdges holds the relations/edges for other nodes in the graph.
type VisitEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Prescriptions holds the value of the prescriptions edge.
	Prescriptions []*Prescription `json:"prescriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VisitEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// PrescriptionsOrErr returns the Prescriptions value or an error if the edge
// was not loaded in eager-loading.
func (e VisitEdges) PrescriptionsOrErr() ([]*Prescription, error) {
	if e.loadedTypes[1] {
		return e.Prescriptions, nil
	}
	return nil, &NotLoadedError{edge: "prescriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Visit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case visit.FieldLockedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case visit.FieldSecondaryDiagnoses, visit.FieldIcd10Codes:
			values[i] = new([]byte)
		case visit.FieldLocked:
			values[i] = new(sql.NullBool)
		case visit.FieldTemperature, visit.FieldWeight, visit.FieldHeight:
			values[i] = new(sql.NullFloat64)
		case visit.FieldBpSystolic, visit.FieldBpDiastolic, visit.FieldHeartRate, visit.FieldRespiratoryRate, visit.FieldOxygenSaturation, visit.FieldPainScale:
			values[i] = new(sql.NullInt64)
		case visit.FieldVisitType, visit.FieldChiefComplaint, visit.FieldSubjective, visit.FieldObjective, visit.FieldAssessment, visit.FieldPlan, visit.FieldPrimaryDiagnosis, visit.FieldFollowUpReason, visit.FieldNotes:
			values[i] = new(sql.NullString)
		case visit.FieldCreatedAt, visit.FieldUpdatedAt, visit.FieldVisitDate, visit.FieldFollowUpDate, visit.FieldLockedAt:
			values[i] = new(sql.NullTime)
		case visit.FieldID, visit.FieldClinicID, visit.FieldPatientID, visit.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Visit fields.
func (_m *Visit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case visit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case visit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case visit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case visit.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case visit.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case visit.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case visit.FieldVisitType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visit_type", values[i])
			} else if value.Valid {
				_m.VisitType = value.String
			}
		case visit.FieldVisitDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visit_date", values[i])
			} else if value.Valid {
				_m.VisitDate = value.Time
			}
		case visit.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = new(string)
				*_m.ChiefComplaint = value.String
			}
		case visit.FieldBpSystolic:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bp_systolic", values[i])
			} else if value.Valid {
				_m.BpSystolic = new(int)
				*_m.BpSystolic = int(value.Int64)
			}
		case visit.FieldBpDiastolic:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bp_diastolic", values[i])
			} else if value.Valid {
				_m.BpDiastolic = new(int)
				*_m.BpDiastolic = int(value.Int64)
			}
		case visit.FieldHeartRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field heart_rate", values[i])
			} else if value.Valid {
				_m.HeartRate = new(int)
				*_m.HeartRate = int(value.Int64)
			}
		case visit.FieldRespiratoryRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field respiratory_rate", values[i])
			} else if value.Valid {
				_m.RespiratoryRate = new(int)
				*_m.RespiratoryRate = int(value.Int64)
			}
		case visit.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case visit.FieldOxygenSaturation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field oxygen_saturation", values[i])
			} else if value.Valid {
				_m.OxygenSaturation = new(int)
				*_m.OxygenSaturation = int(value.Int64)
			}
		case visit.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = new(float64)
				*_m.Weight = value.Float64
			}
		case visit.FieldHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = new(float64)
				*_m.Height = value.Float64
			}
		case visit.FieldPainScale:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pain_scale", values[i])
			} else if value.Valid {
				_m.PainScale = new(int)
				*_m.PainScale = int(value.Int64)
			}
		case visit.FieldSubjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subjective", values[i])
			} else if value.Valid {
				_m.Subjective = new(string)
				*_m.Subjective = value.String
			}
		case visit.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = new(string)
				*_m.Objective = value.String
			}
		case visit.FieldAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment", values[i])
			} else if value.Valid {
				_m.Assessment = new(string)
				*_m.Assessment = value.String
			}
		case visit.FieldPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value.Valid {
				_m.Plan = new(string)
				*_m.Plan = value.String
			}
		case visit.FieldPrimaryDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_diagnosis", values[i])
			} else if value.Valid {
				_m.PrimaryDiagnosis = new(string)
				*_m.PrimaryDiagnosis = value.String
			}
		case visit.FieldSecondaryDiagnoses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_diagnoses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SecondaryDiagnoses); err != nil {
					return fmt.Errorf("unmarshal field secondary_diagnoses: %w", err)
				}
			}
		case visit.FieldIcd10Codes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field icd10_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Icd10Codes); err != nil {
					return fmt.Errorf("unmarshal field icd10_codes: %w", err)
				}
			}
		case visit.FieldFollowUpDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_date", values[i])
			} else if value.Valid {
				_m.FollowUpDate = new(time.Time)
				*_m.FollowUpDate = value.Time
			}
		case visit.FieldFollowUpReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_reason", values[i])
			} else if value.Valid {
				_m.FollowUpReason = new(string)
				*_m.FollowUpReason = value.String
			}
		case visit.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case visit.FieldLocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field locked", values[i])
			} else if value.Valid {
				_m.Locked = value.Bool
			}
		case visit.FieldLockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_at", values[i])
			} else if value.Valid {
				_m.LockedAt = new(time.Time)
				*_m.LockedAt = value.Time
			}
		case visit.FieldLockedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field locked_by", values[i])
			} else if value.Valid {
				_m.LockedBy = new(uuid.UUID)
				*_m.LockedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Visit.
// This includes values selected through modifiers, order, etc.
func (_m *Visit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Visit entity.
func (_m *Visit) QueryPatient() *PatientQuery {
	return NewVisitClient(_m.config).QueryPatient(_m)
}

// QueryPrescriptions queries the "prescriptions" edge of the Visit entity.
func (_m *Visit) QueryPrescriptions() *PrescriptionQuery {
	return NewVisitClient(_m.config).QueryPrescriptions(_m)
}

// Update returns a builder for updating this Visit.
// Note that you need to call Visit.Unwrap() before calling this method if this Visit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Visit) Update() *VisitUpdateOne {
	return NewVisitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Visit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Visit) Unwrap() *Visit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Visit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Visit) String() string {
	var builder strings.Builder
	builder.WriteString("Visit(")
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
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("visit_type=")
	builder.WriteString(_m.VisitType)
	builder.WriteString(", ")
	builder.WriteString("visit_date=")
	builder.WriteString(_m.VisitDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ChiefComplaint; v != nil {
		builder.WriteString("chief_complaint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BpSystolic; v != nil {
		builder.WriteString("bp_systolic=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BpDiastolic; v != nil {
		builder.WriteString("bp_diastolic=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HeartRate; v != nil {
		builder.WriteString("heart_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RespiratoryRate; v != nil {
		builder.WriteString("respiratory_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OxygenSaturation; v != nil {
		builder.WriteString("oxygen_saturation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Weight; v != nil {
		builder.WriteString("weight=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Height; v != nil {
		builder.WriteString("height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PainScale; v != nil {
		builder.WriteString("pain_scale=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Subjective; v != nil {
		builder.WriteString("subjective=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Objective; v != nil {
		builder.WriteString("objective=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Assessment; v != nil {
		builder.WriteString("assessment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Plan; v != nil {
		builder.WriteString("plan=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrimaryDiagnosis; v != nil {
		builder.WriteString("primary_diagnosis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("secondary_diagnoses=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondaryDiagnoses))
	builder.WriteString(", ")
	builder.WriteString("icd10_codes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Icd10Codes))
	builder.WriteString(", ")
	if v := _m.FollowUpDate; v != nil {
		builder.WriteString("follow_up_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FollowUpReason; v != nil {
		builder.WriteString("follow_up_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("locked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Locked))
	builder.WriteString(", ")
	if v := _m.LockedAt; v != nil {
		builder.WriteString("locked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LockedBy; v != nil {
		builder.WriteString("locked_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Visits is a parsable slice of Visit.
type Visits []*Visit
