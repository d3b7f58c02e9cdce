// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the prescription type in the database.
	Label = "prescription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldVisitID holds the string denoting the visit_id field in the database.
	FieldVisitID = "visit_id"
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldMedicationName holds the string denoting the medication_name field in the database.
	FieldMedicationName = "medication_name"
	// FieldGenericName holds the string denoting the generic_name field in the database.
	FieldGenericName = "generic_name"
	// FieldBrandName holds the string denoting the brand_name field in the database.
	FieldBrandName = "brand_name"
	// FieldDosage holds the string denoting the dosage field in the database.
	FieldDosage = "dosage"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldRoute holds the string denoting the route field in the database.
	FieldRoute = "route"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldRefills holds the string denoting the refills field in the database.
	FieldRefills = "refills"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDiscontinuedReason holds the string denoting the discontinued_reason field in the database.
	FieldDiscontinuedReason = "discontinued_reason"
	// FieldDiscontinuedAt holds the string denoting the discontinued_at field in the database.
	FieldDiscontinuedAt = "discontinued_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeVisit holds the string denoting the visit edge name in mutations.
	EdgeVisit = "visit"
	// Table holds the table name of the prescription in the database.
	Table = "prescriptions"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "prescriptions"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// VisitTable is the table that holds the visit relation/edge.
	VisitTable = "prescriptions"
	// VisitInverseTable is the table name for the Visit entity.
	// It exists in this package in order to avoid circular dependency with the "visit" package.
	VisitInverseTable = "visits"
	// VisitColumn is the table column denoting the visit relation/edge.
	VisitColumn = "visit_id"
)

// Columns holds all SQL columns for prescription fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldPatientID,
	FieldVisitID,
	FieldProviderID,
	FieldMedicationName,
	FieldGenericName,
	FieldBrandName,
	FieldDosage,
	FieldFrequency,
	FieldRoute,
	FieldDuration,
	FieldQuantity,
	FieldRefills,
	FieldInstructions,
	FieldNotes,
	FieldStatus,
	FieldDiscontinuedReason,
	FieldDiscontinuedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// MedicationNameValidator is a validator for the "medication_name" field. It is called by the builders before save.
	MedicationNameValidator func(string) error
	// GenericNameValidator is a validator for the "generic_name" field. It is called by the builders before save.
	GenericNameValidator func(string) error
	// BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	BrandNameValidator func(string) error
	// DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	DosageValidator func(string) error
	// FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	FrequencyValidator func(string) error
	// RouteValidator is a validator for the "route" field. It is called by the builders before save.
	RouteValidator func(string) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(string) error
	// DefaultRefills holds the default value on creation for the "refills" field.
	DefaultRefills int
	// RefillsValidator is a validator for the "refills" field. It is called by the builders before save.
	RefillsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive       Status = "active"
	StatusDiscontinued Status = "discontinued"
	StatusCompleted    Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusDiscontinued, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("prescription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Prescription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByVisitID orders the results by the visit_id field.
func ByVisitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitID, opts...).ToFunc()
}

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByMedicationName orders the results by the medication_name field.
func ByMedicationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicationName, opts...).ToFunc()
}

// ByGenericName orders the results by the generic_name field.
func ByGenericName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenericName, opts...).ToFunc()
}

// ByBrandName orders the results by the brand_name field.
func ByBrandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandName, opts...).ToFunc()
}

// ByDosage orders the results by the dosage field.
func ByDosage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDosage, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByRoute orders the results by the route field.
func ByRoute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoute, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByRefills orders the results by the refills field.
func ByRefills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefills, opts...).ToFunc()
}

// ByInstructions orders the results by the instructions field.
func ByInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructions, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDiscontinuedReason orders the results by the discontinued_reason field.
func ByDiscontinuedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscontinuedReason, opts...).ToFunc()
}

// ByDiscontinuedAt orders the results by the discontinued_at field.
func ByDiscontinuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscontinuedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByVisitField orders the results by visit field.
func ByVisitField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVisitStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newVisitStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VisitInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VisitTable, VisitColumn),
	)
}
