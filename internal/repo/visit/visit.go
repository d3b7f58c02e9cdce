// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the visit type in the database.
	Label = "visit"
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
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldVisitType holds the string denoting the visit_type field in the database.
	FieldVisitType = "visit_type"
	// FieldVisitDate holds the string denoting the visit_date field in the database.
	FieldVisitDate = "visit_date"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldBpSystolic holds the string denoting the bp_systolic field in the database.
	FieldBpSystolic = "bp_systolic"
	// FieldBpDiastolic holds the string denoting the bp_diastolic field in the database.
	FieldBpDiastolic = "bp_diastolic"
	// FieldHeartRate holds the string denoting the heart_rate field in the database.
	FieldHeartRate = "heart_rate"
	// FieldRespiratoryRate holds the string denoting the respiratory_rate field in the database.
	FieldRespiratoryRate = "respiratory_rate"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldOxygenSaturation holds the string denoting the oxygen_saturation field in the database.
	FieldOxygenSaturation = "oxygen_saturation"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldPainScale holds the string denoting the pain_scale field in the database.
	FieldPainScale = "pain_scale"
	// FieldSubjective holds the string denoting the subjective field in the database.
	FieldSubjective = "subjective"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldAssessment holds the string denoting the assessment field in the database.
	FieldAssessment = "assessment"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldPrimaryDiagnosis holds the string denoting the primary_diagnosis field in the database.
	FieldPrimaryDiagnosis = "primary_diagnosis"
	// FieldSecondaryDiagnoses holds the string denoting the secondary_diagnoses field in the database.
	FieldSecondaryDiagnoses = "secondary_diagnoses"
	// FieldIcd10Codes holds the string denoting the icd10_codes field in the database.
	FieldIcd10Codes = "icd10_codes"
	// FieldFollowUpDate holds the string denoting the follow_up_date field in the database.
	FieldFollowUpDate = "follow_up_date"
	// FieldFollowUpReason holds the string denoting the follow_up_reason field in the database.
	FieldFollowUpReason = "follow_up_reason"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldLocked holds the string denoting the locked field in the database.
	FieldLocked = "locked"
	// FieldLockedAt holds the string denoting the locked_at field in the database.
	FieldLockedAt = "locked_at"
	// FieldLockedBy holds the string denoting the locked_by field in the database.
	FieldLockedBy = "locked_by"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgePrescriptions holds the string denoting the prescriptions edge name in mutations.
	EdgePrescriptions = "prescriptions"
	// Table holds the table name of the visit in the database.
	Table = "visits"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "visits"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// PrescriptionsTable is the table that holds the prescriptions relation/edge.
	PrescriptionsTable = "prescriptions"
	// PrescriptionsInverseTable is the table name for the Prescription entity.
	// It exists in this package in order to avoid circular dependency with the "prescription" package.
	PrescriptionsInverseTable = "prescriptions"
	// PrescriptionsColumn is the table column denoting the prescriptions relation/edge.
	PrescriptionsColumn = "visit_id"
)

// Columns holds all SQL columns for visit fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldPatientID,
	FieldProviderID,
	FieldVisitType,
	FieldVisitDate,
	FieldChiefComplaint,
	FieldBpSystolic,
	FieldBpDiastolic,
	FieldHeartRate,
	FieldRespiratoryRate,
	FieldTemperature,
	FieldOxygenSaturation,
	FieldWeight,
	FieldHeight,
	FieldPainScale,
	FieldSubjective,
	FieldObjective,
	FieldAssessment,
	FieldPlan,
	FieldPrimaryDiagnosis,
	FieldSecondaryDiagnoses,
	FieldIcd10Codes,
	FieldFollowUpDate,
	FieldFollowUpReason,
	FieldNotes,
	FieldLocked,
	FieldLockedAt,
	FieldLockedBy,
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
	// DefaultVisitType holds the default value on creation for the "visit_type" field.
	DefaultVisitType string
	// VisitTypeValidator is a validator for the "visit_type" field. It is called by the builders before save.
	VisitTypeValidator func(string) error
	// PrimaryDiagnosisValidator is a validator for the "primary_diagnosis" field. It is called by the builders before save.
	PrimaryDiagnosisValidator func(string) error
	// DefaultLocked holds the default value on creation for the "locked" field.
	DefaultLocked bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Visit queries.
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

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByVisitType orders the results by the visit_type field.
func ByVisitType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitType, opts...).ToFunc()
}

// ByVisitDate orders the results by the visit_date field.
func ByVisitDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitDate, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// ByBpSystolic orders the results by the bp_systolic field.
func ByBpSystolic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBpSystolic, opts...).ToFunc()
}

// ByBpDiastolic orders the results by the bp_diastolic field.
func ByBpDiastolic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBpDiastolic, opts...).ToFunc()
}

// ByHeartRate orders the results by the heart_rate field.
func ByHeartRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartRate, opts...).ToFunc()
}

// ByRespiratoryRate orders the results by the respiratory_rate field.
func ByRespiratoryRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespiratoryRate, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByOxygenSaturation orders the results by the oxygen_saturation field.
func ByOxygenSaturation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOxygenSaturation, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByPainScale orders the results by the pain_scale field.
func ByPainScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPainScale, opts...).ToFunc()
}

// BySubjective orders the results by the subjective field.
func BySubjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjective, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByAssessment orders the results by the assessment field.
func ByAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessment, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByPrimaryDiagnosis orders the results by the primary_diagnosis field.
func ByPrimaryDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryDiagnosis, opts...).ToFunc()
}

// ByFollowUpDate orders the results by the follow_up_date field.
func ByFollowUpDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpDate, opts...).ToFunc()
}

// ByFollowUpReason orders the results by the follow_up_reason field.
func ByFollowUpReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpReason, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByLocked orders the results by the locked field.
func ByLocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocked, opts...).ToFunc()
}

// ByLockedAt orders the results by the locked_at field.
func ByLockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedAt, opts...).ToFunc()
}

// ByLockedBy orders the results by the locked_by field.
func ByLockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedBy, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByPrescriptionsCount orders the results by prescriptions count.
func ByPrescriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPrescriptionsStep(), opts...)
	}
}

// ByPrescriptions orders the results by prescriptions terms.
func ByPrescriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrescriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newPrescriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrescriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
	)
}
