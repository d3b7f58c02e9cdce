// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "actor_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString, Size: 50},
		{Name: "entity_type", Type: field.TypeString, Size: 50},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "changes", Type: field.TypeJSON, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true, Size: 64},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_clinic_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_actor_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3]},
			},
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5], AuditLogsColumns[6]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
	}
	// ClinicMembersColumns holds the columns for the "clinic_members" table.
	ClinicMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "doctor", "nurse", "receptionist"}},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ClinicMembersTable holds the schema information for the "clinic_members" table.
	ClinicMembersTable = &schema.Table{
		Name:       "clinic_members",
		Columns:    ClinicMembersColumns,
		PrimaryKey: []*schema.Column{ClinicMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clinic_members_clinics_members",
				Columns:    []*schema.Column{ClinicMembersColumns[7]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clinic_members_users_memberships",
				Columns:    []*schema.Column{ClinicMembersColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clinicmember_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ClinicMembersColumns[7], ClinicMembersColumns[8]},
			},
			{
				Name:    "clinicmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicMembersColumns[8]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "visit_id", Type: field.TypeUUID, Nullable: true},
		{Name: "number", Type: field.TypeString, Size: 20},
		{Name: "subtotal", Type: field.TypeInt64},
		{Name: "discount_amount", Type: field.TypeInt64, Default: 0},
		{Name: "discount_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "discount_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tax_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "discount", Type: field.TypeInt64, Default: 0},
		{Name: "tax_amount", Type: field.TypeInt64, Default: 0},
		{Name: "grand_total", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unpaid", "partially_paid", "paid", "refunded"}, Default: "unpaid"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_patients_invoices",
				Columns:    []*schema.Column{InvoicesColumns[16]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_clinic_id_number",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[3], InvoicesColumns[5]},
			},
			{
				Name:    "invoice_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3]},
			},
			{
				Name:    "invoice_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3], InvoicesColumns[16]},
			},
			{
				Name:    "invoice_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3], InvoicesColumns[14]},
			},
			{
				Name:    "invoice_visit_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[4]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Size: 500},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "total", Type: field.TypeInt64},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceitem_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceItemsColumns[7]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "code", Type: field.TypeString, Size: 20},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "emergency_contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_contact_relation", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "blood_type", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "chronic_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "current_medications", Type: field.TypeJSON, Nullable: true},
		{Name: "family_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "insurance_policy_number", Type: field.TypeString, Nullable: true},
		{Name: "insurance_expiry", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_clinics_patients",
				Columns:    []*schema.Column{PatientsColumns[25]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id_code",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[25], PatientsColumns[4]},
			},
			{
				Name:    "patient_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[25]},
			},
			{
				Name:    "patient_clinic_id_phone",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[25], PatientsColumns[9]},
			},
			{
				Name:    "patient_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[25], PatientsColumns[24]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"cash", "card", "mobile", "bank_transfer", "check", "insurance"}},
		{Name: "receipt_no", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "received_by", Type: field.TypeUUID},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_invoices_payments",
				Columns:    []*schema.Column{PaymentsColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payment_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[7]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "medication_name", Type: field.TypeString, Size: 255},
		{Name: "generic_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "brand_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "dosage", Type: field.TypeString, Size: 100},
		{Name: "frequency", Type: field.TypeString, Size: 100},
		{Name: "route", Type: field.TypeString, Size: 50},
		{Name: "duration", Type: field.TypeString, Size: 100},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "refills", Type: field.TypeInt, Default: 0},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "discontinued", "completed"}, Default: "active"},
		{Name: "discontinued_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "discontinued_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "visit_id", Type: field.TypeUUID, Nullable: true},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prescriptions_patients_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[19]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "prescriptions_visits_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[20]},
				RefColumns: []*schema.Column{VisitsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3]},
			},
			{
				Name:    "prescription_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3], PrescriptionsColumns[19]},
			},
			{
				Name:    "prescription_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3], PrescriptionsColumns[16]},
			},
			{
				Name:    "prescription_visit_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[20]},
			},
		},
	}
	// RefundsColumns holds the columns for the "refunds" table.
	RefundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "refunded_by", Type: field.TypeUUID},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// RefundsTable holds the schema information for the "refunds" table.
	RefundsTable = &schema.Table{
		Name:       "refunds",
		Columns:    RefundsColumns,
		PrimaryKey: []*schema.Column{RefundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refunds_invoices_refunds",
				Columns:    []*schema.Column{RefundsColumns[6]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "refund_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{RefundsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Size: 64},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_sessions",
				Columns:    []*schema.Column{UserSessionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  true,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[7]},
			},
		},
	}
	// VisitsColumns holds the columns for the "visits" table.
	VisitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "visit_type", Type: field.TypeString, Size: 50, Default: "consultation"},
		{Name: "visit_date", Type: field.TypeTime},
		{Name: "chief_complaint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bp_systolic", Type: field.TypeInt, Nullable: true},
		{Name: "bp_diastolic", Type: field.TypeInt, Nullable: true},
		{Name: "heart_rate", Type: field.TypeInt, Nullable: true},
		{Name: "respiratory_rate", Type: field.TypeInt, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "oxygen_saturation", Type: field.TypeInt, Nullable: true},
		{Name: "weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "height", Type: field.TypeFloat64, Nullable: true},
		{Name: "pain_scale", Type: field.TypeInt, Nullable: true},
		{Name: "subjective", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "objective", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assessment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "primary_diagnosis", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "secondary_diagnoses", Type: field.TypeJSON, Nullable: true},
		{Name: "icd10_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "follow_up_date", Type: field.TypeTime, Nullable: true},
		{Name: "follow_up_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "locked", Type: field.TypeBool, Default: false},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "locked_by", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// VisitsTable holds the schema information for the "visits" table.
	VisitsTable = &schema.Table{
		Name:       "visits",
		Columns:    VisitsColumns,
		PrimaryKey: []*schema.Column{VisitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "visits_patients_visits",
				Columns:    []*schema.Column{VisitsColumns[30]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "visit_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[3]},
			},
			{
				Name:    "visit_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[3], VisitsColumns[30]},
			},
			{
				Name:    "visit_clinic_id_provider_id",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[3], VisitsColumns[4]},
			},
			{
				Name:    "visit_clinic_id_visit_date",
				Unique:  false,
				Columns: []*schema.Column{VisitsColumns[3], VisitsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ClinicsTable,
		ClinicMembersTable,
		InvoicesTable,
		InvoiceItemsTable,
		PatientsTable,
		PaymentsTable,
		PrescriptionsTable,
		RefundsTable,
		UsersTable,
		UserSessionsTable,
		VisitsTable,
	}
)

func init() {
	ClinicMembersTable.ForeignKeys[0].RefTable = ClinicsTable
	ClinicMembersTable.ForeignKeys[1].RefTable = UsersTable
	InvoicesTable.ForeignKeys[0].RefTable = PatientsTable
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	PatientsTable.ForeignKeys[0].RefTable = ClinicsTable
	PaymentsTable.ForeignKeys[0].RefTable = InvoicesTable
	PrescriptionsTable.ForeignKeys[0].RefTable = PatientsTable
	PrescriptionsTable.ForeignKeys[1].RefTable = VisitsTable
	RefundsTable.ForeignKeys[0].RefTable = InvoicesTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
	VisitsTable.ForeignKeys[0].RefTable = PatientsTable
}
