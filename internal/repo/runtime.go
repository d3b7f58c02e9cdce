// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/clinovahq/clinova_backend/internal/repo/auditlog"
	"github.com/clinovahq/clinova_backend/internal/repo/clinic"
	"github.com/clinovahq/clinova_backend/internal/repo/clinicmember"
	"github.com/clinovahq/clinova_backend/internal/repo/invoice"
	"github.com/clinovahq/clinova_backend/internal/repo/invoiceitem"
	"github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/repo/payment"
	"github.com/clinovahq/clinova_backend/internal/repo/prescription"
	"github.com/clinovahq/clinova_backend/internal/repo/refund"
	"github.com/clinovahq/clinova_backend/internal/repo/user"
	"github.com/clinovahq/clinova_backend/internal/repo/usersession"
	"github.com/clinovahq/clinova_backend/internal/repo/visit"
	"github.com/clinovahq/clinova_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogMixinFields1 := auditlogMixin[1].Fields()
	_ = auditlogMixinFields1
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields1[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[3].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescRequestID is the schema descriptor for request_id field.
	auditlogDescRequestID := auditlogFields[6].Descriptor()
	// auditlog.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	auditlog.RequestIDValidator = auditlogDescRequestID.Validators[0].(func(string) error)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = clinicDescName.Validators[0].(func(string) error)
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[2].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescEmail is the schema descriptor for email field.
	clinicDescEmail := clinicFields[3].Descriptor()
	// clinic.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clinic.EmailValidator = clinicDescEmail.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[4].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	clinicmemberMixin := schema.ClinicMember{}.Mixin()
	clinicmemberMixinFields0 := clinicmemberMixin[0].Fields()
	_ = clinicmemberMixinFields0
	clinicmemberMixinFields1 := clinicmemberMixin[1].Fields()
	_ = clinicmemberMixinFields1
	clinicmemberFields := schema.ClinicMember{}.Fields()
	_ = clinicmemberFields
	// clinicmemberDescCreatedAt is the schema descriptor for created_at field.
	clinicmemberDescCreatedAt := clinicmemberMixinFields1[0].Descriptor()
	// clinicmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicmember.DefaultCreatedAt = clinicmemberDescCreatedAt.Default.(func() time.Time)
	// clinicmemberDescUpdatedAt is the schema descriptor for updated_at field.
	clinicmemberDescUpdatedAt := clinicmemberMixinFields1[1].Descriptor()
	// clinicmember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicmember.DefaultUpdatedAt = clinicmemberDescUpdatedAt.Default.(func() time.Time)
	// clinicmember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicmember.UpdateDefaultUpdatedAt = clinicmemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicmemberDescTitle is the schema descriptor for title field.
	clinicmemberDescTitle := clinicmemberFields[3].Descriptor()
	// clinicmember.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	clinicmember.TitleValidator = clinicmemberDescTitle.Validators[0].(func(string) error)
	// clinicmemberDescLicenseNumber is the schema descriptor for license_number field.
	clinicmemberDescLicenseNumber := clinicmemberFields[4].Descriptor()
	// clinicmember.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	clinicmember.LicenseNumberValidator = clinicmemberDescLicenseNumber.Validators[0].(func(string) error)
	// clinicmemberDescIsActive is the schema descriptor for is_active field.
	clinicmemberDescIsActive := clinicmemberFields[5].Descriptor()
	// clinicmember.DefaultIsActive holds the default value on creation for the is_active field.
	clinicmember.DefaultIsActive = clinicmemberDescIsActive.Default.(bool)
	// clinicmemberDescID is the schema descriptor for id field.
	clinicmemberDescID := clinicmemberMixinFields0[0].Descriptor()
	// clinicmember.DefaultID holds the default value on creation for the id field.
	clinicmember.DefaultID = clinicmemberDescID.Default.(func() uuid.UUID)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceMixinFields1 := invoiceMixin[1].Fields()
	_ = invoiceMixinFields1
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields1[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields1[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescNumber is the schema descriptor for number field.
	invoiceDescNumber := invoiceFields[3].Descriptor()
	// invoice.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	invoice.NumberValidator = invoiceDescNumber.Validators[0].(func(string) error)
	// invoiceDescDiscountAmount is the schema descriptor for discount_amount field.
	invoiceDescDiscountAmount := invoiceFields[5].Descriptor()
	// invoice.DefaultDiscountAmount holds the default value on creation for the discount_amount field.
	invoice.DefaultDiscountAmount = invoiceDescDiscountAmount.Default.(int64)
	// invoiceDescDiscountPercent is the schema descriptor for discount_percent field.
	invoiceDescDiscountPercent := invoiceFields[6].Descriptor()
	// invoice.DefaultDiscountPercent holds the default value on creation for the discount_percent field.
	invoice.DefaultDiscountPercent = invoiceDescDiscountPercent.Default.(float64)
	// invoiceDescTaxRate is the schema descriptor for tax_rate field.
	invoiceDescTaxRate := invoiceFields[8].Descriptor()
	// invoice.DefaultTaxRate holds the default value on creation for the tax_rate field.
	invoice.DefaultTaxRate = invoiceDescTaxRate.Default.(float64)
	// invoiceDescDiscount is the schema descriptor for discount field.
	invoiceDescDiscount := invoiceFields[9].Descriptor()
	// invoice.DefaultDiscount holds the default value on creation for the discount field.
	invoice.DefaultDiscount = invoiceDescDiscount.Default.(int64)
	// invoiceDescTaxAmount is the schema descriptor for tax_amount field.
	invoiceDescTaxAmount := invoiceFields[10].Descriptor()
	// invoice.DefaultTaxAmount holds the default value on creation for the tax_amount field.
	invoice.DefaultTaxAmount = invoiceDescTaxAmount.Default.(int64)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemMixin := schema.InvoiceItem{}.Mixin()
	invoiceitemMixinFields0 := invoiceitemMixin[0].Fields()
	_ = invoiceitemMixinFields0
	invoiceitemMixinFields1 := invoiceitemMixin[1].Fields()
	_ = invoiceitemMixinFields1
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescCreatedAt is the schema descriptor for created_at field.
	invoiceitemDescCreatedAt := invoiceitemMixinFields1[0].Descriptor()
	// invoiceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceitem.DefaultCreatedAt = invoiceitemDescCreatedAt.Default.(func() time.Time)
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[1].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescPosition is the schema descriptor for position field.
	invoiceitemDescPosition := invoiceitemFields[5].Descriptor()
	// invoiceitem.DefaultPosition holds the default value on creation for the position field.
	invoiceitem.DefaultPosition = invoiceitemDescPosition.Default.(int)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemMixinFields0[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescCode is the schema descriptor for code field.
	patientDescCode := patientFields[1].Descriptor()
	// patient.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	patient.CodeValidator = patientDescCode.Validators[0].(func(string) error)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[2].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[3].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[6].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[7].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescEmergencyContactName is the schema descriptor for emergency_contact_name field.
	patientDescEmergencyContactName := patientFields[9].Descriptor()
	// patient.EmergencyContactNameValidator is a validator for the "emergency_contact_name" field. It is called by the builders before save.
	patient.EmergencyContactNameValidator = patientDescEmergencyContactName.Validators[0].(func(string) error)
	// patientDescEmergencyContactPhone is the schema descriptor for emergency_contact_phone field.
	patientDescEmergencyContactPhone := patientFields[10].Descriptor()
	// patient.EmergencyContactPhoneValidator is a validator for the "emergency_contact_phone" field. It is called by the builders before save.
	patient.EmergencyContactPhoneValidator = patientDescEmergencyContactPhone.Validators[0].(func(string) error)
	// patientDescEmergencyContactRelation is the schema descriptor for emergency_contact_relation field.
	patientDescEmergencyContactRelation := patientFields[11].Descriptor()
	// patient.EmergencyContactRelationValidator is a validator for the "emergency_contact_relation" field. It is called by the builders before save.
	patient.EmergencyContactRelationValidator = patientDescEmergencyContactRelation.Validators[0].(func(string) error)
	// patientDescBloodType is the schema descriptor for blood_type field.
	patientDescBloodType := patientFields[12].Descriptor()
	// patient.BloodTypeValidator is a validator for the "blood_type" field. It is called by the builders before save.
	patient.BloodTypeValidator = patientDescBloodType.Validators[0].(func(string) error)
	// patientDescInsuranceProvider is the schema descriptor for insurance_provider field.
	patientDescInsuranceProvider := patientFields[17].Descriptor()
	// patient.InsuranceProviderValidator is a validator for the "insurance_provider" field. It is called by the builders before save.
	patient.InsuranceProviderValidator = patientDescInsuranceProvider.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescReceiptNo is the schema descriptor for receipt_no field.
	paymentDescReceiptNo := paymentFields[3].Descriptor()
	// payment.ReceiptNoValidator is a validator for the "receipt_no" field. It is called by the builders before save.
	payment.ReceiptNoValidator = paymentDescReceiptNo.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescMedicationName is the schema descriptor for medication_name field.
	prescriptionDescMedicationName := prescriptionFields[4].Descriptor()
	// prescription.MedicationNameValidator is a validator for the "medication_name" field. It is called by the builders before save.
	prescription.MedicationNameValidator = prescriptionDescMedicationName.Validators[0].(func(string) error)
	// prescriptionDescGenericName is the schema descriptor for generic_name field.
	prescriptionDescGenericName := prescriptionFields[5].Descriptor()
	// prescription.GenericNameValidator is a validator for the "generic_name" field. It is called by the builders before save.
	prescription.GenericNameValidator = prescriptionDescGenericName.Validators[0].(func(string) error)
	// prescriptionDescBrandName is the schema descriptor for brand_name field.
	prescriptionDescBrandName := prescriptionFields[6].Descriptor()
	// prescription.BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	prescription.BrandNameValidator = prescriptionDescBrandName.Validators[0].(func(string) error)
	// prescriptionDescDosage is the schema descriptor for dosage field.
	prescriptionDescDosage := prescriptionFields[7].Descriptor()
	// prescription.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	prescription.DosageValidator = prescriptionDescDosage.Validators[0].(func(string) error)
	// prescriptionDescFrequency is the schema descriptor for frequency field.
	prescriptionDescFrequency := prescriptionFields[8].Descriptor()
	// prescription.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	prescription.FrequencyValidator = prescriptionDescFrequency.Validators[0].(func(string) error)
	// prescriptionDescRoute is the schema descriptor for route field.
	prescriptionDescRoute := prescriptionFields[9].Descriptor()
	// prescription.RouteValidator is a validator for the "route" field. It is called by the builders before save.
	prescription.RouteValidator = prescriptionDescRoute.Validators[0].(func(string) error)
	// prescriptionDescDuration is the schema descriptor for duration field.
	prescriptionDescDuration := prescriptionFields[10].Descriptor()
	// prescription.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	prescription.DurationValidator = prescriptionDescDuration.Validators[0].(func(string) error)
	// prescriptionDescRefills is the schema descriptor for refills field.
	prescriptionDescRefills := prescriptionFields[12].Descriptor()
	// prescription.DefaultRefills holds the default value on creation for the refills field.
	prescription.DefaultRefills = prescriptionDescRefills.Default.(int)
	// prescription.RefillsValidator is a validator for the "refills" field. It is called by the builders before save.
	prescription.RefillsValidator = func() func(int) error {
		validators := prescriptionDescRefills.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(refills int) error {
			for _, fn := range fns {
				if err := fn(refills); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	refundMixin := schema.Refund{}.Mixin()
	refundMixinFields0 := refundMixin[0].Fields()
	_ = refundMixinFields0
	refundMixinFields1 := refundMixin[1].Fields()
	_ = refundMixinFields1
	refundFields := schema.Refund{}.Fields()
	_ = refundFields
	// refundDescCreatedAt is the schema descriptor for created_at field.
	refundDescCreatedAt := refundMixinFields1[0].Descriptor()
	// refund.DefaultCreatedAt holds the default value on creation for the created_at field.
	refund.DefaultCreatedAt = refundDescCreatedAt.Default.(func() time.Time)
	// refundDescID is the schema descriptor for id field.
	refundDescID := refundMixinFields0[0].Descriptor()
	// refund.DefaultID holds the default value on creation for the id field.
	refund.DefaultID = refundDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[5].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[7].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = usersessionDescSessionID.Validators[0].(func(string) error)
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
	visitMixin := schema.Visit{}.Mixin()
	visitMixinFields0 := visitMixin[0].Fields()
	_ = visitMixinFields0
	visitMixinFields1 := visitMixin[1].Fields()
	_ = visitMixinFields1
	visitFields := schema.Visit{}.Fields()
	_ = visitFields
	// visitDescCreatedAt is the schema descriptor for created_at field.
	visitDescCreatedAt := visitMixinFields1[0].Descriptor()
	// visit.DefaultCreatedAt holds the default value on creation for the created_at field.
	visit.DefaultCreatedAt = visitDescCreatedAt.Default.(func() time.Time)
	// visitDescUpdatedAt is the schema descriptor for updated_at field.
	visitDescUpdatedAt := visitMixinFields1[1].Descriptor()
	// visit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visit.DefaultUpdatedAt = visitDescUpdatedAt.Default.(func() time.Time)
	// visit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visit.UpdateDefaultUpdatedAt = visitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// visitDescVisitType is the schema descriptor for visit_type field.
	visitDescVisitType := visitFields[3].Descriptor()
	// visit.DefaultVisitType holds the default value on creation for the visit_type field.
	visit.DefaultVisitType = visitDescVisitType.Default.(string)
	// visit.VisitTypeValidator is a validator for the "visit_type" field. It is called by the builders before save.
	visit.VisitTypeValidator = visitDescVisitType.Validators[0].(func(string) error)
	// visitDescPrimaryDiagnosis is the schema descriptor for primary_diagnosis field.
	visitDescPrimaryDiagnosis := visitFields[19].Descriptor()
	// visit.PrimaryDiagnosisValidator is a validator for the "primary_diagnosis" field. It is called by the builders before save.
	visit.PrimaryDiagnosisValidator = visitDescPrimaryDiagnosis.Validators[0].(func(string) error)
	// visitDescLocked is the schema descriptor for locked field.
	visitDescLocked := visitFields[25].Descriptor()
	// visit.DefaultLocked holds the default value on creation for the locked field.
	visit.DefaultLocked = visitDescLocked.Default.(bool)
	// visitDescID is the schema descriptor for id field.
	visitDescID := visitMixinFields0[0].Descriptor()
	// visit.DefaultID holds the default value on creation for the id field.
	visit.DefaultID = visitDescID.Default.(func() uuid.UUID)
}
