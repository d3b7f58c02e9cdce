package patient

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrPhoneTaken       = errors.New("another patient in this clinic uses this phone number")
	ErrEmailTaken       = errors.New("another patient in this clinic uses this email")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidStatus    = errors.New("invalid patient status")
	ErrInvalidGender    = errors.New("invalid gender value")
	ErrHasVisits        = errors.New("patient has recorded visits and cannot be deleted")
	ErrNotDeleted       = errors.New("patient is not deleted")
	ErrMissingName      = errors.New("first and last name are required")
	ErrEncryptionFailed = errors.New("failed to protect insurance policy number")
)
