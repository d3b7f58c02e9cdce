package prescription

import "errors"

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrVisitNotFound        = errors.New("visit not found")
	ErrVisitLocked          = errors.New("visit is locked")
	ErrNotActive            = errors.New("prescription is not active")
	ErrMissingReason        = errors.New("discontinue reason is required")
	ErrMissingFields        = errors.New("medication name, dosage, frequency, route and duration are required")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidRefills       = errors.New("refills must be between 0 and 12")
	ErrInvalidStatus        = errors.New("invalid prescription status")
)
