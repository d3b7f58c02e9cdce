package visit

import "errors"

var (
	ErrVisitNotFound    = errors.New("visit not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrVisitLocked      = errors.New("visit is locked and cannot be modified")
	ErrVitalsOutOfRange = errors.New("vital signs out of plausible range")
	ErrFollowUpInPast   = errors.New("follow-up date must be in the future")
	ErrMissingProvider  = errors.New("provider is required")
)
