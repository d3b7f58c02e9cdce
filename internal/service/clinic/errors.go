package clinic

import "errors"

var (
	ErrClinicNotFound    = errors.New("clinic not found")
	ErrMemberNotFound    = errors.New("clinic member not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyMember     = errors.New("user is already a member of this clinic")
	ErrInvalidRole       = errors.New("invalid member role")
	ErrLastAdmin         = errors.New("clinic needs at least one active admin")
	ErrMissingName       = errors.New("clinic name is required")
	ErrClinicDeactivated = errors.New("clinic is deactivated")
)
