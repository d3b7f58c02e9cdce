package audit

import "errors"

var (
	ErrLogNotFound = errors.New("audit log entry not found")
)
