package domain

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrUnknownKind   = errors.New("unknown staff kind")
	ErrNotManager    = errors.New("staff member is not a manager")
	ErrNotEngineer   = errors.New("staff member is not an engineer")
	ErrNoPremium     = errors.New("staff member is not eligible for a premium")
)
