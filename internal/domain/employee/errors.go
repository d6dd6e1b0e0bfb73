package employee

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSelfDelete     = errors.New("cannot delete the signed-in employee")
	ErrNotFound       = errors.New("employee not found")
)
