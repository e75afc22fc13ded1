package domain

import "fmt"

// NotFoundError represents a missing resource. An inactive user is reported
// as missing as well.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s id:%d not found", e.Resource, e.ID)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ConflictError represents a uniqueness violation: a taken name, a taken
// email, or an association pair that already exists.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Detail)
}

func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

var ErrConflict = ConflictError{}

// InvalidReferenceError names the side of an association whose id does not
// resolve to an existing row.
type InvalidReferenceError struct {
	Resource string
	ID       int64
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s id:%d does not exist", e.Resource, e.ID)
}

func (e InvalidReferenceError) Is(target error) bool {
	_, ok := target.(InvalidReferenceError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidReferenceError)
	return ok
}

var ErrInvalidReference = InvalidReferenceError{}

// MissingFieldError names the first required field absent from a request
// body.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s, required", e.Field)
}

func (e MissingFieldError) Is(target error) bool {
	_, ok := target.(MissingFieldError)
	if ok {
		return true
	}
	_, ok = target.(*MissingFieldError)
	return ok
}

var ErrMissingField = MissingFieldError{}
