package errs

import "errors"

// NotFoundError signals that a required lookup returned nothing. It is raised
// the moment the lookup comes back empty, before any dependent work runs, and
// is mapped to 404 once at the HTTP boundary.
type NotFoundError struct {
	Detail string
}

func NotFound(detail string) error {
	return &NotFoundError{Detail: detail}
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
