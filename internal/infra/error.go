package infra

import (
	"offers-service/internal/pkg/errs"
)

// RepositoryError wraps low-level store failures so upper layers can treat
// them uniformly; the boundary maps anything of this shape to a server error.
type RepositoryError struct {
	msg string
	err error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{msg: msg, err: err}
}
