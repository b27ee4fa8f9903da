package httperr

import (
	"errors"
	"net/http"

	"offers-service/internal/domain/offer"
	"offers-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Entry is one reported failure reason.
type Entry struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

// Envelope is the only error shape that leaves the service. It is built once,
// here, from the closed set of domain failures; raw internal errors are never
// serialized.
type Envelope struct {
	StatusCode int     `json:"statusCode"`
	Errors     []Entry `json:"errors"`
}

const (
	categoryNotFound   = "No data found"
	categoryValidation = "Validation Error"
	categoryInternal   = "Internal Error"
)

// StatusCoder lets an unclassified failure carry its own transport status.
type StatusCoder interface {
	StatusCode() int
}

// FromError maps any failure onto the envelope: validation carries one entry
// per violation, not-found carries the lookup detail, everything else is a
// server error unless the error brought its own status code.
func FromError(err error) Envelope {
	var verr *offer.ValidationError
	if errors.As(err, &verr) {
		entries := make([]Entry, len(verr.Violations))
		for i, v := range verr.Violations {
			entries[i] = Entry{Error: categoryValidation, ErrorMessage: v.Field + " " + v.Reason}
		}
		return Envelope{StatusCode: http.StatusBadRequest, Errors: entries}
	}

	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return Envelope{
			StatusCode: http.StatusNotFound,
			Errors:     []Entry{{Error: categoryNotFound, ErrorMessage: nf.Detail}},
		}
	}

	status := http.StatusInternalServerError
	var sc StatusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return Envelope{
		StatusCode: status,
		Errors:     []Entry{{Error: categoryInternal, ErrorMessage: "internal server error"}},
	}
}

// Abort records the original error for the middleware chain and writes the
// envelope. Preserves the raw error on the context for future monitoring.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	env := FromError(err)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: env,
	})
	c.AbortWithStatusJSON(env.StatusCode, env)
}
