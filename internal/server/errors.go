package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

// ErrBadRequest indicates a request body that could not be decoded
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest    *ErrBadRequest
		validation    *types.ValidationError
		fieldErrs     validator.ValidationErrors
		schemaErr     *schemas.ValidationError
		schemaLoad    *schemas.SchemaLoadError
		invalidConf   *scoring.InvalidConfidenceError
		invalidStatus *storage.InvalidStatusError
		notFound      *storage.NotFoundError
		unknownSkill  *scoring.UnknownSkillError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &badRequest),
		errors.As(err, &validation),
		errors.As(err, &fieldErrs),
		errors.As(err, &schemaErr),
		errors.As(err, &schemaLoad),
		errors.As(err, &invalidConf),
		errors.As(err, &invalidStatus):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &unknownSkill):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
