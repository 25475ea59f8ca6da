//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by the request types; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ValidationError reports a request field that passed struct validation but is still unusable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}
