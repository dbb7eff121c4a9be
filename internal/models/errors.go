package models

import (
	"errors"
	"fmt"
)

// ErrRequiredField is returned by payload validation when a required field is missing.
var ErrRequiredField = errors.New("required field missing")

func requiredError(field string) error {
	return fmt.Errorf("%w: %s", ErrRequiredField, field)
}
