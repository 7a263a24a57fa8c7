// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers Stellar-specific rules:
//
//   - stellar_seed:     an ed25519 secret seed ("S...")
//   - stellar_account:  an ed25519 account address ("G...")
//   - stellar_contract: a contract address ("C...")
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stellar/go/strkey"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'ContractID': value 'abc' does not meet the requirements for the 'stellar_contract' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// strkeyRule returns a field-level validation func accepting strings that
// decode under the given strkey version byte.
func strkeyRule(version strkey.VersionByte) gvalidator.Func {
	return func(fl gvalidator.FieldLevel) bool {
		_, err := strkey.Decode(version, fl.Field().String())
		return err == nil
	}
}

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	_ = validator.RegisterValidation("stellar_seed", strkeyRule(strkey.VersionByteSeed))
	_ = validator.RegisterValidation("stellar_account", strkeyRule(strkey.VersionByteAccountID))
	_ = validator.RegisterValidation("stellar_contract", strkeyRule(strkey.VersionByteContract))
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// Secret values are never echoed: fields tagged stellar_seed are reported without their value.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		value := validationErr.Value()
		if validationErr.Tag() == "stellar_seed" {
			value = "<redacted>"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, validationErr.Field(), value, validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
