package cssplay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	propertyNamePattern = regexp.MustCompile(`^--css-[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Validator returns the shared validator with the playground rules
// registered. Other packages validate their own structs with it so the
// custom tags stay available everywhere.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_property", func(fl validator.FieldLevel) bool {
			return propertyNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ValidateVariable checks a variable definition before it enters a list.
// Values are not inspected.
func ValidateVariable(v StyleVariable) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("invalid variable %q: %s", v.Name, describeValidation(err))
	}
	if v.Kind != KindNumeric && (v.Unit != "" || v.Range != nil) {
		return fmt.Errorf("invalid variable %q: unit and range apply to %s variables only", v.Name, KindNumeric)
	}
	return nil
}

// describeValidation flattens validator errors into one readable line.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
