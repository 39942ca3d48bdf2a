package clitree

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// A token is a single command-line word that cannot be mistaken for a flag.
	if err := v.RegisterValidation("token", isToken); err != nil {
		panic(fmt.Sprintf("internal error: register token validation: %v", err))
	}
	return v
}

func isToken(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && !strings.HasPrefix(s, "-") && !strings.ContainsFunc(s, unicode.IsSpace)
}

func validateName(kind, name string) error {
	if err := validate.Var(name, "required,token"); err != nil {
		return newCommandError(ErrInvalidArgument, nil, fmt.Errorf("invalid %s name %q: %s", kind, name, describeViolation(err)))
	}
	return nil
}

func validateShort(f *Flag) error {
	if f.short == 0 {
		return nil
	}
	if err := validate.Var(string(f.short), "token,printascii"); err != nil {
		return newCommandError(ErrInvalidArgument, nil, fmt.Errorf("invalid short form %q for flag %q: %s", f.short, f.name, describeViolation(err)))
	}
	return nil
}

// validateReachable rejects flags the help short-circuit would always shadow.
func validateReachable(f *Flag) error {
	if isHelpToken("--"+f.name) {
		return newCommandError(ErrInvalidArgument, nil, fmt.Errorf("flag name %q is reserved for help", f.name))
	}
	if f.short != 0 && isHelpToken("-"+string(f.short)) {
		return newCommandError(ErrInvalidArgument, nil, fmt.Errorf("short form %q for flag %q is reserved for help", f.short, f.name))
	}
	return nil
}

func describeViolation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	switch verrs[0].Tag() {
	case "required":
		return "must not be empty"
	case "token":
		return "must be a single word and must not start with '-'"
	case "printascii":
		return "must be printable ASCII"
	default:
		return "failed " + verrs[0].Tag() + " validation"
	}
}
