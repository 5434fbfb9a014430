package actions

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	// The legacy contract wants at least ten digits somewhere in the phone
	// value, ignoring separators.
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		return digits >= 10
	})
	return v
}

// checkInput validates a tagged input struct and converts the first failure
// into a normalized validation error naming the offending field.
func checkInput(input any) *pkgerrors.Error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return pkgerrors.New(pkgerrors.KindValidation, fmt.Sprintf("%s %s", fe.Field(), validationMessage(fe)))
	}
	return pkgerrors.Wrap(pkgerrors.KindValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	case "phone10":
		return "must contain at least 10 digits"
	}
	return "is invalid"
}
