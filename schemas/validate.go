package schemas

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"foodapi/apperrors"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

var registerOnce sync.Once

// RegisterValidations installs the custom validators on gin's binding
// engine. Called from router setup and from the importer; safe to call
// more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
		// yyyy: 4-digit year form only, used on search criteria.
		_ = v.RegisterValidation("yyyy", func(fl validator.FieldLevel) bool {
			return yearPattern.MatchString(fl.Field().String())
		})
		// researchyear: 4-digit form and within [1900, 2100].
		_ = v.RegisterValidation("researchyear", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if !yearPattern.MatchString(s) {
				return false
			}
			year, err := strconv.Atoi(s)
			if err != nil {
				return false
			}
			return year >= 1900 && year <= 2100
		})
	})
}

// ValidateStruct runs the binding validator outside of an HTTP request.
// The importer uses it so spreadsheet rows obey the same rules as API
// payloads.
func ValidateStruct(obj interface{}) error {
	RegisterValidations()
	return binding.Validator.ValidateStruct(obj)
}

// NewValidationError converts a binding or validator error into the
// ValidationFailed domain error, collecting every field violation under
// details.errors.
func NewValidationError(err error) *apperrors.AppError {
	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok {
		errs := make([]map[string]interface{}, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			errs = append(errs, map[string]interface{}{
				"field":   fe.Field(),
				"message": fieldErrorMessage(fe),
			})
		}
		details := map[string]interface{}{"errors": errs}
		return apperrors.Validation("input validation failed", details, err)
	}
	return apperrors.Validation("request payload is malformed", nil, err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if ve, ok := err.(validator.ValidationErrors); ok {
		*target = ve
		return true
	}
	return false
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "yyyy":
		return "must be a 4-digit year (YYYY)"
	case "researchyear":
		return "must be a 4-digit year between 1900 and 2100"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
