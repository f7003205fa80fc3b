package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once

	httpURLPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("department", validateDepartment)
	_ = v.RegisterValidation("tool_status", validateToolStatus)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("non_negative", validateNonNegative)
	_ = v.RegisterValidation("http_url", validateHTTPURL)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateDepartment(fl validator.FieldLevel) bool {
	return models.Department(fl.Field().String()).IsValid()
}

func validateToolStatus(fl validator.FieldLevel) bool {
	return models.ToolStatus(fl.Field().String()).IsValid()
}

// validateMoney accepts non-negative decimals with at most two fractional digits
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && money.HasMaxScale(d, money.ScaleMoney)
}

// validateNonNegative accepts any decimal >= 0 regardless of scale
func validateNonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	return httpURLPattern.MatchString(fl.Field().String())
}

// FormatErrors converts validator errors into a field → message map.
// It returns nil when err is not a validator.ValidationErrors.
func FormatErrors(err error) map[string]string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "department":
		return "must be one of: Engineering, Sales, Marketing, HR, Finance, Operations, Design"
	case "tool_status":
		return "must be one of: active, deprecated, trial"
	case "money":
		return "must be a non-negative amount with at most 2 decimal places"
	case "non_negative":
		return "must be a non-negative number"
	case "http_url":
		return "must be a valid http(s) URL"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
