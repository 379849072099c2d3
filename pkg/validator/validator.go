package validator

import (
	"regexp"

	"hms-scheduling/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var (
	clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	calDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator with the scheduling domain's custom tags:
// clocktime (HH:MM wall-clock), caldate (YYYY-MM-DD) and dayofweek (English
// weekday name).
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return clockTimePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("caldate", func(fl validator.FieldLevel) bool {
		return calDatePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("dayofweek", func(fl validator.FieldLevel) bool {
		return entity.IsValidDayOfWeek(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "clocktime":
				errors[field] = field + " must be a time in HH:MM format"
			case "caldate":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "dayofweek":
				errors[field] = field + " must be a weekday name (Sunday through Saturday)"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
