package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrDefaultInvalid = "is invalid"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinValue       = "must be greater than or equal to %s"
	ErrMaxValue       = "must be less than or equal to %s"
	ErrMinItems       = "must contain at least %s item(s)"
	ErrMaxItems       = "must contain at most %s item(s)"
	ErrOneOf          = "must be one of: %s"
	ErrUniqueItems    = "must not contain duplicates"
	ErrSeatID         = "must be a seat like A1 (row letter followed by a column number)"
	ErrShowTime       = "must be a time of day in HH:MM format"
	ErrEmail          = "must be a valid email address"
	ErrPhone          = "must be a phone number in E.164 format"
	ErrPassword       = "must be 8 to 64 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)"
)

var (
	showTimeRgx   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_id", validateSeatID)
	validator.RegisterValidation("show_time", validateShowTime)
	validator.RegisterValidation("password", validatePassword)

	return validator
}

func validateSeatID(fl validator.FieldLevel) bool {
	_, err := domain.ParseSeatID(fl.Field().String())
	return err == nil
}

func validateShowTime(fl validator.FieldLevel) bool {
	return showTimeRgx.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 64 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if":
		return ErrRequired
	case "min":
		if isCollection(err) {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isCollection(err) {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte", "gt":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte", "lt":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "unique":
		return ErrUniqueItems
	case "seat_id":
		return ErrSeatID
	case "show_time":
		return ErrShowTime
	case "email":
		return ErrEmail
	case "e164":
		return ErrPhone
	case "password":
		return ErrPassword
	default:
		return ErrDefaultInvalid
	}
}

func isCollection(err validator.FieldError) bool {
	switch err.Kind().String() {
	case "slice", "array", "map":
		return true
	default:
		return false
	}
}
