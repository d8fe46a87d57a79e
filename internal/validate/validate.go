package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^0[35789][0-9]{8}$`)

// New builds a validator with the storefront's custom field rules
// registered: password complexity, Vietnamese phone numbers and the
// word cap on free-text fields.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("password", ValidatePassword)
	_ = validate.RegisterValidation("phone_vn", ValidatePhone)
	_ = validate.RegisterValidation("maxwords", ValidateMaxWords)
	return validate
}

// ValidatePassword requires at least six characters with a lowercase
// letter, an uppercase letter, a digit and one of @$!%*?&.
func ValidatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 6 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

func ValidatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func ValidateMaxWords(fl validator.FieldLevel) bool {
	max, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return len(strings.Fields(value)) <= max
}
