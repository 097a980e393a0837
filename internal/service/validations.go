package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const mobileDigits = 10

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// At least 8 characters with upper, lower, digit and a special character
		validate.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
			return isStrongPassword(fl.Field().String())
		})
		// Six digits
		validate.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 6 {
				return false
			}
			for _, char := range value {
				if !unicode.IsDigit(char) {
					return false
				}
			}
			return true
		})
		// Email address or 10-digit mobile number, separators allowed
		validate.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			if strings.Contains(value, "@") {
				return validate.Var(value, "email") == nil
			}
			return len(NormalizeIdentifier(value)) == mobileDigits
		})
	})
}

func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			upper = true
		case unicode.IsLower(char):
			lower = true
		case unicode.IsDigit(char):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// NormalizeIdentifier lower-cases emails and strips everything but digits
// from mobile numbers.
func NormalizeIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier)
	}
	var b strings.Builder
	for _, char := range identifier {
		if char >= '0' && char <= '9' {
			b.WriteRune(char)
		}
	}
	return b.String()
}

// validateStruct runs struct validation and folds field errors into one
// error wrapping ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(fields, "; "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
