// Package validator implements the client-side checks that block a form
// submission before it ever reaches the store.
package validator

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var nonDigits = regexp.MustCompile(`\D`)

// SignUpForm carries the raw sign-up input.
type SignUpForm struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignInForm carries the raw sign-in input.
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateSignUp checks presence and format of every sign-up field. The
// returned error is a validation.Errors map keyed by field name.
func ValidateSignUp(f *SignUpForm) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&f.Phone,
			validation.Required.Error("phone number is required"),
			validation.By(phoneRule),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("enter a valid email address"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 0).Error("password must be at least 6 characters"),
		),
		validation.Field(&f.ConfirmPassword,
			validation.Required.Error("password confirmation is required"),
		),
	)
	if err != nil {
		return err
	}

	if f.ConfirmPassword != f.Password {
		return validation.Errors{
			"confirm_password": validation.NewError("password_mismatch", "passwords do not match"),
		}
	}
	return nil
}

// ValidateSignIn only checks presence; credential checking is the auth
// service's job.
func ValidateSignIn(f *SignInForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password is required"),
		),
	)
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	digits := nonDigits.ReplaceAllString(s, "")
	if len(digits) != 11 || !strings.HasPrefix(digits, "010") {
		return validation.NewError("invalid_phone", "enter a valid phone number")
	}
	return nil
}

// FormatPhone normalizes an 11-digit mobile number to 010-0000-0000 form.
// Anything else passes through unchanged.
func FormatPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "010") {
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	}
	return phone
}
