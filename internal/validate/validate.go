package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldError is one failed check, surfaced back to the originating form.
type FieldError struct {
	Field   string
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// NANP format: optional +1/1 country code, 3-digit area code that
	// cannot start with 0 or 1, 3-digit exchange that cannot start with
	// 0 or 1, 4-digit line number, optional extension. Separators may
	// be spaces, dots, dashes or parentheses.
	mobilePattern = regexp.MustCompile(`[+]?1?\W*([2-9][0-8][0-9])\W*([2-9][0-9]{2})\W*([0-9]{4})(\se?x?t?(\d*))?`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Mobile reports whether s is an acceptable North American phone number.
func Mobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// Registration holds the raw form fields of a registration attempt.
type Registration struct {
	Name            string
	Address         string
	Mobile          string
	Email           string
	Password        string
	PasswordConfirm string
}

// Check returns one error per failed rule, in form-field order.
func (r Registration) Check() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{"name", "Must have a Restaurant Name"})
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, FieldError{"address", "Must have an address"})
	}
	if strings.TrimSpace(r.Mobile) == "" {
		errs = append(errs, FieldError{"mobile", "Must have a telephone number"})
	} else if !Mobile(r.Mobile) {
		errs = append(errs, FieldError{"mobile", "Canadian telephone number required."})
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, FieldError{"email", "The email field cannot be empty"})
	} else if !Email(r.Email) {
		errs = append(errs, FieldError{"email", "Must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, FieldError{"password", "Your password should be at least 8 characters long"})
	}
	if r.Password != r.PasswordConfirm {
		errs = append(errs, FieldError{"password", "Password should be the same as confirm password"})
	}
	return errs
}

// Login holds the raw form fields of a login attempt.
type Login struct {
	Email    string
	Password string
}

func (l Login) Check() []FieldError {
	var errs []FieldError
	if !Email(l.Email) {
		errs = append(errs, FieldError{"email", "Please provide valid registered email"})
	}
	if len(l.Password) < 8 {
		errs = append(errs, FieldError{"password", "Please provide valid password"})
	}
	return errs
}

// Item holds the raw form fields of an add-item attempt. Price and
// availability arrive as strings and are validated before conversion.
type Item struct {
	Name        string
	Price       string
	IsAvailable string
}

func (i Item) Check() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, FieldError{"name", "Must have a Item Name"})
	}
	if strings.TrimSpace(i.Price) == "" {
		errs = append(errs, FieldError{"price", "Please provide valid price"})
	} else if p, err := strconv.ParseFloat(i.Price, 64); err != nil || p < 0 {
		errs = append(errs, FieldError{"price", "Please provide valid Price in numbers"})
	}
	if i.IsAvailable != "true" && i.IsAvailable != "false" {
		errs = append(errs, FieldError{"isAvailable", "Please provide valid availability status (Available, Not Available)"})
	}
	return errs
}
