package validation

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

var (
	lettersPattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]+$`)
	emailPattern   = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

// passwordSymbols lists the accepted special characters for strong passwords.
const passwordSymbols = "!@#$%^&*~"

// Rule inspects a raw value and reports the kind it violates, if any.
type Rule func(value string) (Kind, bool)

// Required fails on empty or whitespace-only values.
func Required(value string) (Kind, bool) {
	if strings.TrimSpace(value) == "" {
		return KindRequired, true
	}
	return "", false
}

// LettersOnly fails unless the value consists solely of Latin or Cyrillic
// letters.
func LettersOnly(value string) (Kind, bool) {
	if !lettersPattern.MatchString(value) {
		return KindLettersOnly, true
	}
	return "", false
}

// Email fails unless the value has a local@domain shape.
func Email(value string) (Kind, bool) {
	if !emailPattern.MatchString(value) {
		return KindInvalidEmail, true
	}
	return "", false
}

// StrongPassword fails unless the value contains a lowercase letter, an
// uppercase letter, a digit and one of !@#$%^&*~, in any order.
func StrongPassword(value string) (Kind, bool) {
	var lower, upper, digit, symbol bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if lower && upper && digit && symbol {
		return "", false
	}
	return KindWeakPassword, true
}

// fieldRules is the single-field rule set. Rules run in order and the first
// failure wins so each field reports at most one error.
var fieldRules = map[string][]Rule{
	model.FieldFirstName:  {Required, LettersOnly},
	model.FieldLastName:   {Required, LettersOnly},
	model.FieldLogin:      {Required},
	model.FieldEmail:      {Required, Email},
	model.FieldPassword:   {Required, StrongPassword},
	model.FieldDepartment: {Required},
	model.FieldVacancy:    {Required},
}

// Check runs the rule set registered for field against value. Fields without
// rules (company, passwordConfirm) always pass; the confirmation is compared
// against the password by ValidateIdentity.
func Check(field, value string) (Kind, bool) {
	for _, rule := range fieldRules[field] {
		if kind, failed := rule(value); failed {
			return kind, true
		}
	}
	return "", false
}
