package model

import "strings"

// Logical field names shared by validation, the field registry, the wizard
// and the persisted JSON payload.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldLogin           = "login"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "passwordConfirm"
	FieldCompany         = "company"
	FieldDepartment      = "department"
	FieldVacancy         = "vacancy"
)

// UserRecord is the single flat record accumulated across wizard steps.
// PasswordConfirm is write-only and never serialised.
type UserRecord struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Login           string `json:"login"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
	Company         string `json:"company"`
	Department      string `json:"department"`
	Vacancy         string `json:"vacancy"`
}

// Persistable returns a copy of the record with write-only fields dropped.
func (r UserRecord) Persistable() UserRecord {
	r.PasswordConfirm = ""
	return r
}

// FullName joins first and last name the way the summary view shows them.
func (r UserRecord) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Value returns the raw value stored for a logical field name.
func (r UserRecord) Value(field string) (string, bool) {
	switch field {
	case FieldFirstName:
		return r.FirstName, true
	case FieldLastName:
		return r.LastName, true
	case FieldLogin:
		return r.Login, true
	case FieldEmail:
		return r.Email, true
	case FieldPassword:
		return r.Password, true
	case FieldPasswordConfirm:
		return r.PasswordConfirm, true
	case FieldCompany:
		return r.Company, true
	case FieldDepartment:
		return r.Department, true
	case FieldVacancy:
		return r.Vacancy, true
	default:
		return "", false
	}
}

// Values returns the non-secret fields keyed by logical name. It feeds the
// read-only summary views.
func (r UserRecord) Values() map[string]string {
	return map[string]string{
		FieldFirstName:  r.FirstName,
		FieldLastName:   r.LastName,
		FieldLogin:      r.Login,
		FieldEmail:      r.Email,
		FieldCompany:    r.Company,
		FieldDepartment: r.Department,
		FieldVacancy:    r.Vacancy,
	}
}
