package validation

import "github.com/goliatone/go-formwizard/pkg/model"

// IdentityInput carries the raw values submitted on the personal data step.
type IdentityInput struct {
	FirstName       string
	LastName        string
	Login           string
	Email           string
	Password        string
	PasswordConfirm string
	Company         string
}

// IdentityFromRecord seeds an identity form from a stored record. The
// confirmation is filled with the password so a re-submit stays clean.
func IdentityFromRecord(record model.UserRecord) IdentityInput {
	return IdentityInput{
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		Login:           record.Login,
		Email:           record.Email,
		Password:        record.Password,
		PasswordConfirm: record.Password,
		Company:         record.Company,
	}
}

// Apply merges the identity values into record, dropping the confirmation.
func (in IdentityInput) Apply(record *model.UserRecord) {
	if record == nil {
		return
	}
	record.FirstName = in.FirstName
	record.LastName = in.LastName
	record.Login = in.Login
	record.Email = in.Email
	record.Password = in.Password
	record.PasswordConfirm = ""
	record.Company = in.Company
}

// RoleInput carries the department/vacancy selection.
type RoleInput struct {
	Department string
	Vacancy    string
}

// Apply merges the role selection into record.
func (in RoleInput) Apply(record *model.UserRecord) {
	if record == nil {
		return
	}
	record.Department = in.Department
	record.Vacancy = in.Vacancy
}

// Catalog is the subset of the options provider needed to check that a role
// selection belongs to the configured department list.
type Catalog interface {
	HasDepartment(department string) bool
	HasRole(department, role string) bool
}

// ValidateIdentity checks the personal data step. Every failing field yields
// exactly one error and all errors are returned together. The confirmation is
// compared only once the password itself is present and strong.
func ValidateIdentity(in IdentityInput) Errors {
	var errs Errors

	fields := []struct {
		name  string
		value string
	}{
		{model.FieldFirstName, in.FirstName},
		{model.FieldLastName, in.LastName},
		{model.FieldLogin, in.Login},
		{model.FieldEmail, in.Email},
		{model.FieldPassword, in.Password},
	}
	for _, f := range fields {
		if kind, failed := Check(f.name, f.value); failed {
			errs = append(errs, FieldError{Field: f.name, Kind: kind})
		}
	}

	if _, failed := errs.For(model.FieldPassword); !failed && in.Password != in.PasswordConfirm {
		errs = append(errs, FieldError{Field: model.FieldPasswordConfirm, Kind: KindPasswordMismatch})
	}

	return errs
}

// ValidateRole checks that both department and vacancy were chosen.
func ValidateRole(in RoleInput) Errors {
	var errs Errors
	if kind, failed := Check(model.FieldDepartment, in.Department); failed {
		errs = append(errs, FieldError{Field: model.FieldDepartment, Kind: kind})
	}
	if kind, failed := Check(model.FieldVacancy, in.Vacancy); failed {
		errs = append(errs, FieldError{Field: model.FieldVacancy, Kind: kind})
	}
	return errs
}

// ValidateRoleCatalog runs ValidateRole and then checks present values
// against the catalog: the department must be known and the vacancy must be
// listed for it.
func ValidateRoleCatalog(in RoleInput, catalog Catalog) Errors {
	errs := ValidateRole(in)
	if catalog == nil {
		return errs
	}

	_, departmentFailed := errs.For(model.FieldDepartment)
	if !departmentFailed && !catalog.HasDepartment(in.Department) {
		errs = append(errs, FieldError{Field: model.FieldDepartment, Kind: KindUnknownOption})
		departmentFailed = true
	}

	_, vacancyFailed := errs.For(model.FieldVacancy)
	if !departmentFailed && !vacancyFailed && !catalog.HasRole(in.Department, in.Vacancy) {
		errs = append(errs, FieldError{Field: model.FieldVacancy, Kind: KindUnknownOption})
	}
	return errs
}
