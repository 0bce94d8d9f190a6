package wizard

import "strings"

// OptionsProvider supplies the department -> role catalog. *options.Catalog
// satisfies it.
type OptionsProvider interface {
	Departments() []string
	RolesFor(department string) []string
	HasDepartment(department string) bool
	HasRole(department, role string) bool
}

// RoleView is the state of the role selector. Enabled is derived, never
// stored: the selector is enabled iff a known department is selected.
type RoleView struct {
	Department string
	Vacancy    string
	Roles      []string
	Enabled    bool
}

// DeriveRoleView computes the role selector for a department/vacancy pair.
// Unknown departments yield an empty, disabled selector. A vacancy that does
// not belong to the department is reset.
func DeriveRoleView(provider OptionsProvider, department, vacancy string) RoleView {
	department = strings.TrimSpace(department)
	view := RoleView{Department: department, Roles: []string{}}
	if provider == nil || department == "" || !provider.HasDepartment(department) {
		return view
	}

	view.Roles = provider.RolesFor(department)
	view.Enabled = true
	if provider.HasRole(department, vacancy) {
		view.Vacancy = vacancy
	}
	return view
}

func (v RoleView) clone() RoleView {
	v.Roles = append([]string{}, v.Roles...)
	return v
}
