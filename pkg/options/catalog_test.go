package options

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalog_Departments(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Sales", "Marketing", "Technology"}
	if diff := cmp.Diff(want, catalog.Departments()); diff != "" {
		t.Fatalf("departments mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultCatalog_RolesFor(t *testing.T) {
	catalog := MustDefault()

	cases := map[string][]string{
		"Sales":      {"Sales Manager", "Account Manager"},
		"Marketing":  {"Creative Manager", "Marketing Coordinator", "Content Writer"},
		"Technology": {"Project Manager", "Software Developer", "PHP programmer", "Front End", "Quality Assurance"},
	}
	for dep, want := range cases {
		if diff := cmp.Diff(want, catalog.RolesFor(dep)); diff != "" {
			t.Fatalf("roles for %s mismatch (-want +got):\n%s", dep, diff)
		}
	}

	if got := catalog.RolesFor("Legal"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list for unknown department, got %#v", got)
	}
	if got := catalog.RolesFor(""); len(got) != 0 {
		t.Fatalf("expected empty list for blank department, got %#v", got)
	}
}

func TestRolesForReturnsCopy(t *testing.T) {
	catalog := MustDefault()
	roles := catalog.RolesFor("Sales")
	roles[0] = "mutated"

	if catalog.RolesFor("Sales")[0] != "Sales Manager" {
		t.Fatalf("catalog must be immutable through returned slices")
	}
}

func TestLoadCatalog_TrimsAndDedupesRoles(t *testing.T) {
	catalog, err := LoadCatalog(strings.NewReader(`
departments:
  - name: " Ops "
    roles: ["SRE", "", "SRE", " DBA "]
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"SRE", "DBA"}, catalog.RolesFor("Ops")); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
	if !catalog.HasRole("Ops", "DBA") || catalog.HasRole("Ops", "QA") {
		t.Fatalf("HasRole mismatch")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":     `departments: []`,
		"blank":     "departments:\n  - name: \"\"\n",
		"duplicate": "departments:\n  - name: A\n  - name: A\n",
		"malformed": "departments: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := LoadCatalog(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestRoleOptions_MapsValueAndLabel(t *testing.T) {
	opts := MustDefault().RoleOptions("Sales")
	want := []Option{
		{Value: "Sales Manager", Label: "Sales Manager"},
		{Value: "Account Manager", Label: "Account Manager"},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if len(MustDefault().DepartmentOptions()) != 3 {
		t.Fatalf("expected three department options")
	}
}
