package options

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/departments.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/departments.yaml"

// Placeholder labels shown as the empty entry of each select.
const (
	DepartmentPlaceholder = "Department"
	VacancyPlaceholder    = "Vacancy"
)

// Department groups the ordered vacancy list offered for one department.
type Department struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}

type catalogFile struct {
	Departments []Department `yaml:"departments"`
}

// Option is a select entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is an immutable, ordered department -> roles mapping.
type Catalog struct {
	departments []Department
	index       map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the embedded catalog (Sales, Marketing, Technology).
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCatalogPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultCatalog, defaultErr = LoadCatalog(f)
	})
	return defaultCatalog, defaultErr
}

// MustDefault panics when the embedded catalog cannot be parsed.
func MustDefault() *Catalog {
	catalog, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// LoadCatalog parses a YAML catalog document. Department names must be
// non-empty and unique; blank and duplicate roles are dropped.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("options: missing reader")
	}

	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("options: decode catalog: %w", err)
	}
	return NewCatalog(file.Departments...)
}

// NewCatalog builds a catalog from departments in the given order.
func NewCatalog(departments ...Department) (*Catalog, error) {
	if len(departments) == 0 {
		return nil, fmt.Errorf("options: catalog has no departments")
	}

	catalog := &Catalog{
		departments: make([]Department, 0, len(departments)),
		index:       make(map[string]int, len(departments)),
	}
	for _, dep := range departments {
		name := strings.TrimSpace(dep.Name)
		if name == "" {
			return nil, fmt.Errorf("options: department name is required")
		}
		if _, exists := catalog.index[name]; exists {
			return nil, fmt.Errorf("options: duplicate department %q", name)
		}

		roles := make([]string, 0, len(dep.Roles))
		seen := make(map[string]struct{}, len(dep.Roles))
		for _, role := range dep.Roles {
			role = strings.TrimSpace(role)
			if role == "" {
				continue
			}
			if _, ok := seen[role]; ok {
				continue
			}
			seen[role] = struct{}{}
			roles = append(roles, role)
		}

		catalog.index[name] = len(catalog.departments)
		catalog.departments = append(catalog.departments, Department{Name: name, Roles: roles})
	}
	return catalog, nil
}

// Departments returns the department names in catalog order.
func (c *Catalog) Departments() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.departments))
	for _, dep := range c.departments {
		out = append(out, dep.Name)
	}
	return out
}

// RolesFor returns the roles of department, or an empty list when the
// department is unknown.
func (c *Catalog) RolesFor(department string) []string {
	if c == nil {
		return []string{}
	}
	idx, ok := c.index[department]
	if !ok {
		return []string{}
	}
	return append([]string{}, c.departments[idx].Roles...)
}

// HasDepartment reports whether department is a catalog key.
func (c *Catalog) HasDepartment(department string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[department]
	return ok
}

// HasRole reports whether role is listed for department.
func (c *Catalog) HasRole(department, role string) bool {
	for _, r := range c.RolesFor(department) {
		if r == role {
			return true
		}
	}
	return false
}

// DepartmentOptions maps Departments into select options.
func (c *Catalog) DepartmentOptions() []Option {
	return toOptions(c.Departments())
}

// RoleOptions maps RolesFor into select options.
func (c *Catalog) RoleOptions(department string) []Option {
	return toOptions(c.RolesFor(department))
}

func toOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}
