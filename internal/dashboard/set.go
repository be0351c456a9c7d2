package dashboard

import (
	"errors"
	"fmt"
)

// Set is every dataset the pages render from.
type Set struct {
	Accounts       []Account              `yaml:"accounts"`
	Tasks          []Task                 `yaml:"tasks"`
	Notifications  []Notification         `yaml:"notifications"`
	OverviewKPIs   []StatCard             `yaml:"overview_kpis"`
	DepartmentKPIs map[string][]StatCard  `yaml:"department_kpis"`
	Revenue        []RevenuePoint         `yaml:"revenue"`
	Roadmaps       map[string][]Milestone `yaml:"roadmaps"`
}

// Merge copies every non-empty dataset of other into s.
func (s *Set) Merge(other Set) {
	if other.Accounts != nil {
		s.Accounts = other.Accounts
	}
	if other.Tasks != nil {
		s.Tasks = other.Tasks
	}
	if other.Notifications != nil {
		s.Notifications = other.Notifications
	}
	if other.OverviewKPIs != nil {
		s.OverviewKPIs = other.OverviewKPIs
	}
	if other.Revenue != nil {
		s.Revenue = other.Revenue
	}
	for dept, cards := range other.DepartmentKPIs {
		if s.DepartmentKPIs == nil {
			s.DepartmentKPIs = map[string][]StatCard{}
		}
		s.DepartmentKPIs[dept] = cards
	}
	for dept, steps := range other.Roadmaps {
		if s.Roadmaps == nil {
			s.Roadmaps = map[string][]Milestone{}
		}
		s.Roadmaps[dept] = steps
	}
}

// Validate checks that every enumerated field holds a known value and that ids
// are unique. All problems are reported together.
func (s *Set) Validate() error {
	var errs []error
	check := func(kind string, id int, field string, options []Option, value string) {
		if _, ok := Lookup(options, value); !ok {
			errs = append(errs, fmt.Errorf("%s %d: unknown %s %q", kind, id, field, value))
		}
	}

	seen := map[int]bool{}
	for _, a := range s.Accounts {
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("account %d: duplicate id", a.ID))
		}
		seen[a.ID] = true
		check("account", a.ID, "category", PulseCategories, a.Category)
		check("account", a.ID, "status", AccountStatuses, a.Status)
	}

	seen = map[int]bool{}
	for _, t := range s.Tasks {
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("task %d: duplicate id", t.ID))
		}
		seen[t.ID] = true
		check("task", t.ID, "status", TaskStatuses, t.Status)
		check("task", t.ID, "priority", TaskPriorities, t.Priority)
		check("task", t.ID, "department", TaskDepartments, t.Department)
	}

	for dept := range s.DepartmentKPIs {
		if _, ok := Lookup(Departments, dept); !ok {
			errs = append(errs, fmt.Errorf("department_kpis: unknown department %q", dept))
		}
	}
	for dept, steps := range s.Roadmaps {
		if _, ok := Lookup(Departments, dept); !ok {
			errs = append(errs, fmt.Errorf("roadmaps: unknown department %q", dept))
		}
		for _, m := range steps {
			if m.Progress < 0 || m.Progress > 100 {
				errs = append(errs, fmt.Errorf("roadmaps.%s %q: progress %d out of range", dept, m.Title, m.Progress))
			}
		}
	}
	return errors.Join(errs...)
}
