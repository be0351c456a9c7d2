package dashboard

import "net/url"

// Filter is the request-scoped selection state of a page. It travels in the
// query string so that every request re-evaluates it from scratch.
type Filter struct {
	Department       string
	Range            string
	Category         string
	TaskStatus       string
	TaskDepartment   string
	AllNotifications bool
}

// ParseFilter reads the filter state from query parameters. Empty and unknown
// values collapse to All, except Range which falls back to DefaultTimeRange.
func ParseFilter(q url.Values) Filter {
	f := Filter{
		Department:       normalize(Departments, q.Get("dept")),
		Range:            DefaultTimeRange,
		Category:         normalize(PulseCategories, q.Get("category")),
		TaskStatus:       normalize(TaskStatuses, q.Get("status")),
		TaskDepartment:   normalize(TaskDepartments, q.Get("department")),
		AllNotifications: q.Get("notifications") == All,
	}
	if _, ok := Lookup(TimeRanges, q.Get("range")); ok {
		f.Range = q.Get("range")
	}
	return f
}

// Query encodes the non-default parts of f.
func (f Filter) Query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" && value != All {
			q.Set(key, value)
		}
	}
	set("dept", f.Department)
	if f.Range != DefaultTimeRange {
		set("range", f.Range)
	}
	set("category", f.Category)
	set("status", f.TaskStatus)
	set("department", f.TaskDepartment)
	if f.AllNotifications {
		q.Set("notifications", All)
	}
	return q
}

// URL returns path with f's query string appended.
func (f Filter) URL(path string) string {
	if q := f.Query().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// With returns a copy of f with fn applied, for building selector links.
func (f Filter) With(fn func(*Filter)) Filter {
	fn(&f)
	return f
}

// FilterAccounts returns the accounts in category. All, empty or unknown
// categories return the full list.
func FilterAccounts(accounts []Account, category string) []Account {
	if normalize(PulseCategories, category) == All {
		return append([]Account(nil), accounts...)
	}
	out := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// FilterTasks returns the tasks matching both status and department, each of
// which may be All.
func FilterTasks(tasks []Task, status, department string) []Task {
	status = normalize(TaskStatuses, status)
	department = normalize(TaskDepartments, department)

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if status != All && t.Status != status {
			continue
		}
		if department != All && t.Department != department {
			continue
		}
		out = append(out, t)
	}
	return out
}

// VisibleNotifications truncates the list to max entries unless showAll is set,
// and reports how many were hidden.
func VisibleNotifications(list []Notification, showAll bool, max int) ([]Notification, int) {
	if showAll || max <= 0 || len(list) <= max {
		return list, 0
	}
	return list[:max], len(list) - max
}

// UnreadCount counts notifications not yet read.
func UnreadCount(list []Notification) int {
	n := 0
	for _, item := range list {
		if !item.Read {
			n++
		}
	}
	return n
}
