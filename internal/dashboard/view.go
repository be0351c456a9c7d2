package dashboard

// MaxNotifications is how many notifications the panel shows before folding.
const MaxNotifications = 5

// RecentAccountCount is how many accounts the overview's activity table lists.
const RecentAccountCount = 2

// NotificationsView is the notification panel state.
type NotificationsView struct {
	Items  []Notification
	Hidden int
	Unread int
	// Expanded is set when the full list was requested.
	Expanded bool
}

// RevenueView is the revenue chart state.
type RevenueView struct {
	Series     []RevenuePoint
	Department string
	Total      int64
	Max        int64
}

// TasksView is the task table state.
type TasksView struct {
	Tasks      []Task
	Status     string
	Department string
}

// Overview is the dashboard root.
type Overview struct {
	Filter         Filter
	KPIs           []StatCard
	Revenue        RevenueView
	Notifications  NotificationsView
	Tasks          TasksView
	ShowPulse      bool
	RecentAccounts []Account
}

// PulsePage is the Pulse department page.
type PulsePage struct {
	Filter   Filter
	KPIs     []StatCard
	Accounts []Account
	Roadmap  []Milestone
}

// DepartmentPage is the page of any department other than Pulse.
type DepartmentPage struct {
	Department Option
	Filter     Filter
	KPIs       []StatCard
	Revenue    RevenueView
	Tasks      TasksView
	Roadmap    []Milestone
}

// TaskPage is the task list.
type TaskPage struct {
	Filter Filter
	Tasks  TasksView
	Total  int
}

func (s *Set) notifications(f Filter) NotificationsView {
	items, hidden := VisibleNotifications(s.Notifications, f.AllNotifications, MaxNotifications)
	return NotificationsView{
		Items:    items,
		Hidden:   hidden,
		Unread:   UnreadCount(s.Notifications),
		Expanded: f.AllNotifications && len(s.Notifications) > MaxNotifications,
	}
}

func (s *Set) revenue(department string) RevenueView {
	return RevenueView{
		Series:     s.Revenue,
		Department: department,
		Total:      TotalRevenue(s.Revenue, department),
		Max:        MaxRevenue(s.Revenue, department),
	}
}

func (s *Set) tasks(status, department string) TasksView {
	return TasksView{
		Tasks:      FilterTasks(s.Tasks, status, department),
		Status:     normalize(TaskStatuses, status),
		Department: normalize(TaskDepartments, department),
	}
}

// Overview builds the dashboard root for f.
func (s *Set) Overview(f Filter) Overview {
	o := Overview{
		Filter:        f,
		KPIs:          OverviewKPIs(s.OverviewKPIs, f.Department),
		Revenue:       s.revenue(All),
		Notifications: s.notifications(f),
		Tasks:         s.tasks(f.TaskStatus, f.TaskDepartment),
		ShowPulse:     f.Department == DeptPulse,
	}
	if o.ShowPulse {
		recent := s.Accounts
		if len(recent) > RecentAccountCount {
			recent = recent[:RecentAccountCount]
		}
		o.RecentAccounts = recent
	}
	return o
}

// Pulse builds the Pulse department page. KPIs cover every account regardless
// of the category filter; the table shows only the selected category.
func (s *Set) Pulse(f Filter) PulsePage {
	return PulsePage{
		Filter:   f,
		KPIs:     PulseKPIs(s.Accounts, s.DepartmentKPIs[DeptPulse]),
		Accounts: FilterAccounts(s.Accounts, f.Category),
		Roadmap:  s.Roadmaps[DeptPulse],
	}
}

// Department builds the page of dept, which must be one of Departments other
// than Pulse. The task table is pinned to the department.
func (s *Set) Department(dept Option, f Filter) DepartmentPage {
	return DepartmentPage{
		Department: dept,
		Filter:     f,
		KPIs:       s.DepartmentKPIs[dept.Key],
		Revenue:    s.revenue(dept.Key),
		Tasks:      s.tasks(f.TaskStatus, dept.Key),
		Roadmap:    s.Roadmaps[dept.Key],
	}
}

// TaskList builds the task list for f.
func (s *Set) TaskList(f Filter) TaskPage {
	return TaskPage{
		Filter: f,
		Tasks:  s.tasks(f.TaskStatus, f.TaskDepartment),
		Total:  len(s.Tasks),
	}
}
