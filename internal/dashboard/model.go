// Package dashboard holds the read-only datasets shown on the Hive pages and
// the pure functions that filter and summarise them per request.
package dashboard

// Account is a social media account run by the Pulse department.
type Account struct {
	ID               int     `yaml:"id"`
	Name             string  `yaml:"name"`
	Handle           string  `yaml:"handle"`
	LoginID          string  `yaml:"login_id"`
	Platform         string  `yaml:"platform"`
	Category         string  `yaml:"category"`
	Followers        int     `yaml:"followers"`
	FollowerChange   int     `yaml:"follower_change"`
	LastPost         string  `yaml:"last_post"`
	Engagement       float64 `yaml:"engagement"`
	EngagementChange float64 `yaml:"engagement_change"`
	Status           string  `yaml:"status"`
}

// Task is a unit of work owned by a department or shared across all of them.
type Task struct {
	ID         int    `yaml:"id"`
	Title      string `yaml:"title"`
	DueDate    string `yaml:"due_date"`
	Priority   string `yaml:"priority"`
	Status     string `yaml:"status"`
	Department string `yaml:"department"`
	Assignee   string `yaml:"assignee"`
}

// Notification is an entry in the notification panel.
type Notification struct {
	ID      int    `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Time    string `yaml:"time"`
	Read    bool   `yaml:"read"`
	Type    string `yaml:"type"`
}

// Change is the delta shown next to a KPI value.
type Change struct {
	Value    string `yaml:"value"`
	Positive bool   `yaml:"positive"`
}

// StatCard is one KPI tile.
type StatCard struct {
	Title  string  `yaml:"title"`
	Value  string  `yaml:"value"`
	Change *Change `yaml:"change,omitempty"`
	Footer string  `yaml:"footer,omitempty"`
	Color  string  `yaml:"color"`
}

// RevenuePoint is one month of revenue per department, in yen.
type RevenuePoint struct {
	Month  string `yaml:"month"`
	Pulse  int64  `yaml:"pulse"`
	Growth int64  `yaml:"growth"`
	Tech   int64  `yaml:"tech"`
	Asset  int64  `yaml:"asset"`
}

// For returns the revenue of a single department, or the sum for "all".
func (p RevenuePoint) For(department string) int64 {
	switch department {
	case DeptPulse:
		return p.Pulse
	case DeptGrowth:
		return p.Growth
	case DeptTech:
		return p.Tech
	case DeptAsset:
		return p.Asset
	default:
		return p.Pulse + p.Growth + p.Tech + p.Asset
	}
}

// Milestone is a step on a department roadmap.
type Milestone struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Progress    int    `yaml:"progress"`
}
