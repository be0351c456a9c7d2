package dashboard

// All selects every row in any filter.
const All = "all"

const (
	DeptPulse  = "pulse"
	DeptGrowth = "growth"
	DeptTech   = "tech"
	DeptAsset  = "asset"
	// DeptCommon is only valid for tasks.
	DeptCommon = "common"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Option is a selectable filter value with its display label.
type Option struct {
	Key   string
	Label string
	// Color is the tailwind palette name used for badges and dots.
	Color string
	Icon  string
}

// Departments lists the four business units in display order.
var Departments = []Option{
	{Key: DeptPulse, Label: "Pulse部門", Color: "blue"},
	{Key: DeptGrowth, Label: "Growth部門", Color: "green"},
	{Key: DeptTech, Label: "Tech部門", Color: "purple"},
	{Key: DeptAsset, Label: "Asset部門", Color: "amber"},
}

// DepartmentFilter is the department selector on the dashboard root.
var DepartmentFilter = append([]Option{{Key: All, Label: "全体", Color: "gray"}}, Departments...)

// TaskDepartments are the departments a task can belong to.
var TaskDepartments = append(append([]Option{}, Departments...), Option{Key: DeptCommon, Label: "共通", Color: "gray"})

// PulseCategories are the content niches of Pulse accounts.
var PulseCategories = []Option{
	{Key: "adult", Label: "アダルト系", Icon: "🔞"},
	{Key: "manga", Label: "漫画・同人系", Icon: "📚"},
	{Key: "nekama", Label: "ネカマ系", Icon: "👤"},
	{Key: "fortune", Label: "占い系", Icon: "🔮"},
	{Key: "selfdev", Label: "自己啓発系", Icon: "📈"},
}

// TimeRanges are the periods the dashboard can summarise.
var TimeRanges = []Option{
	{Key: "week", Label: "直近1週間"},
	{Key: "month", Label: "直近1ヶ月"},
	{Key: "quarter", Label: "直近3ヶ月"},
	{Key: "year", Label: "直近1年"},
}

// DefaultTimeRange is used when the range parameter is missing or unknown.
const DefaultTimeRange = "month"

var TaskStatuses = []Option{
	{Key: StatusPending, Label: "未着手", Color: "gray"},
	{Key: StatusInProgress, Label: "進行中", Color: "blue"},
	{Key: StatusCompleted, Label: "完了", Color: "green"},
}

var TaskPriorities = []Option{
	{Key: "high", Label: "高", Color: "red"},
	{Key: "medium", Label: "中", Color: "amber"},
	{Key: "low", Label: "低", Color: "green"},
}

var AccountStatuses = []Option{
	{Key: "good", Label: "良好", Color: "green"},
	{Key: "warning", Label: "注意", Color: "yellow"},
	{Key: "danger", Label: "危険", Color: "red"},
	{Key: "suspended", Label: "停止中", Color: "gray"},
}

// Lookup finds key in options.
func Lookup(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Label returns the label for key, or key itself when it is not listed.
func Label(options []Option, key string) string {
	if o, ok := Lookup(options, key); ok {
		return o.Label
	}
	return key
}

// normalize maps empty and unknown values to All.
func normalize(options []Option, key string) string {
	if _, ok := Lookup(options, key); ok {
		return key
	}
	return All
}
