package pages

import (
	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DashboardPath is where the overview lives.
const DashboardPath = "/"

// Dashboard is the overview across all departments.
func Dashboard(o dashboard.Overview) g.Node {
	f := o.Filter

	var detail g.Node
	if d, ok := dashboard.Lookup(dashboard.Departments, f.Department); ok {
		detail = components.MoreLink("/department/"+d.Key, d.Label+"の詳細分析を表示 →")
	}

	return h.Div(
		h.Div(h.Class("flex flex-wrap items-center gap-4 mb-6"),
			components.DepartmentSelector(DashboardPath, f),
			components.TimeRangeSelector(DashboardPath, f),
		),
		g.If(o.ShowPulse, pulseCategories()),
		components.StatGrid(o.KPIs),
		h.Div(h.Class("grid grid-cols-1 lg:grid-cols-3 gap-6 mb-6"),
			h.Div(h.Class("lg:col-span-2"),
				components.Card("収益推移", detail, components.RevenueChart(o.Revenue)),
			),
			components.NotificationPanel(o.Notifications, DashboardPath, f),
		),
		h.Div(h.Class("mb-6"),
			components.Card("優先タスク", components.MoreLink("/tasks", "すべてのタスクを表示 →"),
				components.TaskFilter(DashboardPath, f, false),
				components.TaskTable(o.Tasks),
			),
		),
		g.If(o.ShowPulse,
			components.Card("最近のアカウント活動", components.MoreLink("/department/pulse", "すべてのアカウントを表示 →"),
				components.RecentAccounts(o.RecentAccounts),
			),
		),
	)
}

func pulseCategories() g.Node {
	return h.Div(h.Class("flex flex-wrap gap-2 mb-6"),
		g.Map(dashboard.PulseCategories, func(o dashboard.Option) g.Node {
			href := dashboard.Filter{Category: o.Key}.URL("/department/pulse")
			return h.A(h.Href(href), h.Class("px-3 py-1 rounded-full text-xs bg-blue-50 text-blue-700 hover:bg-blue-100"),
				g.Text(o.Icon+" "+o.Label),
			)
		}),
	)
}
