package pages

import (
	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const pulsePath = "/department/pulse"

// Pulse is the Pulse department page with its account list.
func Pulse(p dashboard.PulsePage) g.Node {
	return h.Div(
		pageHeader("Pulse部門", "アフィリエイト・収益化部門"),
		components.StatGrid(p.KPIs),
		h.Div(h.Class("mb-6"),
			components.Card("アカウント一覧", nil,
				h.Div(h.Class("mb-4"), components.CategorySelector(pulsePath, p.Filter)),
				components.AccountTable(p.Accounts),
			),
		),
		components.Roadmap(p.Roadmap),
	)
}

// Department is the page of any department without a dedicated layout.
func Department(p dashboard.DepartmentPage) g.Node {
	path := "/department/" + p.Department.Key
	return h.Div(
		pageHeader(p.Department.Label, ""),
		components.StatGrid(p.KPIs),
		h.Div(h.Class("mb-6"),
			components.Card("収益推移", nil, components.RevenueChart(p.Revenue)),
		),
		h.Div(h.Class("mb-6"),
			components.Card("部門タスク", nil,
				components.TaskFilter(path, p.Filter, true),
				components.TaskTable(p.Tasks),
			),
		),
		components.Roadmap(p.Roadmap),
	)
}

func pageHeader(title, subtitle string) g.Node {
	return h.Div(h.Class("mb-6"),
		h.H2(h.Class("text-2xl font-bold text-gray-800"), g.Text(title)),
		g.If(subtitle != "", h.P(h.Class("text-sm text-gray-500 mt-1"), g.Text(subtitle))),
	)
}
