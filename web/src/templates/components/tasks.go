package components

import (
	"slices"

	"github.com/nfrund/hive/internal/dashboard"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// TaskTableID is the element htmx swaps when a task filter changes.
const TaskTableID = "task-table"

var (
	statusBadges = map[string]string{
		dashboard.StatusPending:    "bg-gray-100 text-gray-800",
		dashboard.StatusInProgress: "bg-blue-100 text-blue-800",
		dashboard.StatusCompleted:  "bg-green-100 text-green-800",
	}
	priorityBadges = map[string]string{
		"high":   "bg-red-100 text-red-800",
		"medium": "bg-amber-100 text-amber-800",
		"low":    "bg-green-100 text-green-800",
	}
	departmentBadges = map[string]string{
		dashboard.DeptPulse:  "bg-blue-50 text-blue-600",
		dashboard.DeptGrowth: "bg-green-50 text-green-600",
		dashboard.DeptTech:   "bg-purple-50 text-purple-600",
		dashboard.DeptAsset:  "bg-amber-50 text-amber-600",
		dashboard.DeptCommon: "bg-gray-50 text-gray-600",
	}
)

// TaskFilter is the status and department selector above a task table.
// Changing a select re-fetches path and swaps only the table; without
// JavaScript the form submits normally. Hidden inputs carry the rest of the page's
// filter state. A pinned department hides the department select.
func TaskFilter(path string, f dashboard.Filter, pinnedDepartment bool) g.Node {
	hidden := f.With(func(f *dashboard.Filter) {
		f.TaskStatus = dashboard.All
		f.TaskDepartment = dashboard.All
	}).Query()

	keys := make([]string, 0, len(hidden))
	for key := range hidden {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	fields := g.Map(keys, func(key string) g.Node {
		return h.Input(h.Type("hidden"), h.Name(key), h.Value(hidden.Get(key)))
	})

	return h.Form(h.Method("get"), h.Action(path), h.Class("flex flex-wrap gap-2 mb-4"),
		hx.Get(path), hx.Trigger("change"), hx.Target("#"+TaskTableID), hx.Swap("outerHTML"), hx.PushURL("true"),
		fields,
		selectBox("status", "ステータス", dashboard.TaskStatuses, f.TaskStatus),
		g.If(!pinnedDepartment, selectBox("department", "部門", dashboard.TaskDepartments, f.TaskDepartment)),
		h.NoScript(h.Button(h.Type("submit"), h.Class("px-3 py-1 rounded bg-gray-800 text-white text-xs"), g.Text("絞り込み"))),
	)
}

func selectBox(name, label string, options []dashboard.Option, selected string) g.Node {
	return h.Label(h.Class("text-xs text-gray-600 flex items-center gap-1"),
		g.Text(label),
		h.Select(h.Name(name), h.Class("text-xs border border-gray-300 rounded px-2 py-1 focus:outline-none focus:ring-2 focus:ring-amber-400"),
			h.Option(h.Value(dashboard.All), g.Text("すべて"), g.If(selected == dashboard.All, h.Selected())),
			g.Map(options, func(o dashboard.Option) g.Node {
				return h.Option(h.Value(o.Key), g.Text(o.Label), g.If(o.Key == selected, h.Selected()))
			}),
		),
	)
}

// TaskTable lists tasks. It is also the fragment returned to htmx requests.
func TaskTable(v dashboard.TasksView) g.Node {
	return h.Div(h.ID(TaskTableID), h.Class("overflow-x-auto"),
		g.If(len(v.Tasks) == 0,
			h.P(h.Class("py-10 text-center text-gray-500"), g.Text("該当するタスクはありません")),
		),
		g.If(len(v.Tasks) > 0,
			h.Table(h.Class("min-w-full divide-y divide-gray-200"),
				h.THead(h.Class("bg-gray-50"),
					h.Tr(
						th("タスク"), th("期限"), th("優先度"), th("ステータス"), th("部門"), th("担当者"),
					),
				),
				h.TBody(h.Class("bg-white divide-y divide-gray-200"),
					g.Map(v.Tasks, taskRow),
				),
			),
		),
	)
}

func taskRow(t dashboard.Task) g.Node {
	return h.Tr(
		h.Td(h.Class("px-6 py-4 text-sm font-medium text-gray-900"), g.Text(t.Title)),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap text-sm text-gray-500"), g.Text(t.DueDate)),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"), Badge(dashboard.Label(dashboard.TaskPriorities, t.Priority), priorityBadges[t.Priority])),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"), Badge(dashboard.Label(dashboard.TaskStatuses, t.Status), statusBadges[t.Status])),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"), Badge(dashboard.Label(dashboard.TaskDepartments, t.Department), departmentBadges[t.Department])),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap text-sm text-gray-500"), g.Text(t.Assignee)),
	)
}

func th(label string) g.Node {
	return h.Th(h.Class("px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider"), g.Text(label))
}
