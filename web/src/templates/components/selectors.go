package components

import (
	"github.com/nfrund/hive/internal/dashboard"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// DepartmentSelector is the row of department buttons on the dashboard root.
// Each is a plain link carrying the rest of the filter state.
func DepartmentSelector(path string, f dashboard.Filter) g.Node {
	return h.Div(h.Class("flex flex-wrap gap-2"),
		g.Map(dashboard.DepartmentFilter, func(d dashboard.Option) g.Node {
			active := f.Department == d.Key
			href := f.With(func(f *dashboard.Filter) { f.Department = d.Key }).URL(path)
			return h.A(h.Href(href),
				c.Classes{"px-4 py-2 rounded-lg text-sm font-medium transition-colors": true, "bg-gray-800 text-white": active, "bg-white text-gray-700 hover:bg-gray-100": !active},
				g.If(d.Key != dashboard.All, h.Span(h.Class("inline-block w-2 h-2 rounded-full mr-2 "+barColors[d.Key]))),
				g.Text(d.Label),
			)
		}),
	)
}

// TimeRangeSelector switches the summarised period.
func TimeRangeSelector(path string, f dashboard.Filter) g.Node {
	return h.Div(h.Class("ml-auto flex gap-2"),
		g.Map(dashboard.TimeRanges, func(r dashboard.Option) g.Node {
			active := f.Range == r.Key
			href := f.With(func(f *dashboard.Filter) { f.Range = r.Key }).URL(path)
			return h.A(h.Href(href),
				c.Classes{"px-3 py-1 rounded text-xs font-medium transition-colors": true, "bg-amber-100 text-amber-800": active, "bg-white text-gray-600 hover:bg-gray-50": !active},
				g.Text(r.Label),
			)
		}),
	)
}

// CategorySelector is the Pulse sub-category row. "全体" clears the filter.
func CategorySelector(path string, f dashboard.Filter) g.Node {
	options := append([]dashboard.Option{{Key: dashboard.All, Label: "全体"}}, dashboard.PulseCategories...)
	return h.Div(h.Class("flex flex-wrap gap-2"),
		g.Map(options, func(o dashboard.Option) g.Node {
			active := f.Category == o.Key
			href := f.With(func(f *dashboard.Filter) { f.Category = o.Key }).URL(path)
			return h.A(h.Href(href),
				c.Classes{"px-3 py-1 rounded-full text-xs transition-colors": true, "bg-blue-600 text-white": active, "bg-blue-50 text-blue-700 hover:bg-blue-100": !active},
				g.If(o.Icon != "", h.Span(h.Class("mr-1"), g.Text(o.Icon))),
				g.Text(o.Label),
			)
		}),
	)
}
