package components

import (
	"fmt"

	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/internal/format"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var barColors = map[string]string{
	dashboard.DeptPulse:  "bg-blue-500",
	dashboard.DeptGrowth: "bg-green-500",
	dashboard.DeptTech:   "bg-purple-500",
	dashboard.DeptAsset:  "bg-amber-500",
}

// RevenueChart draws the monthly revenue as grouped HTML bars, one per
// department, or a single bar per month when restricted to one department.
func RevenueChart(v dashboard.RevenueView) g.Node {
	depts := dashboard.Departments
	if d, ok := dashboard.Lookup(dashboard.Departments, v.Department); ok {
		depts = []dashboard.Option{d}
	}

	return h.Div(
		h.P(h.Class("text-sm text-gray-500 mb-4"), g.Text("総収益: "+format.Yen(v.Total, format.CurrencyOptions{}))),
		h.Div(h.Class("chart-bars border-b border-gray-200"),
			g.Map(v.Series, func(p dashboard.RevenuePoint) g.Node {
				return h.Div(h.Class("flex-1 flex items-end gap-0.5 h-full"),
					g.Map(depts, func(d dashboard.Option) g.Node {
						amount := p.For(d.Key)
						return h.Div(h.Class("chart-bar "+barColors[d.Key]),
							h.Style(fmt.Sprintf("height: %d%%", dashboard.BarPercent(amount, v.Max))),
							h.Title(fmt.Sprintf("%s %s: %s", p.Month, d.Label, format.Yen(amount, format.CurrencyOptions{}))),
						)
					}),
				)
			}),
		),
		h.Div(h.Class("flex gap-1 mt-1"),
			g.Map(v.Series, func(p dashboard.RevenuePoint) g.Node {
				return h.Div(h.Class("flex-1 text-center text-xs text-gray-500"), g.Text(p.Month))
			}),
		),
		h.Div(h.Class("flex flex-wrap gap-4 mt-4 text-xs text-gray-600"),
			g.Map(depts, func(d dashboard.Option) g.Node {
				return h.Span(h.Class("flex items-center"),
					h.Span(h.Class("inline-block w-2 h-2 rounded-full mr-1 "+barColors[d.Key])),
					g.Text(d.Label+" "+format.Yen(dashboard.TotalRevenue(v.Series, d.Key), format.CurrencyOptions{Style: format.Short})),
				)
			}),
		),
	)
}
