package components

import (
	"fmt"
	"strconv"

	"github.com/nfrund/hive/internal/dashboard"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Roadmap renders the milestones of a department in order. The first
// milestone is highlighted as the current one.
func Roadmap(steps []dashboard.Milestone) g.Node {
	if len(steps) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(steps))
	for i, m := range steps {
		items = append(items, milestone(i, m))
	}
	return Card("部門ロードマップ", nil,
		h.Ol(h.Class("relative flex flex-col space-y-8 border-l border-blue-200 ml-4"), g.Group(items)),
	)
}

func milestone(i int, m dashboard.Milestone) g.Node {
	current := i == 0
	return h.Li(h.Class("relative flex items-center -ml-4"),
		h.Div(
			g.If(current, h.Class("flex-shrink-0 w-8 h-8 rounded-full bg-blue-500 text-white flex items-center justify-center z-10")),
			g.If(!current, h.Class("flex-shrink-0 w-8 h-8 rounded-full bg-gray-200 text-gray-600 flex items-center justify-center z-10")),
			g.Text(strconv.Itoa(i+1)),
		),
		h.Div(
			g.If(current, h.Class("ml-4 bg-blue-50 p-3 rounded-lg border border-blue-100 flex-grow")),
			g.If(!current, h.Class("ml-4 bg-white p-3 rounded-lg border border-gray-200 flex-grow")),
			h.H3(h.Class("text-sm font-semibold text-gray-800"), g.Text(m.Title)),
			h.P(h.Class("text-xs text-gray-600 mt-1"), g.Text(m.Description)),
			h.Div(h.Class("mt-2 h-2 bg-gray-100 rounded-full overflow-hidden"),
				h.Div(h.Class("h-full bg-blue-500 rounded-full"), h.Style(fmt.Sprintf("width: %d%%", m.Progress))),
			),
		),
	)
}
