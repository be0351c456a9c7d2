package components

import (
	"github.com/nfrund/hive/internal/dashboard"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var iconColors = map[string]string{
	"blue":   "text-blue-600 bg-blue-100",
	"green":  "text-green-600 bg-green-100",
	"amber":  "text-amber-600 bg-amber-100",
	"purple": "text-purple-600 bg-purple-100",
	"red":    "text-red-600 bg-red-100",
}

// Card is the white panel every dashboard section sits in. action is shown
// to the right of the title and may be nil.
func Card(title string, action g.Node, children ...g.Node) g.Node {
	return h.Div(h.Class("bg-white p-4 rounded-lg shadow-sm border border-gray-200"),
		g.If(title != "",
			h.Div(h.Class("flex justify-between items-center mb-4"),
				h.H2(h.Class("text-lg font-medium text-gray-800"), g.Text(title)),
				action,
			),
		),
		g.Group(children),
	)
}

// MoreLink is the amber "see everything" link in a card header.
func MoreLink(href, label string) g.Node {
	return h.A(h.Href(href), h.Class("text-sm text-amber-500 hover:text-amber-600 font-medium"), g.Text(label))
}

// StatCard renders one KPI tile.
func StatCard(card dashboard.StatCard) g.Node {
	return h.Div(h.Class("bg-white p-4 rounded-lg shadow-sm border border-gray-200"),
		h.Div(h.Class("flex justify-between items-start"),
			h.Div(
				h.H3(h.Class("text-sm font-medium text-gray-500"), g.Text(card.Title)),
				h.Div(h.Class("mt-2 flex items-baseline"),
					h.Span(h.Class("text-2xl font-bold text-gray-900"), g.Text(card.Value)),
					change(card.Change),
				),
			),
			h.Div(h.Class("p-2 rounded-full h-9 w-9 "+colorOr(iconColors, card.Color, "blue"))),
		),
		g.If(card.Footer != "", h.Div(h.Class("mt-4 text-sm text-gray-500"), g.Text(card.Footer))),
	)
}

func change(ch *dashboard.Change) g.Node {
	if ch == nil {
		return nil
	}
	if ch.Positive {
		return h.Span(h.Class("ml-2 text-sm font-medium text-green-600"), g.Text("↑ "+ch.Value))
	}
	return h.Span(h.Class("ml-2 text-sm font-medium text-red-600"), g.Text("↓ "+ch.Value))
}

// StatGrid lays out KPI tiles four to a row.
func StatGrid(cards []dashboard.StatCard) g.Node {
	return h.Div(h.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 mb-6"),
		g.Map(cards, StatCard),
	)
}

// Badge is a small rounded label.
func Badge(label, classes string) g.Node {
	return h.Span(h.Class("px-2 inline-flex text-xs leading-5 font-semibold rounded-full "+classes), g.Text(label))
}

func colorOr(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return m[fallback]
}
