package components

import (
	"github.com/nfrund/hive/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders the one-shot messages left by the previous request.
func Flash(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(h.ID("flash"), h.Class("max-w-3xl mx-auto mt-4 px-4 space-y-2"), h.Role("status"),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded-md border border-red-200 bg-red-50 px-4 py-3 text-sm text-red-800"), g.Text(msg))
		}),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded-md border border-green-200 bg-green-50 px-4 py-3 text-sm text-green-800"), g.Text(msg))
		}),
	)
}
