package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/hive/internal/view"
	"github.com/nfrund/hive/web/src/templates/components"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
)

// Base is the HTML document every page is rendered into. The content is any
// templ component; gomponents pages are wrapped with view.AdaptGomponentToTempl.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(ctx, title, flashes, content).Render(w)
	})
}

func document(ctx context.Context, title string, flashes view.FlashData, content templ.Component) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "ja",
		Head: []g.Node{
			h.Meta(h.Name("color-scheme"), h.Content("light")),
			h.Script(h.Src(tailwindSrc)),
			h.Script(h.Src(htmxSrc), h.Defer()),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
		},
		Body: []g.Node{
			h.Class("bg-gray-50 text-gray-900"),
			components.Flash(flashes),
			view.AdaptTemplToGomponent(ctx, content),
		},
	})
}
