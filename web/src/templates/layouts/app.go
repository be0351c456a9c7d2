package layouts

import (
	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/internal/domain"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Shell describes the chrome around a signed-in page.
type Shell struct {
	Title      string
	ActivePath string
	Profile    *domain.Profile
}

type navItem struct {
	name string
	path string
}

var navItems = []navItem{
	{name: "ダッシュボード", path: "/"},
	{name: "タスク管理", path: "/tasks"},
	{name: "アカウント", path: "/dashboard"},
}

var dotColors = map[string]string{
	"blue":   "bg-blue-500",
	"green":  "bg-green-500",
	"purple": "bg-purple-500",
	"amber":  "bg-amber-500",
}

// App lays out the sidebar, the header and the page body.
func App(s Shell, body ...g.Node) g.Node {
	return h.Div(h.Class("flex min-h-screen"),
		sidebar(s.ActivePath),
		h.Div(h.Class("flex-1 flex flex-col"),
			header(s),
			h.Main(h.Class("flex-1 p-6"), g.Group(body)),
		),
	)
}

func sidebar(active string) g.Node {
	return h.Aside(h.Class("w-64 bg-gray-800 text-white hidden md:block"),
		h.Div(h.Class("flex items-center px-6 h-16 border-b border-gray-700"),
			h.A(h.Href("/"), h.Class("text-2xl font-bold text-amber-400"), g.Text("🐝 HIVE")),
		),
		h.Nav(h.Class("mt-6"),
			h.Ul(g.Map(navItems, func(item navItem) g.Node {
				return h.Li(h.A(h.Href(item.path),
					c.Classes{"flex items-center py-3 px-6": true, "bg-gray-700 border-l-4 border-amber-400": item.path == active, "hover:bg-gray-700": item.path != active},
					g.Text(item.name),
				))
			})),
		),
		h.Div(h.Class("mt-8 px-6"),
			h.H3(h.Class("text-xs font-semibold text-gray-400 uppercase tracking-wider"), g.Text("部門")),
			h.Div(h.Class("mt-3 space-y-2"),
				g.Map(dashboard.Departments, func(d dashboard.Option) g.Node {
					path := "/department/" + d.Key
					return h.A(h.Href(path),
						c.Classes{"flex items-center text-sm py-1": true, "text-white font-medium": path == active, "text-gray-300 hover:text-white": path != active},
						h.Span(h.Class("w-2 h-2 rounded-full mr-2 "+dotColors[d.Color])),
						g.Text(d.Label),
					)
				}),
			),
		),
	)
}

func header(s Shell) g.Node {
	return h.Header(h.Class("bg-white border-b border-gray-200"),
		h.Div(h.Class("flex justify-between items-center px-6 h-16"),
			h.H1(h.Class("text-xl font-semibold text-gray-800"), g.Text(s.Title)),
			h.Details(h.Class("relative"),
				h.Summary(h.Class("flex items-center text-sm cursor-pointer list-none"),
					avatar(s.Profile),
					h.Span(h.Class("hidden md:block ml-2 text-gray-700"), g.Text(s.Profile.DisplayName())),
				),
				h.Div(h.Class("absolute right-0 mt-2 w-48 bg-white rounded-md shadow-lg border border-gray-200 z-20"),
					h.Div(h.Class("px-4 py-2 text-sm text-gray-700 border-b border-gray-200"),
						h.Div(h.Class("font-medium"), g.Text(s.Profile.DisplayName())),
						h.Div(h.Class("text-xs text-gray-500 mt-1"), g.Text(s.Profile.RoleLabel())),
					),
					h.A(h.Href("/dashboard"), h.Class("block px-4 py-2 text-sm text-gray-700 hover:bg-gray-100"), g.Text("プロフィール")),
					LogoutButton("block w-full text-left px-4 py-2 text-sm text-red-600 hover:bg-gray-100 border-t border-gray-200"),
				),
			),
		),
	)
}

func avatar(p *domain.Profile) g.Node {
	if p != nil && p.AvatarURL != nil && *p.AvatarURL != "" {
		return h.Div(h.Class("h-8 w-8 rounded-full overflow-hidden"),
			h.Img(h.Src(*p.AvatarURL), h.Alt(p.DisplayName()), h.Class("h-full w-full object-cover")),
		)
	}
	return h.Div(h.Class("h-8 w-8 rounded-full bg-gray-300 flex items-center justify-center text-gray-700 font-medium"),
		g.Text(p.Initial()),
	)
}

// LogoutButton posts to the sign-out route.
func LogoutButton(class string) g.Node {
	return h.Form(h.Method("post"), h.Action("/auth/logout"),
		h.Button(h.Type("submit"), h.Class(class), g.Text("ログアウト")),
	)
}
