package pages

import (
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Account shows who is signed in.
func Account(p *domain.Profile) g.Node {
	return h.Div(h.Class("max-w-xl bg-white p-6 rounded-lg shadow-sm border border-gray-200"),
		h.H2(h.Class("text-xl font-semibold text-gray-800 mb-4"), g.Text("HIVE管理システム ダッシュボード")),
		h.Dl(h.Class("space-y-2 text-sm"),
			row("表示名", p.DisplayName()),
			row("ユーザーID", p.LoginID),
			row("メールアドレス", p.Email),
			row("役割", p.RoleLabel()),
		),
		h.Div(h.Class("mt-6"),
			layouts.LogoutButton("px-4 py-2 rounded-md bg-red-600 text-white text-sm hover:bg-red-700"),
		),
	)
}

func row(label, value string) g.Node {
	return h.Div(h.Class("flex"),
		h.Dt(h.Class("w-32 text-gray-500"), g.Text(label+":")),
		h.Dd(h.Class("text-gray-900"), g.Text(value)),
	)
}
