package components

import (
	"fmt"
	"strconv"

	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/internal/format"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AccountTableID is the element htmx swaps when the category changes.
const AccountTableID = "account-table"

var accountStatusBadges = map[string]string{
	"good":      "bg-green-100 text-green-800",
	"warning":   "bg-yellow-100 text-yellow-800",
	"danger":    "bg-red-100 text-red-800",
	"suspended": "bg-gray-100 text-gray-800",
}

var platformLabels = map[string]string{
	"twitter": "X",
	"tiktok":  "TT",
}

// AccountTable is the full Pulse account list with detail columns.
func AccountTable(accounts []dashboard.Account) g.Node {
	return h.Div(h.ID(AccountTableID), h.Class("overflow-x-auto"),
		g.If(len(accounts) == 0,
			h.P(h.Class("py-10 text-center text-gray-500"), g.Text("該当するアカウントはありません")),
		),
		g.If(len(accounts) > 0,
			h.Table(h.Class("min-w-full divide-y divide-gray-200"),
				h.THead(h.Class("bg-gray-50"),
					h.Tr(th("アカウント"), th("カテゴリー"), th("フォロワー"), th("直近投稿"), th("エンゲージメント"), th("状態")),
				),
				h.TBody(h.Class("bg-white divide-y divide-gray-200"),
					g.Map(accounts, func(a dashboard.Account) g.Node {
						cat, _ := dashboard.Lookup(dashboard.PulseCategories, a.Category)
						return accountRow(a, h.Span(h.Class("text-sm text-gray-900"), g.Text(cat.Icon+" "+cat.Label)))
					}),
				),
			),
		),
	)
}

// RecentAccounts is the short activity table on the dashboard root.
func RecentAccounts(accounts []dashboard.Account) g.Node {
	return h.Div(h.Class("overflow-x-auto"),
		h.Table(h.Class("min-w-full divide-y divide-gray-200"),
			h.THead(h.Class("bg-gray-50"),
				h.Tr(th("アカウント"), th("部門"), th("フォロワー"), th("直近投稿"), th("エンゲージメント"), th("状態")),
			),
			h.TBody(h.Class("bg-white divide-y divide-gray-200"),
				g.Map(accounts, func(a dashboard.Account) g.Node {
					cat := dashboard.Label(dashboard.PulseCategories, a.Category)
					return accountRow(a, h.Div(h.Class("flex items-center"),
						h.Span(h.Class("inline-block w-2 h-2 rounded-full bg-blue-500 mr-2")),
						h.Span(h.Class("text-sm text-gray-900"), g.Textf("Pulse (%s)", cat)),
					))
				}),
			),
		),
	)
}

func accountRow(a dashboard.Account, second g.Node) g.Node {
	return h.Tr(
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"),
			h.Div(h.Class("flex items-center"),
				h.Div(h.Class("flex-shrink-0 h-8 w-8 rounded-full bg-blue-100 flex items-center justify-center text-blue-500 text-xs"),
					g.Text(platformLabel(a.Platform)),
				),
				h.Div(h.Class("ml-4"),
					h.Div(h.Class("text-sm font-medium text-gray-900"), g.Text(a.Handle)),
					h.Div(h.Class("text-xs text-gray-500"), g.Text(a.LoginID)),
				),
			),
		),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"), second),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"),
			h.Div(h.Class("text-sm text-gray-900"), g.Text(format.Number(int64(a.Followers)))),
			h.Div(h.Class("text-xs "+trendColor(float64(a.FollowerChange))), g.Text(signedInt(a.FollowerChange)+" (24h)")),
		),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap text-sm text-gray-500"), g.Text(a.LastPost)),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"),
			h.Div(h.Class("text-sm text-gray-900"), g.Text(format.Percent(a.Engagement, 1))),
			h.Div(h.Class("text-xs "+trendColor(a.EngagementChange)), g.Text(format.SignedPercent(a.EngagementChange, 1))),
		),
		h.Td(h.Class("px-6 py-4 whitespace-nowrap"),
			Badge(dashboard.Label(dashboard.AccountStatuses, a.Status), accountStatusBadges[a.Status]),
		),
	)
}

func platformLabel(platform string) string {
	if l, ok := platformLabels[platform]; ok {
		return l
	}
	return format.Truncate(platform, 2, "…")
}

func trendColor(v float64) string {
	if v < 0 {
		return "text-red-600"
	}
	return "text-green-600"
}

func signedInt(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return fmt.Sprint(n)
}
