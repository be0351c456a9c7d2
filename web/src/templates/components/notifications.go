package components

import (
	"fmt"

	"github.com/nfrund/hive/internal/dashboard"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// NotificationPanelID is the element htmx swaps when the panel is expanded.
const NotificationPanelID = "notification-panel"

var notificationIcons = map[string]string{
	"info":    "bg-blue-100 text-blue-500",
	"warning": "bg-amber-100 text-amber-500",
	"success": "bg-green-100 text-green-500",
	"error":   "bg-red-100 text-red-500",
}

var notificationGlyphs = map[string]string{
	"info":    "i",
	"warning": "!",
	"success": "✓",
	"error":   "×",
}

// NotificationPanel lists notifications and links to the folded ones.
// path is the page the toggle link reloads with the panel expanded or folded.
func NotificationPanel(v dashboard.NotificationsView, path string, f dashboard.Filter) g.Node {
	toggle := f.With(func(f *dashboard.Filter) { f.AllNotifications = !v.Expanded }).URL(path)

	return h.Div(h.ID(NotificationPanelID),
		Card("通知", g.If(v.Unread > 0, h.Span(h.Class("text-xs text-amber-500"), g.Textf("未読 %d件", v.Unread))),
			g.If(len(v.Items) == 0, h.Div(h.Class("py-10 text-center text-gray-500"), g.Text("通知はありません"))),
			h.Div(h.Class("space-y-4"), g.Map(v.Items, notification)),
			g.If(v.Hidden > 0 || v.Expanded,
				h.Div(h.Class("text-center pt-2"),
					h.A(h.Href(toggle), h.Class("text-sm text-amber-500 hover:text-amber-600"),
						hx.Get(toggle), hx.Target("#"+NotificationPanelID), hx.Swap("outerHTML"),
						g.Text(toggleLabel(v)),
					),
				),
			),
		),
	)
}

func toggleLabel(v dashboard.NotificationsView) string {
	if v.Expanded {
		return "一部のみ表示"
	}
	return fmt.Sprintf("さらに%d件表示", v.Hidden)
}

func notification(n dashboard.Notification) g.Node {
	return h.Div(
		g.If(!n.Read, h.Class("flex space-x-3 bg-gray-50 p-2 -mx-2 rounded")),
		g.If(n.Read, h.Class("flex space-x-3")),
		h.Div(h.Class("flex-shrink-0 w-8 h-8 rounded-full flex items-center justify-center "+colorOr(notificationIcons, n.Type, "info")),
			g.Text(notificationGlyphs[n.Type]),
		),
		h.Div(h.Class("flex-1 min-w-0"),
			h.P(h.Class("text-sm font-medium text-gray-900"),
				g.Text(n.Title),
				g.If(!n.Read, h.Span(h.Class("ml-2 inline-block h-2 w-2 rounded-full bg-amber-400"))),
			),
			h.P(h.Class("text-sm text-gray-500"), g.Text(n.Content)),
			h.P(h.Class("text-xs text-gray-400 mt-1"), g.Text(n.Time)),
		),
	)
}
