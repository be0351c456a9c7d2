package pages

import (
	"fmt"

	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TasksPath is where the full task list lives.
const TasksPath = "/tasks"

// Tasks is the task list across every department.
func Tasks(p dashboard.TaskPage) g.Node {
	count := h.Span(h.Class("text-sm text-gray-500"), g.Text(fmt.Sprintf("%d / %d件", len(p.Tasks.Tasks), p.Total)))
	return components.Card("タスク一覧", count,
		components.TaskFilter(TasksPath, p.Filter, false),
		components.TaskTable(p.Tasks),
	)
}
