package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ktsujichan/taskie/internal/domain"
)

// taskItem adapts a task for the bubbles list component.
type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title()
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = ">"
	}

	titleStyle := d.styles.Normal
	switch {
	case task.Status() == domain.StatusCompleted:
		titleStyle = d.styles.Completed
	case task.Status() == domain.StatusCancelled:
		titleStyle = d.styles.Cancelled
	case task.OverdueAt(time.Now()):
		titleStyle = d.styles.Overdue
	}
	if selected {
		titleStyle = titleStyle.Bold(true)
	}

	line := "  " + d.styles.Selected.Render(indicator) + " "
	line += "[" + task.Status().Glyph() + "] "
	line += task.Priority().Glyph() + " "
	line += titleStyle.Render(task.Title())
	if task.HasDueDate() {
		line += d.styles.Meta.Render(" (Due: " + task.DueDate() + ")")
	}
	if task.Category() != "" {
		line += d.styles.Meta.Render(" #" + task.Category())
	}

	_, _ = fmt.Fprint(w, line)
}
