// Package tui provides the interactive task browser.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
)

// Model is the bubbletea model for the task browser. Status changes and
// deletions are applied to the manager in memory; the caller saves after
// the program exits when Dirty reports true.
type Model struct {
	mgr    *manager.Manager
	list   list.Model
	keys   KeyMap
	styles Styles
	dirty  bool
}

// New creates a task browser over the given manager.
func New(mgr *manager.Manager) Model {
	styles := DefaultStyles()
	keys := DefaultKeyMap()

	l := list.New(taskItems(mgr), newTaskDelegate(styles), 0, 0)
	l.Title = "Tasks"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Complete, keys.Pending, keys.Cancel, keys.Delete}
	}

	return Model{
		mgr:    mgr,
		list:   l,
		keys:   keys,
		styles: styles,
	}
}

// Dirty reports whether any task was changed.
func (m Model) Dirty() bool {
	return m.dirty
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Don't intercept keys while the built-in filter input is active
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Complete):
			return m.mark(func(id string) { m.mgr.MarkCompleted(id) }), nil
		case key.Matches(msg, m.keys.Pending):
			return m.mark(func(id string) { m.mgr.MarkPending(id) }), nil
		case key.Matches(msg, m.keys.Cancel):
			return m.mark(func(id string) { m.mgr.MarkCancelled(id) }), nil
		case key.Matches(msg, m.keys.Delete):
			if task, ok := m.selected(); ok {
				m.mgr.Delete(task.ID())
				m.dirty = true
				m.list.SetItems(taskItems(m.mgr))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.list.View()
}

// mark applies a status change to the selected task.
func (m Model) mark(apply func(id string)) Model {
	if task, ok := m.selected(); ok {
		apply(task.ID())
		m.dirty = true
		m.list.SetItems(taskItems(m.mgr))
	}
	return m
}

// selected returns the task under the cursor.
func (m Model) selected() (*domain.Task, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return nil, false
	}
	return item.task, true
}

// taskItems converts the manager's tasks to list items.
func taskItems(mgr *manager.Manager) []list.Item {
	tasks := mgr.All()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	return items
}
