// Package tui is the terminal client for the todo API. It mirrors the
// collection in local view state, renders a filtered view, and issues one
// REST call per user action, patching local state from the server's
// response. No optimistic updates: a failed call leaves state untouched.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoapp/internal/client"
	"todoapp/internal/models"
)

// Filter selects which items are rendered. Never sent to the server.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// FocusArea represents which part of the UI has focus.
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusList
)

// Messages produced by API commands.
type (
	todosLoadedMsg      struct{ todos []models.Todo }
	todoCreatedMsg      struct{ todo models.Todo }
	todoUpdatedMsg      struct{ todo models.Todo }
	todoDeletedMsg      struct{ id string }
	completedClearedMsg struct{ count int64 }
	requestFailedMsg    struct{ message string }
)

// Model is the bubbletea model for the todo client.
type Model struct {
	api    *client.Client
	styles *Styles

	todos   []models.Todo
	filter  Filter
	loading bool

	focus  FocusArea
	cursor int

	draft textinput.Model

	editingID string
	editInput textinput.Model

	status string
	errMsg string

	width  int
	height int
}

// NewModel creates the client model over an API client.
func NewModel(api *client.Client) *Model {
	draft := textinput.New()
	draft.Placeholder = "What needs to be done?"
	draft.CharLimit = 200
	draft.Focus()

	edit := textinput.New()
	edit.CharLimit = 200

	return &Model{
		api:       api,
		styles:    NewStyles(DefaultTheme),
		focus:     FocusInput,
		draft:     draft,
		editInput: edit,
	}
}

// Init triggers the initial full-collection fetch.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.fetchTodos, textinput.Blink)
}

// --- commands -----------------------------------------------------------

func (m *Model) fetchTodos() tea.Msg {
	todos, err := m.api.List(context.Background())
	if err != nil {
		return requestFailedMsg{message: "Failed to fetch todos. Make sure the server is running."}
	}
	return todosLoadedMsg{todos: todos}
}

func (m *Model) createTodo(text string) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.api.Create(context.Background(), models.CreateTodoRequest{Text: text})
		if err != nil {
			return requestFailedMsg{message: "Failed to add todo"}
		}
		return todoCreatedMsg{todo: *todo}
	}
}

func (m *Model) updateTodo(id string, req models.UpdateTodoRequest) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.api.Update(context.Background(), id, req)
		if err != nil {
			return requestFailedMsg{message: "Failed to update todo"}
		}
		return todoUpdatedMsg{todo: *todo}
	}
}

func (m *Model) deleteTodo(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.Delete(context.Background(), id); err != nil {
			return requestFailedMsg{message: "Failed to delete todo"}
		}
		return todoDeletedMsg{id: id}
	}
}

func (m *Model) clearCompleted() tea.Msg {
	res, err := m.api.ClearCompleted(context.Background())
	if err != nil {
		return requestFailedMsg{message: "Failed to clear completed todos"}
	}
	return completedClearedMsg{count: res.Count}
}

// --- update -------------------------------------------------------------

// Update handles messages and key events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todosLoadedMsg:
		m.loading = false
		m.todos = msg.todos
		m.clampCursor()
		return m, nil

	case todoCreatedMsg:
		m.todos = append(m.todos, msg.todo)
		m.draft.SetValue("")
		m.status = "Added"
		m.errMsg = ""
		return m, nil

	case todoUpdatedMsg:
		// Last response to resolve wins for that item.
		for i, t := range m.todos {
			if t.ID == msg.todo.ID {
				m.todos[i] = msg.todo
				break
			}
		}
		m.errMsg = ""
		return m, nil

	case todoDeletedMsg:
		kept := m.todos[:0]
		for _, t := range m.todos {
			if t.ID != msg.id {
				kept = append(kept, t)
			}
		}
		m.todos = kept
		m.clampCursor()
		m.errMsg = ""
		return m, nil

	case completedClearedMsg:
		// Recompute locally from the completed flags rather than trusting
		// the server's count.
		kept := m.todos[:0]
		for _, t := range m.todos {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		m.todos = kept
		m.clampCursor()
		m.status = fmt.Sprintf("Cleared %d completed", msg.count)
		m.errMsg = ""
		return m, nil

	case requestFailedMsg:
		m.loading = false
		m.errMsg = msg.message
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingID != "" {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.focus == FocusList || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "tab":
		m.toggleFocus()
		return m, nil
	}

	if m.focus == FocusInput {
		if msg.String() == "enter" {
			return m, m.submitDraft()
		}
		var cmd tea.Cmd
		m.draft, cmd = m.draft.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.VisibleTodos())-1 {
			m.cursor++
		}
	case "enter", " ":
		return m, m.toggleSelected()
	case "e":
		m.beginEdit()
	case "d", "x":
		if t, ok := m.selected(); ok {
			return m, m.deleteTodo(t.ID)
		}
	case "C":
		if m.CompletedCount() > 0 {
			return m, m.clearCompleted
		}
	case "r":
		m.loading = true
		return m, m.fetchTodos
	case "f":
		m.filter = (m.filter + 1) % 3
		m.clampCursor()
	case "1":
		m.filter = FilterAll
		m.clampCursor()
	case "2":
		m.filter = FilterActive
		m.clampCursor()
	case "3":
		m.filter = FilterCompleted
		m.clampCursor()
	}
	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.saveEdit()
	case "esc":
		m.cancelEdit()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	cmds = append(cmds, cmd)
	m.editInput, cmd = m.editInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput {
		m.focus = FocusList
		m.draft.Blur()
	} else {
		m.focus = FocusInput
		m.draft.Focus()
	}
}

// submitDraft issues a create unless the trimmed draft is empty, in which
// case the keystroke is ignored.
func (m *Model) submitDraft() tea.Cmd {
	text := strings.TrimSpace(m.draft.Value())
	if text == "" {
		return nil
	}
	return m.createTodo(text)
}

// toggleSelected inverts the completed flag of the item under the cursor.
// A no-op while that item is being edited.
func (m *Model) toggleSelected() tea.Cmd {
	t, ok := m.selected()
	if !ok || t.ID == m.editingID {
		return nil
	}
	completed := !t.Completed
	return m.updateTodo(t.ID, models.UpdateTodoRequest{Completed: &completed})
}

func (m *Model) beginEdit() {
	t, ok := m.selected()
	if !ok {
		return
	}
	m.editingID = t.ID
	m.editInput.SetValue(t.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.draft.Blur()
}

func (m *Model) cancelEdit() {
	m.editingID = ""
	m.editInput.SetValue("")
	m.editInput.Blur()
	if m.focus == FocusInput {
		m.draft.Focus()
	}
}

// saveEdit submits the trimmed edit draft. An empty draft behaves as
// cancel: edit mode exits and no request is issued.
func (m *Model) saveEdit() tea.Cmd {
	id := m.editingID
	text := strings.TrimSpace(m.editInput.Value())
	m.cancelEdit()
	if text == "" {
		return nil
	}
	return m.updateTodo(id, models.UpdateTodoRequest{Text: &text})
}

func (m *Model) selected() (models.Todo, bool) {
	visible := m.VisibleTodos()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.Todo{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if max := len(m.VisibleTodos()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// VisibleTodos returns the local collection filtered by the active
// filter, recomputed on every call.
func (m *Model) VisibleTodos() []models.Todo {
	switch m.filter {
	case FilterActive:
		return filterTodos(m.todos, func(t models.Todo) bool { return !t.Completed })
	case FilterCompleted:
		return filterTodos(m.todos, func(t models.Todo) bool { return t.Completed })
	default:
		return m.todos
	}
}

// ActiveCount is the number of not-completed items in local state.
func (m *Model) ActiveCount() int {
	return len(filterTodos(m.todos, func(t models.Todo) bool { return !t.Completed }))
}

// CompletedCount is the number of completed items in local state.
func (m *Model) CompletedCount() int {
	return len(filterTodos(m.todos, func(t models.Todo) bool { return t.Completed }))
}

func filterTodos(todos []models.Todo, keep func(models.Todo) bool) []models.Todo {
	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
