package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"memos-widget/internal/checklist"
	"memos-widget/pkg/log"
)

type mode int

const (
	modePanel mode = iota
	modePopup
	modeAdd
)

type rotateTickMsg struct{}

type fetchTickMsg struct{}

// refreshMsg asks for a pull without touching the fetch timer.
type refreshMsg struct{}

type openedMsg struct {
	cmd string
	err error
}

type model struct {
	opts Options
	keys keyMap
	help help.Model

	mode   mode
	panel  string
	popup  checklist.PopupOutput
	cursor int
	input  textinput.Model

	status    string
	statusErr bool

	width  int
	height int
}

func newModel(opts Options) model {
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}

	in := textinput.New()
	in.Prompt = "☐ "
	in.Placeholder = "New task…"
	in.CharLimit = 4096

	return model{
		opts:  opts,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: in,
	}
}

func traceCtx() context.Context {
	return log.WithTraceID(context.Background(), uuid.NewString())
}

func (m model) rotateTick() tea.Cmd {
	return tea.Tick(m.opts.Settings.RotationInterval(), func(time.Time) tea.Msg { return rotateTickMsg{} })
}

// fetchTick is re-armed after every fire so a changed interval applies on the
// next cycle.
func (m model) fetchTick() tea.Cmd {
	return tea.Tick(m.opts.Settings.FetchInterval(), func(time.Time) tea.Msg { return fetchTickMsg{} })
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return refreshMsg{} },
		m.rotateTick(),
		m.fetchTick(),
	)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case rotateTickMsg:
		m.panel = m.opts.UseCase.Rotate(traceCtx())
		return m, m.rotateTick()

	case fetchTickMsg:
		m = m.pull()
		return m, m.fetchTick()

	case refreshMsg:
		return m.pull(), nil

	case openedMsg:
		if msg.err != nil {
			m = m.fail(fmt.Sprintf("open failed: %v", msg.err))
		} else {
			m = m.note(msg.cmd)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modePopup:
			return m.updatePopup(msg)
		default:
			return m.updatePanel(msg)
		}
	}

	return m, nil
}

func (m model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Popup):
		m.mode = modePopup
		m.popup = m.opts.UseCase.OpenPopup(traceCtx())
		m.panel = m.opts.UseCase.CurrentPanelLine()
		m.cursor = clamp(m.cursor, len(m.popup.Rows))
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m.pull(), nil
	case key.Matches(msg, m.keys.Open):
		return m, m.openMemo()
	case key.Matches(msg, m.keys.Copy):
		return m.copy(m.panel), nil
	}
	return m, nil
}

func (m model) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.mode = modePanel
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.popup.Rows)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		return m.edit("toggle", func(ctx context.Context) (checklist.EditOutput, error) {
			return m.opts.UseCase.Toggle(ctx, m.cursor)
		})
	case key.Matches(msg, m.keys.Delete):
		return m.edit("delete", func(ctx context.Context) (checklist.EditOutput, error) {
			return m.opts.UseCase.Delete(ctx, m.cursor)
		})
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Refresh):
		return m.pull(), nil
	case key.Matches(msg, m.keys.Open):
		return m, m.openMemo()
	case key.Matches(msg, m.keys.Copy):
		if m.cursor < len(m.popup.Rows) {
			return m.copy(m.popup.Rows[m.cursor].Text), nil
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modePopup
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		body := m.input.Value()
		m.mode = modePopup
		m.input.Blur()
		m.input.Reset()
		next, cmd := m.edit("add", func(ctx context.Context) (checklist.EditOutput, error) {
			return m.opts.UseCase.Add(ctx, body)
		})
		nm := next.(model)
		if out := nm.popup.Rows; len(out) > 0 && strings.TrimSpace(body) != "" {
			nm.cursor = len(out) - 1
		}
		return nm, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// edit runs one mutation, refreshes both views and, when the push went
// through, schedules a pull so the widget shows what the server stored.
func (m model) edit(op string, fn func(ctx context.Context) (checklist.EditOutput, error)) (tea.Model, tea.Cmd) {
	ctx := traceCtx()
	out, err := fn(ctx)
	if err != nil {
		m.opts.Logger.Warnf(ctx, "tui: %s failed: %v", op, err)
		m = m.fail(fmt.Sprintf("%s failed: %v", op, err))
		return m.sync(), nil
	}

	m = m.sync()
	if !out.Applied {
		return m, nil
	}
	if !out.Pushed {
		return m.fail("saved locally, Memos did not accept the change"), nil
	}
	m = m.note(op + " saved")
	return m, func() tea.Msg { return refreshMsg{} }
}

func (m model) pull() model {
	ctx := traceCtx()
	out, err := m.opts.UseCase.Pull(ctx)
	m = m.sync()
	if err != nil {
		if out.FromCache {
			return m.fail("offline, showing cached copy")
		}
		return m.fail("Memos unreachable, showing last copy")
	}
	m.status = ""
	m.statusErr = false
	return m
}

// sync copies what the views show out of the use case.
func (m model) sync() model {
	m.panel = m.opts.UseCase.CurrentPanelLine()
	m.popup = m.opts.UseCase.PopupRows()
	m.cursor = clamp(m.cursor, len(m.popup.Rows))
	return m
}

func (m model) openMemo() tea.Cmd {
	if m.opts.Open == nil || m.opts.MemoURL == "" {
		return nil
	}
	open, target := m.opts.Open, m.opts.MemoURL
	return func() tea.Msg {
		cmd, err := open(target)
		return openedMsg{cmd: cmd, err: err}
	}
}

func (m model) copy(text string) model {
	if m.opts.Copy == nil || text == "" {
		return m
	}
	if err := m.opts.Copy(text); err != nil {
		return m.fail(fmt.Sprintf("copy failed: %v", err))
	}
	return m.note("copied")
}

func (m model) note(s string) model {
	m.status, m.statusErr = s, false
	return m
}

func (m model) fail(s string) model {
	m.status, m.statusErr = s, true
	return m
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
