package pane

import (
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alek3y/exa/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg   Config
	buf   *buffer.Buffer
	keys  KeyMap
	style Style
	log   *slog.Logger

	viewport      viewport.Model
	width, height int

	status string
}

func New(buf *buffer.Buffer, cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	m := Model{
		cfg:      cfg,
		buf:      buf,
		keys:     DefaultKeyMap(),
		log:      cfg.Logger,
		viewport: viewport.New(0, 0),
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if cfg.Style != nil {
		m.style = *cfg.Style
	} else {
		m.style = NewStyle(nil, cfg.LineNumbers)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Status returns the last save result shown in the status line.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

// SetSize resizes the pane. One row is reserved for the status line.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = height - 1
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	pos := m.buf.Cursor().Position

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveLeft(pos)
	case key.Matches(msg, m.keys.Right):
		m.moveRight(pos)
	case key.Matches(msg, m.keys.Up):
		if pos.Line == 0 {
			m.buf.CursorPlace(buffer.Position{})
		} else {
			m.buf.CursorPlace(buffer.Position{Line: pos.Line - 1, Column: pos.Column})
		}
	case key.Matches(msg, m.keys.Down):
		m.buf.CursorPlace(buffer.Position{Line: pos.Line + 1, Column: pos.Column})
	case key.Matches(msg, m.keys.Home):
		m.buf.CursorPlace(buffer.Position{Line: pos.Line})
	case key.Matches(msg, m.keys.End):
		m.buf.CursorPlace(buffer.Position{Line: pos.Line, Column: math.MaxInt})
	case key.Matches(msg, m.keys.Enter):
		m.insert(m.buf.Newline())
	case key.Matches(msg, m.keys.Tab):
		m.insert("\t")
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyRunes:
		m.insert(string(msg.Runes))
	default:
		return m, nil
	}

	m.rebuildContent()
	return m, nil
}

// moveLeft steps one column back, wrapping to the end of the previous line.
func (m *Model) moveLeft(pos buffer.Position) {
	switch {
	case pos.Column > 0:
		m.buf.CursorPlace(buffer.Position{Line: pos.Line, Column: pos.Column - 1})
	case pos.Line > 0:
		m.buf.CursorPlace(buffer.Position{Line: pos.Line - 1, Column: math.MaxInt})
	}
}

// moveRight steps one column forward, wrapping to the start of the next
// line once the end of the line is reached.
func (m *Model) moveRight(pos buffer.Position) {
	m.buf.CursorPlace(buffer.Position{Line: pos.Line, Column: pos.Column + 1})
	if m.buf.Cursor().Position == pos {
		m.buf.CursorPlace(buffer.Position{Line: pos.Line + 1})
	}
}

func (m *Model) insert(text string) {
	m.buf.InsertString(text)
	m.status = ""
}

// save runs synchronously: the buffer must not be read from a command
// goroutine while Update mutates it.
func (m *Model) save() {
	if err := m.buf.Save(); err != nil {
		m.status = "error: " + err.Error()
		m.log.Error("save failed", slog.String("path", m.buf.Path()), slog.Any("err", err))
		return
	}
	m.status = "saved"
	m.log.Info("saved", slog.String("path", m.buf.Path()), slog.Int("bytes", m.buf.Len()))
}

func (m *Model) rebuildContent() {
	lines := m.renderLines()
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.followCursor()
}

// followCursor scrolls vertically so the cursor line stays visible.
func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	line := m.buf.Cursor().Position.Line
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+h:
		m.viewport.SetYOffset(line - h + 1)
	}
}
