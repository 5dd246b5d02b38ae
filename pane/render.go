package pane

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alek3y/exa/buffer"
	"github.com/alek3y/exa/internal/grapheme"
)

// logicalLines joins the runs around the gap and splits them into lines with
// their line endings removed.
func logicalLines(b *buffer.Buffer) []string {
	before, after := b.Spans()
	var sb strings.Builder
	sb.Grow(len(before) + len(after))
	sb.Write(before)
	sb.Write(after)

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.LineNumbers.Enable {
		return 0
	}
	return gutterDigits(lineCount) + grapheme.Width(m.cfg.LineNumbers.Suffix)
}

// renderLines renders every logical line. The cursor cell is drawn on the
// cursor line; lines are clipped to the pane width.
func (m *Model) renderLines() []string {
	lines := logicalLines(m.buf)
	cursor := m.buf.Cursor().Position

	digits := gutterDigits(len(lines))
	contentWidth := -1
	if m.width > 0 {
		contentWidth = m.width - m.gutterWidth(len(lines))
		if contentWidth < 1 {
			contentWidth = 1
		}
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.LineNumbers.Enable {
			sb.WriteString(m.style.Gutter.Render(fmt.Sprintf("%*d%s", digits, row+1, m.cfg.LineNumbers.Suffix)))
		}

		cursorCol := -1
		if row == cursor.Line {
			cursorCol = cursor.Column
		}
		sb.WriteString(m.renderText(line, cursorCol, contentWidth))
		out = append(out, sb.String())
	}
	return out
}

func (m *Model) renderText(line string, cursorCol, width int) string {
	var sb strings.Builder
	used := 0
	col := 0
	fits := func(w int) bool { return width < 0 || used+w <= width }

	for _, cluster := range grapheme.Split(line) {
		text := cluster
		if cluster == "\t" {
			text = strings.Repeat(" ", m.cfg.TabWidth)
		}
		w := grapheme.Width(text)
		if !fits(w) {
			break
		}
		if col == cursorCol {
			sb.WriteString(m.style.Cursor.Render(text))
		} else {
			sb.WriteString(m.style.Text.Render(text))
		}
		used += w
		col++
	}

	if cursorCol >= col && cursorCol == grapheme.Count(line) && fits(1) {
		sb.WriteString(m.style.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) renderStatus() string {
	nl := "LF"
	if m.buf.IsCRLF() {
		nl = "CRLF"
	}
	pos := m.buf.Cursor().Position
	s := fmt.Sprintf("%s  %s  Ln %d, Col %d", m.buf.Path(), nl, pos.Line+1, pos.Column+1)
	if m.status != "" {
		s += "  " + m.status
	}
	return m.style.Status.Render(s)
}
