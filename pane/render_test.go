package pane

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/alek3y/exa/buffer"
	"github.com/alek3y/exa/config"
)

var numbered = config.LineNumbersConfig{Enable: true, Suffix: "|", Foreground: "#808281", Background: "#282a2e"}

func plainStyle(ln config.LineNumbersConfig) *Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	st := NewStyle(r, ln)
	return &st
}

func newTestModel(content string, ln config.LineNumbersConfig) Model {
	b := buffer.FromBytes("test.txt", []byte(content), buffer.Options{})
	return New(b, Config{LineNumbers: ln, Style: plainStyle(ln)}).SetSize(40, 10)
}

func TestRenderLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		ln      config.LineNumbersConfig
		width   int
		place   *buffer.Position
		want    []string
	}{
		{name: "gutter", content: "ab\ncd", ln: numbered, want: []string{"1|ab", "2|cd"}},
		{name: "no-gutter", content: "ab\ncd", want: []string{"ab", "cd"}},
		{name: "crlf-stripped", content: "ab\r\ncd", ln: numbered, want: []string{"1|ab", "2|cd"}},
		{name: "cursor-at-eol", content: "ab\ncd", ln: numbered, place: &buffer.Position{Line: 0, Column: 9}, want: []string{"1|ab ", "2|cd"}},
		{name: "empty", content: "", ln: numbered, want: []string{"1| "}},
		{name: "clipped", content: "abcdef", ln: numbered, width: 6, want: []string{"1|abcd"}},
		{name: "clipped-wide", content: "\u754c\u754c\u754cx", width: 5, want: []string{"\u754c\u754c"}},
		{name: "tab", content: "\tx", want: []string{"    x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(tc.content, tc.ln)
			if tc.width > 0 {
				m = m.SetSize(tc.width, 10)
			}
			if tc.place != nil {
				m.buf.CursorPlace(*tc.place)
			}
			if diff := cmp.Diff(tc.want, m.renderLines()); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderLines_GutterPadsDigits(t *testing.T) {
	m := newTestModel(strings.Repeat("x\n", 9)+"x", numbered)
	lines := m.renderLines()
	if len(lines) != 10 {
		t.Fatalf("lines=%d, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], " 1|") || !strings.HasPrefix(lines[9], "10|") {
		t.Fatalf("gutter not padded: %q / %q", lines[0], lines[9])
	}
}

func TestRenderLines_ReadsAcrossGap(t *testing.T) {
	m := newTestModel("ab\ncd", numbered)
	m.buf.CursorPlace(buffer.Position{Line: 1, Column: 1})
	m.buf.InsertString("XY")
	before, after := m.buf.Spans()
	if len(after) == 0 || len(before) == 0 {
		t.Fatalf("expected content on both sides of the gap: %q/%q", before, after)
	}
	if diff := cmp.Diff([]string{"1|ab", "2|cXYd"}, m.renderLines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestView_StatusLine(t *testing.T) {
	m := newTestModel("a\r\nb", numbered)
	view := m.View()
	if !strings.Contains(view, "test.txt  CRLF  Ln 1, Col 1") {
		t.Fatalf("status line missing from view:\n%s", view)
	}
}
