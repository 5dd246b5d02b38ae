package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Each calls fn for every grapheme cluster of text with the cluster's byte
// offset. Iteration stops early when fn returns false.
//
// Invalid UTF-8 never aborts the walk: each undecodable byte forms its own
// cluster, so offsets stay byte-accurate.
func Each(text string, fn func(offset int, cluster string) bool) {
	if text == "" {
		return
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		if !fn(from, g.Str()) {
			return
		}
	}
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// HasNewline reports whether cluster contains a line feed. A CRLF pair is a
// single cluster.
func HasNewline(cluster string) bool {
	return strings.IndexByte(cluster, '\n') >= 0
}

// Width returns the terminal cell width of cluster. Control clusters and
// zero-width clusters report 0.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		return 0
	}
	return w
}
