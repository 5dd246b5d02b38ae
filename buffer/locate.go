package buffer

import "github.com/alek3y/exa/internal/grapheme"

// Locate walks text cluster by cluster, starting at start, looking for the
// cursor that denotes target. text is any contiguous span of logical content
// and start is the cursor at its first byte.
//
// A target column past the end of its line resolves to that line's newline
// cluster. If text ends first, Locate returns false and the furthest cursor
// reached: its Position is one past the last cluster while its Offset is that
// cluster's start.
func Locate(text string, target Position, start Cursor) (Cursor, bool) {
	cur := start
	found := false

	grapheme.Each(text, func(i int, cluster string) bool {
		cur.Offset = start.Offset + i
		if cur.Position == target {
			found = true
			return false
		}

		cur.Position.Column++
		if !grapheme.HasNewline(cluster) {
			return true
		}
		if cur.Position.Line == target.Line {
			cur.Position.Column--
			found = true
			return false
		}
		cur.Position.Line++
		cur.Position.Column = 0
		return true
	})

	return cur, found
}
