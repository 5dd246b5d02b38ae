package buffer

import (
	"log/slog"

	"github.com/alek3y/exa/internal/grapheme"
)

// Insert writes text at the cursor and moves the cursor past it.
func (b *Buffer) Insert(text []byte) {
	if len(text) == 0 {
		return
	}

	b.store.GapMove(b.store.Physical(b.cursor.Offset))
	b.cursor.Offset = b.store.gap.Start

	if n := b.store.GapLen(); len(text) > n {
		b.store.GapResize(len(text))
		b.log.Debug("gap resized", slog.Int("from", n), slog.Int("to", len(text)))
	}
	b.store.write(text)

	b.cursor.Offset += len(text)
	b.cursor.Position = advance(b.cursor.Position, string(text))
}

func (b *Buffer) InsertString(s string) {
	b.Insert([]byte(s))
}

// advance returns the position reached after walking text from pos.
func advance(pos Position, text string) Position {
	grapheme.Each(text, func(_ int, cluster string) bool {
		if grapheme.HasNewline(cluster) {
			pos.Line++
			pos.Column = 0
			return true
		}
		pos.Column++
		return true
	})
	return pos
}
