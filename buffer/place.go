package buffer

// CursorPlace moves the tracked cursor to target, or to the nearest reachable
// cursor when target is past the end of its line or of the buffer.
func (b *Buffer) CursorPlace(target Position) {
	if target == b.cursor.Position {
		return
	}

	before, after := b.store.Spans()
	cur, ok := Locate(string(before), target, Cursor{})
	if ok {
		b.cursor = cur
		return
	}

	// Content resumes after the gap; its first logical byte is gap.Start.
	cur.Offset = b.store.gap.Start
	cur, ok = Locate(string(after), target, cur)
	if ok {
		b.cursor = cur
		return
	}

	// Both runs ended before target: either the line was never reached or
	// its column lies past the last character. Both resolve to the append
	// position after the final byte.
	cur.Offset = b.store.Len()
	b.cursor = cur
}
