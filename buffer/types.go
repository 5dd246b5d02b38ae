package buffer

import "fmt"

// Position addresses the document by (line, column), both 0-based. Column
// counts grapheme clusters.
type Position struct {
	Line   int
	Column int
}

func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Compare returns -1, 0 or 1 as p sorts before, with, or after q.
func (p Position) Compare(q Position) int {
	return ComparePosition(p, q)
}

func (p Position) Less(q Position) bool { return ComparePosition(p, q) < 0 }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func ComparePosition(a, b Position) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Column < b.Column {
		return -1
	}
	if a.Column > b.Column {
		return 1
	}
	return 0
}

// Cursor pairs a Position with the logical byte offset it denotes.
type Cursor struct {
	Position Position
	Offset   int
}

func NewCursor(pos Position, offset int) Cursor {
	return Cursor{Position: pos, Offset: offset}
}

func (c Cursor) String() string {
	return fmt.Sprintf("%s@%d", c.Position, c.Offset)
}
