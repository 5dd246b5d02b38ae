package buffer

import "log/slog"

// Buffer is the text of one file: its gap storage, the tracked cursor and the
// line ending convention fixed at load.
type Buffer struct {
	store  *GapStore
	cursor Cursor
	path   string
	crlf   bool

	log *slog.Logger
}

// FromBytes builds a Buffer over content without touching the filesystem.
// The buffer takes ownership of content.
func FromBytes(path string, content []byte, opt Options) *Buffer {
	b := &Buffer{
		store: NewGapStore(content),
		path:  path,
		log:   opt.logger(),
	}
	switch opt.Newline {
	case NewlineCRLF:
		b.crlf = true
	case NewlineLF:
		b.crlf = false
	default:
		b.crlf = DetectCRLF(content)
	}
	return b
}

func (b *Buffer) Cursor() Cursor { return b.cursor }

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) IsCRLF() bool { return b.crlf }

// Newline returns the line ending inserted for a line break.
func (b *Buffer) Newline() string {
	if b.crlf {
		return "\r\n"
	}
	return "\n"
}

func (b *Buffer) Gap() Gap { return b.store.Gap() }

func (b *Buffer) GapLen() int { return b.store.GapLen() }

func (b *Buffer) Len() int { return b.store.Len() }

// Spans returns the logical content as the two runs around the gap. They alias
// internal storage and must be fetched again after any mutation.
func (b *Buffer) Spans() (before, after []byte) { return b.store.Spans() }

func (b *Buffer) Bytes() []byte { return b.store.Bytes() }

func (b *Buffer) String() string { return string(b.store.Bytes()) }
