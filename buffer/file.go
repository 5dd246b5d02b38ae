package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// New loads the file at path. A missing file yields an empty buffer; any other
// read failure is returned.
func New(path string, opt Options) (*Buffer, error) {
	content, err := os.ReadFile(path)
	existed := true
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("buffer: load %s: %w", path, err)
		}
		content, existed = nil, false
	}

	b := FromBytes(path, content, opt)
	b.log.Debug("buffer loaded",
		slog.String("path", path),
		slog.Int("bytes", len(content)),
		slog.Bool("existed", existed),
		slog.Bool("crlf", b.crlf),
		slog.String("newline", opt.Newline.String()),
	)
	return b, nil
}

// Save overwrites the file at Path with the logical content.
func (b *Buffer) Save() error {
	content := b.store.Bytes()
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(b.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(b.path, content, perm); err != nil {
		return fmt.Errorf("buffer: save %s: %w", b.path, err)
	}
	b.log.Debug("buffer saved", slog.String("path", b.path), slog.Int("bytes", len(content)))
	return nil
}

// DetectCRLF reports whether the last line feed in content is preceded by a
// carriage return. Content without a line feed is LF.
func DetectCRLF(content []byte) bool {
	i := bytes.LastIndexByte(content, '\n')
	return i > 0 && content[i-1] == '\r'
}
