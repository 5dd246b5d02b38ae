package buffer

import "log/slog"

// NewlineMode selects how a Buffer decides its line ending convention.
type NewlineMode uint8

const (
	// NewlineDetect inspects the last line feed of the loaded content.
	NewlineDetect NewlineMode = iota
	NewlineLF
	NewlineCRLF
)

func (m NewlineMode) String() string {
	switch m {
	case NewlineDetect:
		return "detect"
	case NewlineLF:
		return "lf"
	case NewlineCRLF:
		return "crlf"
	default:
		return "unknown"
	}
}

type Options struct {
	Newline NewlineMode

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
