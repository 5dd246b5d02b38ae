package pane

import (
	"log/slog"

	"github.com/alek3y/exa/config"
)

// Config configures the pane Model.
type Config struct {
	LineNumbers config.LineNumbersConfig

	// Nil fields fall back to NewStyle(nil, LineNumbers) and DefaultKeyMap().
	Style  *Style
	KeyMap *KeyMap

	TabWidth int // default: 4

	Logger *slog.Logger
}

// FromSettings returns the pane configuration for loaded settings.
func FromSettings(c *config.Config) Config {
	return Config{LineNumbers: c.Pane.LineNumbers}
}
