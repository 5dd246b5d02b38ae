package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alek3y/exa"
	"github.com/alek3y/exa/buffer"
	"github.com/alek3y/exa/config"
	"github.com/alek3y/exa/pane"
)

type model struct {
	pane pane.Model
}

func (m model) Init() tea.Cmd { return m.pane.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.pane.View() }

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "exa:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("exa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: user config dir/exa/config.toml)")
	version := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: exa [-config path] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *version {
		fmt.Fprintln(stderr, exa.VersionTag())
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one file argument, got %d", fs.NArg())
	}

	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := loadSettings(*configPath)
	if err != nil {
		return err
	}

	opt := settings.BufferOptions()
	opt.Logger = log
	buf, err := buffer.New(fs.Arg(0), opt)
	if err != nil {
		return err
	}

	cfg := pane.FromSettings(settings)
	cfg.Logger = log
	p := tea.NewProgram(model{pane: pane.New(buf, cfg)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func loadSettings(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// newLogger writes JSON lines to EXA_LOG_FILE, or to ./exa.log when EXA_LOG is
// truthy. Logging is disabled otherwise.
func newLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("EXA_LOG_FILE")
	if v := os.Getenv("EXA_LOG"); path == "" && v != "" && v != "0" && v != "false" {
		path = filepath.Join(".", "exa.log")
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
