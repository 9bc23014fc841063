package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/demodash/internal/api"
	"github.com/nhle/demodash/internal/app"
	"github.com/nhle/demodash/internal/credential"
	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(),
		"path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "demodash: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	creds, err := credential.Open()
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.StatePath), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	state, err := store.NewStateStore(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer state.Close()

	client := api.NewClient(cfg.Server.BaseURL, creds, logger)
	pollInterval := time.Duration(cfg.Chat.PollIntervalSec) * time.Second

	m := app.New(creds, client, state, logger, pollInterval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}

// newLogger builds a file-backed logger. Stdout belongs to the
// terminal UI, so nothing may ever be written there.
func newLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
