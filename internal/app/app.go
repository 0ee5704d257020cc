package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logging"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the shelf application. Non-empty fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	APIURL     string
	Start      string // "/" or "/books/{id}"
}

// Run boots the shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	uiOpts.Logger.Info().
		Str("api_url", uiOpts.APIURL).
		Str("start", uiOpts.Start.String()).
		Msg("starting shelf")
	if err := ui.Run(uiOpts); err != nil {
		uiOpts.Logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setup resolves every dependency of the UI. The returned closer releases the
// log file.
func setup(ctx context.Context, opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	if api := strings.TrimSpace(opts.APIURL); api != "" {
		cfg.APIURL = api
	}

	start, err := ui.ParseRoute(opts.Start)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("start route: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("open log: %w", err)
	}

	client, err := bookshelf.NewClient(cfg.APIURL, logger)
	if err != nil {
		closer.Close()
		return ui.Options{}, nil, fmt.Errorf("init api client: %w", err)
	}

	prefsPath, err := prefs.Path(opts.PrefsPath)
	if err != nil {
		// Preferences are optional; the theme just won't persist.
		logger.Warn().Err(err).Msg("resolve prefs path")
		prefsPath = ""
	}
	userPrefs := prefs.Load(prefsPath)

	return ui.Options{
		Context:   ctx,
		Catalog:   client,
		Logger:    logger.With().Str("component", "ui").Logger(),
		APIURL:    client.BaseURL(),
		Start:     start,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	}, closer, nil
}
