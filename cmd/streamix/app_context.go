package main

import (
	"io"
	"net/http"

	"github.com/alexisbeaulieu97/streamix/internal/config"
	"github.com/alexisbeaulieu97/streamix/internal/logger"
	"github.com/alexisbeaulieu97/streamix/internal/provider"
	"github.com/alexisbeaulieu97/streamix/internal/provider/tmdb"
	"github.com/alexisbeaulieu97/streamix/internal/provider/tvmaze"
)

// outputMode decides where logs go: the browser owns the terminal, so it
// logs to a file.
type outputMode int

const (
	outputCLI outputMode = iota
	outputTUI
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Gateway   *provider.Gateway
	SessionID string

	closers []io.Closer
}

// newAppContext loads configuration and wires the logger and the provider
// gateway. stderr receives CLI-mode logs.
func newAppContext(flags *rootFlags, mode outputMode, stderr io.Writer, httpClient *http.Client) (*AppContext, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:     flags.configPath,
		Required: flags.configPath != "",
	})
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the configuration file or run without --config to use the defaults.")
	}

	app := &AppContext{Config: cfg, SessionID: logger.NewSessionID()}

	log, err := app.buildLogger(flags, mode, stderr)
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Check that the log directory is writable or set log.file in the configuration.")
	}
	app.Logger = log.With("session_id", app.SessionID)

	var primary provider.Source
	if cfg.HasAPIKey() {
		client, err := tmdb.NewClient(tmdb.Options{
			APIKey:       cfg.TMDB.APIKey,
			BaseURL:      cfg.TMDB.BaseURL,
			ImageBaseURL: cfg.TMDB.ImageBaseURL,
			Language:     cfg.TMDB.Language,
			GenreID:      cfg.TMDB.GenreID,
			HTTPClient:   httpClient,
		})
		if err != nil {
			return nil, newCommandError("start", "configuring the TMDB client", err, "Check tmdb settings in the configuration file.")
		}
		primary = client
	}

	secondary := tvmaze.NewClient(tvmaze.Options{
		BaseURL:      cfg.TVMaze.BaseURL,
		ImageBaseURL: cfg.TVMaze.ImageBaseURL,
		HTTPClient:   httpClient,
	})

	app.Gateway = provider.NewGateway(primary, secondary, app.Logger)
	app.Logger.WithFields(map[string]any{
		"primary": app.Gateway.HasPrimary(),
		"theme":   cfg.UI.Theme,
	}).Debug("application context ready")

	return app, nil
}

func (a *AppContext) buildLogger(flags *rootFlags, mode outputMode, stderr io.Writer) (*logger.Logger, error) {
	level := a.Config.Log.Level
	if flags.verbose {
		level = "debug"
	}

	if mode == outputCLI {
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr})
	}

	path := a.Config.Log.File
	if path == "" {
		var err error
		if path, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	file, err := logger.FileWriter(path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, file)
	return logger.New(logger.Options{Level: level, Writer: file})
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
