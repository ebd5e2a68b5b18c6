package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/config"
	"github.com/clinbook/clinbook/internal/log"
	"github.com/clinbook/clinbook/internal/ux"
)

// appContext bundles the wired-up client stack for a command invocation
type appContext struct {
	cfg         config.Config
	logger      *log.Logger
	store       auth.Store
	invalidator *auth.Invalidator
	resolver    *auth.Resolver
	client      *api.Client
}

// newAppContext loads configuration, applies flag overrides, and wires the
// session store, invalidator, resolver, and API client together
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	if flagHome != "" {
		// The config file itself lives under the home directory, so the
		// override must apply before the file is read.
		if err := os.Setenv("CLINBOOK_HOME", flagHome); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		// lipgloss and termenv both honor the NO_COLOR convention.
		if err := os.Setenv("NO_COLOR", "1"); err != nil {
			return nil, err
		}
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	store := auth.NewFileStore(cfg.Home, logger)
	invalidator := auth.NewInvalidator(store, nil, logger)
	client := api.NewClient(cfg.APIBaseURL, store, invalidator, logger)
	client.SetTimeout(cfg.HTTPTimeout)

	// A restored session must still be revocable: a 401 against persisted
	// credentials clears them exactly once, same as the interactive client.
	if session, err := store.Load(cmd.Context()); err == nil && !session.Empty() {
		invalidator.Arm()
	}

	return &appContext{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		invalidator: invalidator,
		resolver:    auth.NewResolver(store, logger),
		client:      client,
	}, nil
}

// formatter builds the output formatter selected by --format
func (a *appContext) formatter() (ux.Formatter, error) {
	return ux.NewFormatter(flagFormat, nil)
}
