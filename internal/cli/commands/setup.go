package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbtcheck/dbtcheck/internal/cli/config"
	"github.com/dbtcheck/dbtcheck/internal/cli/output"
	"github.com/dbtcheck/dbtcheck/internal/tracking"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Tracker  *tracking.Tracker
}

// NewCommandContext assembles config, logger, renderer, and tracker for
// a command. Returns a cleanup function that must be called (typically
// via defer). A tracking store that fails to open downgrades to a
// disabled tracker; tracking never blocks a hook run.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func()) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	var store *tracking.Store
	if cfg.Tracking.Enabled && cfg.Tracking.Path != "" {
		if dir := filepath.Dir(cfg.Tracking.Path); dir != "." && dir != "" {
			_ = os.MkdirAll(dir, 0750)
		}
		var err error
		store, err = tracking.Open(cfg.Tracking.Path)
		if err != nil {
			logger.Debug("tracking store unavailable", "path", cfg.Tracking.Path, "error", err)
			store = nil
		}
	}
	tracker := tracking.NewTracker(store, logger)

	cleanup := func() {
		_ = tracker.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Tracker:  tracker,
	}, cleanup
}

// getConfig returns the loaded configuration, falling back to defaults
// rooted in the working directory when commands run outside the normal
// root-command flow (mostly direct invocation in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	return &config.Config{
		ProjectRoot:  cwd,
		ManifestPath: filepath.Join(cwd, config.DefaultManifestPath),
		OutputFormat: config.DefaultOutput,
		Tracking: config.TrackingConfig{
			Enabled: false,
		},
	}
}
