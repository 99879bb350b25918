// Package cli holds the dependencies shared by the dockyard commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/scenario"
)

// Options are the global command-line settings.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	var mopts []config.ManagerOption
	if opts.ConfigFile != "" {
		mopts = append(mopts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(mopts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := cfg.LoggingConfig()
	if opts.LogLevel != "" {
		level, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		logCfg.Level = level
	}
	logCfg.Out = opts.LogOutput
	if logCfg.Out == nil {
		logCfg.Out = os.Stderr
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     logging.WithContext(context.Background(), logging.New(logCfg)),
	}, nil
}

// Context returns the base context carrying the logger.
func (a *App) Context() context.Context { return a.ctx }

// ScenarioOptions converts the loaded config for the scenario runner.
func (a *App) ScenarioOptions() scenario.Options {
	return scenario.Options{
		Dock:       a.Config.DockOptions(),
		Drag:       a.Config.DragOptions(),
		Indicators: a.Config.IndicatorOptions(),
	}
}
