package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/terminal"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive terminal frontend",
	Long: `Open a demo main window in the terminal.

Drag title bars and tabs with the left mouse button to float and re-dock
groups, drag separators to resize. Esc cancels a drag, q or Ctrl-C quits.
The config file is watched. Drag and indicator settings apply as soon as
no drag is in progress.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// demoWidgets is the initial layout: a row of files | editor, with the
// log tabbed under the editor.
var demoWidgets = []struct {
	name, title string
	loc         layout.Location
	relativeTo  string
}{
	{"files", "Files", layout.LocationLeft, ""},
	{"editor", "Editor", layout.LocationRight, ""},
	{"log", "Log", layout.LocationBottom, "editor"},
	{"search", "Search", layout.LocationNone, "files"},
}

func runTUI(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	// Logging to the terminal would corrupt the screen.
	ctx := logging.WithContext(cmd.Context(), zerolog.Nop())
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	tapp, err := newTerminalApp(ctx, app, screen)
	if err != nil {
		return err
	}
	watchConfig(ctx, app, tapp)
	return ignoreCanceled(tapp.Run(ctx))
}

// watchConfig hands reloaded drag and indicator settings to the app.
// Without a config file there is nothing to watch.
func watchConfig(ctx context.Context, app *cli.App, tapp *terminal.App) {
	log := logging.FromContext(ctx)
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		tapp.Reconfigure(cfg.DragOptions(), cfg.IndicatorOptions()...)
	})
	if err := app.Manager.Watch(*log); err != nil && !errors.Is(err, config.ErrNoConfigFile) {
		log.Warn().Err(err).Msg("config watch disabled")
	}
}

// newTerminalApp builds the demo layout on screen.
func newTerminalApp(ctx context.Context, app *cli.App, screen tcell.Screen) (*terminal.App, error) {
	cfg := app.Config
	reg, err := dock.NewRegistry(ctx, terminal.New(), terminal.DockOptions(cfg.DockOptions()))
	if err != nil {
		return nil, fmt.Errorf("create registry: %w", err)
	}
	w, h := screen.Size()
	main, err := reg.NewMainWindow("main", dock.WithGeometry(geom.Rect{Width: w, Height: h}))
	if err != nil {
		return nil, fmt.Errorf("create main window: %w", err)
	}

	groups := make(map[string]*dock.Group, len(demoWidgets))
	for _, d := range demoWidgets {
		dw, err := reg.NewDockWidget(d.name, d.title)
		if err != nil {
			return nil, err
		}
		rel := groups[d.relativeTo]
		if d.loc == layout.LocationNone {
			if err := rel.AddDockWidget(dw); err != nil {
				return nil, err
			}
			continue
		}
		g, err := main.AddDockWidget(dw, d.loc, rel)
		if err != nil {
			return nil, fmt.Errorf("dock %s: %w", d.name, err)
		}
		groups[d.name] = g
	}

	opts := append(cfg.IndicatorOptions(), indicators.WithHotBand(terminal.HotBand))
	overlay := indicators.New(ctx, reg, opts...)
	return terminal.NewApp(ctx, screen, reg, main, drag.NewController(ctx, reg, overlay, cfg.DragOptions())), nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
