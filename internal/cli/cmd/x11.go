package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/frontend/x11"
	"github.com/bnema/dockyard/internal/ui/view"
)

var x11Cmd = &cobra.Command{
	Use:   "x11",
	Short: "X11 platform tools",
}

var x11ProbeCmd = &cobra.Command{
	Use:   "probe [window-id]",
	Short: "Show the top-level window hosting an X11 window",
	Long: `Resolve the top-level window of an X11 window through the view bridge and
print its geometry, visibility and size hints.

Without an argument the focused window is probed. Window ids accept the
0x prefix, as printed by xwininfo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runX11Probe,
}

func init() {
	rootCmd.AddCommand(x11Cmd)
	x11Cmd.AddCommand(x11ProbeCmd)
}

func runX11Probe(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Disconnect()
	platform := x11.NewPlatform(app.Context(), conn)

	var native *x11.Native
	if len(args) == 1 {
		id, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("parse window id %q: %w", args[0], err)
		}
		native = platform.Wrap(uint32(id))
	} else if native, err = platform.Focused(); err != nil {
		return err
	}

	info, err := probe(view.NewBridge(app.Context(), platform), native)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), app.Theme.RenderWindowInfo(info))
	return nil
}

// probe resolves the hosting window of n through the bridge.
func probe(bridge *view.Bridge, n view.Native) (styles.WindowInfo, error) {
	win, ok := bridge.Create(n).Window()
	if !ok {
		return styles.WindowInfo{}, fmt.Errorf("probe: %w", x11.ErrNoWindow)
	}
	root := win.RootView()

	info := styles.WindowInfo{
		Handle:  win.Handle(),
		Rect:    win.Geometry(),
		Visible: win.IsVisible(),
		MinSize: root.MinSize(),
		MaxSize: root.MaxSize(),
	}
	if titled, ok := root.Native().(interface{ Title() string }); ok {
		info.Title = titled.Title()
	}
	return info, nil
}
