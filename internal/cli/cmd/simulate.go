package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/scenario"
)

var simulateYAML bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a docking scenario headlessly",
	Long: `Run a scripted docking scenario on the headless frontend and print the
resulting layout tree.

A scenario declares the main window size, its dock widgets and a list of
steps: dock, float, drag, select, separator, resize and close.

Example:
  name: split
  window: {width: 800, height: 600}
  widgets:
    - {name: files, title: Files}
    - {name: editor, title: Editor}
  steps:
    - {op: dock, widget: editor, location: left}
    - {op: dock, widget: files, location: right}
    - {op: drag, widget: files, path: [{x: 400, y: 300}, {x: 5, y: 300}]}`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateYAML, "yaml", false, "print the snapshot as YAML")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	runner, err := scenario.NewRunner(app.Context(), sc, app.ScenarioOptions())
	if err != nil {
		return err
	}
	res, runErr := runner.Run(cmd.Context())

	if simulateYAML {
		out, err := yaml.Marshal(res.Snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderResult(sc.Name, res))
	}
	return runErr
}
