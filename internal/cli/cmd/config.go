package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// errReported is returned after a failure was already printed.
var errReported = errors.New("")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Print the effective configuration, validate the config file or print its JSON schema.`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, the config file and DOCKYARD_*
environment overrides have been applied.`,
	RunE: runConfigPrint,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPrint(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out, err := config.ToYAML(app.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprint(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderSource(app.Manager.ConfigFile()))
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	var opts []config.ManagerOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	mgr, err := config.NewManager(opts...)
	if err == nil {
		err = mgr.Load()
	}
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return errReported
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderValid(mgr.ConfigFile()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
