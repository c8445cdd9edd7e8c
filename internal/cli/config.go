package cli

import (
	"fmt"

	"github.com/ppiankov/identigen/internal/config"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage identigen configuration",
	Long: `Manage identigen configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (IDENTIGEN_<SECTION>_<KEY>)
3. Config file (./config.ini)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after defaults, config file and environment variables are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader(cfgFile)
		cfg, err := loader.Load()
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		if used := loader.Used(); used != "" {
			fmt.Fprintf(stderr, "Configuration file: %s\n\n", used)
		} else {
			fmt.Fprintf(stderr, "No configuration file found at %s (using defaults)\n\n", loader.Path())
		}

		yamlData, err := yaml.Marshal(config.Sections(cfg))
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(yamlData)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default config.ini (or the --config path) with all available options documented.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(cfgFile, model.DefaultConfig()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created default configuration: %s\n", cfgFile)
		fmt.Fprintf(out, "\nTo view the effective configuration:\n")
		fmt.Fprintf(out, "  identigen config show\n")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
