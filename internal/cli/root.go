package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/identigen/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ..."
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	logger  = newLogger(os.Stderr, false)
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "identigen",
	Short: "identigen - synthetic identity profile generator",
	Long: `identigen fetches one randomly generated identity profile from
fakenamegenerator.com, groups its fields into fixed categories and saves
the result as a timestamped text file, optionally with a QR code image.

All data is synthetic. The Social Security Number is altered before it is
saved so it never matches the upstream page.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Logger returns the logger configured for the current invocation
func Logger() zerolog.Logger {
	return logger
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "identigen %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().
		Logger()
}

// configLoader returns a loader for --config with the given key -> flag name
// bindings applied
func configLoader(cmd *cobra.Command, bindings map[string]string) (*config.Loader, error) {
	loader := config.NewLoader(cfgFile)
	for key, name := range bindings {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	return loader, nil
}
