package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/ppiankov/identigen/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outputDir string
	qrEnabled bool
	noSummary bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch one synthetic identity and save it",
	Long: `Generate requests one profile from the configured endpoint, extracts
its fields, sorts them into categories and writes:

  <output_dir>/identity_info_<YYYY-MM-DD_HH-MM-SS>.txt
  <output_dir>/identity_info_<YYYY-MM-DD_HH-MM-SS>.png   (when QR is on)

Any failure aborts the run without leaving files behind.

Example:
  identigen generate
  identigen generate --qr --output-dir ./identities
  IDENTIGEN_ADVANCED_OPTIONS_COUNTRY=uk identigen generate`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory (overrides output_options.output_dir)")
	generateCmd.Flags().BoolVar(&qrEnabled, "qr", false, "also write a QR code PNG (overrides qr_options.generate_qr)")
	generateCmd.Flags().BoolVar(&noSummary, "no-summary", false, "do not print the summary table")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	runLog := logger.With().Str("run_id", uuid.NewString()).Logger()

	loader, err := configLoader(cmd, map[string]string{
		"output_options.output_dir": "output-dir",
	})
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if qrEnabled {
		cfg.QR.GenerateQR = model.SwitchOn
	}

	if used := loader.Used(); used != "" {
		runLog.Debug().Str("path", used).Msg("using config file")
	} else {
		runLog.Debug().Str("path", loader.Path()).Msg("config file not found, using defaults")
	}

	p, err := pipeline.NewPipeline(cfg, runLog)
	if err != nil {
		return err
	}

	result, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out := cmd.OutOrStdout()
	if !noSummary {
		p.RenderSummary(out, result.Record)
	}
	fmt.Fprintf(out, "Identity information saved to %s\n", result.TextPath)
	if result.QRPath != "" {
		fmt.Fprintf(out, "QR code saved to %s\n", result.QRPath)
	}

	return nil
}
