package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/config"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
	"github.com/Xiaoy312/sap-hr-cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sap-hr-cli",
	Short: "Query personnel records from a running SAP GUI session",
	Long: `Extracts personnel data (identity, address, emails, insurance elections,
employment events) from the PA20 transaction of an already-authenticated
SAP GUI session, via the SAP GUI Scripting surface.

SAP must be running and a user logged in; this tool never authenticates
by itself. With --synthetic it serves plausible random data instead,
for offline use.`,
}

// syntheticMode selects the offline implementations. Resolved once in the
// persistent pre-run; business code never consults it again.
var syntheticMode bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("synthetic", false, "Serve synthetic data instead of querying SAP")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		level := zerolog.InfoLevel
		if verbose || cfg.Verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		synthetic, _ := rootCmd.PersistentFlags().GetBool("synthetic")
		syntheticMode = synthetic || cfg.Synthetic

		// Flag wins over env/file; default is yaml.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		if format == "" {
			format = "yaml"
		}
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
