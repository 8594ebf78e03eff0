package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opsgrove/hostreport/internal/config"
	"github.com/opsgrove/hostreport/internal/iocontext"
	"github.com/opsgrove/hostreport/internal/logging"
	"github.com/opsgrove/hostreport/internal/output"
	"github.com/opsgrove/hostreport/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode  bool
		outputFlag string
		queryFlag  string
		colorFlag  string
		quietFlag  bool
		reportPath string
	)

	rootCmd := &cobra.Command{
		Use:   "hostreport",
		Short: "Generate a host configuration report",
		Long: `Collects system, network, firewall, and storage details from this
host and writes them to a single tabbed HTML report.

Running with no arguments generates the report. Administrative
privileges are required.`,
		Args: cobra.NoArgs,
		// Error output is handled centrally in App.Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Configure slog based on debug flag
			logging.Setup(debugMode, app.Stderr)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			formatValue := outputFlag
			if formatValue == "" {
				formatValue = cfg.GetOutput()
			}
			format, err := output.ParseFormat(formatValue)
			if err != nil {
				return err
			}

			colorValue := colorFlag
			if colorValue == "" {
				colorValue = cfg.GetColor()
			}

			ctx := cmd.Context()
			ctx = iocontext.WithIO(ctx, app.Stdout, app.Stderr)
			ctx = WithApp(ctx, app)
			ctx = WithConfig(ctx, cfg)
			ctx = WithDebug(ctx, debugMode)
			ctx = output.WithFormat(ctx, format)
			ctx = output.WithQuery(ctx, queryFlag)
			ctx = ui.WithUI(ctx, ui.New(parseColorMode(colorValue)))
			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), generateOptions{
				reportPath: reportPath,
				quiet:      quietFlag,
			})
		},
	}

	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	// Set version info
	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("hostreport %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format for collect: text|json|table|yaml")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color mode: auto|always|never")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Report destination (default: report.html next to the executable)")

	rootCmd.AddCommand(newCollectCmd())

	return rootCmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func parseColorMode(value string) ui.ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always":
		return ui.ColorAlways
	case "never":
		return ui.ColorNever
	default:
		return ui.ColorAuto
	}
}
