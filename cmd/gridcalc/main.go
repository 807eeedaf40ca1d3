// Package main provides the CLI entry point for gridcalc.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/config"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/output"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/workbook"
)

var (
	outputPath  string
	pretty      bool
	importPath  string
	sheetName   string
	exportPath  string
	configPath  string
	logLevel    string
	maxDepth    int
	showUpdates bool
	cellAddress string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridcalc [edits-file]",
		Short: "Evaluate spreadsheet formulas and propagate changes",
		Long: `gridcalc applies cell edits (one "<address> <text>" per line) to a
100x100 grid, recalculates every dependent formula and outputs JSON.
Formulas: =A1+B2*C3 (strictly left to right), =SUM(A1:B4), =AVERAGE(A1:A9).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&importPath, "import", "", "Load initial cells from an xlsx workbook")
	flags.StringVar(&sheetName, "sheet", "", "Sheet to import (default: first sheet)")
	flags.StringVar(&exportPath, "export", "", "Write the resulting grid to an xlsx workbook (- for stdout)")
	flags.StringVar(&configPath, "config", "", "Config file (.toml, .yaml)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.IntVar(&maxDepth, "max-depth", 0, "Maximum dependency chain length per edit")
	flags.BoolVar(&showUpdates, "updates", false, "Print touched cells instead of a grid snapshot")
	flags.StringVar(&cellAddress, "cell", "", "Print a single cell instead of a grid snapshot")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if exportPath == "-" && outputPath == "" {
		return fmt.Errorf("--export - writes the workbook to stdout; use --output for the JSON")
	}
	if showUpdates && cellAddress != "" {
		return fmt.Errorf("--updates and --cell are mutually exclusive")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	opts := cfg.Options(&logger)

	// Build the engine, optionally seeded from a workbook
	var engine *gridcalc.Engine
	if importPath != "" {
		engine, err = gridcalc.LoadWorkbook(importPath, cfg.Sheet, opts)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
	} else {
		engine = gridcalc.New(opts)
	}

	// Apply edits
	var edits []gridcalc.Edit
	if len(args) == 1 || importPath == "" {
		edits, err = readEdits(cmd, args)
		if err != nil {
			return err
		}
	}
	updates, err := engine.Apply(edits)
	if err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}
	logger.Info().Int("edits", len(edits)).Int("updates", len(updates)).Msg("edits applied")

	// Serialize to JSON
	var jsonData []byte
	switch {
	case showUpdates:
		jsonData, err = output.UpdatesToJSON(updates, cfg.Pretty)
	case cellAddress != "":
		cell, cellErr := engine.GetCell(cellAddress)
		if cellErr != nil {
			return fmt.Errorf("cell lookup failed: %w", cellErr)
		}
		jsonData, err = output.CellToJSON(&cell, cfg.Pretty)
	default:
		snapshot := engine.Snapshot()
		jsonData, err = output.SnapshotToJSON(&snapshot, cfg.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	switch exportPath {
	case "":
	case "-":
		if err := workbook.Write(engine.Grid(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	default:
		if err := workbook.Export(engine.Grid(), exportPath); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	}

	return nil
}

// applyFlags lets explicitly set flags override file settings.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheetName
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
}

func readEdits(cmd *cobra.Command, args []string) ([]gridcalc.Edit, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("file not found: %s", args[0])
		}
		defer f.Close()
		r = f
	}

	edits, err := gridcalc.ParseEdits(r)
	if err != nil {
		return nil, fmt.Errorf("reading edits failed: %w", err)
	}
	return edits, nil
}
