package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/planner"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	var (
		schemaFile  = flag.String("schema", "", "Path to normalized schema JSON (- for stdin)")
		importNS    = flag.String("import-ns", "", "Namespace prefix for import-side types")
		exportNS    = flag.String("export-ns", "pdk::", "Namespace prefix for export-side types")
		threshold   = flag.Int("threshold", planner.DefaultLargeThreshold, "Size above which values are heap allocated")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log planning decisions to stderr")
	)
	flag.Parse()

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: xtpplan -schema <schema.json> [-import-ns ns::] [-export-ns ns::] [-threshold n] [-v]")
		fmt.Fprintln(os.Stderr, "       xtpplan -schema <schema.json> -i  (interactive mode)")
		return 1
	}

	opts := planner.DefaultOptions()
	opts.ImportNamespace = *importNS
	opts.ExportNamespace = *exportNS
	opts.ExportError = *exportNS + "Error"
	opts.ImportError = *importNS + "Error"
	opts.LargeThreshold = *threshold

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer logger.Sync()
		opts.Logger = logger
	}
	p := planner.New(opts)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			return 1
		}
		if err := runInteractive(*schemaFile, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := run(*schemaFile, p, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(schemaFile string, p *planner.Planner, w io.Writer) error {
	plan, err := buildPlan(schemaFile, p)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func buildPlan(schemaFile string, p *planner.Planner) (*planner.Plan, error) {
	data, err := readSchema(schemaFile)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseIngest, errors.KindInvalidInput, err, "read schema")
	}

	set, err := schema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	plan, err := p.Plan(set)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return plan, nil
}

func readSchema(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
