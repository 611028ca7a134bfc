package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docsurf/docsurf/internal/config"
	"github.com/docsurf/docsurf/internal/extract"
	"github.com/docsurf/docsurf/internal/graph"
	"github.com/docsurf/docsurf/internal/runner"
)

var (
	outputFormat string
	outputDir    string
	showGraph    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [path...]",
	Short: "Extract the public surface of discovered (or given) root modules",
	Long: `Extract discovers root source files by the configured glob patterns
(or takes explicit root paths) and writes the resolved module trees as
JSON or YAML.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or yaml")
	extractCmd.Flags().StringVarP(&outputDir, "out", "o", "", "write one file per root into this directory instead of stdout")
	extractCmd.Flags().BoolVar(&showGraph, "graph", false, "print the re-export graph in dependency order to stderr")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Paths.Sources = args
	}

	r, err := runner.New(rootDir, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	results, stats, err := r.Run(cmd.Context(), newProgressReporter(quiet))
	if err != nil {
		return err
	}

	if err := writeResults(results); err != nil {
		return err
	}

	if showGraph {
		if err := printGraph(results); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "extracted %d roots (%d cached, %d diagnostics) in %s [run %s]\n",
			stats.Roots, stats.Cached, stats.Diagnostics, stats.Duration.Round(0), stats.RunID)
	}
	return nil
}

// writeResults serializes results to stdout or, with --out, one file per
// root named after its location.
func writeResults(results []*extract.Result) error {
	if outputDir == "" {
		data, err := marshalResults(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, res := range results {
		data, err := marshalResults([]*extract.Result{res})
		if err != nil {
			return err
		}
		name := strings.ReplaceAll(res.Module.Location, "/", "__")
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + outputFormat
		if err := os.WriteFile(filepath.Join(outputDir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func marshalResults(results []*extract.Result) ([]byte, error) {
	switch outputFormat {
	case "json":
		return json.MarshalIndent(results, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(results)
	default:
		return nil, fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// printGraph reports the re-export graph in dependency order.
func printGraph(results []*extract.Result) error {
	modules := make([]*extract.Module, 0, len(results))
	for _, res := range results {
		modules = append(modules, res.Module)
	}

	mg, err := graph.Build(modules)
	if err != nil {
		return err
	}
	order, err := mg.DependencyOrder()
	if err != nil {
		return err
	}
	vertices, edges, err := mg.Size()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "module graph: %d modules, %d re-export edges\n", vertices, edges)
	for _, location := range order {
		fmt.Fprintf(os.Stderr, "  %s\n", location)
	}
	return nil
}
