package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docsurf/docsurf/internal/config"
	"github.com/docsurf/docsurf/internal/runner"
	"github.com/docsurf/docsurf/internal/watcher"
)

var watchedExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".md"}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-extract root modules whenever source or doc files change",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or yaml")
	watchCmd.Flags().StringVarP(&outputDir, "out", "o", "", "write one file per root into this directory")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return err
	}

	r, err := runner.New(rootDir, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		results, stats, err := r.Run(ctx, nil)
		if err != nil {
			log.Printf("extraction failed: %v", err)
			return
		}
		if outputDir != "" {
			if err := writeResults(results); err != nil {
				log.Printf("failed to write results: %v", err)
				return
			}
		}
		log.Printf("extracted %d roots (%d cached, %d diagnostics) in %s",
			stats.Roots, stats.Cached, stats.Diagnostics, stats.Duration.Round(time.Millisecond))
	}

	runOnce()

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	fw, err := watcher.New(rootDir, watchedExtensions, debounce)
	if err != nil {
		return err
	}
	defer fw.Stop()

	if err := fw.Start(ctx, func(files []string) {
		log.Printf("%d files changed, re-extracting", len(files))
		// Any change can affect any root through re-export chains.
		r.InvalidateAll()
		runOnce()
	}); err != nil {
		return err
	}

	log.Printf("watching %s (debounce %s)", rootDir, debounce)
	<-ctx.Done()
	return nil
}
