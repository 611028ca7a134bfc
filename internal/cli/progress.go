package cli

import (
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/docsurf/docsurf/internal/runner"
)

// progressReporter implements runner.Reporter with a progress bar.
type progressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newProgressReporter(quiet bool) runner.Reporter {
	return &progressReporter{quiet: quiet}
}

func (p *progressReporter) OnDiscoveryComplete(roots int) {
	if p.quiet {
		return
	}
	log.Printf("Discovered %d root modules", roots)
	p.bar = progressbar.NewOptions(roots,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("roots/s"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *progressReporter) OnRootExtracted(location string, cached bool) {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Add(1)
}

func (p *progressReporter) OnRunComplete(stats *runner.RunStats) {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Finish()
}
