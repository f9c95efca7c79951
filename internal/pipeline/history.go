package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"pingparser/internal/models"
	"pingparser/internal/report"
)

// record saves the summary, prunes expired entries and refreshes the chart.
// Failures are logged and never affect the result of Run.
func (p *Pipeline) record(ctx context.Context, summary models.PingSummary) {
	if p.history == nil {
		return
	}

	now := p.now()
	if err := p.history.SaveSummary(ctx, now, summary); err != nil {
		p.log.Warnf("Failed to save summary: %v", err)
		return
	}

	if p.config.Retention > 0 {
		removed, err := p.history.Prune(ctx, now.Add(-p.config.Retention))
		if err != nil {
			p.log.Warnf("Failed to prune history: %v", err)
		} else if removed > 0 {
			p.log.Debugf("Pruned %d expired summaries", removed)
		}
	}

	if p.reports == nil || p.config.ChartPath == "" {
		return
	}

	err := p.reports.GenerateLatencyChart(ctx, p.config.ChartPath, summary.Host)
	switch {
	case errors.Is(err, report.ErrNotEnoughData):
		p.log.Debugf("Skipping chart for %s: %v", summary.Host, err)
	case err != nil:
		p.log.Warnf("Failed to generate chart: %v", err)
	default:
		p.log.Debugf("Chart written to %s", p.config.ChartPath)
	}
}
