// Package pipeline wires extraction, formatting and the optional history for
// a single ping session.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pingparser/internal/config"
	"pingparser/internal/format"
	"pingparser/internal/models"
)

// Pipeline coordinates one invocation: parse, format, write, record
type Pipeline struct {
	config  config.Config
	parser  models.Parser
	history models.History
	reports models.ReportGenerator
	log     logrus.FieldLogger
	now     func() time.Time
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithHistory records every parsed summary in h
func WithHistory(h models.History) Option {
	return func(p *Pipeline) {
		p.history = h
	}
}

// WithReports renders charts after recording, when a chart path is configured
func WithReports(r models.ReportGenerator) Option {
	return func(p *Pipeline) {
		p.reports = r
	}
}

// WithClock overrides the time source used for history timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a new Pipeline
func New(cfg config.Config, parser models.Parser, log logrus.FieldLogger, opts ...Option) *Pipeline {
	p := &Pipeline{
		config: cfg,
		parser: parser,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run parses input, writes the formatted summary to out and then records it.
// Only parse and write failures are returned; the output is complete before
// the history is touched.
func (p *Pipeline) Run(ctx context.Context, input string, out io.Writer) error {
	summary, err := p.parser.Parse(input)
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"host":     summary.Host,
		"sent":     summary.Sent,
		"received": summary.Received,
		"loss":     summary.PacketLoss,
		"latency":  summary.HasLatency(),
	}).Debug("Parsed ping output")

	if _, err := io.WriteString(out, format.Format(summary, p.config.FormatString())); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	p.record(ctx, summary)
	return nil
}
