package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pingparser/internal/config"
	"pingparser/internal/database"
	"pingparser/internal/format"
	"pingparser/internal/logging"
	"pingparser/internal/parser"
	"pingparser/internal/pipeline"
	"pingparser/internal/report"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1"

var (
	errNoInput     = errors.New("no input piped to stdin")
	errInterrupted = errors.New("interrupted")
)

// usageError marks failures that are answered with the help text
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type streams struct {
	in     io.Reader
	piped  bool
	out    io.Writer
	errOut io.Writer
}

// run executes one invocation and returns the process exit status
func run(ctx context.Context, args []string, s streams) int {
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)

	err := cmd.ExecuteContext(ctx)

	var usage usageError
	switch {
	case err == nil, errors.Is(err, errInterrupted):
		return 0
	case errors.As(err, &usage):
		cmd.SetOut(s.errOut)
		cmd.Help()
		return 1
	default:
		color.New(color.FgRed).Fprintf(s.errOut, "error: %v\n", err)
		return 1
	}
}

func newRootCmd(s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pingparser [+FORMAT]",
		Short: "Parses output from the system ping command piped in via stdin.",
		Long: "Parses output from the system ping command piped in via stdin.\n\n" +
			helpFormat() + "\n" + helpEnvironment(),
		Example: "  ping -c 4 example.com | pingparser\n" +
			"  ping -c 4 example.com | pingparser '+%h avg=%a ms loss=%l%'",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := config.ParseTemplate(args)
			if err != nil {
				return usageError{err}
			}
			if !s.piped {
				return usageError{errNoInput}
			}

			cfg := config.Load(viper.New())
			cfg.Template = template
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}

			log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

			input, err := readInput(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cfg, log, input, cmd.OutOrStdout())
		},
	}

	// Everything after the first positional argument belongs to FORMAT
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	return cmd
}

// execute runs the pipeline, attaching the history store when configured
func execute(ctx context.Context, cfg config.Config, log *logrus.Logger, input string, out io.Writer) error {
	var opts []pipeline.Option
	if cfg.HistoryPath != "" {
		db, err := openHistory(ctx, cfg.HistoryPath)
		if err != nil {
			log.Warnf("History disabled: %v", err)
		} else {
			defer db.Close()
			opts = append(opts,
				pipeline.WithHistory(db),
				pipeline.WithReports(report.NewGenerator(db)),
			)
		}
	}

	return pipeline.New(cfg, parser.New(), log, opts...).Run(ctx, input, out)
}

func openHistory(ctx context.Context, path string) (*database.DB, error) {
	db, err := database.New(path)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// readInput reads r to the end, giving up when ctx is cancelled
func readInput(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return "", errInterrupted
	case res := <-done:
		if res.err != nil {
			return "", errors.Wrap(res.err, "failed to read stdin")
		}
		return string(res.data), nil
	}
}

func helpFormat() string {
	var b strings.Builder
	b.WriteString("FORMAT controls the output. Interpreted sequences are:\n")
	for _, t := range format.Tokens() {
		fmt.Fprintf(&b, "  %s    %s\n", t.Text, t.Description)
	}
	fmt.Fprintf(&b, "\nDefault FORMAT is %s\n", format.DefaultTemplate)
	return b.String()
}

func helpEnvironment() string {
	p := config.EnvPrefix
	return "Environment:\n" +
		"  " + p + "_HISTORY             record every summary in this SQLite database\n" +
		"  " + p + "_HISTORY_RETENTION   how long recorded summaries are kept (default 2160h, 0 keeps all)\n" +
		"  " + p + "_CHART               write a latency chart of the host's history to this PNG file\n" +
		"  " + p + "_LOG_LEVEL           diagnostics on stderr: debug, info, warn, error (default warn)\n"
}
