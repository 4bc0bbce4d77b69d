package runner

import (
	"context"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/inspector"
	"github.com/projectdiscovery/inspector/internal/batch"
	"github.com/projectdiscovery/inspector/internal/document"
	"github.com/projectdiscovery/inspector/internal/report"
	"github.com/projectdiscovery/utils/errkit"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrNoDocuments is returned when the inputs hold no supported document
var ErrNoDocuments = errkit.New("no documents found")

// Runner wires the command line options to a batch run
type Runner struct {
	options *Options
	config  *fileConfig
	readers document.Readers
	checker *inspector.Checker
}

// New loads configuration and mapping rules and builds the checker
func New(opts *Options) (*Runner, error) {
	cfg, err := loadConfig(opts.InspectorConfig)
	if err != nil {
		return nil, errorutil.NewWithTag("runner", "failed to read inspector config got %v", err)
	}
	opts.apply(cfg)

	rules, err := inspector.LoadMappingRules(opts.Mapping)
	if err != nil {
		if opts.StrictRules {
			return nil, err
		}
		gologger.Error().Msgf("%v, continuing without mapping rules", err)
	}
	if n := len(rules.Warnings); n > 0 {
		if opts.StrictRules {
			return nil, errorutil.NewWithTag("runner", "mapping file %v has %d invalid lines, first: %v", opts.Mapping, n, rules.Warnings[0])
		}
		gologger.Warning().Msgf("skipped %d invalid lines of mapping file %v (use -v for details)", n, opts.Mapping)
	}
	if rules.Len() > 0 {
		gologger.Info().Msgf("Loaded %d mapping rules", rules.Len())
	}

	messages, err := cfg.ResolveMessages()
	if err != nil {
		return nil, err
	}
	checker, err := inspector.New(&inspector.Options{
		Classifier: cfg.Classifier(),
		Rules:      rules,
		Messages:   messages,
	})
	if err != nil {
		return nil, err
	}
	return &Runner{
		options: opts,
		config:  cfg,
		readers: document.NewReaders(&cfg.Layout, &cfg.Sheet),
		checker: checker,
	}, nil
}

// Run inspects every document found under the inputs and writes the report
func (r *Runner) Run(ctx context.Context) (*batch.Summary, error) {
	paths, err := r.readers.Discover(r.options.Inputs)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		gologger.Verbose().Msgf("supported document formats: %v", r.readers.Extensions())
		return nil, ErrNoDocuments
	}
	gologger.Verbose().Msgf("found %d documents", len(paths))

	sink, err := report.Open(&report.Options{
		Output: r.options.Output,
		Format: r.options.Format,
		Header: r.options.Header,
	})
	if err != nil {
		return nil, err
	}
	var deduped *report.Deduped
	if r.options.Dedupe {
		deduped = report.NewDeduped(sink, document.TotalSize(paths))
		sink = deduped
	}

	runner, err := batch.New(&batch.Options{
		Checker:    r.checker,
		Reader:     r.readers,
		Sink:       sink,
		Workers:    r.options.Workers,
		OnDocument: logDocument,
	})
	if err != nil {
		_ = sink.Close()
		return nil, err
	}

	summary, runErr := runner.Run(ctx, paths)
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = errorutil.NewWithTag("runner", "failed to write report got %v", err)
	}
	if summary != nil {
		gologger.Info().Msgf("Inspected %d documents (%d pairs), %d reports, %d errors", summary.Documents, summary.Pairs, summary.Reports, summary.Errors)
		if deduped != nil && deduped.Dropped() > 0 {
			gologger.Info().Msgf("Dropped %d duplicate reports", deduped.Dropped())
		}
	}
	return summary, runErr
}

func logDocument(log *batch.DocumentLog) {
	gologger.Info().Msgf("Processing file %s.", log.Path)
	if log.Err != nil {
		gologger.Error().Msgf("%v: %v", log.Path, log.Err)
	}
}
