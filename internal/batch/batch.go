// Package batch runs the checker over many documents.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/projectdiscovery/inspector"
	"github.com/projectdiscovery/inspector/internal/document"
	"github.com/projectdiscovery/inspector/internal/report"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/sync/errgroup"
)

// Options of a batch run
type Options struct {
	Checker *inspector.Checker
	Reader  document.Reader
	Sink    report.Sink
	// Workers reading and checking documents concurrently
	// (default: number of CPUs)
	Workers int
	// OnDocument is called for every document in input order
	OnDocument func(log *DocumentLog)
}

// DocumentLog is the processing record of one document
type DocumentLog struct {
	Path    string
	Pairs   int
	Reports int
	Err     error
}

// String renders the log lines shown to reviewers
func (d *DocumentLog) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Processing file %s.\n", d.Path)
	if d.Err != nil {
		fmt.Fprintf(&sb, "[ERROR]%v.\n", d.Err)
	}
	return sb.String()
}

// Summary of a batch run
type Summary struct {
	Documents int
	Pairs     int
	Reports   int
	Errors    int
	Logs      []*DocumentLog
}

// Runner checks documents and funnels the reports into a single sink
type Runner struct {
	options *Options
}

// New validates options and returns a runner
func New(opts *Options) (*Runner, error) {
	if opts.Checker == nil || opts.Reader == nil || opts.Sink == nil {
		return nil, errorutil.NewWithTag("batch", "checker, reader and sink are required")
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Runner{options: opts}, nil
}

type result struct {
	index   int
	log     *DocumentLog
	reports []*inspector.LineReport
}

// Run checks all paths. Document errors are recorded in the summary and
// do not stop the run, sink errors and cancellation do.
// Reports reach the sink grouped by document in input order.
func (r *Runner) Run(ctx context.Context, paths []string) (*Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan *result)

	g.Go(func() error {
		defer close(jobs)
		for i := range paths {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < r.options.Workers; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for i := range jobs {
				res := r.process(gctx, i, paths[i])
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &Summary{}
	pending := map[int]*result{}
	next := 0
	var sinkErr error
	for res := range results {
		if sinkErr != nil {
			continue
		}
		pending[res.index] = res
		for sinkErr == nil {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			sinkErr = r.emit(p, summary)
		}
		if sinkErr != nil {
			cancel()
		}
	}
	err := g.Wait()
	if sinkErr != nil {
		return summary, sinkErr
	}
	return summary, err
}

func (r *Runner) process(ctx context.Context, index int, path string) *result {
	res := &result{index: index, log: &DocumentLog{Path: path}}
	pairs, err := r.options.Reader.Read(ctx, path)
	if err != nil {
		res.log.Err = err
		return res
	}
	res.log.Pairs = len(pairs)
	for _, p := range pairs {
		if lr := r.options.Checker.CheckLine(path, p.Source, p.Target); lr != nil {
			res.reports = append(res.reports, lr)
		}
	}
	res.log.Reports = len(res.reports)
	return res
}

func (r *Runner) emit(res *result, summary *Summary) error {
	summary.Documents++
	summary.Pairs += res.log.Pairs
	summary.Logs = append(summary.Logs, res.log)
	if res.log.Err != nil {
		summary.Errors++
	}
	if r.options.OnDocument != nil {
		r.options.OnDocument(res.log)
	}
	for _, lr := range res.reports {
		if err := r.options.Sink.Write(lr); err != nil {
			return errorutil.NewWithTag("batch", "could not write report for %v: %v", res.log.Path, err)
		}
		summary.Reports++
	}
	return nil
}
