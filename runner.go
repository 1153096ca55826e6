package tasclean

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/sokinpui/tasclean/internal/logging"
)

// Runner cleans a list of files and folds the results into a RunReport.
type Runner struct {
	cleaner  *Cleaner
	reporter *Reporter
	jobs     int
}

func NewRunner(c *Cleaner, r *Reporter, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{cleaner: c, reporter: r, jobs: jobs}
}

type fileOutcome struct {
	res  FileResult
	err  error
	done bool
}

// Run processes paths in order. With more than one job the files are cleaned
// concurrently and reported in input order once all workers finish.
func (r *Runner) Run(ctx context.Context, paths []string) (RunReport, error) {
	rep := RunReport{FileCount: len(paths)}

	if r.jobs == 1 {
		for _, p := range paths {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			r.reporter.Checking(p)
			res, err := r.cleaner.CleanFile(p)
			r.record(&rep, res, err)
		}
		return rep, nil
	}

	outcomes := make([]fileOutcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.cleaner.CleanFile(p)
			outcomes[i] = fileOutcome{res: res, err: err, done: true}
			return nil
		})
	}
	waitErr := g.Wait()

	for i, p := range paths {
		if !outcomes[i].done {
			continue
		}
		r.reporter.Checking(p)
		r.record(&rep, outcomes[i].res, outcomes[i].err)
	}
	return rep, waitErr
}

func (r *Runner) record(rep *RunReport, res FileResult, err error) {
	if err != nil {
		var fe *FileError
		if !errors.As(err, &fe) {
			fe = &FileError{Path: res.Path, Op: "clean", Err: err}
		}
		logging.Warn("file failed", "path", fe.Path, "op", fe.Op, "err", fe.Err)
		rep.Failed = append(rep.Failed, fe)
		r.reporter.Failed(fe)
		return
	}

	rep.Results = append(rep.Results, res)
	rep.Totals = rep.Totals.Add(res)
	r.reporter.File(res)
}
