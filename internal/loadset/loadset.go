// Package loadset fans independent input files out across goroutines,
// each building its own symtab.Table and check.Checker so that no
// single-threaded core instance (§5) is ever shared across goroutines.
package loadset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"symck/internal/diag"
)

// Result is one file's outcome: its Bag holds whatever diagnostics its
// own Checker reported, Err is set only for a failure to even load or
// build the file's own table (never for a type-check violation, which
// lands in Bag instead).
type Result struct {
	Path string
	Bag  *diag.Bag
	Err  error
}

// Load runs load once per path, each on its own goroutine with its own
// fresh state (load is expected to build a private Table/Interner/
// Checker per call and never reach into shared state), bounded by jobs
// concurrent workers. jobs<=0 defaults to GOMAXPROCS. Results preserve
// the input order regardless of completion order.
func Load(ctx context.Context, paths []string, jobs int, load func(ctx context.Context, path string) (*diag.Bag, error)) []Result {
	if len(paths) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					results[i] = Result{Path: path, Err: gctx.Err()}
					return nil
				default:
				}
				bag, err := load(gctx, path)
				results[i] = Result{Path: path, Bag: bag, Err: err}
				return nil
			}
		}(i, path))
	}
	_ = g.Wait()
	return results
}
