package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeAll analyses records on at most workers goroutines (<= 0 selects
// GOMAXPROCS). Results keep the input order. The first failure cancels the
// remaining records and is returned.
func (a *Analyzer) AnalyzeAll(ctx context.Context, records []Record, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := a.AnalyzeRecord(gctx, rec)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.cfg.Logger.Debug().Int("records", len(records)).Int("workers", workers).Msg("batch done")
	return results, nil
}
