package planner

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/ybs/pkg/ctdf"
)

const batchMaxGoroutines = 16

type Request struct {
	OriginID      string
	DestinationID string
}

type Result struct {
	Request Request
	Paths   []*ctdf.Path
}

// BatchFindPaths plans independent requests concurrently, results keep the request order.
// Each search owns its own frontier so only the read-only catalogs are shared.
func (p *Planner) BatchFindPaths(ctx context.Context, requests []Request, config Config) []Result {
	results := make([]Result, len(requests))

	workerPool := pool.New().WithMaxGoroutines(batchMaxGoroutines)

	for i, request := range requests {
		workerPool.Go(func() {
			results[i] = Result{
				Request: request,
				Paths:   p.FindPaths(ctx, request.OriginID, request.DestinationID, config),
			}
		})
	}

	workerPool.Wait()

	return results
}
