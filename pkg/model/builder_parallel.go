package model

import (
	"log"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type parallelTableBuilder struct {
	logger  *log.Logger
	workers int
}

// Returns a builder that attempts candidate subject sets on a pool of workers, each on its own grid.
// Results are identical to the combinational builder's. A non-positive number of workers means runtime.NumCPU()
func NewParallelTableBuilder(logger *log.Logger, workers int) TableBuilder {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &parallelTableBuilder{
		logger:  loggerOrDefault(logger),
		workers: workers,
	}
}

func (builder *parallelTableBuilder) Build(catalog []*Subject, params Params) (tables []*Grid, candidates uint64, err error) {
	params, err = validateParams(catalog, params)
	if err != nil {
		return nil, 0, err
	}

	tables = make([]*Grid, 0, params.Tables)
	if params.Tables == 0 {
		return tables, 0, nil
	}

	// Candidates are evaluated in batches so that the search can stop early; a larger batch keeps every worker busy
	batchSize := builder.workers * 4
	for _, batch := range lo.Chunk(enumerate(catalog, params), batchSize) {
		if len(tables) >= params.Tables {
			break
		}

		results := make([]*Grid, len(batch))
		failures := make([]error, len(batch))
		var group errgroup.Group
		group.SetLimit(builder.workers)
		for i, candidate := range batch {
			group.Go(func() error {
				results[i], failures[i] = attempt(candidate, params)
				return nil
			})
		}
		group.Wait() // Failures are kept per candidate, so the group itself never fails

		// Collect in candidate order so that the output matches a sequential search. Candidates past the early stop are neither counted nor logged
		for i, grid := range results {
			if len(tables) >= params.Tables {
				break
			}
			candidates++
			if failures[i] != nil {
				builder.logger.Print(failures[i])
			} else if grid != nil {
				tables = append(tables, grid)
			}
		}
	}

	reportShortfall(builder.logger, len(tables), params.Tables)
	return tables, candidates, nil
}

func (builder *parallelTableBuilder) Verify(grid *Grid) bool {
	return Verify(grid)
}
