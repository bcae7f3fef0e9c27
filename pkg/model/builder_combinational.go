package model

import "log"

type combinationalTableBuilder struct {
	logger *log.Logger
}

// Returns a builder that attempts candidate subject sets one after the other. A nil logger means log.Default()
func NewCombinationalTableBuilder(logger *log.Logger) TableBuilder {
	return &combinationalTableBuilder{
		logger: loggerOrDefault(logger),
	}
}

func (builder *combinationalTableBuilder) Build(catalog []*Subject, params Params) (tables []*Grid, candidates uint64, err error) {
	params, err = validateParams(catalog, params)
	if err != nil {
		return nil, 0, err
	}

	tables = make([]*Grid, 0, params.Tables)
	if params.Tables == 0 {
		return tables, 0, nil
	}

	for _, candidate := range enumerate(catalog, params) {
		if len(tables) >= params.Tables {
			break // Stop if enough tables are generated
		}

		candidates++
		grid, failure := attempt(candidate, params)
		if failure != nil {
			builder.logger.Print(failure)
		} else if grid != nil {
			tables = append(tables, grid)
		}
	}

	reportShortfall(builder.logger, len(tables), params.Tables)
	return tables, candidates, nil
}

func (builder *combinationalTableBuilder) Verify(grid *Grid) bool {
	return Verify(grid)
}
