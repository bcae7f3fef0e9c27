package model

// cellIndexer gives a unique index to every (day, period) cell of a grid and vice versa
type cellIndexer interface {
	// Returns a unique index for the cell at the given day and period
	Index(day Day, period int) int
	// Returns the day and period of the cell at the given index
	Attributes(index int) (day Day, period int)
	// Returns the number of cells addressed by the indexer
	Cells() int
}

func newCellIndexer(periods int) cellIndexer {
	return &cellIndexerImplementation{
		periods: periods,
	}
}

type cellIndexerImplementation struct {
	periods int
}

func (indexer *cellIndexerImplementation) Index(day Day, period int) int {
	return period + indexer.periods*int(day)
}

func (indexer *cellIndexerImplementation) Attributes(index int) (day Day, period int) {
	period = index % indexer.periods
	day = Day(index / indexer.periods)
	return day, period
}

func (indexer *cellIndexerImplementation) Cells() int {
	return indexer.periods * DayCount
}
