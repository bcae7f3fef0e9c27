package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Occupant is the content of a non-empty grid cell
type Occupant struct {
	Subject *Subject
	Group   string
	Event   string
}

// Grid is a weekly day × period slot matrix. Catalog objects are referenced, never owned
type Grid struct {
	size        int
	indexer     cellIndexer
	cells       []*Occupant // Indexed by indexer.Index(day, period); nil means the cell is empty
	subjects    []*Subject  // Placed subjects in placement order
	creditHours int         // Cached by CreditHours, always recomputed before being reported
}

func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, newError(InvalidArgument, "grid size must be positive: %v", size)
	}

	indexer := newCellIndexer(size)
	return &Grid{
		size:     size,
		indexer:  indexer,
		cells:    make([]*Occupant, indexer.Cells()),
		subjects: make([]*Subject, 0),
	}, nil
}

func NewDefaultGrid() *Grid {
	grid, _ := NewGrid(DefaultPeriods)
	return grid
}

// Commits subject to the grid using its group named groupName. Either every cell of the group is written or none is
func (grid *Grid) Place(subject *Subject, groupName string) error {
	//** Validate arguments
	if subject == nil {
		return newError(InvalidArgument, "subject must not be nil")
	} else if groupName == "" {
		return newError(InvalidArgument, "group name must not be empty")
	}

	group, ok := subject.Group(groupName)
	if !ok {
		return newError(GroupNotFound, "no group named %q was found for subject %q", groupName, subject.name)
	} else if slices.Contains(grid.subjects, subject) {
		return newError(DuplicateSubject, "subject %q is already in the table", subject.name)
	}

	//** Scan every cell before writing any of them
	claimed := make(map[int]bool)
	for _, event := range group.events {
		for _, placement := range event.placements {
			if placement.Period < 0 || placement.Period >= grid.size {
				return newError(InvalidArgument, "period %v of event %q is out of range [0, %v)", placement.Period, event.name, grid.size)
			}

			index := grid.indexer.Index(placement.Day, placement.Period)
			if occupant := grid.cells[index]; occupant != nil {
				return newError(ScheduleConflict, "%v period %v is already taken by %v (%v) - %v", placement.Day, placement.Period, occupant.Subject.name, occupant.Group, occupant.Event)
			} else if claimed[index] {
				return newError(ScheduleConflict, "group %q of subject %q claims %v period %v more than once", group.name, subject.name, placement.Day, placement.Period)
			}
			claimed[index] = true
		}
	}

	//** Commit
	for _, event := range group.events {
		for _, placement := range event.placements {
			grid.cells[grid.indexer.Index(placement.Day, placement.Period)] = &Occupant{
				Subject: subject,
				Group:   group.name,
				Event:   event.name,
			}
		}
	}
	grid.subjects = append(grid.subjects, subject)
	grid.CreditHours()

	return nil
}

// Recomputes the total credit hours of the placed subjects
func (grid *Grid) CreditHours() int {
	grid.creditHours = lo.SumBy(grid.subjects, func(subject *Subject) int { return subject.creditHours })
	return grid.creditHours
}

// Unions other's cells and subjects into grid. Every collision is detected before grid is modified
func (grid *Grid) Merge(other *Grid) error {
	if other == nil {
		return newError(InvalidArgument, "cannot merge a nil grid")
	} else if other == grid {
		return newError(InvalidArgument, "cannot merge a grid into itself")
	} else if other.size != grid.size {
		return newError(InvalidArgument, "cannot merge grids of different sizes: %v and %v", grid.size, other.size)
	}

	if duplicate, ok := lo.Find(other.subjects, func(subject *Subject) bool {
		return slices.Contains(grid.subjects, subject)
	}); ok {
		return newError(DuplicateSubject, "subject %q is already in the table", duplicate.name)
	}

	for index, occupant := range other.cells {
		if occupant != nil && grid.cells[index] != nil {
			day, period := grid.indexer.Attributes(index)
			return newError(ScheduleConflict, "%v period %v is already taken by %v (%v) - %v", day, period, grid.cells[index].Subject.name, grid.cells[index].Group, grid.cells[index].Event)
		}
	}

	for index, occupant := range other.cells {
		if occupant != nil {
			occupantCopy := *occupant
			grid.cells[index] = &occupantCopy
		}
	}
	grid.subjects = append(grid.subjects, other.subjects...)
	grid.CreditHours()

	return nil
}

// Returns the occupant of the cell at day and period; ok is false when the cell is empty or out of range
func (grid *Grid) Cell(day Day, period int) (occupant Occupant, ok bool) {
	if !day.Valid() || period < 0 || period >= grid.size {
		return Occupant{}, false
	}

	cell := grid.cells[grid.indexer.Index(day, period)]
	if cell == nil {
		return Occupant{}, false
	}
	return *cell, true
}

// Number of periods per day
func (grid *Grid) Size() int {
	return grid.size
}

func (grid *Grid) Subjects() []*Subject {
	return slices.Clone(grid.subjects)
}

func (grid *Grid) Contains(subject *Subject) bool {
	return slices.Contains(grid.subjects, subject)
}

func (grid *Grid) String() string {
	var builder strings.Builder
	builder.WriteString("Schedule Table:\n")
	for _, day := range Days() {
		fmt.Fprintf(&builder, "  %v:\n", day)

		dayHasEvents := false
		for period := range grid.size {
			if occupant, ok := grid.Cell(day, period); ok {
				fmt.Fprintf(&builder, "    Period %v: %v (%v) - %v\n", period, occupant.Subject.name, occupant.Group, occupant.Event)
				dayHasEvents = true
			}
		}
		if !dayHasEvents {
			builder.WriteString("    No events scheduled\n")
		}
	}
	fmt.Fprintf(&builder, "Total Credit Hours: %v\n", grid.CreditHours())
	return builder.String()
}
