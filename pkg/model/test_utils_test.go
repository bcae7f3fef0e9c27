package model

import (
	"slices"

	"github.com/samber/lo"
)

func newTestEvent(name string, day Day, periods ...int) Event {
	return lo.Must(NewEvent(name, day, periods...))
}

func newTestGroup(name string, events ...Event) Group {
	return lo.Must(NewGroup(name, events...))
}

func newTestSubject(name string, creditHours int, groups ...Group) *Subject {
	return lo.Must(NewSubject(name, creditHours, groups...))
}

// Single-group subject with a single event at the given day and periods
func newSimpleSubject(name string, creditHours int, day Day, periods ...int) *Subject {
	return newTestSubject(name, creditHours, newTestGroup("G1", newTestEvent("Lecture", day, periods...)))
}

type gridSnapshot struct {
	cells       []*Occupant
	subjects    []*Subject
	creditHours int
	text        string
}

func snapshot(grid *Grid) gridSnapshot {
	return gridSnapshot{
		cells:       slices.Clone(grid.cells),
		subjects:    slices.Clone(grid.subjects),
		creditHours: grid.creditHours,
		text:        grid.String(),
	}
}

func render(grids []*Grid) []string {
	return lo.Map(grids, func(grid *Grid, _ int) string { return grid.String() })
}
