package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Placement is a single (day, period) cell claimed by an event
type Placement struct {
	Day    Day
	Period int
}

type Event struct {
	name       string
	placements []Placement
}

// Builds an event that takes place on a single day at every given period. Periods need not be contiguous nor sorted; they are only checked against a grid's size on placement
func NewEvent(name string, day Day, periods ...int) (Event, error) {
	if name == "" {
		return Event{}, newError(InvalidArgument, "event name must not be empty")
	} else if !day.Valid() {
		return Event{}, newError(InvalidDay, "invalid day %v for event %q", int(day), name)
	} else if len(periods) == 0 {
		return Event{}, newError(EmptySchedule, "event %q must have at least one period", name)
	}

	placements := lo.Map(periods, func(period int, _ int) Placement {
		return Placement{Day: day, Period: period}
	})

	return Event{
		name:       name,
		placements: placements,
	}, nil
}

func (event Event) Name() string {
	return event.name
}

func (event Event) Day() Day {
	return event.placements[0].Day
}

func (event Event) Periods() []int {
	return lo.Map(event.placements, func(placement Placement, _ int) int { return placement.Period })
}

func (event Event) Placements() []Placement {
	return slices.Clone(event.placements)
}

func (event Event) String() string {
	return fmt.Sprintf("%v on %v, periods: %v", event.name, event.Day(), event.Periods())
}

func (event Event) GoString() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Event(%q, %q", event.name, event.Day().Code())
	for _, period := range event.Periods() {
		fmt.Fprintf(&builder, ", %d", period)
	}
	builder.WriteString(")")
	return builder.String()
}
