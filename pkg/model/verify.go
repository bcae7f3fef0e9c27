package model

import (
	"slices"

	"github.com/samber/lo"
)

// Checks whether every occupied cell of the grid is backed by the catalog data of a placed subject and whether every placed subject's chosen group is fully and exclusively placed
func Verify(grid *Grid) bool {
	if grid == nil {
		return false
	}

	//** Initialize chosen groups
	chosenGroups := make(map[*Subject]string)

	//** Check every occupied cell
	for index, occupant := range grid.cells {
		if occupant == nil {
			continue
		}
		day, period := grid.indexer.Attributes(index)

		// Check that:
		// - Subject is placed in the grid
		// - Subject has the group
		// - Subject is not scheduled with more than one group
		// - Group has the event and the event takes place at this day and period
		if !slices.Contains(grid.subjects, occupant.Subject) {
			return false
		}
		group, ok := occupant.Subject.Group(occupant.Group)
		if !ok {
			return false
		}
		if chosen, ok := chosenGroups[occupant.Subject]; ok && chosen != occupant.Group {
			return false
		}
		if !lo.SomeBy(group.events, func(event Event) bool {
			return event.name == occupant.Event && slices.Contains(event.placements, Placement{Day: day, Period: period})
		}) {
			return false
		}

		chosenGroups[occupant.Subject] = occupant.Group // Store chosen group
	}

	//** Check every placed subject
	for i, subject := range grid.subjects {
		// A subject can only be placed once
		if slices.Contains(grid.subjects[:i], subject) {
			return false
		}

		chosen, ok := chosenGroups[subject]
		if !ok {
			// A subject without cells is only valid if one of its groups has no placements at all
			if !lo.SomeBy(subject.groups, func(group Group) bool { return len(group.events) == 0 }) {
				return false
			}
			continue
		}

		// Every placement of the chosen group must be occupied by this very subject, group and event
		group, _ := subject.Group(chosen)
		for _, event := range group.events {
			for _, placement := range event.placements {
				occupant, ok := grid.Cell(placement.Day, placement.Period)
				if !ok || occupant.Subject != subject || occupant.Group != chosen || occupant.Event != event.name {
					return false
				}
			}
		}
	}

	// Check that the cached credit hours did not drift
	return grid.creditHours == lo.SumBy(grid.subjects, func(subject *Subject) int { return subject.creditHours })
}
