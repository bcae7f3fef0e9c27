package model

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/samber/lo"
)

func validateParams(catalog []*Subject, params Params) (Params, error) {
	if params.Tables < 0 {
		return params, newError(InvalidArgument, "number of tables must not be negative: %v", params.Tables)
	} else if params.GridSize < 0 {
		return params, newError(InvalidArgument, "grid size must not be negative: %v", params.GridSize)
	} else if lo.Contains(catalog, nil) {
		return params, newError(InvalidArgument, "catalog must not contain nil subjects")
	}

	if params.GridSize == 0 {
		params.GridSize = DefaultPeriods
	}
	return params, nil
}

// Splits the catalog into the priority subjects it actually contains and the remaining ones
func partition(catalog []*Subject, priority []*Subject) (prioritySubjects []*Subject, nonPrioritySubjects []*Subject) {
	prioritySubjects = lo.Uniq(lo.Filter(priority, func(subject *Subject, _ int) bool {
		return subject != nil && slices.Contains(catalog, subject)
	}))
	nonPrioritySubjects = lo.Filter(catalog, func(subject *Subject, _ int) bool {
		return !slices.Contains(prioritySubjects, subject)
	})
	return prioritySubjects, nonPrioritySubjects
}

// Builds every candidate subject set ordered by the sorted names of its members
func enumerate(catalog []*Subject, params Params) [][]*Subject {
	prioritySubjects, nonPrioritySubjects := partition(catalog, params.Priority)
	generator := newCombinationGenerator()

	minNonPriority := max(0, params.MinSubjects-len(prioritySubjects))
	maxNonPriority := params.MaxSubjects - len(prioritySubjects)

	candidates := make([][]*Subject, 0)
	for k := minNonPriority; k <= maxNonPriority; k++ {
		for _, combination := range generator.Combinations(len(nonPrioritySubjects), k) {
			candidate := slices.Concat(prioritySubjects, lo.Map(combination, func(i int, _ int) *Subject { return nonPrioritySubjects[i] }))

			// Add only if the total number of subjects is within bounds
			if params.MinSubjects <= len(candidate) && len(candidate) <= params.MaxSubjects {
				candidates = append(candidates, candidate)
			}
		}
	}

	keyed := lo.Map(candidates, func(candidate []*Subject, _ int) lo.Tuple2[[]string, []*Subject] {
		return lo.T2(sortedNames(candidate), candidate)
	})
	slices.SortStableFunc(keyed, func(a, b lo.Tuple2[[]string, []*Subject]) int {
		return slices.Compare(a.A, b.A)
	})

	return lo.Map(keyed, func(tuple lo.Tuple2[[]string, []*Subject], _ int) []*Subject { return tuple.B })
}

func sortedNames(subjects []*Subject) []string {
	names := lo.Map(subjects, func(subject *Subject, _ int) string { return subject.name })
	slices.Sort(names)
	return names
}

// Tries to schedule every subject of the candidate on a fresh grid: subjects and groups are tried in ascending name order, the first group that fits is kept and the first subject that does not fit discards the candidate.
// A nil grid with a nil error means the candidate is unschedulable; an error means placement failed unexpectedly and the candidate is abandoned
func attempt(candidate []*Subject, params Params) (*Grid, error) {
	grid, err := NewGrid(params.GridSize)
	if err != nil {
		return nil, fmt.Errorf("cannot create grid: %w", err)
	}

	subjects := slices.Clone(candidate)
	slices.SortStableFunc(subjects, func(a, b *Subject) int { return strings.Compare(a.name, b.name) })

	for _, subject := range subjects {
		groups := subject.Groups()
		slices.SortStableFunc(groups, func(a, b Group) int { return strings.Compare(a.name, b.name) })

		placed := false
		for _, group := range groups {
			err := grid.Place(subject, group.name)
			if err == nil {
				placed = true
				break
			}

			kind, _ := KindOf(err)
			if kind == ScheduleConflict {
				continue // Try the next group of the same subject
			} else if kind == DuplicateSubject {
				placed = true // Already in the grid
				break
			}

			return nil, fmt.Errorf("unexpected error adding subject %v group %v: %w", subject.name, group.name, err)
		}

		if !placed {
			return nil, nil
		}
	}

	creditHours := grid.CreditHours()
	if creditHours < params.MinCreditHours || creditHours > params.MaxCreditHours {
		return nil, nil
	}
	return grid, nil
}

func reportShortfall(logger *log.Logger, found, requested int) {
	if found < requested {
		logger.Printf("warning: could only generate %v out of %v requested tables after checking all viable combinations", found, requested)
	}
}

func loggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
