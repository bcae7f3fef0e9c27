package render

import (
	"fmt"

	"github.com/limaJavier/tablebuilder/pkg/model"
)

// span is a run of consecutive periods of one day holding the same occupant
type span struct {
	start    int
	length   int
	occupant model.Occupant
}

// Returns the occupied runs of a day in ascending period order. Merging adjacent cells is purely visual
func spans(grid *model.Grid, day model.Day) []span {
	spans := make([]span, 0)
	for period := range grid.Size() {
		occupant, ok := grid.Cell(day, period)
		if !ok {
			continue
		}

		if last := len(spans) - 1; last >= 0 && spans[last].start+spans[last].length == period && spans[last].occupant == occupant {
			spans[last].length++
			continue
		}
		spans = append(spans, span{start: period, length: 1, occupant: occupant})
	}
	return spans
}

func label(occupant model.Occupant) string {
	return fmt.Sprintf("%v (%v) - %v", occupant.Subject.Name(), occupant.Group, occupant.Event)
}
