package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Group is one of the mutually exclusive offerings of a subject
type Group struct {
	name   string
	events []Event
}

func NewGroup(name string, events ...Event) (Group, error) {
	if name == "" {
		return Group{}, newError(InvalidArgument, "group name must not be empty")
	}

	for i, event := range events {
		// The zero value is the only way to get an event without placements
		if len(event.placements) == 0 {
			return Group{}, newError(InvalidArgument, "event %d of group %q was not built with NewEvent", i, name)
		}
	}

	return Group{
		name:   name,
		events: slices.Clone(events),
	}, nil
}

func (group Group) Name() string {
	return group.name
}

func (group Group) Events() []Event {
	return slices.Clone(group.events)
}

func (group Group) String() string {
	return strings.Join(lo.Map(group.events, func(event Event, _ int) string { return event.String() }), "\n")
}

func (group Group) GoString() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Group(%q", group.name)
	for _, event := range group.events {
		fmt.Fprintf(&builder, ", %#v", event)
	}
	builder.WriteString(")")
	return builder.String()
}
