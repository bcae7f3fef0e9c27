package model

import (
	"fmt"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Subject struct {
	name        string
	creditHours int
	groups      []Group
}

func NewSubject(name string, creditHours int, groups ...Group) (*Subject, error) {
	if name == "" {
		return nil, newError(InvalidArgument, "subject name must not be empty")
	} else if creditHours < 0 {
		return nil, newError(InvalidArgument, "credit hours of subject %q must not be negative: %v", name, creditHours)
	}

	for i, group := range groups {
		if group.name == "" {
			return nil, newError(InvalidArgument, "group %d of subject %q was not built with NewGroup", i, name)
		}
	}

	return &Subject{
		name:        name,
		creditHours: creditHours,
		groups:      slices.Clone(groups),
	}, nil
}

// Converts a loosely typed credit-hour value into an integer. Only floats with a fractional part warn when truncated toward zero:
// decoded JSON yields float64 for every number, so whole floats such as 3.0 are taken as integers silently.
// Values outside the int range and any other kind are rejected
func CreditHoursFromValue(value any) (int, error) {
	creditHours, err := intFromValue(value, "credit hours")
	if err != nil {
		return 0, err
	}

	if v, ok := value.(float64); ok && math.Trunc(v) != v {
		log.Printf("warning: credit hours %v were converted from float to int %v", v, creditHours)
	} else if v, ok := value.(float32); ok && math.Trunc(float64(v)) != float64(v) {
		log.Printf("warning: credit hours %v were converted from float to int %v", v, creditHours)
	}
	return creditHours, nil
}

// Converts integer kinds and floats (truncated toward zero) into an int, rejecting anything that does not fit
func intFromValue(value any, what string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, newError(InvalidArgument, "%v out of range: %v", what, v)
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, newError(InvalidArgument, "%v out of range: %v", what, v)
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			return 0, newError(InvalidArgument, "%v out of range: %v", what, v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, newError(InvalidArgument, "%v out of range: %v", what, v)
		}
		return int(v), nil
	case float32:
		return intFromValue(float64(v), what)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, newError(InvalidArgument, "%v must be a finite number: %v", what, v)
		}
		// float64(math.MaxInt) rounds up to 2^63, which no longer fits
		truncated := math.Trunc(v)
		if truncated >= float64(math.MaxInt) || truncated < float64(math.MinInt) {
			return 0, newError(InvalidArgument, "%v out of range: %v", what, v)
		}
		return int(truncated), nil
	default:
		return 0, newError(InvalidArgument, "%v must be an integer: %v (%T)", what, value, value)
	}
}

func (subject *Subject) Name() string {
	return subject.name
}

func (subject *Subject) CreditHours() int {
	return subject.creditHours
}

func (subject *Subject) Groups() []Group {
	return slices.Clone(subject.groups)
}

// Returns the subject's group with the given name, if any
func (subject *Subject) Group(name string) (Group, bool) {
	return lo.Find(subject.groups, func(group Group) bool { return group.name == name })
}

func (subject *Subject) String() string {
	var builder strings.Builder
	builder.WriteString("Subject:\n")
	fmt.Fprintf(&builder, "\tName: %v\n", subject.name)
	fmt.Fprintf(&builder, "\tCredit Hours: %v\n", subject.creditHours)
	for _, group := range subject.groups {
		fmt.Fprintf(&builder, "\tSchedule (%v):\n", group.name)
		for _, line := range strings.Split(group.String(), "\n") {
			if line != "" {
				fmt.Fprintf(&builder, "\t\t%v\n", line)
			}
		}
	}
	return builder.String()
}

func (subject *Subject) GoString() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Subject(%q, %d", subject.name, subject.creditHours)
	for _, group := range subject.groups {
		fmt.Fprintf(&builder, ", %#v", group)
	}
	builder.WriteString(")")
	return builder.String()
}
