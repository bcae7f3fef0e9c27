package model

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	InvalidArgument ErrorKind = iota
	InvalidDay
	EmptySchedule
	GroupNotFound
	DuplicateSubject
	ScheduleConflict
)

var errorKindNames = map[ErrorKind]string{
	InvalidArgument:  "invalid argument",
	InvalidDay:       "invalid day",
	EmptySchedule:    "empty schedule",
	GroupNotFound:    "group not found",
	DuplicateSubject: "duplicate subject",
	ScheduleConflict: "schedule conflict",
}

func (kind ErrorKind) String() string {
	if name, ok := errorKindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// Sentinels to be used with errors.Is; they match any ScheduleError of the same kind
var (
	ErrInvalidArgument  = ScheduleError{Kind: InvalidArgument}
	ErrInvalidDay       = ScheduleError{Kind: InvalidDay}
	ErrEmptySchedule    = ScheduleError{Kind: EmptySchedule}
	ErrGroupNotFound    = ScheduleError{Kind: GroupNotFound}
	ErrDuplicateSubject = ScheduleError{Kind: DuplicateSubject}
	ErrScheduleConflict = ScheduleError{Kind: ScheduleConflict}
)

type ScheduleError struct {
	Kind    ErrorKind
	Message string
}

func newError(kind ErrorKind, format string, args ...any) ScheduleError {
	return ScheduleError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (err ScheduleError) Error() string {
	if err.Message == "" {
		return err.Kind.String()
	}
	return fmt.Sprintf("%v: %v", err.Kind, err.Message)
}

func (err ScheduleError) Is(target error) bool {
	other, ok := target.(ScheduleError)
	return ok && other.Kind == err.Kind
}

// Returns the kind of the first ScheduleError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var scheduleErr ScheduleError
	if errors.As(err, &scheduleErr) {
		return scheduleErr.Kind, true
	}
	return 0, false
}
