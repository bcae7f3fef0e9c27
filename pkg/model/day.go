package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Saturday
)

// Number of days a grid holds
const DayCount = 6

// Default number of periods per day
const DefaultPeriods = 12

var (
	dayCodes = [DayCount]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Sat"}
	dayNames = [DayCount]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Saturday"}
)

// Returns every day in grid order
func Days() []Day {
	return []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Saturday}
}

// Accepts either a short code ("Mon") or a full name ("Monday"), case-insensitive
func ParseDay(code string) (Day, error) {
	code = strings.TrimSpace(code)
	for _, day := range Days() {
		if strings.EqualFold(code, dayCodes[day]) || strings.EqualFold(code, dayNames[day]) {
			return day, nil
		}
	}
	return 0, newError(InvalidDay, "invalid day %q, expected one of %v", code, lo.Map(Days(), func(day Day, _ int) string { return day.Code() }))
}

func (day Day) Valid() bool {
	return day >= Sunday && day <= Saturday
}

func (day Day) Code() string {
	if !day.Valid() {
		return fmt.Sprintf("Day(%d)", int(day))
	}
	return dayCodes[day]
}

func (day Day) String() string {
	if !day.Valid() {
		return fmt.Sprintf("Day(%d)", int(day))
	}
	return dayNames[day]
}
