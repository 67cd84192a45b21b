// Package schedule decides which repeating tasks belong to the current day.
package schedule

import (
	"time"

	"clementus360/habit-dashboard/types"
)

// IsDueToday reports whether a task with the given repeat schedule should be shown at now.
//
// Tasks without a schedule are always due. Otherwise the day is shifted back by
// dayStartHour hours, so with a day start of 3 an instant at 01:00 still counts as the
// previous calendar day. The weekday is read in now's location; callers passing
// time.Now() get the host's local zone.
func IsDueToday(repeat *types.RepeatSchedule, now time.Time, dayStartHour int) bool {
	if repeat == nil {
		return true
	}
	effective := now.Add(-time.Duration(dayStartHour) * time.Hour)
	return repeat.On(effective.Weekday())
}

// FilterDue keeps the tasks due at now, preserving their order.
func FilterDue(tasks []types.Task, now time.Time, dayStartHour int) []types.Task {
	due := make([]types.Task, 0, len(tasks))
	for _, task := range tasks {
		if IsDueToday(task.Repeat, now, dayStartHour) {
			due = append(due, task)
		}
	}
	return due
}
