package types

import "time"

type Task struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId,omitempty"`
	Text      string          `json:"text"`
	Type      string          `json:"type,omitempty"` // habit | daily | todo | reward
	Notes     string          `json:"notes,omitempty"`
	Value     float64         `json:"value,omitempty"`
	Priority  float64         `json:"priority,omitempty"`
	Attribute string          `json:"attribute,omitempty"`
	Repeat    *RepeatSchedule `json:"repeat,omitempty"` // nil means always due
	Completed bool            `json:"completed"`
}

// RepeatSchedule holds one flag per weekday, Sunday through Saturday.
type RepeatSchedule struct {
	Su bool `json:"su"`
	M  bool `json:"m"`
	T  bool `json:"t"`
	W  bool `json:"w"`
	Th bool `json:"th"`
	F  bool `json:"f"`
	S  bool `json:"s"`
}

// On reports whether the schedule recurs on the given weekday.
func (r RepeatSchedule) On(day time.Weekday) bool {
	switch day {
	case time.Sunday:
		return r.Su
	case time.Monday:
		return r.M
	case time.Tuesday:
		return r.T
	case time.Wednesday:
		return r.W
	case time.Thursday:
		return r.Th
	case time.Friday:
		return r.F
	case time.Saturday:
		return r.S
	}
	return false
}

type CompleteTaskResponse struct {
	Success      bool   `json:"success"`
	TaskID       string `json:"task_id,omitempty"`
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}
