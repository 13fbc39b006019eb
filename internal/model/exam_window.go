package model

import "time"

type WindowState int

const (
	// WindowUnscheduled means the exam has no start time and can never be submitted.
	WindowUnscheduled WindowState = iota
	WindowUpcoming
	WindowOpen
	WindowClosed
)

func (s WindowState) String() string {
	switch s {
	case WindowUpcoming:
		return "upcoming"
	case WindowOpen:
		return "open"
	case WindowClosed:
		return "closed"
	default:
		return "unscheduled"
	}
}

// ExamWindow is the single definition of "exam is still open" shared by
// submission and listing code.
type ExamWindow struct {
	Start *time.Time
	End   *time.Time
}

// NewExamWindow derives the effective end as start + duration when no explicit end is set.
func NewExamWindow(start, end *time.Time, durationMinutes int) ExamWindow {
	if start == nil {
		return ExamWindow{}
	}
	s := *start
	var e time.Time
	if end != nil {
		e = *end
	} else {
		e = s.Add(time.Duration(durationMinutes) * time.Minute)
	}
	return ExamWindow{Start: &s, End: &e}
}

// StateAt reports the window state at now. Both boundaries are inclusive.
func (w ExamWindow) StateAt(now time.Time) WindowState {
	switch {
	case w.Start == nil:
		return WindowUnscheduled
	case now.Before(*w.Start):
		return WindowUpcoming
	case w.End != nil && now.After(*w.End):
		return WindowClosed
	default:
		return WindowOpen
	}
}
