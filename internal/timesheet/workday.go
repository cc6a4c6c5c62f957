package timesheet

import (
	"time"

	timesheeterrors "go-timekeep/internal/timesheet/errors"
)

const (
	KindTimeIn  = "TIME_IN"
	KindBreak   = "BREAK"
	KindTimeOut = "TIME_OUT"
)

const (
	StateNotStarted = "NOT_STARTED"
	StateWorking    = "WORKING"
	StateOnBreak    = "ON_BREAK"
	StateEnded      = "ENDED"
)

const clockTimeLayout = "03:04 PM"

// NextDayState validates a clock action against the day's current state.
// TIME_OUT is terminal; nothing is accepted for the day after it.
func NextDayState(current, kind string) (string, error) {
	switch kind {
	case KindTimeIn:
		switch current {
		case StateNotStarted, StateOnBreak:
			return StateWorking, nil
		case StateWorking:
			return "", timesheeterrors.ErrAlreadyTimedIn
		default:
			return "", timesheeterrors.ErrTimeInAfterTimeOut
		}
	case KindBreak:
		if current != StateWorking {
			return "", timesheeterrors.ErrBreakBeforeTimeIn
		}
		return StateOnBreak, nil
	case KindTimeOut:
		if current != StateWorking {
			return "", timesheeterrors.ErrTimeOutBeforeTimeIn
		}
		return StateEnded, nil
	default:
		return "", timesheeterrors.ErrUnknownClockAction
	}
}

// TotalSeconds pairs each TIME_IN with the next BREAK/TIME_OUT and sums
// the interval lengths. Events must be ordered ascending by time and
// well-formed (the state machine guarantees that at write time). An open
// trailing TIME_IN contributes nothing until it is closed.
func TotalSeconds(events []ClockEvent) float64 {
	var (
		total float64
		open  *time.Time
	)

	for i := range events {
		switch events[i].Kind {
		case KindTimeIn:
			t := events[i].EventTime
			open = &t
		case KindBreak, KindTimeOut:
			if open != nil {
				total += events[i].EventTime.Sub(*open).Seconds()
				open = nil
			}
		}
	}

	return total
}

// TimeSpan renders the day as "09:00 AM to 05:30 PM" from the first
// TIME_IN and the last closing event. A day that is still open renders
// just the start time; a day with no events renders empty.
func TimeSpan(events []ClockEvent) string {
	var start, end *time.Time

	for i := range events {
		switch events[i].Kind {
		case KindTimeIn:
			if start == nil {
				t := events[i].EventTime
				start = &t
			}
		case KindBreak, KindTimeOut:
			t := events[i].EventTime
			end = &t
		}
	}

	if start == nil {
		return ""
	}
	if end == nil {
		return start.Format(clockTimeLayout)
	}
	return start.Format(clockTimeLayout) + " to " + end.Format(clockTimeLayout)
}
