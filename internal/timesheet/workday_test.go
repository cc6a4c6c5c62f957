package timesheet

import (
	"testing"
	"time"

	timesheeterrors "go-timekeep/internal/timesheet/errors"

	"github.com/stretchr/testify/assert"
)

func eventAt(kind string, hour, min int) ClockEvent {
	return ClockEvent{
		Kind:      kind,
		EventTime: time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC),
	}
}

func TestNextDayState(t *testing.T) {
	tests := []struct {
		name    string
		current string
		kind    string
		want    string
		wantErr error
	}{
		{"time in from fresh day", StateNotStarted, KindTimeIn, StateWorking, nil},
		{"time in resumes from break", StateOnBreak, KindTimeIn, StateWorking, nil},
		{"time in while already working", StateWorking, KindTimeIn, "", timesheeterrors.ErrAlreadyTimedIn},
		{"time in after ended day", StateEnded, KindTimeIn, "", timesheeterrors.ErrTimeInAfterTimeOut},
		{"break while working", StateWorking, KindBreak, StateOnBreak, nil},
		{"break before time in", StateNotStarted, KindBreak, "", timesheeterrors.ErrBreakBeforeTimeIn},
		{"break while on break", StateOnBreak, KindBreak, "", timesheeterrors.ErrBreakBeforeTimeIn},
		{"break after ended day", StateEnded, KindBreak, "", timesheeterrors.ErrBreakBeforeTimeIn},
		{"time out while working", StateWorking, KindTimeOut, StateEnded, nil},
		{"time out before time in", StateNotStarted, KindTimeOut, "", timesheeterrors.ErrTimeOutBeforeTimeIn},
		{"time out while on break", StateOnBreak, KindTimeOut, "", timesheeterrors.ErrTimeOutBeforeTimeIn},
		{"time out after ended day", StateEnded, KindTimeOut, "", timesheeterrors.ErrTimeOutBeforeTimeIn},
		{"unknown action", StateWorking, "LUNCH", "", timesheeterrors.ErrUnknownClockAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDayState(tt.current, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalSeconds_FullDayWithBreak(t *testing.T) {
	// 09:00-12:00 plus 13:00-17:30 is 7.5 worked hours
	events := []ClockEvent{
		eventAt(KindTimeIn, 9, 0),
		eventAt(KindBreak, 12, 0),
		eventAt(KindTimeIn, 13, 0),
		eventAt(KindTimeOut, 17, 30),
	}
	assert.Equal(t, float64(27000), TotalSeconds(events))
}

func TestTotalSeconds_NoEvents(t *testing.T) {
	assert.Equal(t, float64(0), TotalSeconds(nil))
}

func TestTotalSeconds_OpenTrailingInterval(t *testing.T) {
	events := []ClockEvent{
		eventAt(KindTimeIn, 9, 0),
		eventAt(KindBreak, 12, 0),
		eventAt(KindTimeIn, 13, 0),
	}
	// The trailing TIME_IN has no closer yet, only the morning counts
	assert.Equal(t, float64(10800), TotalSeconds(events))
}

func TestTimeSpan(t *testing.T) {
	events := []ClockEvent{
		eventAt(KindTimeIn, 9, 0),
		eventAt(KindBreak, 12, 0),
		eventAt(KindTimeIn, 13, 0),
		eventAt(KindTimeOut, 17, 30),
	}
	assert.Equal(t, "09:00 AM to 05:30 PM", TimeSpan(events))
}

func TestTimeSpan_OpenDay(t *testing.T) {
	events := []ClockEvent{eventAt(KindTimeIn, 9, 0)}
	assert.Equal(t, "09:00 AM", TimeSpan(events))
}

func TestTimeSpan_NoEvents(t *testing.T) {
	assert.Equal(t, "", TimeSpan(nil))
}
