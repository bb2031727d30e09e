package matcher

import (
	"fmt"
	"time"

	"github.com/mzhdanov/alert-router/internal/model"
)

const minutesPerDay = 24 * 60

// parseClock parses an "HH:MM" wall-clock string into minutes since
// midnight. "24:00" is accepted and maps to end-of-day.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}

	if h == 24 && m == 0 {
		return minutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}

	return h*60 + m, nil
}

// withinWindow reports whether the instant's time of day falls inside the
// half-open window [start, end). A window whose start is after its end
// wraps across midnight. Malformed window strings never block: the window
// is treated as always open.
func withinWindow(at time.Time, start, end string) bool {
	s, err := parseClock(start)
	if err != nil {
		return true
	}

	e, err := parseClock(end)
	if err != nil {
		return true
	}

	m := at.Hour()*60 + at.Minute()

	if s <= e {
		return m >= s && m < e
	}

	// wraps across midnight
	return m >= s || m < e
}

// inReceiveWindow reports whether a group accepts alerts at the given
// instant: inside its receive window and outside its mute window, if one
// is configured. A half-configured or malformed mute window is ignored.
func inReceiveWindow(g model.Group, at time.Time) bool {
	if g.MuteStart != "" && g.MuteEnd != "" {
		ms, errS := parseClock(g.MuteStart)
		me, errE := parseClock(g.MuteEnd)
		if errS == nil && errE == nil {
			m := at.Hour()*60 + at.Minute()
			muted := false
			if ms <= me {
				muted = m >= ms && m < me
			} else {
				muted = m >= ms || m < me
			}
			if muted {
				return false
			}
		}
	}

	return withinWindow(at, g.ReceiveStart, g.ReceiveEnd)
}
