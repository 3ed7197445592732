package when

import "time"

// While is the duration counterpart of When, with intuitive unit accessors.
// Subtracting two When values yields a While; adding a While to a When yields
// a new When.
type While struct {
	d time.Duration
}

// NewWhile builds a While from named units.  The units simply accumulate, so
// NewWhile(1, 24, 0, 0, 0, 0) is two days.
func NewWhile(days, hours, minutes, seconds, milliseconds, microseconds int) While {
	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond +
		time.Duration(microseconds)*time.Microsecond
	return While{d: d}
}

// FromDuration wraps a platform duration.
func FromDuration(d time.Duration) While { return While{d: d} }

// Duration is the platform representation of the While.
func (wl While) Duration() time.Duration { return wl.d }

func (wl While) Weeks() float64        { return wl.Days() / 7 }
func (wl While) Days() float64         { return wl.d.Hours() / 24 }
func (wl While) Hours() float64        { return wl.d.Hours() }
func (wl While) Minutes() float64      { return wl.d.Minutes() }
func (wl While) Seconds() float64      { return wl.d.Seconds() }
func (wl While) Milliseconds() float64 { return float64(wl.d) / float64(time.Millisecond) }
func (wl While) Microseconds() float64 { return float64(wl.d) / float64(time.Microsecond) }

func (wl While) String() string { return wl.d.String() }
