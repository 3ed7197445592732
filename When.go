package when

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/brianjpetersen/when/errs"
	"github.com/brianjpetersen/when/substitutions"
	"github.com/brianjpetersen/when/timezones"
)

const (
	// ErrImmutableField reports a write to one of the seven write-once
	// canonical fields.
	ErrImmutableField errs.Error = `the field is write-once`
	// ErrFieldRange reports a canonical field outside its calendar range.
	ErrFieldRange errs.Error = `the field is outside its valid range`
)

// Field names one attribute of a When for Set and Replace.
type Field string

const (
	FieldYear        Field = "year"
	FieldMonth       Field = "month"
	FieldDay         Field = "day"
	FieldHour        Field = "hour"
	FieldMinute      Field = "minute"
	FieldSecond      Field = "second"
	FieldMicrosecond Field = "microsecond"
	FieldTimezone    Field = "timezone"
)

// NowFunc generates the current time.  Intentionally exported so that it can
// be overridden, for example by applications that require deterministic time.
var NowFunc = time.Now

// When is an immutable instant paired with a mutable timezone view.
//
// The seven canonical fields (year through microsecond) are fixed at
// construction; the timezone determines how those fields read.  Two When
// values denoting the same physical moment in different zones compare equal.
type When struct {
	t        time.Time // the instant localized to the current view
	utc      time.Time // the same instant in UTC, fixed at construction
	timezone string

	// utcWhen memoizes the UTC projection.  The write is idempotent, so a
	// concurrent first read at worst recomputes the same value.
	utcWhen     *When
	substitutor *substitutions.Substitutor
}

// Option configures construction.
type Option func(*options)

type options struct {
	dst *bool
}

// DST disambiguates wall-clock readings that occur twice across a
// daylight-saving fall-back transition: true selects the daylight reading,
// false the standard one.  Unambiguous readings are unaffected.
func DST(dst bool) Option {
	return func(o *options) { v := dst; o.dst = &v }
}

// New constructs a When from explicit calendar fields read in the given
// timezone.  The fields are validated against the proleptic Gregorian
// calendar and fail with ErrFieldRange; the timezone identifier resolves
// through the timezones package.
func New(year, month, day, hour, minute, second, microsecond int, timezone string, opts ...Option) (*When, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateFields(year, month, day, hour, minute, second, microsecond); err != nil {
		return nil, err
	}
	location, err := timezones.Resolve(timezone)
	if err != nil {
		return nil, err
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, microsecond*1000, location)
	if o.dst != nil {
		t = resolveFold(t, year, month, day, hour, minute, second, microsecond, *o.dst)
	}
	return wrap(t, timezone), nil
}

// NewDate constructs a When at midnight of the given civil date.
func NewDate(year, month, day int, timezone string, opts ...Option) (*When, error) {
	return New(year, month, day, 0, 0, 0, 0, timezone, opts...)
}

// Now returns a When at this very instant, with the view set by timezone.
// The reading is computed in UTC, so daylight-saving transitions cannot make
// it ambiguous.
func Now(timezone string) (*When, error) {
	w := UTCNow()
	if err := w.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return w, nil
}

// UTCNow returns a When at this very instant with the view fixed to UTC.
func UTCNow() *When {
	return wrap(NowFunc().In(time.UTC).Truncate(time.Microsecond), "utc")
}

// FromTime localizes the wall-clock reading of t into the given timezone.
// The location carried by t itself is ignored; only its calendar fields are
// read, truncated to microsecond resolution.
func FromTime(t time.Time, timezone string, opts ...Option) (*When, error) {
	return New(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000, timezone, opts...)
}

// FromUnix constructs a When from seconds (and microseconds) since the Unix
// epoch, viewed through the given timezone.
func FromUnix(seconds, microseconds int64, timezone string) (*When, error) {
	w := UTCFromUnix(seconds, microseconds)
	if err := w.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return w, nil
}

// UTCFromUnix constructs a When from seconds (and microseconds) since the
// Unix epoch with the view fixed to UTC.
func UTCFromUnix(seconds, microseconds int64) *When {
	return wrap(time.Unix(seconds, microseconds*1000).In(time.UTC), "utc")
}

// FromOrdinal constructs a When at midnight of the proleptic Gregorian
// ordinal date, where ordinal 1 is January 1st of year 1.
func FromOrdinal(ordinal int, timezone string) (*When, error) {
	if ordinal < 1 {
		return nil, fmt.Errorf("ordinal %d: %w", ordinal, ErrFieldRange)
	}
	t := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
	if t.Year() > maxYear {
		return nil, fmt.Errorf("ordinal %d: %w", ordinal, ErrFieldRange)
	}
	return NewDate(t.Year(), int(t.Month()), t.Day(), timezone)
}

// ParseLayout constructs a When by parsing value with a classic reference
// layout (the time package's directive scheme), read in the given timezone.
// For the substitution-based alternative, see FromString.
func ParseLayout(value, layout, timezone string) (*When, error) {
	location, err := timezones.Resolve(timezone)
	if err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(layout, value, location)
	if err != nil {
		return nil, err
	}
	return wrap(t.Truncate(time.Microsecond), timezone), nil
}

func wrap(t time.Time, timezone string) *When {
	return &When{t: t, utc: t.In(time.UTC), timezone: timezone}
}

const (
	minYear = 1
	maxYear = 9999
)

// validateFields rejects out-of-range calendar fields explicitly, because
// time.Date normalizes them instead of failing.
func validateFields(year, month, day, hour, minute, second, microsecond int) error {
	switch {
	case year < minYear || year > maxYear:
		return fmt.Errorf("year %d: %w", year, ErrFieldRange)
	case month < 1 || month > 12:
		return fmt.Errorf("month %d: %w", month, ErrFieldRange)
	case day < 1 || day > daysIn(year, month):
		return fmt.Errorf("day %d: %w", day, ErrFieldRange)
	case hour < 0 || hour > 23:
		return fmt.Errorf("hour %d: %w", hour, ErrFieldRange)
	case minute < 0 || minute > 59:
		return fmt.Errorf("minute %d: %w", minute, ErrFieldRange)
	case second < 0 || second > 59:
		return fmt.Errorf("second %d: %w", second, ErrFieldRange)
	case microsecond < 0 || microsecond > 999999:
		return fmt.Errorf("microsecond %d: %w", microsecond, ErrFieldRange)
	}
	return nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// resolveFold probes the sibling instants sharing the requested wall-clock
// reading and selects the one whose daylight-saving state matches.
// Nonexistent readings (spring-forward gaps) keep the platform normalization.
func resolveFold(t time.Time, year, month, day, hour, minute, second, microsecond int, dst bool) time.Time {
	if sameWall(t, year, month, day, hour, minute, second, microsecond) && t.IsDST() == dst {
		return t
	}
	for _, delta := range []time.Duration{-time.Hour, time.Hour, -30 * time.Minute, 30 * time.Minute} {
		alt := t.Add(delta)
		if sameWall(alt, year, month, day, hour, minute, second, microsecond) && alt.IsDST() == dst {
			return alt
		}
	}
	return t
}

func sameWall(t time.Time, year, month, day, hour, minute, second, microsecond int) bool {
	return t.Year() == year && int(t.Month()) == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == minute && t.Second() == second &&
		t.Nanosecond()/1000 == microsecond
}

// canonical field accessors, read under the current view

func (w *When) Year() int        { return w.t.Year() }
func (w *When) Month() int       { return int(w.t.Month()) }
func (w *When) Day() int         { return w.t.Day() }
func (w *When) Hour() int        { return w.t.Hour() }
func (w *When) Minute() int      { return w.t.Minute() }
func (w *When) Second() int      { return w.t.Second() }
func (w *When) Microsecond() int { return w.t.Nanosecond() / 1000 }

// Millisecond is the fractional millisecond reading, e.g. 333.333 for a
// microsecond field of 333333.
func (w *When) Millisecond() float64 { return float64(w.Microsecond()) / 1000.0 }

// Weekday is the ISO weekday, where Monday is 1 and Sunday is 7.
func (w *When) Weekday() int {
	d := int(w.t.Weekday())
	if d == 0 {
		d = 7
	}
	return d
}

// DayOfYear is the one-based day number within the year of the current view.
func (w *When) DayOfYear() int { return w.t.YearDay() }

// Ordinal is the proleptic Gregorian ordinal of the civil date under the
// current view, where January 1st of year 1 is ordinal 1.  Computed with
// integer day arithmetic; a time.Duration would overflow on spans this long.
func (w *When) Ordinal() int {
	y := w.Year() - 1
	return 365*y + y/4 - y/100 + y/400 + w.DayOfYear()
}

// Timestamp is the count of seconds since the Unix epoch.
func (w *When) Timestamp() int64 { return w.utc.Unix() }

// Time is the instant represented as a platform time.Time.  Because the
// returned value carries a location, it depends on the current view.
func (w *When) Time() time.Time { return w.t }

// Timezone is the identifier of the current view.
func (w *When) Timezone() string { return w.timezone }

// Location is the timezone of the current view.
func (w *When) Location() *time.Location { return w.t.Location() }

// DST reports whether the instant, read under the current view, is inside
// daylight saving time.
func (w *When) DST() bool { return w.t.IsDST() }

// Fields is the ordered-field-sequence contract: the seven canonical fields,
// read under the current view, in construction order.
func (w *When) Fields() [7]int {
	return [7]int{w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Microsecond()}
}

func (w *When) utcTuple() [7]int {
	u := w.utc
	return [7]int{u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond() / 1000}
}

// Set writes one attribute by name.  Exactly FieldTimezone is writable; each
// of the seven canonical fields fails with ErrImmutableField.
func (w *When) Set(field Field, value interface{}) error {
	switch field {
	case FieldTimezone:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("timezone: expected string, got %T", value)
		}
		return w.SetTimezone(name)
	case FieldYear, FieldMonth, FieldDay, FieldHour, FieldMinute, FieldSecond, FieldMicrosecond:
		return fmt.Errorf("%s: %w; derive a new value with Replace", field, ErrImmutableField)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

// SetTimezone re-projects the instant into the named zone and updates the
// view.  This changes how the canonical fields read, never the physical
// instant.
func (w *When) SetTimezone(name string) error {
	location, err := timezones.Resolve(name)
	if err != nil {
		return err
	}
	w.t = w.utc.In(location)
	w.timezone = name
	w.substitutor = nil
	return nil
}

// In returns a copy of w viewed through the named zone, leaving w untouched.
func (w *When) In(name string) (*When, error) {
	location, err := timezones.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &When{t: w.utc.In(location), utc: w.utc, timezone: name}, nil
}

// Replace derives a new When by overlaying the supplied canonical-field
// overrides onto the current field set and re-invoking the constructor with
// the current view.  This is the only sanctioned mutation path for the
// canonical fields; Replace(nil) is an idempotent copy.
func (w *When) Replace(overrides map[Field]int) (*When, error) {
	f := w.Fields()
	for field, value := range overrides {
		switch field {
		case FieldYear:
			f[0] = value
		case FieldMonth:
			f[1] = value
		case FieldDay:
			f[2] = value
		case FieldHour:
			f[3] = value
		case FieldMinute:
			f[4] = value
		case FieldSecond:
			f[5] = value
		case FieldMicrosecond:
			f[6] = value
		case FieldTimezone:
			return nil, fmt.Errorf("timezone: not a canonical field; use SetTimezone or In")
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
	}
	return New(f[0], f[1], f[2], f[3], f[4], f[5], f[6], w.timezone)
}

// UTC exposes the instant in UTC.  The projection is memoized on first use
// given that it is invariant, but every read returns a fresh wrapper around
// the cached value.
func (w *When) UTC() *When {
	if w.utcWhen == nil {
		w.utcWhen = wrap(w.utc, "utc")
	}
	cached := w.utcWhen
	return &When{t: cached.t, utc: cached.utc, timezone: cached.timezone}
}

// Add returns a new When shifted by the given While, keeping the view.
func (w *When) Add(d While) *When {
	t := w.t.Add(d.Duration())
	return wrap(t, w.timezone)
}

// Sub returns the signed While between the UTC projections of w and other.
func (w *When) Sub(other *When) While {
	return FromDuration(w.utc.Sub(other.utc))
}

// Compare orders two When values over their UTC-normalized field tuples:
// -1 when w is earlier than other, 0 when they denote the same instant,
// +1 when later.
func (w *When) Compare(other *When) int {
	a, b := w.utcTuple(), other.utcTuple()
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether two When values denote the same physical instant,
// regardless of their current views.
func (w *When) Equal(other *When) bool { return w.Compare(other) == 0 }

// Before reports whether w is earlier than other.
func (w *When) Before(other *When) bool { return w.Compare(other) < 0 }

// After reports whether w is later than other.
func (w *When) After(other *When) bool { return w.Compare(other) > 0 }

// Hash is a function of the UTC-normalized field tuple, so equal instants
// hash identically whatever their views.
func (w *When) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, field := range w.utcTuple() {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(field)))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the platform default representation under the current view,
// eliding the fractional part when the microsecond field is zero.
func (w *When) String() string {
	s := w.t.Format("2006-01-02 15:04:05")
	if us := w.Microsecond(); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + w.t.Format("-07:00")
}

// GoString renders a constructor-shaped string that reconstructs an equal
// When when evaluated.
func (w *When) GoString() string {
	f := w.Fields()
	return fmt.Sprintf("when.New(%d, %d, %d, %d, %d, %d, %d, %q)",
		f[0], f[1], f[2], f[3], f[4], f[5], f[6], w.timezone)
}
