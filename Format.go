package when

import (
	"fmt"
	"strings"

	"github.com/brianjpetersen/when/substitutions"
)

// Format renders the instant as a string driven by a reference date rather
// than format directives.  The reference is the date of the American
// Declaration of Independence at 1:02:03.012345PM in Philadelphia:
//
//	1776-07-04 13:02:03.012345 America/New_York
//
// Every rendering of a reference field found in the specifier is replaced by
// the corresponding rendering of this instant; unrecognized text is copied
// through verbatim.  The substitutions:
//
//	1776              four-digit year
//	76                two-digit year
//	July              full month name
//	Jul               abbreviated month name
//	07                zero-padded month
//	7                 month
//	04                zero-padded day
//	4                 day
//	th                ordinal inflection (July 4*th*, February 2*nd*)
//	Thursday          full weekday name
//	Thu               abbreviated weekday name
//	13                zero-padded hour (24-hour clock)
//	01                zero-padded hour (12-hour clock)
//	1                 hour (12-hour clock)
//	PM P.M. pm p.m.   meridiem, in the matching spelling
//	02                zero-padded minute
//	2                 minute
//	03                zero-padded second
//	3                 second
//	012               zero-padded millisecond
//	12                millisecond
//	012345            zero-padded microsecond
//	12345             microsecond
//	-04:00            utc offset
//	-0400             utc offset, compact
//	America/New_York  timezone identifier
//
// A colon-free short offset ("-04") is deliberately not a token: it would
// shadow the "-04" day substring inside ISO-shaped specifiers such as
// "1776-07-04".
//
//	earthDay, _ := when.New(2015, 4, 22, 5, 30, 59, 23, "America/Los_Angeles")
//	earthDay.Format("1776-07-04T13:02:03.012345-04:00") // 2015-04-22T05:30:59.000023-07:00
//	earthDay.Format("76/07/04")                         // 15/04/22
//	earthDay.Format("2 minutes past 1pm")               // 30 minutes past 5am
func (w *When) Format(specifier string) string {
	if w.substitutor == nil {
		w.substitutor = substitutions.New(w.formatSubstitutions())
	}
	return w.substitutor.Apply(specifier)
}

// formatToken couples a literal rendering of the reference instant with the
// rule producing the same rendering of a target instant.  The table order is
// the substitution priority: longest keys first, so a short numeral never
// matches inside a longer one.
type formatToken struct {
	key    string
	render func(w *When) string
}

var formatTokens = []formatToken{
	{"America/New_York", func(w *When) string { return w.timezone }},
	{"Thursday", func(w *When) string { return w.t.Weekday().String() }},
	{"012345", func(w *When) string { return pad(w.Microsecond(), 6) }},
	{"-04:00", func(w *When) string { return w.t.Format("-07:00") }},
	{"12345", func(w *When) string { return unpad(pad(w.Microsecond(), 6)) }},
	{"-0400", func(w *When) string { return w.t.Format("-0700") }},
	{"1776", func(w *When) string { return pad(w.Year(), 4) }},
	{"July", func(w *When) string { return w.t.Month().String() }},
	{"P.M.", func(w *When) string { return meridiem(w, "A.M.", "P.M.") }},
	{"p.m.", func(w *When) string { return meridiem(w, "a.m.", "p.m.") }},
	{"Jul", func(w *When) string { return w.t.Format("Jan") }},
	{"Thu", func(w *When) string { return w.t.Format("Mon") }},
	{"012", func(w *When) string { return pad(w.Microsecond(), 6)[:3] }},
	{"76", func(w *When) string { return pad(w.Year()%100, 2) }},
	{"13", func(w *When) string { return pad(w.Hour(), 2) }},
	{"12", func(w *When) string { return unpad(pad(w.Microsecond(), 6)[:3]) }},
	{"01", func(w *When) string { return pad(hour12(w.Hour()), 2) }},
	{"02", func(w *When) string { return pad(w.Minute(), 2) }},
	{"03", func(w *When) string { return pad(w.Second(), 2) }},
	{"04", func(w *When) string { return pad(w.Day(), 2) }},
	{"07", func(w *When) string { return pad(w.Month(), 2) }},
	{"PM", func(w *When) string { return meridiem(w, "AM", "PM") }},
	{"pm", func(w *When) string { return meridiem(w, "am", "pm") }},
	{"th", func(w *When) string { return w.Inflection() }},
	{"1", func(w *When) string { return unpad(pad(hour12(w.Hour()), 2)) }},
	{"2", func(w *When) string { return unpad(pad(w.Minute(), 2)) }},
	{"3", func(w *When) string { return unpad(pad(w.Second(), 2)) }},
	{"4", func(w *When) string { return unpad(pad(w.Day(), 2)) }},
	{"7", func(w *When) string { return unpad(pad(w.Month(), 2)) }},
}

// formatSubstitutions computes the substitutions that transform the reference
// date into this instant.  The keys are the reference renderings pinned in
// formatTokens; the civil reference predates standard time, so its offset
// keys are pinned to the modern Eastern forms rather than re-derived from the
// 1776 timezone rules (which would yield the local-mean -04:56).
func (w *When) formatSubstitutions() []substitutions.Substitution {
	subs := make([]substitutions.Substitution, 0, len(formatTokens))
	for _, token := range formatTokens {
		subs = append(subs, substitutions.Substitution{Token: token.key, Value: token.render(w)})
	}
	return subs
}

// Inflection is the ordinal suffix associated with the day of the month under
// the current view, as in July 4th or February 2nd.
func (w *When) Inflection() string {
	switch w.Day() {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// Precision selects the fractional resolution of FormatISO.
type Precision int

const (
	PrecisionSeconds Precision = iota
	PrecisionMilliseconds
	PrecisionMicroseconds
)

// FormatISO renders the instant in ISO-8601 form under the current view.
func (w *When) FormatISO(separator string, precision Precision) string {
	var second string
	switch precision {
	case PrecisionMilliseconds:
		second = "03.012"
	case PrecisionMicroseconds:
		second = "03.012345"
	default:
		second = "03"
	}
	return w.Format("1776-07-04" + separator + "13:02:" + second + "-04:00")
}

// ISOFormat renders the instant with a "T" separator at millisecond
// precision, e.g. 2015-04-22T00:00:00.000+00:00.
func (w *When) ISOFormat() string {
	return w.FormatISO("T", PrecisionMilliseconds)
}

func pad(value, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}

// unpad strips the leading zeros of a padded numeral, keeping a single "0"
// when the value itself is zero (only the fractional fields can hit this).
func unpad(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

func hour12(hour int) int {
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return hour
}

func meridiem(w *When, am, pm string) string {
	if w.Hour() < 12 {
		return am
	}
	return pm
}
