package when

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/brianjpetersen/when/errs"
	"github.com/brianjpetersen/when/substitutions"
	"github.com/brianjpetersen/when/timezones"
)

const (
	// ErrParsing reports a value that cannot be reconciled with the specifier.
	ErrParsing errs.Error = `the value does not parse under the specifier`
	// ErrAmbiguous reports two spellings of the same field that disagree.
	ErrAmbiguous errs.Error = `conflicting readings for the same field`
)

// ParseOption configures FromString and FromISOFormat.
type ParseOption func(*parseConfig)

type parseConfig struct {
	timezone string
	century  *int
	dst      *bool
}

// InTimezone supplies the view for values whose specifier carries no
// timezone token.  A timezone matched in the value always wins.
func InTimezone(name string) ParseOption {
	return func(cfg *parseConfig) { cfg.timezone = name }
}

// Century resolves two-digit years, e.g. Century(1900) reads "76" as 1976.
func Century(century int) ParseOption {
	return func(cfg *parseConfig) { v := century; cfg.century = &v }
}

// WithDST forwards the daylight-saving disambiguation flag to construction.
func WithDST(dst bool) ParseOption {
	return func(cfg *parseConfig) { v := dst; cfg.dst = &v }
}

// parseTokens substitutes the reference renderings with named capture
// groups; the order is the same longest-first priority the formatter uses.
var parseTokens = []substitutions.Substitution{
	{Token: "America/New_York", Value: `(?P<timezone>Z|z|[a-zA-Z_/]+)`},
	{Token: "012345", Value: `(?P<us6>\d\d\d\d\d\d)`},
	{Token: "12345", Value: `(?P<us>\d?\d?\d?\d?\d?\d)`},
	{Token: "1776", Value: `(?P<year4>\d?\d?\d?\d)`},
	{Token: "July", Value: `(?P<monthname>January|February|March|April|May|June|July|August|September|October|November|December)`},
	{Token: "P.M.", Value: `(?P<merdotu>A\.M\.|P\.M\.)`},
	{Token: "p.m.", Value: `(?P<merdotl>a\.m\.|p\.m\.)`},
	{Token: "Jul", Value: `(?P<monthabbr>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`},
	{Token: "012", Value: `(?P<ms3>\d\d\d)`},
	{Token: "76", Value: `(?P<year2>\d\d)`},
	{Token: "13", Value: `(?P<hour24>\d\d)`},
	{Token: "12", Value: `(?P<ms>\d?\d?\d)`},
	{Token: "01", Value: `(?P<hour12>\d\d)`},
	{Token: "02", Value: `(?P<minute2>\d\d)`},
	{Token: "03", Value: `(?P<second2>\d\d)`},
	{Token: "04", Value: `(?P<day2>\d\d)`},
	{Token: "07", Value: `(?P<month2>\d\d)`},
	{Token: "PM", Value: `(?P<meru>AM|PM)`},
	{Token: "pm", Value: `(?P<merl>am|pm)`},
	{Token: "1", Value: `(?P<hour>\d?\d)`},
	{Token: "2", Value: `(?P<minute>\d?\d)`},
	{Token: "3", Value: `(?P<second>\d?\d)`},
	{Token: "4", Value: `(?P<day>\d?\d)`},
	{Token: "7", Value: `(?P<month>\d?\d)`},
}

var parseSubstitutor = substitutions.New(parseTokens)

// FromString constructs a When from a value and a reference-date specifier,
// the inverse of Format.  The specifier's reference tokens become capture
// groups, the value is matched from its start, and every captured spelling
// of the same field must agree.  Year, month, day, and a timezone (either
// matched or supplied with InTimezone) are required.
//
//	when.FromString("2015-03-03 02:58:59", "1776-07-04 01:02:03", when.InTimezone("utc"))
//	when.FromString("2015-03-03 2:00:59.222222z a.m.", "1776-07-04 1:02:03.012345America/New_York p.m.")
func FromString(value, specifier string, opts ...ParseOption) (*When, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	pattern, err := regexp.Compile(`^` + parseSubstitutor.Apply(specifier))
	if err != nil {
		return nil, fmt.Errorf("specifier %q: %v: %w", specifier, err, ErrParsing)
	}
	match := pattern.FindStringSubmatch(value)
	if match == nil {
		return nil, fmt.Errorf("%q does not match %q: %w", value, specifier, ErrParsing)
	}
	groups := map[string]string{}
	for i, name := range pattern.SubexpNames() {
		if i > 0 && name != "" {
			groups[name] = match[i]
		}
	}

	year, err := processYear(groups, cfg.century)
	if err != nil {
		return nil, err
	}
	month, err := processMonth(groups)
	if err != nil {
		return nil, err
	}
	day, err := processField(groups, "day2", "day")
	if err != nil {
		return nil, err
	}
	hour, err := processHour(groups)
	if err != nil {
		return nil, err
	}
	minute, err := processField(groups, "minute2", "minute")
	if err != nil {
		return nil, err
	}
	second, err := processField(groups, "second2", "second")
	if err != nil {
		return nil, err
	}
	microsecond, err := processFractional(groups)
	if err != nil {
		return nil, err
	}

	timezone := cfg.timezone
	if name, ok := groups["timezone"]; ok {
		timezone = name
		if timezones.IsUTC(name) {
			timezone = "utc"
		}
	}

	switch {
	case year == nil:
		return nil, fmt.Errorf("year is required: %w", ErrParsing)
	case month == nil:
		return nil, fmt.Errorf("month is required: %w", ErrParsing)
	case day == nil:
		return nil, fmt.Errorf("day is required: %w", ErrParsing)
	case timezone == "":
		return nil, fmt.Errorf("timezone is required: %w", ErrParsing)
	}

	var newOpts []Option
	if cfg.dst != nil {
		newOpts = append(newOpts, DST(*cfg.dst))
	}
	return New(*year, *month, *day, orZero(hour), orZero(minute), orZero(second), orZero(microsecond), timezone, newOpts...)
}

// isoSpecifiers is the ladder FromISOFormat walks, most precise first.
var isoSpecifiers = []string{
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03.012345America/New_York",
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03.0123America/New_York",
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03America/New_York",
	"1776[-]?07[-]?04America/New_York",
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03.012345",
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03.0123",
	"1776[-]?07[-]?04[T ]?13[:]?02[:]?03",
	"1776[-]?07[-]?04",
}

// FromISOFormat constructs a When from an ISO-8601-shaped value.
//
//	when.FromISOFormat("2015-03-03T02:00:59", when.InTimezone("utc"))
//	when.FromISOFormat("2015-03-03T02:00:59.123422Z")
func FromISOFormat(value string, opts ...ParseOption) (*When, error) {
	for _, specifier := range isoSpecifiers {
		w, err := FromString(value, specifier, opts...)
		if err == nil {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%q is not an ISO-8601 reading: %w", value, ErrParsing)
}

// scrub reconciles every captured spelling of one field: all present values
// must agree, and the agreed value (or nil) is returned.
func scrub(potentials ...*int) (*int, error) {
	var first *int
	for _, potential := range potentials {
		if potential == nil {
			continue
		}
		if first == nil {
			first = potential
			continue
		}
		if *first != *potential {
			return nil, fmt.Errorf("%d vs %d: %w", *first, *potential, ErrAmbiguous)
		}
	}
	return first, nil
}

func processYear(groups map[string]string, century *int) (*int, error) {
	year4 := intGroup(groups, "year4")
	var year2 *int
	if raw, ok := groups["year2"]; ok {
		if century == nil {
			return nil, fmt.Errorf("a two-digit year needs the Century option: %w", ErrParsing)
		}
		v, _ := strconv.Atoi(raw)
		v += *century
		year2 = &v
	}
	if year4 != nil && century != nil && abs(*year4-*century) > 100 {
		return nil, fmt.Errorf("year %d is not inside century %d: %w", *year4, *century, ErrAmbiguous)
	}
	return scrub(year4, year2)
}

var monthsByName = map[string]int{
	"January": 1, "Jan": 1,
	"February": 2, "Feb": 2,
	"March": 3, "Mar": 3,
	"April": 4, "Apr": 4,
	"May": 5,
	"June": 6, "Jun": 6,
	"July": 7, "Jul": 7,
	"August": 8, "Aug": 8,
	"September": 9, "Sep": 9,
	"October": 10, "Oct": 10,
	"November": 11, "Nov": 11,
	"December": 12, "Dec": 12,
}

func processMonth(groups map[string]string) (*int, error) {
	var byName, byAbbr *int
	if raw, ok := groups["monthname"]; ok {
		v := monthsByName[raw]
		byName = &v
	}
	if raw, ok := groups["monthabbr"]; ok {
		v := monthsByName[raw]
		byAbbr = &v
	}
	return scrub(byName, byAbbr, intGroup(groups, "month2"), intGroup(groups, "month"))
}

func processHour(groups map[string]string) (*int, error) {
	var offsets []*int
	for name, pm := range map[string]string{
		"meru": "PM", "merl": "pm", "merdotu": "P.M.", "merdotl": "p.m.",
	} {
		raw, ok := groups[name]
		if !ok {
			continue
		}
		v := 0
		if raw == pm {
			v = 12
		}
		offsets = append(offsets, &v)
	}
	offset, err := scrub(offsets...)
	if err != nil {
		return nil, err
	}

	hour24 := intGroup(groups, "hour24")
	hour12 := intGroup(groups, "hour12")
	hour := intGroup(groups, "hour")
	// fold onto the 24-hour clock only when a meridiem was captured; a bare
	// twelve-hour numeral keeps its literal reading, so Format output parses
	// back to the instant it rendered
	if offset != nil {
		for _, h := range []*int{hour12, hour} {
			if h != nil {
				*h = *h%12 + *offset
			}
		}
	}
	return scrub(hour24, hour12, hour)
}

func processFractional(groups map[string]string) (*int, error) {
	scale := func(p *int, factor int) *int {
		if p == nil {
			return nil
		}
		v := *p * factor
		return &v
	}
	return scrub(
		scale(intGroup(groups, "ms3"), 1000),
		scale(intGroup(groups, "ms"), 1000),
		intGroup(groups, "us6"),
		intGroup(groups, "us"),
	)
}

func processField(groups map[string]string, padded, unpadded string) (*int, error) {
	return scrub(intGroup(groups, padded), intGroup(groups, unpadded))
}

func intGroup(groups map[string]string, name string) *int {
	raw, ok := groups[name]
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func orZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
