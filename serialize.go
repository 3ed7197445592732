package when

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// persistedWhen is the wire shape of a When: the UTC-normalized field tuple
// tagged with its "utc" basis, plus the identifier of the original view.
type persistedWhen struct {
	Year, Month, Day, Hour, Minute, Second, Microsecond int
	Basis                                               string
	Timezone                                            string
}

// GobEncode captures the UTC-normalized field tuple and the current view
// identifier; the localized fields need not be persisted because they
// re-derive from the immutable instant.
func (w *When) GobEncode() ([]byte, error) {
	u := w.utcTuple()
	p := persistedWhen{
		Year: u[0], Month: u[1], Day: u[2],
		Hour: u[3], Minute: u[4], Second: u[5], Microsecond: u[6],
		Basis:    "utc",
		Timezone: w.timezone,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode rebuilds the instant from its UTC tuple, then re-applies the
// stored identifier so the restored value keeps the original view.
func (w *When) GobDecode(data []byte) error {
	var p persistedWhen
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return err
	}
	restored, err := New(p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, p.Microsecond, p.Basis)
	if err != nil {
		return err
	}
	if err := restored.SetTimezone(p.Timezone); err != nil {
		return err
	}
	*w = *restored
	return nil
}

// textSpecifier renders microsecond precision followed by the timezone
// identifier, the one ISO-shaped reading that round-trips the view.
const textSpecifier = "1776-07-04T13:02:03.012345America/New_York"

// MarshalText renders the instant at microsecond precision with the view
// identifier appended, e.g. "2015-04-22T05:30:59.000023America/Los_Angeles",
// so that UnmarshalText restores both the instant and the view.
func (w *When) MarshalText() ([]byte, error) {
	return []byte(w.Format(textSpecifier)), nil
}

// UnmarshalText accepts any reading FromISOFormat accepts, defaulting the
// view to UTC when the text carries no timezone.
func (w *When) UnmarshalText(data []byte) error {
	restored, err := FromISOFormat(string(data), InTimezone("utc"))
	if err != nil {
		return fmt.Errorf("%q: %w", string(data), err)
	}
	*w = *restored
	return nil
}
