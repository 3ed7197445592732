package when_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brianjpetersen/when"
)

func TestWhen_Format(t *testing.T) {
	earthDay, err := when.New(2015, 4, 22, 5, 30, 59, 23, `America/Los_Angeles`)
	require.NoError(t, err)

	t.Run(`a full reference timestamp is rewritten field by field`, func(t *testing.T) {
		require.Equal(t,
			`2015-04-22T05:30:59.000023-07:00`,
			earthDay.Format(`1776-07-04T13:02:03.012345-04:00`))
	})

	t.Run(`padded two-digit specifiers`, func(t *testing.T) {
		require.Equal(t, `15/04/22`, earthDay.Format(`76/07/04`))
		require.Equal(t, `2015-04-22`, earthDay.Format(`1776-07-04`))
	})

	t.Run(`unpadded specifiers embedded in prose`, func(t *testing.T) {
		require.Equal(t, `30 minutes past 5am`, earthDay.Format(`2 minutes past 1pm`))
	})

	t.Run(`names of the month and weekday`, func(t *testing.T) {
		require.Equal(t, `April`, earthDay.Format(`July`))
		require.Equal(t, `Apr`, earthDay.Format(`Jul`))
		require.Equal(t, `Wednesday`, earthDay.Format(`Thursday`))
		require.Equal(t, `Wed`, earthDay.Format(`Thu`))
	})

	t.Run(`twelve versus twenty-four hour clocks`, func(t *testing.T) {
		afternoon, err := when.New(2015, 4, 22, 17, 30, 0, 0, `utc`)
		require.NoError(t, err)
		require.Equal(t, `17`, afternoon.Format(`13`))
		require.Equal(t, `5`, afternoon.Format(`1`))
		require.Equal(t, `05`, afternoon.Format(`01`))
		require.Equal(t, `PM`, afternoon.Format(`PM`))
		require.Equal(t, `p.m.`, afternoon.Format(`p.m.`))

		morning, err := when.New(2015, 4, 22, 5, 30, 0, 0, `utc`)
		require.NoError(t, err)
		require.Equal(t, `AM`, morning.Format(`PM`))
		require.Equal(t, `am`, morning.Format(`pm`))
		require.Equal(t, `a.m.`, morning.Format(`p.m.`))
	})

	t.Run(`fractional second specifiers`, func(t *testing.T) {
		w, err := when.New(2015, 4, 22, 5, 30, 59, 987654, `utc`)
		require.NoError(t, err)
		require.Equal(t, `987654`, w.Format(`012345`))
		require.Equal(t, `987654`, w.Format(`12345`))
		require.Equal(t, `987`, w.Format(`012`))
		require.Equal(t, `987`, w.Format(`12`))

		small, err := when.New(2015, 4, 22, 5, 30, 59, 4321, `utc`)
		require.NoError(t, err)
		require.Equal(t, `004321`, small.Format(`012345`))
		require.Equal(t, `4321`, small.Format(`12345`))
		require.Equal(t, `004`, small.Format(`012`))
		require.Equal(t, `4`, small.Format(`12`))
	})

	t.Run(`a zero fraction renders unpadded as a bare zero`, func(t *testing.T) {
		w, err := when.New(2015, 4, 22, 5, 30, 59, 0, `utc`)
		require.NoError(t, err)
		require.Equal(t, `0`, w.Format(`12345`))
		require.Equal(t, `0`, w.Format(`12`))
		require.Equal(t, `000000`, w.Format(`012345`))
	})

	t.Run(`timezone specifiers follow the current view`, func(t *testing.T) {
		require.Equal(t, `America/Los_Angeles`, earthDay.Format(`America/New_York`))
		require.Equal(t, `-07:00`, earthDay.Format(`-04:00`))
		require.Equal(t, `-0700`, earthDay.Format(`-0400`))

		utc := earthDay.UTC()
		require.Equal(t, `+00:00`, utc.Format(`-04:00`))
		require.Equal(t, `12`, utc.Format(`13`)) // 05:30 Pacific reads 12:30 utc
	})

	t.Run(`unrecognized text passes through verbatim`, func(t *testing.T) {
		// only the reference weekday is a token, so "Wednesday" survives as-is
		require.Equal(t, `a fine Wednesday indeed`, earthDay.Format(`a fine Wednesday indeed`))
	})
}

func TestWhen_Inflection(t *testing.T) {
	for day, suffix := range map[int]string{
		1: `st`, 2: `nd`, 3: `rd`, 4: `th`,
		11: `th`, 12: `th`, 13: `th`,
		21: `st`, 22: `nd`, 23: `rd`, 24: `th`,
		30: `th`, 31: `st`,
	} {
		w, err := when.NewDate(2015, 1, day, `utc`)
		require.NoError(t, err)
		require.Equal(t, suffix, w.Inflection(), `day %d`, day)
		require.Equal(t, suffix, w.Format(`th`))
	}
}

func TestWhen_ISOFormat(t *testing.T) {
	t.Run(`the default is T-separated with milliseconds`, func(t *testing.T) {
		earthDay, err := when.NewDate(2015, 4, 22, `utc`)
		require.NoError(t, err)
		require.Equal(t, `2015-04-22T00:00:00.000+00:00`, earthDay.ISOFormat())
	})

	t.Run(`separator and precision are selectable`, func(t *testing.T) {
		w, err := when.New(2015, 4, 22, 5, 30, 59, 23, `America/Los_Angeles`)
		require.NoError(t, err)
		require.Equal(t, `2015-04-22 05:30:59-07:00`, w.FormatISO(` `, when.PrecisionSeconds))
		require.Equal(t, `2015-04-22T05:30:59.000-07:00`, w.FormatISO(`T`, when.PrecisionMilliseconds))
		require.Equal(t, `2015-04-22T05:30:59.000023-07:00`, w.FormatISO(`T`, when.PrecisionMicroseconds))
	})
}
