package when_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brianjpetersen/when"
)

func TestWhile(t *testing.T) {
	t.Run(`the named units accumulate`, func(t *testing.T) {
		d := when.NewWhile(1, 24, 0, 0, 0, 0)
		require.Equal(t, 2.0, d.Days())
		require.Equal(t, 48.0, d.Hours())
	})

	t.Run(`unit accessors are fractional`, func(t *testing.T) {
		d := when.NewWhile(0, 0, 90, 0, 0, 0)
		require.Equal(t, 1.5, d.Hours())
		require.Equal(t, 90.0, d.Minutes())
		require.Equal(t, 5400.0, d.Seconds())
		require.Equal(t, 5400000.0, d.Milliseconds())
		require.Equal(t, 5400000000.0, d.Microseconds())
	})

	t.Run(`weeks divide days by seven`, func(t *testing.T) {
		require.Equal(t, 2.0, when.NewWhile(14, 0, 0, 0, 0, 0).Weeks())
	})

	t.Run(`sub-second units`, func(t *testing.T) {
		d := when.NewWhile(0, 0, 0, 0, 1, 500)
		require.Equal(t, 1.5, d.Milliseconds())
		require.Equal(t, 1500.0, d.Microseconds())
		require.Equal(t, 0.0015, d.Seconds())
	})

	t.Run(`platform durations round-trip`, func(t *testing.T) {
		d := 3*time.Hour + 14*time.Minute
		require.Equal(t, d, when.FromDuration(d).Duration())
		require.Equal(t, when.NewWhile(0, 3, 14, 0, 0, 0), when.FromDuration(d))
	})

	t.Run(`negative whiles read negative`, func(t *testing.T) {
		d := when.FromDuration(-90 * time.Second)
		require.Equal(t, -1.5, d.Minutes())
	})

	t.Run(`String follows the platform rendering`, func(t *testing.T) {
		require.Equal(t, `24h0m0s`, when.NewWhile(1, 0, 0, 0, 0, 0).String())
	})
}
