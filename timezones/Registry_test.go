package timezones_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brianjpetersen/when/timezones"
)

func TestResolve(t *testing.T) {
	t.Run(`utc spellings resolve to UTC`, func(t *testing.T) {
		for _, name := range []string{`utc`, `UTC`, `Utc`, `Z`, `z`} {
			location, err := timezones.Resolve(name)
			require.NoError(t, err)
			require.Equal(t, time.UTC, location)
		}
	})

	t.Run(`geographic zones resolve through the platform database`, func(t *testing.T) {
		location, err := timezones.Resolve(`America/New_York`)
		require.NoError(t, err)
		require.Equal(t, `America/New_York`, location.String())
	})

	t.Run(`lookups are memoized`, func(t *testing.T) {
		first, err := timezones.Resolve(`Europe/Budapest`)
		require.NoError(t, err)
		second, err := timezones.Resolve(`Europe/Budapest`)
		require.NoError(t, err)
		require.Same(t, first, second)
	})

	t.Run(`unknown identifiers fail`, func(t *testing.T) {
		_, err := timezones.Resolve(`Neverland/Second_Star`)
		require.Error(t, err)
		require.True(t, errors.Is(err, timezones.ErrUnknownTimezone))
	})
}

func TestIsUTC(t *testing.T) {
	require.True(t, timezones.IsUTC(`utc`))
	require.True(t, timezones.IsUTC(`Z`))
	require.False(t, timezones.IsUTC(`America/New_York`))
}
