// Package timezones resolves timezone identifiers to the platform timezone
// database, and memoizes the lookups since the registry is read-mostly.
package timezones

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brianjpetersen/when/errs"
)

const ErrUnknownTimezone errs.Error = `unknown timezone identifier`

var registry = struct {
	mutex     sync.RWMutex
	locations map[string]*time.Location
}{locations: map[string]*time.Location{}}

// Resolve maps a timezone identifier to a timezone.
//
// The identifier "utc" (in any casing, or the spellings "Z" and "z") resolves
// to UTC; every other identifier is looked up in the platform timezone
// database, e.g. "America/New_York".
func Resolve(name string) (*time.Location, error) {
	if IsUTC(name) {
		return time.UTC, nil
	}

	registry.mutex.RLock()
	location, ok := registry.locations[name]
	registry.mutex.RUnlock()
	if ok {
		return location, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTimezone)
	}

	registry.mutex.Lock()
	registry.locations[name] = location
	registry.mutex.Unlock()
	return location, nil
}

// IsUTC reports whether the identifier is one of the recognized UTC spellings.
func IsUTC(name string) bool {
	switch name {
	case "Z", "z":
		return true
	}
	return strings.EqualFold(name, "utc")
}
