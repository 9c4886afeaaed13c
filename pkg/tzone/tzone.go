// Package tzone wraps IANA timezone locations with the display and
// local-time resolution helpers the timeline widgets need.
// ALL times in the codebase are stored in UTC; these helpers convert
// to local time for display only.
package tzone

import (
	"fmt"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
)

// Zone is a single timezone the application displays. It borrows a
// loaded *time.Location and never mutates it.
type Zone struct {
	loc  *time.Location
	name string
}

// NewZone loads the IANA timezone with the given name (e.g.
// "America/New_York"). "UTC" and "Local" work the way time.LoadLocation
// defines them.
func NewZone(name string) (*Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return &Zone{name: name, loc: loc}, nil
}

// FixedZone builds a Zone with a constant UTC offset. Used in tests and
// for "UTC+n" style configuration entries; fixed zones never have DST
// transitions.
func FixedZone(name string, offsetSeconds int) *Zone {
	return &Zone{name: name, loc: time.FixedZone(name, offsetSeconds)}
}

// Name returns the IANA name the zone was loaded with.
func (z *Zone) Name() string { return z.name }

// Location returns the underlying location.
func (z *Zone) Location() *time.Location { return z.loc }

// Convert returns t expressed in the zone's local time.
func (z *Zone) Convert(t time.Time) time.Time {
	return t.In(z.loc)
}

// OffsetAt returns the zone's UTC offset in seconds at the given instant.
// DST-observing zones return different values on either side of a
// transition.
func (z *Zone) OffsetAt(t time.Time) int {
	_, offset := t.In(z.loc).Zone()
	return offset
}

// DisplayName returns the short human label for the zone: the city
// segment of the IANA name with underscores replaced by spaces
// ("America/New_York" -> "New York").
func (z *Zone) DisplayName() string {
	name := z.name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}

// OffsetString formats the zone's UTC offset at t, e.g. "UTC-5" or
// "UTC+5:30" for zones on a fractional offset.
func (z *Zone) OffsetString(t time.Time) string {
	offset := z.OffsetAt(t)
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

// FullName returns the long title form: the IANA name plus the current
// abbreviation and offset, e.g. "America/New_York (EST, UTC-5)".
func (z *Zone) FullName(t time.Time) string {
	abbrev, _ := t.In(z.loc).Zone()
	return fmt.Sprintf("%s (%s, %s)", z.name, abbrev, z.OffsetString(t))
}

// ResolveKind tags the outcome of a wall-clock to instant conversion.
type ResolveKind int

const (
	// ResolveUnique means exactly one instant has the requested wall clock.
	ResolveUnique ResolveKind = iota
	// ResolveAmbiguous means the wall clock occurs twice (DST fall back).
	ResolveAmbiguous
	// ResolveNone means the wall clock never occurs (DST spring forward).
	ResolveNone
)

// Resolution is the tagged result of ResolveLocal. For ResolveUnique,
// Time holds the instant. For ResolveAmbiguous, Time holds the earlier
// of the two instants and Alternate the later one. For ResolveNone both
// are zero.
type Resolution struct {
	Time      time.Time
	Alternate time.Time
	Kind      ResolveKind
}

// ResolveLocal converts a local wall-clock reading (on the hour) in this
// zone to an absolute instant. Near DST transitions the mapping can be
// ambiguous (the hour repeats) or have no solution (the hour is skipped);
// both cases are reported explicitly so callers can decide how to degrade.
func (z *Zone) ResolveLocal(year int, month time.Month, day, hour int) Resolution {
	t := time.Date(year, month, day, hour, 0, 0, 0, z.loc)
	// time.Date normalizes skipped wall clocks to a different reading;
	// if the round trip changed, the requested time never existed.
	if t.Year() != year || t.Month() != month || t.Day() != day || t.Hour() != hour || t.Minute() != 0 {
		return Resolution{Kind: ResolveNone}
	}
	// A repeated hour has a second instant one standard shift away with
	// the same wall clock. One hour covers every whole-hour DST rule.
	for _, delta := range []time.Duration{-time.Hour, time.Hour} {
		alt := t.Add(delta)
		local := alt.In(z.loc)
		if local.Year() == year && local.Month() == month && local.Day() == day &&
			local.Hour() == hour && local.Minute() == 0 {
			first, second := t, alt
			if alt.Before(t) {
				first, second = alt, t
			}
			return Resolution{Kind: ResolveAmbiguous, Time: first, Alternate: second}
		}
	}
	return Resolution{Kind: ResolveUnique, Time: t}
}

// Registry loads zones by name and memoizes the location lookups so
// repeated config reloads and list commands do not hit the zoneinfo
// database again.
type Registry struct {
	cache *otter.Cache[string, *Zone]
}

// NewRegistry creates a registry sized for a realistic number of
// configured zones.
func NewRegistry() *Registry {
	return &Registry{
		cache: otter.Must(&otter.Options[string, *Zone]{
			MaximumSize: 256,
		}),
	}
}

// Load returns the zone with the given IANA name, from cache when possible.
func (r *Registry) Load(name string) (*Zone, error) {
	if z, ok := r.cache.GetIfPresent(name); ok {
		return z, nil
	}
	z, err := NewZone(name)
	if err != nil {
		return nil, err
	}
	r.cache.Set(name, z)
	return z, nil
}

// LoadAll resolves a list of zone names in order, failing on the first
// unknown name so configuration mistakes surface at startup.
func (r *Registry) LoadAll(names []string) ([]*Zone, error) {
	zones := make([]*Zone, 0, len(names))
	for _, name := range names {
		z, err := r.Load(name)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}
