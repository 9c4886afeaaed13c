package timeline

import (
	"time"

	"github.com/zoneline/zoneline/pkg/tzone"
)

// TransitionKind classifies a UTC-offset change.
type TransitionKind int

const (
	// SpringForward marks the offset decreasing across the sampled hour.
	SpringForward TransitionKind = iota
	// FallBack marks the offset increasing across the sampled hour.
	FallBack
)

// String implements fmt.Stringer for log output.
func (k TransitionKind) String() string {
	if k == FallBack {
		return "fall back"
	}
	return "spring forward"
}

// Transition is a detected DST offset change, stamped with the sampled
// instant it was observed at.
type Transition struct {
	At   time.Time
	Kind TransitionKind
}

// DetectTransition compares the zone's UTC offset at t and one hour
// later. Offset increased means the clocks fell back; decreased means
// they sprang forward. Equal offsets mean no transition at this sample.
func DetectTransition(z *tzone.Zone, t time.Time) (Transition, bool) {
	before := z.OffsetAt(t)
	after := z.OffsetAt(t.Add(time.Hour))
	switch {
	case after > before:
		return Transition{At: t, Kind: FallBack}, true
	case after < before:
		return Transition{At: t, Kind: SpringForward}, true
	default:
		return Transition{}, false
	}
}

// TransitionsBetween samples the zone hourly from start while the
// sample is before end and collects every detected transition in order.
// Because each check looks one hour ahead, an offset change anywhere
// inside a sampled hour is captured at that hour's sample; every
// returned instant lies in [start, end).
func TransitionsBetween(z *tzone.Zone, start, end time.Time) []Transition {
	var transitions []Transition
	for current := start; current.Before(end); current = current.Add(time.Hour) {
		if tr, ok := DetectTransition(z, current); ok {
			transitions = append(transitions, tr)
		}
	}
	return transitions
}
