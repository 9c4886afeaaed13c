// Package activity classifies local hours of day into activity
// categories and maps categories to the glyphs and colors the timeline
// renders with.
package activity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/zoneline/zoneline/pkg/theme"
)

// Category is what a person in a zone is presumed to be doing at a
// given local hour.
type Category int

const (
	// Night covers sleeping hours.
	Night Category = iota
	// Awake covers daytime hours outside the working day.
	Awake
	// Work covers the configured working hours.
	Work
)

// String implements fmt.Stringer for log and list output.
func (c Category) String() string {
	switch c {
	case Work:
		return "work"
	case Awake:
		return "awake"
	default:
		return "night"
	}
}

// Default glyphs: the denser the shading, the busier the hour.
const (
	DefaultWorkGlyph  = '▓'
	DefaultAwakeGlyph = '▒'
	DefaultNightGlyph = '░'
)

// Config holds the hour thresholds and glyph choices that drive
// classification. Hours are local and use a [start, end) convention.
type Config struct {
	// WorkStart and WorkEnd bound the working day, e.g. 8 and 18 for
	// an 8am-6pm schedule.
	WorkStart int
	WorkEnd   int
	// AwakeStart and AwakeEnd bound the waking day; hours outside it
	// classify as Night.
	AwakeStart int
	AwakeEnd   int

	WorkGlyph  rune
	AwakeGlyph rune
	NightGlyph rune
}

// DefaultConfig returns the stock schedule: work 8am-6pm, awake 6am-10pm.
func DefaultConfig() *Config {
	return &Config{
		WorkStart:  8,
		WorkEnd:    18,
		AwakeStart: 6,
		AwakeEnd:   22,
		WorkGlyph:  DefaultWorkGlyph,
		AwakeGlyph: DefaultAwakeGlyph,
		NightGlyph: DefaultNightGlyph,
	}
}

// Validate rejects hour thresholds outside the 24-hour clock or ranges
// that cannot contain any hour.
func (c *Config) Validate() error {
	for _, h := range []int{c.WorkStart, c.WorkEnd, c.AwakeStart, c.AwakeEnd} {
		if h < 0 || h > 24 {
			return fmt.Errorf("hour threshold %d out of range [0, 24]", h)
		}
	}
	if c.WorkStart >= c.WorkEnd {
		return fmt.Errorf("work hours %d-%d are empty", c.WorkStart, c.WorkEnd)
	}
	if c.AwakeStart >= c.AwakeEnd {
		return fmt.Errorf("awake hours %d-%d are empty", c.AwakeStart, c.AwakeEnd)
	}
	return nil
}

// WorkMidpoint returns the hour at the middle of the working day, used
// to anchor per-day date labels.
func (c *Config) WorkMidpoint() int {
	return (c.WorkStart + c.WorkEnd) / 2
}

// Classify maps a local hour of day to its activity category. Work wins
// over Awake where the ranges overlap; anything outside the waking day
// is Night.
func (c *Config) Classify(hour int) Category {
	switch {
	case hour >= c.WorkStart && hour < c.WorkEnd:
		return Work
	case hour >= c.AwakeStart && hour < c.AwakeEnd:
		return Awake
	default:
		return Night
	}
}

// Glyph returns the shading rune for a category.
func (c *Config) Glyph(cat Category) rune {
	switch cat {
	case Work:
		return c.WorkGlyph
	case Awake:
		return c.AwakeGlyph
	default:
		return c.NightGlyph
	}
}

// Color returns the themed color for a category.
func Color(cat Category, th theme.Theme) tcell.Color {
	switch cat {
	case Work:
		return th.Work
	case Awake:
		return th.Awake
	default:
		return th.Night
	}
}
