package timeline

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/zoneline/zoneline/pkg/tzone"
)

// placedLabel is a short text overlay with a computed start column.
type placedLabel struct {
	text  string
	start int
}

// labelStart centers a label of the given cell length on the anchor
// column, then clamps it so it neither starts left of column 0 nor runs
// past the last column of a track of the given width. Labels wider than
// the track start at 0 and clip at the right edge.
func labelStart(anchor, length, width int) int {
	start := 0
	if anchor >= length/2 {
		start = anchor - length/2
	}
	limit := width - length
	if limit < 0 {
		limit = 0
	}
	if start > limit {
		start = limit
	}
	return start
}

// dateLabels computes one "02 Jan" label per calendar day visible in
// the zone's local rendering of the window, anchored at the middle of
// that day's working hours. A day whose workday midpoint has no
// unambiguous local instant (a DST boundary case) is skipped; the rest
// of the rendering is unaffected.
func (w *Widget) dateLabels(width int) []placedLabel {
	localStart := w.Zone.Convert(w.windowStart())
	localEnd := w.Zone.Convert(w.windowEnd())
	midpoint := w.Rules.WorkMidpoint()

	var labels []placedLabel
	day := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		0, 0, 0, 0, w.Zone.Location())
	// The 48-hour window spans at most three local calendar dates.
	for !day.After(localEnd) {
		res := w.Zone.ResolveLocal(day.Year(), day.Month(), day.Day(), midpoint)
		if res.Kind == tzone.ResolveUnique {
			text := day.Format("02 Jan")
			anchor := w.TimeToColumn(res.Time, width)
			labels = append(labels, placedLabel{
				text:  text,
				start: labelStart(anchor, runewidth.StringWidth(text), width),
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return labels
}
