// Package timeline renders a single timezone's 48-hour activity
// timeline into a bordered cell-grid region: shaded activity
// background, now and scrub markers, DST transition indicators, date
// labels, and a local-time caption.
package timeline

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zoneline/zoneline/pkg/activity"
	"github.com/zoneline/zoneline/pkg/theme"
	"github.com/zoneline/zoneline/pkg/tzone"
)

// The widget always visualizes a fixed window centered on the scrub
// position: 24 hours behind it and 24 ahead.
const (
	windowHalf  = 24 * time.Hour
	windowHours = 48.0
)

// Marker glyphs for the timeline row.
const (
	nowGlyph           = '│'
	scrubGlyph         = '┃'
	springForwardGlyph = '⇈'
	fallBackGlyph      = '⇊'
)

// TimeFormat selects the clock convention for the caption row.
type TimeFormat int

const (
	// TwentyFourHour renders captions like "16:45 Tue".
	TwentyFourHour TimeFormat = iota
	// TwelveHour renders captions like "04:45 PM Tue".
	TwelveHour
)

// TitleMode selects how the zone is named in the border title.
type TitleMode int

const (
	// TitleShort shows the city and current offset, e.g. "Tokyo UTC+9".
	TitleShort TitleMode = iota
	// TitleFull shows the IANA name with abbreviation and offset.
	TitleFull
)

// Rect is a rectangular region of the screen, in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the content rectangle inside a one-cell border margin.
// Degenerate rectangles collapse to zero size rather than going negative.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Widget renders one timezone's timeline. It is constructed fresh for
// every frame and borrows all of its references read-only for the
// duration of a single Render call; nothing is cached across frames.
type Widget struct {
	// Position is the scrubbed instant the window is centered on (UTC).
	Position time.Time
	// Now is the current real-world instant (UTC).
	Now time.Time

	Zone  *tzone.Zone
	Rules *activity.Config
	Theme theme.Theme

	Format    TimeFormat
	TitleMode TitleMode

	Selected bool
	ShowDate bool
	ShowDST  bool
}

// New builds a widget for one frame. Arguments are carried over exactly
// as given; no normalization happens here.
func New(position, now time.Time, zone *tzone.Zone, selected bool, format TimeFormat,
	titleMode TitleMode, rules *activity.Config, th theme.Theme, showDate, showDST bool,
) *Widget {
	return &Widget{
		Position:  position,
		Now:       now,
		Zone:      zone,
		Selected:  selected,
		Format:    format,
		TitleMode: titleMode,
		Rules:     rules,
		Theme:     th,
		ShowDate:  showDate,
		ShowDST:   showDST,
	}
}

func (w *Widget) windowStart() time.Time { return w.Position.Add(-windowHalf) }
func (w *Widget) windowEnd() time.Time   { return w.Position.Add(windowHalf) }

// TimeToColumn maps an absolute instant to a column on a track of the
// given width. The map is linear over the 48-hour window, monotonic,
// and saturating: instants before the window map to column 0 and
// instants at or past its end map to the last column.
func (w *Widget) TimeToColumn(t time.Time, width int) int {
	start := w.windowStart()
	total := w.windowEnd().Sub(start)
	if total == 0 {
		return 0
	}

	ratio := float64(t.Sub(start)) / float64(total)
	col := int(math.Round(ratio * float64(width)))
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return col
}

type cell struct {
	glyph rune
	color tcell.Color
}

// background classifies each column's local hour of day and returns the
// shaded glyph row. This is the column-to-time inverse of TimeToColumn
// and stays consistent with it up to interpolation error.
func (w *Widget) background(width int) []cell {
	cells := make([]cell, width)
	localStart := w.Zone.Convert(w.windowStart())

	for i := range cells {
		hoursOffset := float64(i) / float64(width) * windowHours
		at := localStart.Add(time.Duration(hoursOffset * float64(time.Hour)))
		cat := w.Rules.Classify(at.Hour())
		cells[i] = cell{glyph: w.Rules.Glyph(cat), color: activity.Color(cat, w.Theme)}
	}
	return cells
}

// title formats the border title for the configured mode.
func (w *Widget) title() string {
	if w.TitleMode == TitleFull {
		return w.Zone.FullName(w.Now)
	}
	return fmt.Sprintf("%s %s", w.Zone.DisplayName(), w.Zone.OffsetString(w.Now))
}

// caption formats the scrub position's local time for the caption row.
func (w *Widget) caption() string {
	local := w.Zone.Convert(w.Position)
	if w.Format == TwelveHour {
		return local.Format("03:04 PM Mon")
	}
	return local.Format("15:04 Mon")
}

// Render paints the widget into the given region of the screen. Paint
// order is fixed: border, activity background, now marker, scrub
// marker, DST indicators, date labels, caption. Later passes overwrite
// earlier ones where they overlap; in particular date labels sit on top
// of markers, and the scrub marker yields to the now marker when both
// land on the same column.
func (w *Widget) Render(s tcell.Screen, area Rect) {
	inner := area.Inner()
	if inner.Width < 2 || inner.Height < 1 {
		return
	}

	w.drawBorder(s, area)

	row := inner.Y
	for i, c := range w.background(inner.Width) {
		s.SetContent(inner.X+i, row, c.glyph, nil, tcell.StyleDefault.Foreground(c.color))
	}

	nowCol := w.TimeToColumn(w.Now, inner.Width)
	s.SetContent(inner.X+nowCol, row, nowGlyph, nil,
		tcell.StyleDefault.Foreground(w.Theme.NowMarker))

	scrubCol := w.TimeToColumn(w.Position, inner.Width)
	if scrubCol != nowCol {
		s.SetContent(inner.X+scrubCol, row, scrubGlyph, nil,
			tcell.StyleDefault.Foreground(w.Theme.ScrubMarker))
	}

	if w.ShowDST {
		for _, tr := range TransitionsBetween(w.Zone, w.windowStart(), w.windowEnd()) {
			col := w.TimeToColumn(tr.At, inner.Width)
			glyph, color := springForwardGlyph, w.Theme.SpringForward
			if tr.Kind == FallBack {
				glyph, color = fallBackGlyph, w.Theme.FallBack
			}
			s.SetContent(inner.X+col, row, glyph, nil, tcell.StyleDefault.Foreground(color))
		}
	}

	if w.ShowDate {
		style := tcell.StyleDefault.Foreground(w.Theme.DateFg).Background(w.Theme.DateBg)
		for _, label := range w.dateLabels(inner.Width) {
			drawText(s, inner, label.start, row, label.text, style)
		}
	}

	if inner.Height > 1 {
		text := w.caption()
		start := labelStart(scrubCol, runewidth.StringWidth(text), inner.Width)
		drawText(s, inner, start, row+1, text, tcell.StyleDefault)
	}
}

// drawBorder draws the frame and title around the widget area,
// emphasized when the widget is selected.
func (w *Widget) drawBorder(s tcell.Screen, area Rect) {
	if area.Width < 2 || area.Height < 2 {
		return
	}

	style := tcell.StyleDefault
	if w.Selected {
		style = style.Foreground(w.Theme.SelectedBorder)
	}

	right := area.X + area.Width - 1
	bottom := area.Y + area.Height - 1

	s.SetContent(area.X, area.Y, '┌', nil, style)
	s.SetContent(right, area.Y, '┐', nil, style)
	s.SetContent(area.X, bottom, '└', nil, style)
	s.SetContent(right, bottom, '┘', nil, style)
	for x := area.X + 1; x < right; x++ {
		s.SetContent(x, area.Y, '─', nil, style)
		s.SetContent(x, bottom, '─', nil, style)
	}
	for y := area.Y + 1; y < bottom; y++ {
		s.SetContent(area.X, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}

	title := w.title()
	if title == "" {
		return
	}
	// Leave the corners intact and keep one border cell on each side.
	maxTitle := area.Width - 4
	if maxTitle < 1 {
		return
	}
	title = runewidth.Truncate(title, maxTitle, "")
	x := area.X + 2
	for _, r := range title {
		s.SetContent(x, area.Y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// drawText writes a string starting at the given content column,
// clipped to the inner rectangle.
func drawText(s tcell.Screen, inner Rect, start, y int, text string, style tcell.Style) {
	x := inner.X + start
	for _, r := range text {
		if x >= inner.X+inner.Width {
			break
		}
		if x >= inner.X {
			s.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
}
