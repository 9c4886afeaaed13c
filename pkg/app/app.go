// Package app owns the interactive state of the clock display: the
// zone stack, the scrubbed timeline position, display toggles, and the
// terminal event loop.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zoneline/zoneline/pkg/activity"
	"github.com/zoneline/zoneline/pkg/config"
	"github.com/zoneline/zoneline/pkg/theme"
	"github.com/zoneline/zoneline/pkg/timeline"
	"github.com/zoneline/zoneline/pkg/tzone"
)

// Each zone widget occupies a bordered box two content rows high.
const widgetHeight = 4

// App is the interactive state of one zoneline session.
type App struct {
	screen tcell.Screen
	logger *slog.Logger
	cfg    *config.Config
	zones  []*tzone.Zone
	rules  *activity.Config
	th     theme.Theme

	// clock is swappable so tests control time.
	clock func() time.Time

	position time.Time
	now      time.Time
	selected int
	// follow keeps the scrub position pinned to the current time until
	// the user scrubs away from it.
	follow bool

	format    timeline.TimeFormat
	titleMode timeline.TitleMode
	showDate  bool
	showDST   bool
}

// New assembles an app from its collaborators. The screen must already
// be initialized.
func New(screen tcell.Screen, cfg *config.Config, zones []*tzone.Zone, logger *slog.Logger) *App {
	a := &App{
		screen:    screen,
		logger:    logger,
		cfg:       cfg,
		zones:     zones,
		rules:     cfg.Rules(),
		th:        theme.Lookup(cfg.Theme),
		clock:     func() time.Time { return time.Now().UTC() },
		format:    cfg.Format(),
		titleMode: cfg.Titles(),
		showDate:  cfg.ShowDate,
		showDST:   cfg.ShowDST,
		follow:    true,
	}
	a.now = a.clock()
	a.position = a.now
	return a
}

// Run drives the event loop until the user quits or the context is
// canceled. A one-second ticker keeps the now marker fresh.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			close(quit)
			return ctx.Err()
		case <-ticker.C:
			a.tick()
			a.draw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				close(quit)
				return nil
			}
			a.draw()
		}
	}
}

// tick advances the current time and, in follow mode, the scrub with it.
func (a *App) tick() {
	a.now = a.clock()
	if a.follow {
		a.position = a.now
	}
}

// handleEvent processes one terminal event and reports whether the app
// should keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	step := a.cfg.ScrubStep()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.scrub(-step)
		return true
	case tcell.KeyRight:
		a.scrub(step)
		return true
	case tcell.KeyUp:
		a.selectZone(a.selected - 1)
		return true
	case tcell.KeyDown:
		a.selectZone(a.selected + 1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'h':
		a.scrub(-step)
	case 'l':
		a.scrub(step)
	case 'H':
		a.scrub(-6 * time.Hour)
	case 'L':
		a.scrub(6 * time.Hour)
	case 'k':
		a.selectZone(a.selected - 1)
	case 'j':
		a.selectZone(a.selected + 1)
	case 'r':
		a.follow = true
		a.position = a.now
	case 'd':
		a.showDate = !a.showDate
	case 's':
		a.showDST = !a.showDST
	case 't':
		if a.format == timeline.TwentyFourHour {
			a.format = timeline.TwelveHour
		} else {
			a.format = timeline.TwentyFourHour
		}
	case 'z':
		if a.titleMode == timeline.TitleShort {
			a.titleMode = timeline.TitleFull
		} else {
			a.titleMode = timeline.TitleShort
		}
	}
	return true
}

// scrub moves the timeline position and leaves follow mode; the user is
// now inspecting an instant of their choosing.
func (a *App) scrub(delta time.Duration) {
	a.follow = false
	a.position = a.position.Add(delta)
	a.logger.Debug("scrubbed", "position", a.position, "delta", delta)
}

// selectZone clamps the selection to the zone list.
func (a *App) selectZone(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(a.zones)-1 {
		idx = len(a.zones) - 1
	}
	a.selected = idx
}

// draw repaints the whole screen: one timeline widget per zone, stacked
// top to bottom, plus a key-help status line.
func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	y := 0
	for i, zone := range a.zones {
		if y+widgetHeight > height-1 {
			break
		}
		w := timeline.New(a.position, a.now, zone, i == a.selected, a.format,
			a.titleMode, a.rules, a.th, a.showDate, a.showDST)
		w.Render(a.screen, timeline.Rect{X: 0, Y: y, Width: width, Height: widgetHeight})
		y += widgetHeight
	}

	a.drawStatus(width, height)
	a.screen.Show()
}

func (a *App) drawStatus(width, height int) {
	if height < 1 {
		return
	}
	status := " q quit  ←→ scrub  ↑↓ zone  r now  d date  s dst  t 12/24  z title"
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		a.screen.SetContent(x, height-1, r, nil, style)
		x++
	}
}
