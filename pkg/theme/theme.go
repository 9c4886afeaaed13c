// Package theme defines the color palettes the timeline display can use.
package theme

import "github.com/gdamore/tcell/v2"

// Theme is one named palette. Every color a widget paints comes from
// here so the display stays consistent when the user switches palettes.
type Theme struct {
	Name string

	SelectedBorder tcell.Color
	NowMarker      tcell.Color
	ScrubMarker    tcell.Color

	Work  tcell.Color
	Awake tcell.Color
	Night tcell.Color

	SpringForward tcell.Color
	FallBack      tcell.Color

	DateFg tcell.Color
	DateBg tcell.Color
}

// Default is the palette used when no theme is configured.
func Default() Theme {
	return Theme{
		Name:           "default",
		SelectedBorder: tcell.ColorYellow,
		NowMarker:      tcell.ColorRed,
		ScrubMarker:    tcell.ColorAqua,
		Work:           tcell.ColorGreen,
		Awake:          tcell.ColorOlive,
		Night:          tcell.ColorGray,
		SpringForward:  tcell.ColorGreen,
		FallBack:       tcell.ColorYellow,
		DateFg:         tcell.ColorWhite,
		DateBg:         tcell.ColorGray,
	}
}

// Ocean is a cooler palette for dark terminals.
func Ocean() Theme {
	return Theme{
		Name:           "ocean",
		SelectedBorder: tcell.ColorAqua,
		NowMarker:      tcell.ColorFuchsia,
		ScrubMarker:    tcell.ColorWhite,
		Work:           tcell.ColorTeal,
		Awake:          tcell.ColorBlue,
		Night:          tcell.ColorNavy,
		SpringForward:  tcell.ColorAqua,
		FallBack:       tcell.ColorBlue,
		DateFg:         tcell.ColorBlack,
		DateBg:         tcell.ColorAqua,
	}
}

// Mono renders everything in shades of gray for monochrome terminals.
func Mono() Theme {
	return Theme{
		Name:           "mono",
		SelectedBorder: tcell.ColorWhite,
		NowMarker:      tcell.ColorWhite,
		ScrubMarker:    tcell.ColorSilver,
		Work:           tcell.ColorWhite,
		Awake:          tcell.ColorSilver,
		Night:          tcell.ColorGray,
		SpringForward:  tcell.ColorWhite,
		FallBack:       tcell.ColorSilver,
		DateFg:         tcell.ColorBlack,
		DateBg:         tcell.ColorSilver,
	}
}

// Lookup returns the named theme, falling back to the default palette
// for unknown names. A missing theme is a cosmetic problem, not a fatal
// one.
func Lookup(name string) Theme {
	switch name {
	case "ocean":
		return Ocean()
	case "mono":
		return Mono()
	default:
		return Default()
	}
}

// Names lists the available theme names in presentation order.
func Names() []string {
	return []string{"default", "ocean", "mono"}
}
