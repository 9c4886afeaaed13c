package timeline

import (
	"testing"
	"time"

	"github.com/zoneline/zoneline/pkg/activity"
	"github.com/zoneline/zoneline/pkg/theme"
)

func TestLabelStart(t *testing.T) {
	tests := []struct {
		name   string
		anchor int
		length int
		width  int
		want   int
	}{
		{"centered mid track", 50, 6, 100, 47},
		{"anchor near left edge", 1, 6, 100, 0},
		{"anchor at left edge", 0, 6, 100, 0},
		{"anchor near right edge", 99, 6, 100, 94},
		{"anchor at clamp boundary", 97, 6, 100, 94},
		{"odd length centering", 50, 9, 100, 46},
		{"exact fit", 5, 10, 10, 0},
		{"label wider than track", 3, 10, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labelStart(tt.anchor, tt.length, tt.width); got != tt.want {
				t.Errorf("labelStart(%d, %d, %d) = %d, want %d",
					tt.anchor, tt.length, tt.width, got, tt.want)
			}
		})
	}
}

func TestLabelStartStaysInBounds(t *testing.T) {
	// For any label no wider than the track, the placement never starts
	// left of column 0 and never extends past the last column.
	for _, width := range []int{6, 10, 37, 100} {
		for length := 1; length <= width; length++ {
			for anchor := 0; anchor < width; anchor++ {
				start := labelStart(anchor, length, width)
				if start < 0 {
					t.Fatalf("labelStart(%d, %d, %d) = %d < 0", anchor, length, width, start)
				}
				if start+length > width {
					t.Fatalf("labelStart(%d, %d, %d) = %d extends past column %d",
						anchor, length, width, start, width-1)
				}
			}
		}
	}
}

func TestDateLabelsCoverVisibleDays(t *testing.T) {
	w := testWidget(t, "UTC")
	labels := w.dateLabels(100)

	// The window 2025-06-14 12:00 .. 2025-06-16 12:00 UTC spans three
	// calendar dates.
	want := []string{"14 Jun", "15 Jun", "16 Jun"}
	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}
	for i, label := range labels {
		if label.text != want[i] {
			t.Errorf("label %d = %q, want %q", i, label.text, want[i])
		}
		if label.start < 0 || label.start+len(label.text) > 100 {
			t.Errorf("label %q placed at %d, outside the track", label.text, label.start)
		}
	}
}

func TestDateLabelsSkipUnresolvableMidpoint(t *testing.T) {
	// With the workday midpoint forced to 02:00, the spring-forward day
	// has no such wall clock and its label is skipped.
	rules := activity.DefaultConfig()
	rules.WorkStart, rules.WorkEnd = 1, 3

	position := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	w := New(position, position, mustZone(t, "America/New_York"), false,
		TwentyFourHour, TitleShort, rules, theme.Default(), true, false)

	labels := w.dateLabels(100)
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2 with the DST day skipped", len(labels))
	}
	for _, label := range labels {
		if label.text == "09 Mar" {
			t.Errorf("label for the skipped-hour day was rendered at %d", label.start)
		}
	}
}

func TestDateLabelsSkipAmbiguousMidpoint(t *testing.T) {
	// With the midpoint forced to 01:00, the fall-back day reads 01:00
	// twice and its label is skipped rather than guessed.
	rules := activity.DefaultConfig()
	rules.WorkStart, rules.WorkEnd = 0, 2

	position := time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)
	w := New(position, position, mustZone(t, "America/New_York"), false,
		TwentyFourHour, TitleShort, rules, theme.Default(), true, false)

	for _, label := range w.dateLabels(100) {
		if label.text == "02 Nov" {
			t.Errorf("label for the ambiguous day was rendered at %d", label.start)
		}
	}
}
