package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme defines UI color tokens used across widgets and text tags.
type Theme struct {
	// Widget colors
	Surface     tcell.Color
	Border      tcell.Color
	FocusBorder tcell.Color
	FieldBg     tcell.Color
	TextPrimary tcell.Color
	TextMuted   tcell.Color
	Accent      tcell.Color
	Header      tcell.Color

	// Text tag colors (for tview dynamic color markup)
	TagMuted   string
	TagAccent  string
	TagSuccess string
	TagWarning string
	TagError   string
	TagHeader  string
}

// ThemeNames lists the themes in cycle order.
var ThemeNames = []string{"dark", "light", "high-contrast"}

func hex(s string) tcell.Color { return tcell.GetColor(s) }

func themeDark() Theme {
	return Theme{
		Surface:     hex("#12161e"),
		Border:      hex("#2b3240"),
		FocusBorder: hex("#4aa8ff"),
		FieldBg:     hex("#1a2332"),
		TextPrimary: hex("#e6edf3"),
		TextMuted:   hex("#8a939f"),
		Accent:      hex("#2dd4bf"),
		Header:      hex("#eab308"),

		TagMuted:   "#8a939f",
		TagAccent:  "#2dd4bf",
		TagSuccess: "#22c55e",
		TagWarning: "#f59e0b",
		TagError:   "#ef4444",
		TagHeader:  "#eab308",
	}
}

func themeLight() Theme {
	return Theme{
		Surface:     hex("#ffffff"),
		Border:      hex("#d0d7de"),
		FocusBorder: hex("#1f6feb"),
		FieldBg:     hex("#e5e7eb"),
		TextPrimary: hex("#111827"),
		TextMuted:   hex("#6b7280"),
		Accent:      hex("#2563eb"),
		Header:      hex("#1f2937"),

		TagMuted:   "#6b7280",
		TagAccent:  "#2563eb",
		TagSuccess: "#15803d",
		TagWarning: "#b45309",
		TagError:   "#b91c1c",
		TagHeader:  "#1f2937",
	}
}

func themeHighContrast() Theme {
	return Theme{
		Surface:     hex("#000000"),
		Border:      hex("#ffffff"),
		FocusBorder: hex("#ffff00"),
		FieldBg:     hex("#111111"),
		TextPrimary: hex("#ffffff"),
		TextMuted:   hex("#cccccc"),
		Accent:      hex("#00ffff"),
		Header:      hex("#ffffff"),

		TagMuted:   "#cccccc",
		TagAccent:  "#00ffff",
		TagSuccess: "#00ff00",
		TagWarning: "#ffff00",
		TagError:   "#ff0000",
		TagHeader:  "#ffffff",
	}
}

// ThemeByName returns the named palette.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return themeDark(), nil
	case "light":
		return themeLight(), nil
	case "high-contrast":
		return themeHighContrast(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (use %s)", name, strings.Join(ThemeNames, ", "))
}

func nextThemeName(current string) string {
	for i, n := range ThemeNames {
		if n == current {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeNames[0]
}

func detectTrueColor() bool {
	// Best-effort detection without initializing screen
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "256color")
}
