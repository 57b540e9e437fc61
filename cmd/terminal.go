package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// canInitializeTUI tests if tcell can actually be initialized
func canInitializeTUI() bool {
	if !isTerminal() {
		return false
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return false
	}
	if err := screen.Init(); err != nil {
		return false
	}
	screen.Fini()
	return true
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// getTerminalSize returns terminal dimensions, preferring COLUMNS/LINES.
func getTerminalSize() (int, int) {
	var cols, rows int
	if _, err := fmt.Sscan(os.Getenv("COLUMNS"), &cols); err == nil {
		if _, err := fmt.Sscan(os.Getenv("LINES"), &rows); err == nil && cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// supportsColors checks if terminal supports colors
func supportsColors() bool {
	t := strings.ToLower(os.Getenv("TERM"))
	for _, colorTerm := range []string{"color", "256", "truecolor", "24bit"} {
		if strings.Contains(t, colorTerm) {
			return true
		}
	}
	return os.Getenv("COLORTERM") != ""
}

// getTerminalInfo returns detailed terminal information
func getTerminalInfo() string {
	var info []string

	if t := os.Getenv("TERM"); t == "" {
		info = append(info, "TERM=<not set>")
	} else {
		info = append(info, fmt.Sprintf("TERM=%s", t))
	}
	if width, height := getTerminalSize(); width > 0 && height > 0 {
		info = append(info, fmt.Sprintf("Size=%dx%d", width, height))
	}
	if isTerminal() {
		info = append(info, "TTY=yes")
	} else {
		info = append(info, "TTY=no")
	}
	if supportsColors() {
		info = append(info, "Colors=yes")
	} else {
		info = append(info, "Colors=no")
	}
	return strings.Join(info, ", ")
}
