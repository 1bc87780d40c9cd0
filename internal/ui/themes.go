package ui

import (
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the raw ANSI sequences the REPL and result tables print.
// An empty field prints nothing, which is how NoColorTheme works.
type Theme struct {
	Name string

	Primary   string // headers, prompt
	Secondary string // dim labels, timings
	Success   string // matching results
	Warning   string
	Error     string // mismatches, failed strategies
	Info      string

	Bold      string
	Underline string
	Reset     string
}

const (
	sgrBold      = "\033[1m"
	sgrUnderline = "\033[4m"
	sgrReset     = "\033[0m"
)

// fg256 is the foreground sequence for xterm palette entry n.
func fg256(n int) string { return "\033[38;5;" + strconv.Itoa(n) + "m" }

func palette(name string, primary, secondary, success, warning, errColor, info int) Theme {
	return Theme{
		Name:      name,
		Primary:   fg256(primary),
		Secondary: fg256(secondary),
		Success:   fg256(success),
		Warning:   fg256(warning),
		Error:     fg256(errColor),
		Info:      fg256(info),
		Bold:      sgrBold,
		Underline: sgrUnderline,
		Reset:     sgrReset,
	}
}

var (
	DarkTheme   = palette("dark", 39, 245, 82, 220, 196, 141)
	LightTheme  = palette("light", 27, 240, 28, 130, 124, 54)
	OrangeTheme = palette("orange", 208, 245, 82, 214, 196, 69)
	// NoColorTheme is selected by --no-color or NO_COLOR.
	NoColorTheme = Theme{Name: "none"}

	themesByName = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		OrangeTheme.Name:  OrangeTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme installs t as is. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// SetTheme selects dark, light, orange or none. Anything else falls back to dark.
func SetTheme(name string) {
	t, ok := themesByName[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme picks the startup theme. Colors are off when noColor is set or
// NO_COLOR is present in the environment (any value, see no-color.org);
// otherwise the terminal background decides between light and dark.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if hasDarkBackground() {
		SetCurrentTheme(DarkTheme)
	} else {
		SetCurrentTheme(LightTheme)
	}
}

// Overridden in tests.
var hasDarkBackground = lipgloss.HasDarkBackground
