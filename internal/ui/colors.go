package ui

// Color accessors read the active theme, so output follows SetTheme and
// InitTheme without the callers knowing which theme is active.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks successes.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow marks warnings and durations.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue marks strategy names.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta marks operands.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan marks values.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorGrey marks secondary text.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }
