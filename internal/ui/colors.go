package ui

// ColorPrimary returns the accent escape code of the active theme.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the muted escape code of the active theme.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success escape code of the active theme.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorError returns the error escape code of the active theme.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
