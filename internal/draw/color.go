package draw

// ANSI SGR sequences used by the HUD.
const (
	ColorReset       = "\033[0m"
	ColorBold        = "\033[1m"
	ColorDim         = "\033[2m"
	ColorRed         = "\033[31m"
	ColorGreen       = "\033[32m"
	ColorYellow      = "\033[33m"
	ColorBrightCyan  = "\033[96m"
	ColorBrightWhite = "\033[97m"
)

// Colorize wraps s in the given color and a trailing reset.
func Colorize(color, s string) string {
	return color + s + ColorReset
}
