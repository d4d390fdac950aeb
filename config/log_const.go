package config

// Logger prefix colors, as ANSI palette indexes.
const (
	ColorGreen   = "2"
	ColorBlue    = "4"
	ColorMagenta = "5"
	ColorCyan    = "6"
	ColorYellow  = "3"
)
