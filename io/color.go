package optio

import "strconv"

// Color is one of the 16 basic ANSI colours (0-7 normal, 8-15 bright)
type Color int

// ColorNone leaves text unstyled.
const ColorNone Color = -1

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

func (c Color) code() string {
	if c < 8 {
		return strconv.Itoa(30 + int(c))
	}
	return strconv.Itoa(90 + int(c-8))
}

// Theme maps log levels to colours
type Theme struct {
	Debug   Color
	Info    Color
	Success Color
	Warning Color
	Error   Color
}

// DefaultTheme is used by NewLogger
func DefaultTheme() Theme {
	return Theme{
		Debug:   BrightBlack,
		Info:    Blue,
		Success: Green,
		Warning: Yellow,
		Error:   Red,
	}
}
