package utils

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// MessageType selects the color of a console message.
type MessageType int

// Console message types.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escapes of the message types.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// colorize is true when the console messages are going to a terminal.
var colorize = term.IsTerminal(int(os.Stderr.Fd()))

// SetColor overrides the terminal detection used by DecorateText.
func SetColor(enabled bool) {
	colorize = enabled
}

// DecorateText shows the message types in different colors.
// Plain text is returned when the output is not a terminal.
func DecorateText(s string, msgType MessageType) string {
	if !colorize {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// FormatTime formats the duration of a build step, "1.50s" below a minute
// and "2m 5.00s" above.
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %.2fs", int64(d/time.Minute), (d % time.Minute).Seconds())
}
