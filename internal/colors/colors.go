package colors

import "fmt"

// ANSI color codes
const (
	Reset        = "\033[0m"
	Red          = "\033[31m"
	BoldRed      = "\033[31;1m"
	LightRed     = "\033[91m"
	Green        = "\033[32m"
	Yellow       = "\033[33m"
	Gray         = "\033[90m"
	BrightBlue   = "\033[94m"
	BrightYellow = "\033[93m"
)

// Wrap wraps text in color codes
func Wrap(color, text string) string {
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

// Separator returns the separator placed before trailing metrics
func Separator() string {
	return fmt.Sprintf(" %s|%s ", Gray, Reset)
}
