package console

import (
	"fmt"
	"strings"
)

// Color represents a 24-bit terminal color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// StyleFlag is a bitmask of text attributes applied to the prompt indicator.
type StyleFlag uint8

// Text attribute flags. Combine with bitwise OR, e.g. StyleBold|StyleUnderline.
const (
	StyleBold StyleFlag = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleBlink
	StyleReverse
)

// styleCodes maps each flag to its ANSI enable and disable codes.
var styleCodes = []struct {
	flag StyleFlag
	on   string
	off  string
}{
	{StyleBold, "1", "22"},
	{StyleDim, "2", "22"},
	{StyleItalic, "3", "23"},
	{StyleUnderline, "4", "24"},
	{StyleBlink, "5", "25"},
	{StyleReverse, "7", "27"},
}

// PromptStyle configures how the prompt indicator is rendered. It is owned
// by the Console and mutated only through Console.SetPromptStyle.
type PromptStyle struct {
	Indicator  string // rendered before the input position, e.g. "> "
	Color      *Color // nil keeps the terminal's foreground color
	Background *Color // nil keeps the terminal's background color
	Styles     StyleFlag
}

// DefaultPromptStyle returns the style used when none is configured.
func DefaultPromptStyle() PromptStyle {
	return PromptStyle{
		Indicator: "> ",
		Color:     &Color{R: 0, G: 255, B: 0},
		Styles:    StyleBold,
	}
}

// emitColor returns the escape sequence setting the foreground color.
func emitColor(c Color) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// emitBackground returns the escape sequence setting the background color.
func emitBackground(c Color) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// emitStyle returns the escape sequence enabling the given attribute flags.
// With invert set, the corresponding disable codes are emitted instead.
func emitStyle(flags StyleFlag, invert bool) string {
	var codes []string
	for _, sc := range styleCodes {
		if flags&sc.flag == 0 {
			continue
		}
		if invert {
			codes = append(codes, sc.off)
		} else {
			codes = append(codes, sc.on)
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// resetAttributes returns the escape sequence clearing all text attributes.
func resetAttributes() string {
	return "\x1b[0m"
}

// Cursor control sequences.
func showCursor() string         { return "\x1b[?25h" }
func hideCursor() string         { return "\x1b[?25l" }
func saveCursorPosition() string { return "\x1b[s" }

// cursorBack moves the cursor n columns to the left.
func cursorBack(n int) string {
	return fmt.Sprintf("\x1b[%dD", n)
}

// clearToEnd erases from the cursor to the end of the line.
func clearToEnd() string {
	return "\x1b[K"
}

// indicatorSequence assembles the full styled indicator string, terminated
// by an attribute reset so user input is never styled by accident.
func (s PromptStyle) indicatorSequence() string {
	var b strings.Builder
	if s.Color != nil {
		b.WriteString(emitColor(*s.Color))
	}
	if s.Background != nil {
		b.WriteString(emitBackground(*s.Background))
	}
	if s.Styles != 0 {
		b.WriteString(emitStyle(s.Styles, false))
	}
	b.WriteString(s.Indicator)
	b.WriteString(resetAttributes())
	return b.String()
}
