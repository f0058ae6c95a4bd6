/*
Package sgr provides SGR (Select Graphic Rendition) escape sequences for 24-bit color terminals
*/
package sgr

import (
	"regexp"
	"strconv"
	"strings"
)

// ESC is the control character that starts every escape sequence
const ESC = "\x1b"

// Reset restores the terminal's default colors and attributes
const Reset = ESC + "[0m"

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Foreground returns the true-color foreground sequence ESC[38;2;R;G;Bm
func Foreground(r, g, b uint8) string {
	return color("38", r, g, b)
}

// Background returns the true-color background sequence ESC[48;2;R;G;Bm
func Background(r, g, b uint8) string {
	return color("48", r, g, b)
}

func color(selector string, r, g, b uint8) string {
	var sb strings.Builder
	sb.Grow(19)
	sb.WriteString(ESC)
	sb.WriteByte('[')
	sb.WriteString(selector)
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte('m')
	return sb.String()
}

// Strip removes every SGR sequence from s, leaving only the visible text
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// Count returns the number of SGR sequences in s
func Count(s string) int {
	return len(sgrPattern.FindAllStringIndex(s, -1))
}
