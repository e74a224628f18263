package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines of at most width cells. It prefers
// breaking after spaces and CJK punctuation and falls back to a hard break.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	var lines []string
	line := make([]rune, 0, len(runes))
	lineWidth := 0
	lastBreak := -1

	for i := 0; i < len(runes); {
		r := runes[i]
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			switch {
			case r == ' ':
				lines = append(lines, string(line))
				line = line[:0]
				lineWidth = 0
				lastBreak = -1
				i++
			case lastBreak >= 0:
				lines = append(lines, strings.TrimRight(string(line[:lastBreak+1]), " "))
				line = append([]rune{}, line[lastBreak+1:]...)
				lineWidth = runewidth.StringWidth(string(line))
				lastBreak = lastBreakIndex(line)
			default:
				lines = append(lines, string(line))
				line = line[:0]
				lineWidth = 0
				lastBreak = -1
			}
			continue
		}
		line = append(line, r)
		lineWidth += w
		if isBreakAfter(r) {
			lastBreak = len(line) - 1
		}
		i++
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}

func isBreakAfter(r rune) bool {
	switch r {
	case ' ', '、', '。', '！', '？':
		return true
	default:
		return false
	}
}

func lastBreakIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if isBreakAfter(line[i]) {
			return i
		}
	}
	return -1
}
