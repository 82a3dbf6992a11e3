package block

import (
	"strconv"
	"strings"
)

// Markers recognized by Classify.
const (
	MaxHeadingLevel = 6
	CodeFence       = "```"
	QuoteMarker     = ">"
	BulletMarker    = "- "
	OrderedSuffix   = ". "
)

// Classify returns the type of a block. The first matching rule wins:
// heading, code, quote, unordered list, ordered list, paragraph.
func Classify(text string) Type {
	switch {
	case text == "":
		return Paragraph
	case HeadingLevel(text) > 0:
		return Heading
	case isCode(text):
		return Code
	case allLinesHavePrefix(text, QuoteMarker):
		return Quote
	case allLinesHavePrefix(text, BulletMarker):
		return UnorderedList
	case isOrderedList(text):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the number of leading '#' when text starts with
// 1-6 of them followed by a space, and 0 otherwise.
func HeadingLevel(text string) int {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > MaxHeadingLevel {
		return 0
	}
	if level >= len(text) || text[level] != ' ' {
		return 0
	}
	return level
}

// isCode reports whether text is fenced by triple backticks on both ends.
// A lone fence is not a code block.
func isCode(text string) bool {
	return len(text) >= 2*len(CodeFence) &&
		strings.HasPrefix(text, CodeFence) &&
		strings.HasSuffix(text, CodeFence)
}

func allLinesHavePrefix(text, prefix string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList reports whether every line is "<n>. " with n counting up by
// one from the first line's number.
func isOrderedList(text string) bool {
	if text[0] < '0' || text[0] > '9' {
		return false
	}

	want := -1
	for _, line := range strings.Split(text, "\n") {
		number, _, ok := OrderedListNumber(line)
		if !ok {
			return false
		}
		if want >= 0 && number != want {
			return false
		}
		want = number + 1
	}
	return true
}

// OrderedListNumber parses an ordered list line of the form "<n>. rest".
// It returns the number, the text after the marker and whether the line
// has that form.
func OrderedListNumber(line string) (int, string, bool) {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || !strings.HasPrefix(line[digits:], OrderedSuffix) {
		return 0, "", false
	}

	number, err := strconv.Atoi(line[:digits])
	if err != nil {
		return 0, "", false
	}
	return number, line[digits+len(OrderedSuffix):], true
}
