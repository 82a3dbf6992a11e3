package markdown

import "strings"

// titlePrefix marks a level-1 heading.
const titlePrefix = "# "

// ExtractTitle returns the text of the level-1 heading on the first line of
// doc, without the marker and surrounding spaces.
func ExtractTitle(doc string) (string, error) {
	if !strings.HasPrefix(doc, titlePrefix) {
		return "", ErrMissingTitle
	}

	line, _, _ := strings.Cut(doc, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.TrimSpace(strings.TrimPrefix(line, titlePrefix)), nil
}
