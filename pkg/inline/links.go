package inline

import "regexp"

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Match is one image or link found in a text.
type Match struct {
	// Text is the alt text of an image or the anchor text of a link.
	Text string

	// URL is the image source or link target.
	URL string

	// Start and End are byte offsets of the full markup in the scanned text.
	Start int
	End   int
}

// Raw returns the full markup of the match within text.
func (m Match) Raw(text string) string {
	return text[m.Start:m.End]
}

// ExtractImages returns every non-overlapping ![alt](url) in text, in order.
// Neither alt nor url may contain brackets or parentheses respectively.
func ExtractImages(text string) []Match {
	return extract(imagePattern, text, false)
}

// ExtractLinks returns every non-overlapping [text](url) in text that is not
// preceded by '!', in order.
func ExtractLinks(text string) []Match {
	return extract(linkPattern, text, true)
}

func extract(pattern *regexp.Regexp, text string, skipBang bool) []Match {
	var matches []Match
	for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
		// RE2 has no lookbehind. A bracket preceded by '!' belongs to an image;
		// no other match can start inside the skipped one.
		if skipBang && loc[0] > 0 && text[loc[0]-1] == '!' {
			continue
		}
		matches = append(matches, Match{
			Text:  text[loc[2]:loc[3]],
			URL:   text[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return matches
}

// SplitImages replaces every image in Plain spans with an Image span.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, ExtractImages, Image)
}

// SplitLinks replaces every link in Plain spans with a Link span.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, ExtractLinks, Link)
}

// splitMatches cuts Plain spans around the first match found by extract and
// keeps scanning the remainder until no match is left. Empty text before or
// after a match is omitted.
func splitMatches(spans []Span, extract func(string) []Match, kind Kind) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		text := span.Text
		for {
			matches := extract(text)
			if len(matches) == 0 {
				out = append(out, PlainSpan(text))
				break
			}

			first := matches[0]
			if first.Start > 0 {
				out = append(out, PlainSpan(text[:first.Start]))
			}
			out = append(out, Span{Text: first.Text, Kind: kind, URL: first.URL})

			text = text[first.End:]
			if text == "" {
				break
			}
		}
	}
	return out
}
