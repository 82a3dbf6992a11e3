package inline

import "strings"

// Delimiters recognized by Tokenize, in resolution order.
const (
	DelimBold   = "**"
	DelimItalic = "_"
	DelimCode   = "`"
)

// SplitDelimiter resolves delimiter pairs inside Plain spans.
//
// Spans that are not Plain pass through untouched, as do Plain spans with
// fewer than two occurrences of delim. Otherwise the first complete pair
// from the left becomes a span of the given kind; the text before it stays
// Plain and the text after it is scanned again for further pairs.
//
// Empty Plain spans produced at boundaries are kept; Tokenize drops them.
func SplitDelimiter(spans []Span, delim string, kind Kind) []Span {
	if delim == "" {
		return spans
	}

	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}
		out = splitPlain(out, span.Text, delim, kind)
	}
	return out
}

// splitPlain appends the resolution of one Plain text to out.
// Each iteration consumes two occurrences of delim, so the loop terminates.
func splitPlain(out []Span, text, delim string, kind Kind) []Span {
	for {
		count := strings.Count(text, delim)
		if count <= 1 {
			return append(out, PlainSpan(text))
		}

		switch {
		case strings.HasPrefix(text, delim):
			rest := text[len(delim):]
			end := strings.Index(rest, delim)
			out = append(out, Span{Text: rest[:end], Kind: kind})
			text = rest[end+len(delim):]

		case count == 2 && strings.HasSuffix(text, delim):
			trimmed := text[:len(text)-len(delim)]
			before, inside, _ := strings.Cut(trimmed, delim)
			return append(out, PlainSpan(before), Span{Text: inside, Kind: kind})

		default:
			parts := strings.SplitN(text, delim, 3) //nolint:mnd // before, inside, after
			out = append(out, PlainSpan(parts[0]), Span{Text: parts[1], Kind: kind})
			text = parts[2]
		}
	}
}
