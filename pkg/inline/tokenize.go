package inline

// Tokenize converts a run of markdown text into spans.
//
// Markup is resolved in a fixed order: bold, italic, code, images, links.
// Spans with empty text are dropped from the result.
func Tokenize(text string) []Span {
	spans := []Span{PlainSpan(text)}
	spans = SplitDelimiter(spans, DelimBold, Bold)
	spans = SplitDelimiter(spans, DelimItalic, Italic)
	spans = SplitDelimiter(spans, DelimCode, Code)
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return dropEmpty(spans)
}

// Text concatenates the text of every span.
func Text(spans []Span) string {
	size := 0
	for _, span := range spans {
		size += len(span.Text)
	}

	buf := make([]byte, 0, size)
	for _, span := range spans {
		buf = append(buf, span.Text...)
	}
	return string(buf)
}

func dropEmpty(spans []Span) []Span {
	out := spans[:0]
	for _, span := range spans {
		if span.Text != "" {
			out = append(out, span)
		}
	}
	return out
}
