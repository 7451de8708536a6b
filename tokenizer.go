package valuepath

import "strings"

// Tokenize splits a path expression into its raw segments. Segments carry no
// kind information; whether a segment is a member name, mapping key or
// sequence index is decided during resolution against a concrete value.
//
// Grammar, scanned left to right:
//
//   - '.' ends the current segment; empty segments (consecutive, leading or
//     trailing dots) are folded away rather than rejected
//   - '[' opens a bracket expression; a body terminated by ']' becomes a
//     segment verbatim, and an empty body ('[]') is folded away
//   - a bracket starting with a double or single quote is a quoted literal whose raw text
//     becomes the segment, even when it contains '.', '[' or ']'; a backslash
//     escapes the following character; an unterminated literal consumes the
//     rest of the input
//   - a stray ']' with no matching open bracket is skipped
func Tokenize(path string) []string {
	return tokenizePath(path)
}

func tokenizePath(path string) []string {
	if path == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(path, ".")+1)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	i := 0
	for i < len(path) {
		switch c := path[i]; c {
		case '.':
			flush()
			i++
		case '[':
			flush()
			i++
			if i < len(path) && (path[i] == '"' || path[i] == '\'') {
				var literal string
				literal, i = scanQuotedLiteral(path, i)
				segments = append(segments, literal)
			} else {
				start := i
				for i < len(path) && path[i] != ']' {
					i++
				}
				body := path[start:i]
				if i < len(path) {
					i++ // skip ']'
				}
				if body != "" {
					segments = append(segments, body)
				}
			}
		case ']':
			// Stray close bracket, skip it.
			i++
		default:
			current.WriteByte(c)
			i++
		}
	}
	flush()

	return segments
}

// scanQuotedLiteral scans a bracket-quoted literal starting at the opening
// quote. It returns the literal's raw text and the position after the
// closing quote and optional ']'. An unterminated literal consumes the rest
// of the string.
func scanQuotedLiteral(path string, i int) (string, int) {
	quote := path[i]
	i++

	var literal strings.Builder
	for i < len(path) {
		if path[i] == '\\' && i+1 < len(path) {
			literal.WriteByte(path[i+1])
			i += 2
			continue
		}
		if path[i] == quote {
			i++
			break
		}
		literal.WriteByte(path[i])
		i++
	}
	if i < len(path) && path[i] == ']' {
		i++
	}

	return literal.String(), i
}
