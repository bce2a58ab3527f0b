package pattern

import "unicode/utf8"

// Parse scans pattern text left to right and produces the unoptimized IR.
//
// When hasEscape is true, escape is treated as an escape character: escape
// followed by '%', '_', or escape itself yields that character as a
// literal; escape followed by anything else, or escape as the final
// character, is a *ParseError wrapping ErrInvalidEscape.
//
// Escape-detection takes priority over the wildcard rules, so setting
// escape equal to '%' or '_' disables that character as a wildcard. It
// can then only introduce an escape sequence.
func Parse(text string, escape rune, hasEscape bool) ([]Element, error) {
	var result []Element
	var literal []byte

	inEscape := false
	escapeOffset := 0

	for i, c := range text {
		switch {
		case inEscape:
			if c != '%' && c != '_' && !(hasEscape && c == escape) {
				return nil, &ParseError{Offset: escapeOffset, Err: ErrInvalidEscape}
			}
			literal = utf8.AppendRune(literal, c)
			inEscape = false

		case hasEscape && c == escape:
			inEscape = true
			escapeOffset = i

		case c == '%':
			if len(literal) > 0 {
				result = append(result, NewLiteral(literal))
				literal = nil
			}
			result = append(result, NewAny(0, true))

		case c == '_':
			if len(literal) > 0 {
				result = append(result, NewLiteral(literal))
				literal = nil
			}
			result = append(result, NewAny(1, false))

		default:
			literal = utf8.AppendRune(literal, c)
		}
	}

	if inEscape {
		return nil, &ParseError{Offset: escapeOffset, Err: ErrInvalidEscape}
	}

	if len(literal) > 0 {
		result = append(result, NewLiteral(literal))
	}

	return result, nil
}
