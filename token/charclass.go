package token

// IsNewline reports whether c ends a line.  A "\r\n" pair ends the line at
// '\r' and the '\n' is skipped as whitespace.
func IsNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || IsNewline(c)
}

// IsTerminator reports whether c ends the input regardless of what
// follows it.
func IsTerminator(c byte) bool {
	return c == 0
}

func TrimSpace(d []byte) []byte {
	return TrimLeftSpace(TrimRightSpace(d))
}

func TrimLeftSpace(d []byte) []byte {
	i := 0
	for i < len(d) && IsWhitespace(d[i]) {
		i++
	}
	return d[i:]
}

func TrimRightSpace(d []byte) []byte {
	n := len(d)
	for n > 0 && IsWhitespace(d[n-1]) {
		n--
	}
	return d[:n]
}

// SplitNext returns the bytes of d before the first sep and the bytes
// after it.  If d has no sep, rest is nil.
func SplitNext(d []byte, sep byte) (elt, rest []byte) {
	for i, c := range d {
		if c == sep {
			return d[:i], d[i+1:]
		}
	}
	return d, nil
}
