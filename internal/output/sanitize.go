package output

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/runenames"
)

// nonASCII drops every rune above U+007F. Invalid UTF-8 bytes reach the
// predicate as utf8.RuneError and are dropped as well.
var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// SanitizeForDisplay makes shard output safe to print on a terminal.
//
// It first drops every byte outside 7-bit ASCII, then resolves backslash
// escape sequences: \\ \' \" \a \b \f \n \r \t \v, octal \o to \ooo,
// \xhh, \uhhhh, \Uhhhhhhhh and \N{NAME}. \xhh yields the code point U+00hh.
// NAME is a Unicode character name, matched case-insensitively. A backslash
// followed by a newline is removed. Escapes that cannot be resolved are kept
// as written.
func SanitizeForDisplay(text string) string {
	ascii, _, err := transform.String(nonASCII, text)
	if err != nil {
		ascii = stripNonASCII(text)
	}
	return resolveEscapes(ascii)
}

// stripNonASCII is the byte-level fallback for SanitizeForDisplay.
func stripNonASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] <= unicode.MaxASCII {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func resolveEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		i := strings.IndexByte(s, '\\')
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		s = s[i:]

		if len(s) >= 2 {
			switch c := s[1]; {
			case c == '\'':
				sb.WriteByte('\'')
				s = s[2:]
				continue
			case c == '\n':
				s = s[2:]
				continue
			case isOctal(c):
				value, n := octalEscape(s)
				sb.WriteRune(value)
				s = s[n:]
				continue
			case c == 'N':
				if value, n, ok := namedEscape(s); ok {
					sb.WriteRune(value)
					s = s[n:]
					continue
				}
			}
		}

		value, _, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			sb.WriteByte('\\')
			s = s[1:]
			continue
		}
		sb.WriteRune(value)
		s = tail
	}
	return sb.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

// octalEscape decodes up to three octal digits following the backslash at
// s[0] and returns the rune and the length of the escape.
func octalEscape(s string) (rune, int) {
	var value rune
	n := 1
	for n < 4 && n < len(s) && isOctal(s[n]) {
		value = value*8 + rune(s[n]-'0')
		n++
	}
	return value, n
}

// namedEscape decodes a \N{NAME} escape at the start of s.
func namedEscape(s string) (rune, int, bool) {
	if !strings.HasPrefix(s, `\N{`) {
		return 0, 0, false
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return 0, 0, false
	}
	r, ok := lookupRuneName(s[3:end])
	if !ok {
		return 0, 0, false
	}
	return r, end + 1, true
}

var (
	runeNamesOnce sync.Once
	runesByName   map[string]rune
)

// lookupRuneName returns the rune with the given Unicode name. The index is
// built on first use. Placeholder names in angle brackets, such as <control>,
// are not indexed.
func lookupRuneName(name string) (rune, bool) {
	runeNamesOnce.Do(func() {
		runesByName = make(map[string]rune)
		for r := rune(0); r <= unicode.MaxRune; r++ {
			n := runenames.Name(r)
			if n == "" || strings.HasPrefix(n, "<") {
				continue
			}
			runesByName[n] = r
		}
	})
	r, ok := runesByName[strings.ToUpper(name)]
	return r, ok
}
