package filelog

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const replacementChar = "�"

// appendValidUTF8 copies s, replacing each run of invalid bytes with U+FFFD
// so the ring never holds malformed text.
func appendValidUTF8(buf *buffer, s string) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, replacementChar)
	}
	buf.writeString(s)
}

// appendQuoted writes s in Go quoted form. Invalid bytes become \x escapes,
// so the output is ASCII-safe whatever s holds.
func appendQuoted(buf *buffer, s string) {
	buf.b = strconv.AppendQuote(buf.b, s)
}

// appendTextString writes s bare unless it contains spaces, quotes or control
// characters, in which case it is quoted so a field value can never break a line.
func appendTextString(buf *buffer, s string) {
	if strings.IndexFunc(s, needsQuote) >= 0 {
		appendQuoted(buf, s)
		return
	}
	appendValidUTF8(buf, s)
}

func needsQuote(r rune) bool {
	return r <= ' ' || r == '"' || r == 0x7f
}
