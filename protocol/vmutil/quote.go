package vmutil

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Escape returns data as the body of a string literal:
// backslash, double quote, newline, carriage return and tab are
// escaped with a backslash, and any other byte outside printable
// ASCII is written as \xNN.
func Escape(data []byte) string {
	var b strings.Builder
	for _, c := range data {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c > 0x7e {
				b.WriteString(`\x`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// Quote returns data as a double-quoted string literal.
func Quote(data []byte) string {
	return `"` + Escape(data) + `"`
}

// ValidText reports whether s, placed between double quotes,
// is a string literal the assembler accepts: valid UTF-8 on a
// single line, with only escapes the assembler knows.
func ValidText(s string) bool {
	if !utf8.ValidString(s) || strings.ContainsAny(s, "\n\r") {
		return false
	}
	_, err := strconv.Unquote(`"` + s + `"`)
	return err == nil
}
