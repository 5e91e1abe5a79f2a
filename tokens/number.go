package tokens

import (
	"strconv"
	"unicode"

	"github.com/reusee/lex/lexer"
)

// Number is an unsigned integer literal in decimal, hexadecimal (0x) or
// binary (0b) form. Only the span is stored; the value is computed on
// demand by Eval.
type Number struct {
	span lexer.Span
}

func (n Number) Span() lexer.Span {
	return n.span
}

func (Number) Parse(start int, rest string) (Number, int, error) {
	if len(rest) == 0 || !isDecDigit(rest[0]) {
		return Number{}, 0, lexer.ErrNoMatch
	}

	n := 0
	valid := isDecDigit
	expected := "decimal digits"
	if len(rest) >= 2 && rest[0] == '0' {
		switch rest[1] {
		case 'x', 'X':
			n = 2
			valid = isHexDigit
			expected = "hexadecimal digits"
		case 'b', 'B':
			n = 2
			valid = isBinDigit
			expected = "binary digits"
		}
	}

	digits := 0
	for n < len(rest) && valid(rest[n]) {
		n++
		digits++
	}

	// a literal that starts like a number but runs into identifier-like
	// text is malformed, not two adjacent tokens
	if digits == 0 || n < len(rest) && isIdentByte(rest[n], false) {
		return Number{}, 0, &lexer.Unexpected{
			Unexpected: upToSpace(rest[n:]),
			Expected:   expected,
		}
	}

	end := start + n
	return Number{span: lexer.Span{Start: start, End: end}}, end, nil
}

// Eval parses the literal as an unsigned integer, honoring the 0x and
// 0b prefixes.
func (n Number) Eval(lx *lexer.Lexer) (uint64, error) {
	text := lx.Text(n.span)
	if len(text) > 2 {
		switch text[:2] {
		case "0x", "0X":
			return strconv.ParseUint(text[2:], 16, 64)
		case "0b", "0B":
			return strconv.ParseUint(text[2:], 2, 64)
		}
	}
	return strconv.ParseUint(text, 10, 64)
}

func isDecDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'f' ||
		b >= 'A' && b <= 'F'
}

func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

func upToSpace(str string) string {
	for i, r := range str {
		if unicode.IsSpace(r) {
			return str[:i]
		}
	}
	return str
}
