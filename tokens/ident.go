package tokens

import "github.com/reusee/lex/lexer"

// Ident is an identifier: an ASCII letter or underscore followed by
// letters, digits or underscores.
type Ident struct {
	span lexer.Span
}

func (i Ident) Span() lexer.Span {
	return i.span
}

func (Ident) Parse(start int, rest string) (Ident, int, error) {
	n := 0
	for n < len(rest) && isIdentByte(rest[n], n == 0) {
		n++
	}
	if n == 0 {
		return Ident{}, 0, lexer.ErrNoMatch
	}
	end := start + n
	return Ident{span: lexer.Span{Start: start, End: end}}, end, nil
}

// Eval returns the identifier text.
func (i Ident) Eval(lx *lexer.Lexer) string {
	return lx.Text(i.span)
}

func isIdentByte(b byte, first bool) bool {
	if b == '_' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' {
		return true
	}
	return !first && b >= '0' && b <= '9'
}
