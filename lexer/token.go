package lexer

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Token is the part of the token contract answerable without knowing
// the concrete kind.
type Token interface {
	Span() Span
}

// Kind is the full contract a concrete token type satisfies. Parse is
// invoked on the zero value of T and must recognize the kind at the
// very beginning of rest, never consulting any other kind.
//
// Outcomes:
//   - rest does not begin with this kind at all: return ErrNoMatch
//   - rest begins like this kind but fails to complete validly: return
//     an *Unexpected describing the offending text
//   - matched: return the token and the absolute offset just past the
//     consumed text
type Kind[T Token] interface {
	Token
	Parse(start int, rest string) (tok T, end int, err error)
}
