package tokens

import (
	"strings"

	"github.com/reusee/lex/lexer"
)

// punct is the common shape of fixed-text tokens.
type punct struct {
	span lexer.Span
}

func (p punct) Span() lexer.Span {
	return p.span
}

func matchFixed(start int, rest string, text string) (punct, int, error) {
	if !strings.HasPrefix(rest, text) {
		return punct{}, 0, lexer.ErrNoMatch
	}
	end := start + len(text)
	return punct{span: lexer.Span{Start: start, End: end}}, end, nil
}

type Plus struct{ punct }

func (Plus) Parse(start int, rest string) (Plus, int, error) {
	p, end, err := matchFixed(start, rest, "+")
	return Plus{p}, end, err
}

type Minus struct{ punct }

func (Minus) Parse(start int, rest string) (Minus, int, error) {
	p, end, err := matchFixed(start, rest, "-")
	return Minus{p}, end, err
}

type Star struct{ punct }

func (Star) Parse(start int, rest string) (Star, int, error) {
	p, end, err := matchFixed(start, rest, "*")
	return Star{p}, end, err
}

type Slash struct{ punct }

func (Slash) Parse(start int, rest string) (Slash, int, error) {
	p, end, err := matchFixed(start, rest, "/")
	return Slash{p}, end, err
}

type Equal struct{ punct }

func (Equal) Parse(start int, rest string) (Equal, int, error) {
	p, end, err := matchFixed(start, rest, "=")
	return Equal{p}, end, err
}

type EqualEqual struct{ punct }

func (EqualEqual) Parse(start int, rest string) (EqualEqual, int, error) {
	p, end, err := matchFixed(start, rest, "==")
	return EqualEqual{p}, end, err
}

type PlusEqual struct{ punct }

func (PlusEqual) Parse(start int, rest string) (PlusEqual, int, error) {
	p, end, err := matchFixed(start, rest, "+=")
	return PlusEqual{p}, end, err
}

type MinusEqual struct{ punct }

func (MinusEqual) Parse(start int, rest string) (MinusEqual, int, error) {
	p, end, err := matchFixed(start, rest, "-=")
	return MinusEqual{p}, end, err
}

type StarEqual struct{ punct }

func (StarEqual) Parse(start int, rest string) (StarEqual, int, error) {
	p, end, err := matchFixed(start, rest, "*=")
	return StarEqual{p}, end, err
}

type SlashEqual struct{ punct }

func (SlashEqual) Parse(start int, rest string) (SlashEqual, int, error) {
	p, end, err := matchFixed(start, rest, "/=")
	return SlashEqual{p}, end, err
}

type LParen struct{ punct }

func (LParen) Parse(start int, rest string) (LParen, int, error) {
	p, end, err := matchFixed(start, rest, "(")
	return LParen{p}, end, err
}

type RParen struct{ punct }

func (RParen) Parse(start int, rest string) (RParen, int, error) {
	p, end, err := matchFixed(start, rest, ")")
	return RParen{p}, end, err
}
