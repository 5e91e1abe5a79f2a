package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reusee/lex/lexer"
	"github.com/reusee/lex/tokens"
)

type TokenInfo struct {
	Kind  string
	Start int
	End   int
	Text  string
	Value any
}

func (t TokenInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d..%d %q", t.Kind, t.Start, t.End, t.Text)
	if t.Value != nil {
		fmt.Fprintf(&sb, " = %v", t.Value)
	}
	return sb.String()
}

func tokenize(input string, lookahead int, maxTokens int) ([]TokenInfo, error) {
	lx := lexer.New(input, lookahead)

	var ret []TokenInfo
	for len(ret) < maxTokens {
		tok, err := tokens.Next(lx)
		if err != nil {
			return ret, err
		}
		if tok == nil {
			break
		}

		span := tok.Span()
		info := TokenInfo{
			Kind:  strings.ToLower(reflect.TypeOf(tok).Name()),
			Start: span.Start,
			End:   span.End,
			Text:  lx.Text(span),
		}
		switch tok := tok.(type) {
		case tokens.Ident:
			info.Value = tok.Eval(lx)
		case tokens.Number:
			value, err := tok.Eval(lx)
			if err != nil {
				return ret, err
			}
			info.Value = value
		}

		ret = append(ret, info)
	}

	return ret, nil
}
