package tokens

import "github.com/reusee/lex/lexer"

// Next consumes and returns the next token of any kind defined in this
// package. It returns (nil, nil) at end of input and an *Unexpected
// error when no kind matches. The engine itself stays agnostic of this
// list; compound operators are tried before their single-character
// prefixes.
func Next(lx *lexer.Lexer) (lexer.Token, error) {
	if lx.AtEOF() {
		return nil, nil
	}
	for _, getKind := range kinds {
		tok, err := getKind(lx)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
	}
	return nil, &lexer.Unexpected{
		Unexpected: upToSpace(lx.Rest()),
		Expected:   "a token",
	}
}

var kinds = []func(*lexer.Lexer) (lexer.Token, error){
	get[PlusEqual],
	get[MinusEqual],
	get[StarEqual],
	get[SlashEqual],
	get[EqualEqual],
	get[Plus],
	get[Minus],
	get[Star],
	get[Slash],
	get[Equal],
	get[LParen],
	get[RParen],
	get[Number],
	get[Ident],
}

func get[T lexer.Kind[T]](lx *lexer.Lexer) (lexer.Token, error) {
	tok, err := lexer.Get[T](lx)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	return *tok, nil
}
