package lexconfigs

import (
	"github.com/reusee/lex/cmds"
	"github.com/reusee/lex/configs"
	"github.com/reusee/lex/vars"
)

// Lookahead is the token buffer capacity passed to lexer.New.
type Lookahead int

var lookaheadFlag = cmds.Var[int]("-lookahead")

func (Module) Lookahead(
	loader configs.Loader,
) Lookahead {
	if n := vars.FirstNonZero(
		*lookaheadFlag,
		configs.First[int](loader, "lookahead"),
	); n > 0 {
		return Lookahead(n)
	}
	return 1
}
