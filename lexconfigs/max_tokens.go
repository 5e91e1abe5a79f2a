package lexconfigs

import (
	"math"

	"github.com/reusee/lex/cmds"
	"github.com/reusee/lex/configs"
	"github.com/reusee/lex/vars"
)

// MaxTokens caps the number of tokens dumped per input.
type MaxTokens int

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	maxTokens := math.MaxInt

	if n := vars.FirstNonZero(
		*maxTokensFlag,
		configs.First[int](loader, "max_tokens"),
	); n != 0 {
		maxTokens = min(maxTokens, n)
	}

	return MaxTokens(maxTokens)
}
