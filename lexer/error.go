package lexer

import (
	"errors"
	"fmt"
)

// ErrNoMatch reports that the input does not begin with the requested
// kind. It is an ordinary outcome, not a failure.
var ErrNoMatch = errors.New("no match")

// Unexpected is the single error kind of the lexer: some substring was
// encountered where something else was expected.
type Unexpected struct {
	Unexpected string
	Expected   string
}

func (u *Unexpected) Error() string {
	return fmt.Sprintf("unexpected %q, expecting %s", u.Unexpected, u.Expected)
}
