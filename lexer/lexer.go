package lexer

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
)

// Lexer turns an input string into typed tokens on demand, caching up
// to a fixed number of parsed-but-unconsumed tokens for lookahead. The
// cursor only moves forward; buffered tokens cover contiguous spans
// immediately preceding it.
//
// A Lexer is a plain value with no cleanup obligations. It is a
// sequential pull iterator over one input and is not safe for
// concurrent use.
type Lexer struct {
	input string
	index int
	buf   deque
}

// New creates a Lexer over input with the given lookahead capacity.
// Leading whitespace is skipped so the cursor always sits on a trimmed
// boundary.
func New(input string, lookahead int) *Lexer {
	lx := &Lexer{
		input: input,
		buf:   newDeque(lookahead),
	}
	lx.trim()
	return lx
}

// Peek parses and caches the next token beyond the deepest position
// already peeked, if it is of kind T. Repeated calls without an
// intervening Get return the same cached value without re-parsing.
// A (nil, nil) return means the input does not continue with a T.
//
// The returned pointer stays valid until the token is consumed.
func Peek[T Kind[T]](lx *Lexer) (*T, error) {
	if back := lx.buf.back(); back != nil && is[T](back) {
		return ref[T](back), nil
	}
	return parseAndBuffer[T](lx)
}

// PeekN is Peek at lookahead depth n; depth 0 is the next unconsumed
// token. Depths must be filled in strictly increasing order: peeking
// depth n with fewer than n positions buffered panics, as does asking
// for a different kind at an already-parsed position. Both are defects
// in the calling code.
func PeekN[T Kind[T]](lx *Lexer, n int) (*T, error) {
	if lx.buf.n > n {
		c := lx.buf.at(n)
		if !is[T](c) {
			panic(fmt.Errorf("lookahead position %d already parsed as %v, re-requested as %v",
				n, c.typ, reflect.TypeFor[T]()))
		}
		return ref[T](c), nil
	}
	if lx.buf.n != n {
		panic(fmt.Errorf("lookahead depth %d requested with only %d positions filled", n, lx.buf.n))
	}
	return parseAndBuffer[T](lx)
}

// Get consumes and returns the next token, if it is of kind T. A
// previously peeked front token is removed from the buffer and returned
// without re-parsing. With an empty buffer the token is parsed at the
// cursor and consumed directly, bypassing the buffer. Requesting a kind
// different from what the front position was already parsed as panics;
// there is no backtracking.
func Get[T Kind[T]](lx *Lexer) (*T, error) {
	if lx.buf.n > 0 {
		front := lx.buf.at(0)
		if !is[T](front) {
			panic(fmt.Errorf("next token already parsed as %v, consumed as %v",
				front.typ, reflect.TypeFor[T]()))
		}
		c := lx.buf.popFront()
		tok := *ref[T](&c)
		return &tok, nil
	}

	var zero T
	tok, end, err := zero.Parse(lx.index, lx.input[lx.index:])
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return nil, nil
		}
		return nil, err
	}
	lx.index = end
	lx.trim()
	return &tok, nil
}

func parseAndBuffer[T Kind[T]](lx *Lexer) (*T, error) {
	var zero T
	tok, end, err := zero.Parse(lx.index, lx.input[lx.index:])
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return nil, nil
		}
		return nil, err
	}
	lx.index = end
	lx.trim()
	slot := lx.buf.pushBack(newCell(tok))
	return ref[T](slot), nil
}

// trim skips whitespace at the cursor so the next token never includes
// leading whitespace bytes.
func (lx *Lexer) trim() {
	for i, r := range lx.input[lx.index:] {
		if !unicode.IsSpace(r) {
			lx.index += i
			return
		}
	}
	lx.index = len(lx.input)
}

// Text returns the input bytes a span covers, for on-demand evaluation
// of a token's content. The view is read-only and valid for the life
// of the engine.
func (lx *Lexer) Text(sp Span) string {
	return lx.input[sp.Start:sp.End]
}

// Rest returns the unconsumed, untrimmed remainder of the input,
// excluding buffered tokens' spans.
func (lx *Lexer) Rest() string {
	return lx.input[lx.index:]
}

// Offset returns the current cursor position.
func (lx *Lexer) Offset() int {
	return lx.index
}

// Buffered returns the number of tokens parsed ahead but not yet
// consumed.
func (lx *Lexer) Buffered() int {
	return lx.buf.n
}

// AtEOF reports whether there is nothing left to pull: the cursor is at
// the end of the input and no token is buffered.
func (lx *Lexer) AtEOF() bool {
	return lx.index == len(lx.input) && lx.buf.n == 0
}
