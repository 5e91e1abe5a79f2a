package lexconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lex/configs"
	"github.com/reusee/lex/modes"
)

func TestLookaheadDefault(t *testing.T) {
	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		dscope.Provide(configs.NewLoader(nil, schema)),
	)
	scope.Call(func(
		lookahead Lookahead,
	) {
		if lookahead != 1 {
			t.Fatalf("got %d", lookahead)
		}
	})
}

func TestLookaheadFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lex.cue")
	if err := os.WriteFile(path, []byte("lookahead: 4\nmax_tokens: 100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, schema)),
	)
	scope.Call(func(
		lookahead Lookahead,
		maxTokens MaxTokens,
	) {
		if lookahead != 4 {
			t.Fatalf("got %d", lookahead)
		}
		if maxTokens != 100 {
			t.Fatalf("got %d", maxTokens)
		}
	})
}

func TestLookaheadFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lex.cue")
	if err := os.WriteFile(path, []byte("lookahead: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*lookaheadFlag = 8
	defer func() {
		*lookaheadFlag = 0
	}()

	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, schema)),
	)
	scope.Call(func(
		lookahead Lookahead,
	) {
		if lookahead != 8 {
			t.Fatalf("got %d", lookahead)
		}
	})
}
