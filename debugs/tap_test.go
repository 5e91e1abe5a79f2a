package debugs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"source": "a + b",
			"tokens": []map[string]any{
				{"kind": "ident", "start": 0, "end": 1},
				{"kind": "plus", "start": 2, "end": 3},
				{"kind": "ident", "start": 4, "end": 5},
			},
		})
	})
}
