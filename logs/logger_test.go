package logs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		ctx := WithSource(context.Background(), "test.src")
		logger.InfoContext(ctx, "test", "hello", "world!")
	})
}

func TestWrapSource(t *testing.T) {
	err := errors.New("boom")

	if wrapped := WrapSource(context.Background(), err); wrapped != err {
		t.Fatalf("got %v", wrapped)
	}

	ctx := WithSource(context.Background(), "a.src")
	wrapped := WrapSource(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatalf("got %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "a.src") {
		t.Fatalf("got %v", wrapped)
	}
}
