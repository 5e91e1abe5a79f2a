package logs

import (
	"context"
	"errors"
	"fmt"
)

// Source is the name of the input currently being tokenized.
type Source string

type sourceKeyType struct{}

var SourceKey sourceKeyType

func WithSource(ctx context.Context, source Source) context.Context {
	return context.WithValue(ctx, SourceKey, source)
}

func WrapSource(ctx context.Context, err error) error {
	v := ctx.Value(SourceKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("source: %s", v.(Source)))
}
