package logs

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(SourceKey); v != nil {
		record.Add("lex.source", string(v.(Source)))
	}
	return h.Handler.Handle(ctx, record)
}
