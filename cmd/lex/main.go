package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lex/cmds"
	"github.com/reusee/lex/debugs"
	"github.com/reusee/lex/lexconfigs"
	"github.com/reusee/lex/logs"
	"github.com/reusee/lex/modes"
	"golang.org/x/term"
)

var (
	replMode = cmds.Switch("-repl")
	tapMode  = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		lookahead lexconfigs.Lookahead,
		maxTokens lexconfigs.MaxTokens,
		tap debugs.Tap,
	) {

		if *replMode {
			runREPL(int(lookahead), int(maxTokens))
			return
		}

		type source struct {
			name    string
			content string
		}
		var sources []source

		for _, path := range files {
			content, err := readTextFile(path)
			ce(err)
			sources = append(sources, source{
				name:    path,
				content: content,
			})
		}
		if stdin := getStdinContent(); len(stdin) > 0 {
			sources = append(sources, source{
				name:    "<stdin>",
				content: string(stdin),
			})
		}
		if len(sources) == 0 {
			cmds.PrintUsage()
			return
		}

		for _, source := range sources {
			ctx := logs.WithSource(ctx, logs.Source(source.name))
			logger.InfoContext(ctx, "tokenize",
				"bytes", len(source.content),
			)

			infos, err := tokenize(source.content, int(lookahead), int(maxTokens))
			for _, info := range infos {
				pt("%s\n", info)
			}
			if err != nil {
				logger.ErrorContext(ctx, "tokenize",
					"error", logs.WrapSource(ctx, err),
				)
				os.Exit(1)
			}

			if *tapMode {
				tap(ctx, source.name, map[string]any{
					"source": source.content,
					"tokens": infos,
				})
			}
		}

	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
