package main

import (
	"io"
	"strings"

	"github.com/peterh/liner"
)

func runREPL(lookahead int, maxTokens int) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	for {
		line, err := state.Prompt("lex> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			pt("\n")
			return
		}
		ce(err)

		if strings.TrimSpace(line) == "" {
			continue
		}
		state.AppendHistory(line)

		infos, err := tokenize(line, lookahead, maxTokens)
		for _, info := range infos {
			pt("%s\n", info)
		}
		if err != nil {
			pt("error: %v\n", err)
		}
	}
}
