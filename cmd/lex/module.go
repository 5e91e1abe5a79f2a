package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lex/debugs"
	"github.com/reusee/lex/lexconfigs"
)

type Module struct {
	dscope.Module
	Configs lexconfigs.Module
	Debugs  debugs.Module
}
