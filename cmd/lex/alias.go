package main

import (
	"fmt"

	"github.com/reusee/e5"
)

var (
	ce = e5.Check.With(e5.WrapStacktrace)
	pt = fmt.Printf
)
