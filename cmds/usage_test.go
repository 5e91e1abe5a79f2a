package cmds

import "testing"

func TestPrintUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-foo", Func(func() {}).
		Desc("do foo").
		Alias("-f"))
	executor.PrintUsage()
}
