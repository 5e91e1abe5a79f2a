package cmds

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

func Execute(args []string) {
	defaultExecutor.MustExecute(args)
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
