package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}
}

func TestArgConversion(t *testing.T) {
	executor := NewExecutor()

	var f float64
	executor.Define("f", Func(func(v float64) {
		f = v
	}))
	var b bool
	executor.Define("b", Func(func(v bool) {
		b = v
	}))
	var optional string
	executor.Define("opt", Func(func(v *string) {
		if v != nil {
			optional = *v
		}
	}))

	if err := executor.Execute([]string{
		"f", "1.5",
		"b", "yes",
		"opt",
	}); err != nil {
		t.Fatal(err)
	}
	if f != 1.5 {
		t.Fatalf("got %v", f)
	}
	if !b {
		t.Fatal()
	}
	if optional != "" {
		t.Fatalf("got %q", optional)
	}

	err := executor.Execute([]string{
		"f", "nope",
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}
