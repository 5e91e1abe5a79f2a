package main

import "testing"

func TestTokenize(t *testing.T) {
	infos, err := tokenize("a + b == 0x100", 1, 1000)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		`ident 0..1 "a" = a`,
		`plus 2..3 "+"`,
		`ident 4..5 "b" = b`,
		`equalequal 6..8 "=="`,
		`number 9..14 "0x100" = 256`,
	}
	if len(infos) != len(expected) {
		t.Fatalf("got %v", infos)
	}
	for i, info := range infos {
		if info.String() != expected[i] {
			t.Fatalf("token %d: got %q, expected %q", i, info.String(), expected[i])
		}
	}
}

func TestTokenizeMaxTokens(t *testing.T) {
	infos, err := tokenize("a b c d", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %v", infos)
	}
}

func TestTokenizeError(t *testing.T) {
	infos, err := tokenize("a @", 1, 1000)
	if err == nil {
		t.Fatal("should error")
	}
	if len(infos) != 1 {
		t.Fatalf("got %v", infos)
	}
}
