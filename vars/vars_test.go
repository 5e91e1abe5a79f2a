package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %d", v)
	}
	if v := FirstNonZero("", ""); v != "" {
		t.Fatalf("got %q", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "no", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}
