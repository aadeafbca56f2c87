package addrs

import "testing"

func TestModifier(t *testing.T) {
	cases := []struct {
		src, mod, want string
	}{
		{"5-3-2", "#10-_1-+1", "10-2-3"},
		{"5-3-2", "0-0-0", "5-3-2"},
		{"5-3-2", "1-2-_1", "6-5-1"},
		{"5-3-2", "#1-#1-#1", "1-1-1"},
		{"5-3-2", "+0-_2-+0", "5-1-2"},
	}
	for _, c := range cases {
		src, ok := Parse(c.src)
		if !ok {
			t.Fatal()
		}
		mod, ok := ParseModifier(c.mod)
		if !ok {
			t.Fatalf("%s: should parse", c.mod)
		}
		got, ok := mod.Apply(src)
		if !ok {
			t.Fatalf("%s %s: should apply", c.src, c.mod)
		}
		if got.String() != c.want {
			t.Fatalf("%s %s: got %s", c.src, c.mod, got)
		}
	}
}

func TestModifierMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"1-2",
		"1-2-3-4",
		"#-1-1",
		"_-1-1",
		"x-1-1",
		"1--1",
		"_+1-1-1",
		"+_1-1-1",
		"#_1-1-1",
	} {
		if _, ok := ParseModifier(text); ok {
			t.Fatalf("%q should not parse", text)
		}
	}
}

func TestModifierOutOfRange(t *testing.T) {
	src := Cell(5, 3, 2)
	for _, text := range []string{
		"_5-0-0",
		"0-_3-0",
		"0-0-+2",
		"0-0-_2",
		"#0-0-0",
	} {
		mod, ok := ParseModifier(text)
		if !ok {
			t.Fatalf("%q should parse", text)
		}
		if got, ok := mod.Apply(src); ok {
			t.Fatalf("%q: got %v", text, got)
		}
	}
}

func TestModifierString(t *testing.T) {
	mod, ok := ParseModifier("#10-_1-1")
	if !ok {
		t.Fatal()
	}
	if str := mod.String(); str != "#10-_1-+1" {
		t.Fatalf("got %s", str)
	}
}
