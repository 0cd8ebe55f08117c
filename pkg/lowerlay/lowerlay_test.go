package lowerlay

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

func TestLowerLayCharASCII(t *testing.T) {
	for c := rune(0); c < 0x80; c++ {
		want := c
		if c >= 'A' && c <= 'Z' {
			want = c + 'a' - 'A'
		}
		if got := LowerLayChar(c); got != want {
			t.Errorf("LowerLayChar(%q) = %q, want %q", c, got, want)
		}
	}
}

func TestLowerLayCharBoundary(t *testing.T) {
	for _, c := range []rune{TableSize, TableSize + 1, 0x10FFFF, utf8.MaxRune + 1, -1} {
		if got := LowerLayChar(c); got != c {
			t.Errorf("LowerLayChar(%#x) = %#x, want identity", c, got)
		}
	}
	// The last slot of the table resolves without panicking.
	_ = LowerLayChar(TableSize - 1)
}

func TestLowerLayCharInTable(t *testing.T) {
	for c := rune(0); c < TableSize; c++ {
		want, ok := layPairs[c]
		if !ok {
			want = c
		}
		if got := LowerLayChar(c); got != want {
			t.Fatalf("LowerLayChar(%#x) = %#x, want %#x", c, got, want)
		}
	}
}

func TestTableIsIdempotent(t *testing.T) {
	for c, f := range layPairs {
		if c < 0 || c >= TableSize {
			t.Errorf("pair key %#x outside table of size %#x", c, TableSize)
		}
		if g := LowerLayChar(f); g != f {
			t.Errorf("LowerLayChar(LowerLayChar(%#x)) = %#x, want %#x", c, g, f)
		}
	}
}

func TestLowerLayStringPreservesCharCount(t *testing.T) {
	inputs := []string{
		"",
		"simple",
		"DUPONT",
		"Comunicações",
		"Comunicac\u0327o\u0303es",
		"한국어 텍스트",
		"emoji 😀 stays",
		"\xff invalid",
	}
	for _, s := range inputs {
		got := LowerLayString(s)
		if utf8.RuneCountInString(got) != utf8.RuneCountInString(s) {
			t.Errorf("LowerLayString(%q) = %q: %d chars, want %d", s, got,
				utf8.RuneCountInString(got), utf8.RuneCountInString(s))
		}
		if again := LowerLayString(got); again != got {
			t.Errorf("LowerLayString(%q) = %q, want fixed point %q", got, again, got)
		}
	}
}

func TestLowerLayStringUnchanged(t *testing.T) {
	s := "already folded"
	got := LowerLayString(s)
	if got != s {
		t.Fatalf("LowerLayString(%q) = %q", s, got)
	}
	if testing.AllocsPerRun(10, func() { _ = LowerLayString(s) }) != 0 {
		t.Errorf("LowerLayString allocated on already folded input")
	}
}

func TestFoldedEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"HELLO", "hello", true},
		{"hello", "hello", true},
		{"hello", "world", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := FoldedEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("FoldedEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTransformerMatchesFold(t *testing.T) {
	inputs := []string{"", "Hello World", "Comunicações", "Comunicac\u0327o\u0303es", strings.Repeat("ÀÉÎÕÜ ", 2000)}
	for _, s := range inputs {
		got, _, err := transform.String(Transformer(), s)
		if err != nil {
			t.Fatalf("transform.String(%q): %v", s, err)
		}
		if want := Fold(s); got != want {
			t.Errorf("Transformer on %.20q = %.20q, want %.20q", s, got, want)
		}
	}
}

func BenchmarkLowerLayString(b *testing.B) {
	s := strings.Repeat("Comunicações Élodie FRANÇOIS ", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = LowerLayString(s)
	}
}
