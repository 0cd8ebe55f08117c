//go:build !lowerlay_nonorm && !lowerlay_ascii

package lowerlay

import (
	"testing"
	"unicode/utf8"
)

func TestNormalizedLowerLayString(t *testing.T) {
	s := "Comunicac\u0327o\u0303es"
	if n := utf8.RuneCountInString(s); n != 14 {
		t.Fatalf("%q has %d chars, want 14", s, n)
	}
	got := NormalizedLowerLayString(s)
	if n := utf8.RuneCountInString(got); n != 12 {
		t.Errorf("NormalizedLowerLayString(%q) has %d chars, want 12", s, n)
	}
	if got != "comunicacoes" {
		t.Errorf("NormalizedLowerLayString(%q) = %q, want %q", s, got, "comunicacoes")
	}
}

func TestNormalizedLowerLayStringTable(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Comunicações", "comunicacoes"},
		{"Comunicac\u0327o\u0303es", "comunicacoes"},
		{"E\u0301lodie", "elodie"},
		{"CAFE\u0301", "cafe"},
		{"Ångström", "angstrom"},
		{"q\u0307", "q\u0307"}, // no precomposed form exists
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizedLowerLayString(tt.in); got != tt.want {
			t.Errorf("NormalizedLowerLayString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldNormalizes(t *testing.T) {
	if !NormalizationEnabled {
		t.Fatal("NormalizationEnabled = false in a normalizing build")
	}
	if got := Fold("E\u0301COLE"); got != "ecole" {
		t.Errorf("Fold(%q) = %q, want %q", "E\u0301COLE", got, "ecole")
	}
	if !FoldedEqual("Élodie", "E\u0301LODIE") {
		t.Errorf("FoldedEqual(%q, %q) = false, want true", "Élodie", "E\u0301LODIE")
	}
}
