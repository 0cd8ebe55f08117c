//go:build !lowerlay_ascii && !lowerlay_nonorm

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdFoldAccents(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"Comunicac\u0327o\u0303es"}, "comunicacoes\n"},
		{[]string{"--raw", "Comunicac\u0327o\u0303es"}, "comunicac\u0327o\u0303es\n"},
		{[]string{"--raw", "Comunicações"}, "comunicacoes\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := cmdFold(tt.args, nil, &out); err != nil {
			t.Fatalf("cmdFold(%q): %v", tt.args, err)
		}
		if got := out.String(); got != tt.want {
			t.Errorf("cmdFold(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestCmdFoldStdinStream(t *testing.T) {
	// long enough to cross transformer buffer boundaries
	line := "São Paulo, Kraków, Comunicac\u0327o\u0303es\n"
	in := strings.Repeat(line, 2000)
	want := strings.Repeat("sao paulo, krakow, comunicacoes\n", 2000)

	var out bytes.Buffer
	if err := cmdFold(nil, strings.NewReader(in), &out); err != nil {
		t.Fatalf("cmdFold: %v", err)
	}
	if out.String() != want {
		t.Errorf("streamed output differs from folded input (got %d bytes, want %d)", out.Len(), len(want))
	}
}
