package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdFoldArgs(t *testing.T) {
	var out bytes.Buffer
	if err := cmdFold([]string{"HELLO", "World"}, nil, &out); err != nil {
		t.Fatalf("cmdFold: %v", err)
	}
	if got := out.String(); got != "hello\nworld\n" {
		t.Errorf("output = %q, want %q", got, "hello\nworld\n")
	}
}

func TestCmdFoldStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("ONE Two\nTHREE\n")
	if err := cmdFold(nil, in, &out); err != nil {
		t.Fatalf("cmdFold: %v", err)
	}
	if got := out.String(); got != "one two\nthree\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCmdVersion(t *testing.T) {
	var out bytes.Buffer
	cmdVersion(&out)
	if !strings.Contains(out.String(), "variant=") || !strings.Contains(out.String(), "table_size=0x") {
		t.Errorf("version output = %q", out.String())
	}
}
