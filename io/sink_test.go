package argio

import (
	"bytes"
	"testing"
)

func TestSinkDefaultsToProcessStdio(t *testing.T) {
	s := New()
	if s.Out() == nil || s.Err() == nil {
		t.Fatal("Expected default writers to be set")
	}
}

func TestSinkRedirection(t *testing.T) {
	var out, errBuf bytes.Buffer
	s := New().WithOut(&out).WithErr(&errBuf)

	s.Printf("hello %s\n", "world")
	s.Errorf("oops: %d\n", 42)

	if out.String() != "hello world\n" {
		t.Errorf("Unexpected stdout: %q", out.String())
	}
	if errBuf.String() != "oops: 42\n" {
		t.Errorf("Unexpected stderr: %q", errBuf.String())
	}
}

func TestCapture(t *testing.T) {
	s, out, errBuf := Capture()
	s.Printf("a")
	s.Errorf("b")
	if out.String() != "a" || errBuf.String() != "b" {
		t.Errorf("Capture buffers mismatch: out=%q err=%q", out.String(), errBuf.String())
	}
}
