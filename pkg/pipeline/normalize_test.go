// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lf only untouched", "a\nb\n", "a\nb\n"},
		{"crlf converted", "a\r\nb\r\n", "a\nb\n"},
		{"bare cr converted", "a\rb\r", "a\nb\n"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"no trailing newline", "a\r\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeLineEndings([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLineEndings_NoCRReturnsInput(t *testing.T) {
	in := []byte("plain\ntext\n")
	got := normalizeLineEndings(in)
	if &got[0] != &in[0] {
		t.Error("expected input slice to be returned unchanged when no CR present")
	}
}
