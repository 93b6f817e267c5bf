// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
)

var (
	crlf = []byte("\r\n")
	cr   = []byte("\r")
	lf   = []byte("\n")
)

// normalizeLineEndings rewrites every CRLF pair and every lone CR to LF.
// Output content never contains a carriage return; normalization happens
// before hashing so manifests are stable across producing platforms.
func normalizeLineEndings(b []byte) []byte {
	if !bytes.Contains(b, cr) {
		return b
	}
	b = bytes.ReplaceAll(b, crlf, lf)
	return bytes.ReplaceAll(b, cr, lf)
}
