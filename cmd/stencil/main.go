// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/mesh-intelligence/stencil/internal/cli"
)

func main() {
	cli.Execute()
}
