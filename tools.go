//go:build tools
// +build tools

// Package tools pins code generators used through `go generate` so go.mod tracks them.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
