//go:build tools
// +build tools

// Package tools pins mockgen in go.mod so `go generate ./contract` works on a fresh checkout.
package sentence_lab

import (
	_ "go.uber.org/mock/mockgen"
)
