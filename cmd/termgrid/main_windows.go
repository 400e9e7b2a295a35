//go:build windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "termgrid is not supported on Windows. It requires a Unix PTY.")
	os.Exit(1)
}
