package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/vargen/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
