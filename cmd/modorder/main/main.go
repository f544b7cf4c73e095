package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/modorder/cmd/modorder"
	"github.com/arthur-debert/modorder/pkg/style"
)

func main() {
	rootCmd := modorder.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
