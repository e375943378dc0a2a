package main

import (
	"fmt"
	"os"

	"ideupdater/internal/debug"
)

func main() {
	err := newRootCmd().Execute()
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
