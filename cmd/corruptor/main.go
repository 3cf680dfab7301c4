package main

import (
	"errors"
	"fmt"
	"os"

	cerrors "namecorruptor/internal/errors"
)

func main() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cerrors.FormatForUser(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}
