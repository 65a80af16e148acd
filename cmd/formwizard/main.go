package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errNotSubmitted) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
