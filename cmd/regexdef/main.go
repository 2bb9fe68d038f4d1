package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// failures already reported their status line
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "regexdef:", err)
		}
		os.Exit(1)
	}
}
