package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/translint/translint/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()

	err := cmd.Execute()
	if err != nil {
		if !errors.Is(err, cli.ErrFindingsReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
