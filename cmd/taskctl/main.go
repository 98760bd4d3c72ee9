package main

import (
	"errors"
	"fmt"
	"os"
)

var Version = "dev"

func main() {
	rootCmd, c := newRootCmd()
	err := rootCmd.Execute()
	c.close()

	if err != nil {
		// Session errors have already been printed by the notifier.
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
