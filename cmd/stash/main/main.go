package main

import (
	"os"

	"github.com/arthur-debert/stash/cmd/stash"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := stash.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}
