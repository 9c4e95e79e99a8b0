package main

import (
	"fmt"
	"os"

	"github.com/Simplici0/venueprofit/cmd/venuectl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
