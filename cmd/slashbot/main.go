package main

import (
	"os"

	"slashbot/cmd/slashbot/commands"

	"github.com/charmbracelet/log"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		log.Error("slashbot exited", "err", err)
		os.Exit(1)
	}
}
