package main

import (
	"os"

	"github.com/teranos/sculpt/cmd/sculpt/commands"
	"github.com/teranos/sculpt/display"
	"github.com/teranos/sculpt/logger"
)

func main() {
	root := commands.NewRootCmd()
	err := root.Execute()
	logger.Cleanup()
	if err != nil {
		display.Error(os.Stderr, err)
		os.Exit(1)
	}
}
