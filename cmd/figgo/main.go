package main

import (
	"fmt"
	"os"

	"github.com/figgo/figgo/cmd/figgo/commands"
	"github.com/figgo/figgo/pkg/ui"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.NewTerminalRenderer().RenderError(err))
		os.Exit(1)
	}
}
