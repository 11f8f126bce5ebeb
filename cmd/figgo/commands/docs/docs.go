package docs

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand creates the docs command. The topic content itself is
// served by the help command; this is a discoverable alias for
// 'figgo help topics'.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "docs [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil {
				return fmt.Errorf("help command not found")
			}

			helpArgs := []string{"topics"}
			if len(args) > 0 {
				helpArgs = args
			}

			if helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, helpArgs)
			}
			if helpCmd.Run != nil {
				helpCmd.Run(helpCmd, helpArgs)
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}
