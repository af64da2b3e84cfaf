package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("listbox %s\n", ver)
			cmd.Printf("build: %s\n", version.Describe(ver))
		},
	}
}
