package cmd

import (
	"github.com/spf13/cobra"
)

// Version and GitCommit are set at link time with -ldflags "-X".
var (
	Version   = "0.0.0"
	GitCommit = "unknown"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version of this CLI",
		Long:  `Display version of this CLI`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("dcapquote v%s (commit %s)\n", Version, GitCommit)
		},
	}
}
