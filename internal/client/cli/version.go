package cli

import "github.com/spf13/cobra"

func (c *Cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStore: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			c.io.Printf("Diary\n")
			c.io.Printf("Version:    %s\n", c.build.Version)
			c.io.Printf("Build Date: %s\n", c.build.BuildDate)
			c.io.Printf("Git Commit: %s\n", c.build.GitCommit)
		},
	}
}
