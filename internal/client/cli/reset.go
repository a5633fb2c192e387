package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) resetCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all entries and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReset(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) runReset(ctx context.Context, yes bool) error {
	n := len(c.store.Entries())
	if err := c.confirm(yes, fmt.Sprintf("Delete all %d entr%s and settings?", n, plural(n, "y", "ies"))); err != nil {
		return err
	}

	if err := c.store.Reset(ctx); err != nil {
		return err
	}

	c.io.Println("All data deleted.")
	return nil
}
