package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iudanet/gophdiary/internal/diary"
	"github.com/iudanet/gophdiary/internal/models"
)

func (c *Cli) exportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries as plain text",
		Long: `Export writes every entry, in the order they were written, as plain text
with dates localized for the configured language. By default the file is
named diary_export_<date>.txt in the current directory; use --out - to
print to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout`)
	return cmd
}

func (c *Cli) runExport(out string) error {
	text := c.store.ExportEntries()

	if out == "-" {
		_, err := c.io.Write([]byte(text))
		return err
	}

	if out == "" {
		out = diary.ExportFileName(c.now().In(c.store.Location()))
	}

	if err := os.WriteFile(out, []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	n := len(c.store.Entries())
	c.io.Printf("Exported %d entr%s to %s (%s)\n", n, plural(n, "y", "ies"), out, humanize.Bytes(uint64(len(text))))
	if c.store.Settings().ExportFormat == models.ExportFormatPDF {
		c.io.Println("Note: PDF export is not available here, the file is plain text.")
	}
	return nil
}
