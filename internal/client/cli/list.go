package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophdiary/internal/diary"
	"github.com/iudanet/gophdiary/internal/models"
)

func (c *Cli) listCommand() *cobra.Command {
	var (
		search string
		sort   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(search, models.SortMode(sort))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text to look for in title and content")
	cmd.Flags().StringVar(&sort, "sort", string(models.SortByDate), "sort order: date or relevance")
	return cmd
}

func (c *Cli) calendarCommand() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show how many entries each day of a month has",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalendar(month)
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM (default current month)")
	return cmd
}

func (c *Cli) dayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "day YYYY-MM-DD",
		Short: "List the entries of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDay(args[0])
		},
	}
}

func (c *Cli) runList(search string, sort models.SortMode) error {
	if !sort.Valid() {
		return fmt.Errorf("unknown sort order: %s. Use: date or relevance", sort)
	}

	c.store.SetViewMode(models.ViewList)
	c.store.SetSearchQuery(search)
	c.store.SetSortMode(sort)

	entries := c.store.FilteredEntries()
	if len(entries) == 0 {
		if search != "" {
			c.io.Printf("No entries match %q.\n", search)
			return nil
		}
		c.io.Println("No entries yet.")
		c.io.Println()
		c.io.Println("Use 'diary add' to write your first entry.")
		return nil
	}

	c.io.Printf("Found %d entr%s:\n", len(entries), plural(len(entries), "y", "ies"))
	c.io.Println()
	for _, e := range entries {
		c.printEntryLine(e)
	}
	return nil
}

func (c *Cli) runCalendar(month string) error {
	loc := c.store.Location()

	var start time.Time
	if month == "" {
		now := c.now().In(loc)
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		t, err := time.ParseInLocation("2006-01", month, loc)
		if err != nil {
			return fmt.Errorf("invalid month %q (use YYYY-MM): %w", month, err)
		}
		start = t
	}
	end := start.AddDate(0, 1, 0)

	c.store.SetViewMode(models.ViewCalendar)

	c.io.Printf("%s\n\n", start.Format("January 2006"))

	count := 0
	for _, d := range diary.Days(c.store.Entries(), loc) {
		if d.Day.Before(start) || !d.Day.Before(end) {
			continue
		}
		count++
		c.io.Printf("%s  %d entr%s  %s\n", d.Day.Format("2006-01-02 Mon"), d.Count, plural(d.Count, "y", "ies"), d.Preview)
	}

	if count == 0 {
		c.io.Println("No entries this month.")
	}
	return nil
}

func (c *Cli) runDay(day string) error {
	loc := c.store.Location()
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return fmt.Errorf("invalid day %q (use YYYY-MM-DD): %w", day, err)
	}

	entries := diary.EntriesOn(c.store.Entries(), t, loc)
	if len(entries) == 0 {
		c.io.Printf("No entries on %s.\n", day)
		return nil
	}

	for _, e := range entries {
		c.printEntryLine(e)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
