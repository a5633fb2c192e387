package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophdiary/internal/models"
	"github.com/iudanet/gophdiary/internal/photo"
	"github.com/iudanet/gophdiary/internal/validation"
)

// entryOptions поля записи из флагов add/edit
type entryOptions struct {
	title       string
	content     string
	date        string
	mood        string
	weather     string
	location    string
	photos      []string
	embed       bool
	clearPhotos bool
}

func bindEntryFlags(cmd *cobra.Command, opts *entryOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.title, "title", "t", "", "entry title")
	f.StringVarP(&opts.content, "content", "c", "", `entry text, "-" reads it from stdin`)
	f.StringVarP(&opts.date, "date", "d", "", "entry date, YYYY-MM-DD or RFC 3339 (default now)")
	f.StringVar(&opts.mood, "mood", "", "mood: happy, sad, neutral, excited, angry or any word")
	f.StringVar(&opts.weather, "weather", "", "weather")
	f.StringVar(&opts.location, "location", "", "location")
	f.StringArrayVarP(&opts.photos, "photo", "p", nil, "photo file or URI, can be repeated")
	f.BoolVar(&opts.embed, "embed", false, "store photo files inline as data URIs")
}

func (c *Cli) addCommand() *cobra.Command {
	opts := &entryOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a new entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context(), opts)
		},
	}
	bindEntryFlags(cmd, opts)
	return cmd
}

func (c *Cli) editCommand() *cobra.Command {
	opts := &entryOptions{}
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0], opts, cmd.Flags().Changed)
		},
	}
	bindEntryFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.clearPhotos, "clear-photos", false, "remove all photos before adding new ones")
	return cmd
}

func (c *Cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(args[0])
		},
	}
}

func (c *Cli) deleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDelete(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, opts *entryOptions) error {
	title := opts.title
	if title == "" {
		input, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		title = input
	}
	if err := validation.ValidateTitle(title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	content, err := c.readContent(opts.content)
	if err != nil {
		return err
	}

	date := opts.date
	if date == "" {
		date = c.now().UTC().Format(isoMillis)
	} else if err := validation.ValidateDate(date); err != nil {
		return err
	}

	photos, err := photoRefs(opts.photos, opts.embed)
	if err != nil {
		return err
	}

	entry, err := c.store.Add(ctx, models.EntryDraft{
		Title:    strings.TrimSpace(title),
		Content:  strings.TrimSpace(content),
		Date:     date,
		Mood:     models.Mood(opts.mood),
		Weather:  opts.weather,
		Location: opts.location,
		Photos:   photos,
	})
	if err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to add entry: %w", err)
	}

	c.io.Printf("Entry added: %s\n", entry.ID)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, id string, opts *entryOptions, changed func(string) bool) error {
	entry, err := c.store.Get(id)
	if err != nil {
		return err
	}

	if changed("title") {
		if err := validation.ValidateTitle(opts.title); err != nil {
			return fmt.Errorf("invalid title: %w", err)
		}
		entry.Title = strings.TrimSpace(opts.title)
	}
	if changed("content") {
		content, err := c.readContent(opts.content)
		if err != nil {
			return err
		}
		entry.Content = strings.TrimSpace(content)
	}
	if changed("date") {
		if err := validation.ValidateDate(opts.date); err != nil {
			return err
		}
		entry.Date = opts.date
	}
	if changed("mood") {
		entry.Mood = models.Mood(opts.mood)
	}
	if changed("weather") {
		entry.Weather = opts.weather
	}
	if changed("location") {
		entry.Location = opts.location
	}
	if opts.clearPhotos {
		entry.Photos = []string{}
	}
	if len(opts.photos) > 0 {
		photos, err := photoRefs(opts.photos, opts.embed)
		if err != nil {
			return err
		}
		entry.Photos = append(entry.Photos, photos...)
	}

	if _, err := c.store.Update(ctx, entry); err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to update entry: %w", err)
	}

	c.io.Printf("Entry updated: %s\n", entry.ID)
	return nil
}

func (c *Cli) runShow(id string) error {
	entry, err := c.store.Get(id)
	if err != nil {
		return err
	}
	c.printEntry(entry)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	entry, err := c.store.Get(id)
	if err != nil {
		return err
	}

	if err := c.confirm(yes, fmt.Sprintf("Delete %q?", entry.Title)); err != nil {
		return err
	}

	if err := c.store.Remove(ctx, id); err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	c.io.Printf("Entry deleted: %s\n", id)
	return nil
}

// readContent читает текст записи из stdin, если передан "-"
func (c *Cli) readContent(content string) (string, error) {
	if content != "-" {
		return content, nil
	}
	text, err := c.io.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read content from stdin: %w", err)
	}
	return text, nil
}

func photoRefs(paths []string, embed bool) ([]string, error) {
	refs := make([]string, 0, len(paths))
	for _, p := range paths {
		ref, err := photo.Ref(p, embed)
		if err != nil {
			return nil, fmt.Errorf("failed to attach photo %s: %w", p, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
