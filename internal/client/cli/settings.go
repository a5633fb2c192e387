package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophdiary/internal/models"
	"github.com/iudanet/gophdiary/internal/validation"
)

type settingsOptions struct {
	theme        string
	exportFormat string
	language     string
}

func (c *Cli) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSettingsShow()
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSettingsShow()
		},
	}

	opts := &settingsOptions{}
	set := &cobra.Command{
		Use:   "set",
		Short: "Change theme, export format or language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSettingsSet(cmd.Context(), opts, cmd.Flags().Changed)
		},
	}
	set.Flags().StringVar(&opts.theme, "theme", "", "light, dark or system")
	set.Flags().StringVar(&opts.exportFormat, "export-format", "", "text or pdf")
	set.Flags().StringVar(&opts.language, "language", "", "locale for dates, e.g. ko, en-US")

	cmd.AddCommand(show, set)
	return cmd
}

func (c *Cli) lockCommand() *cobra.Command {
	var change bool
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Protect the diary with a password",
		Long: `Lock turns the password lock on. When no password is set yet, or with
--new, it asks for a new password twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLock(cmd.Context(), change)
		},
	}
	cmd.Flags().BoolVar(&change, "new", false, "set a new password")
	return cmd
}

func (c *Cli) unlockCommand() *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Turn the password lock off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUnlock(cmd.Context(), remove)
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "also forget the password")
	return cmd
}

func (c *Cli) runSettingsShow() error {
	s := c.store.Settings()

	c.io.Printf("Theme:         %s\n", s.Theme)
	c.io.Printf("Language:      %s\n", s.Language)
	c.io.Printf("Export format: %s\n", s.ExportFormat)
	c.io.Printf("Password:      %s\n", yesNo(s.HasPassword()))
	c.io.Printf("Locked:        %s\n", yesNo(s.IsLocked))
	return nil
}

func (c *Cli) runSettingsSet(ctx context.Context, opts *settingsOptions, changed func(string) bool) error {
	var patch models.SettingsPatch

	if changed("theme") {
		theme := models.Theme(opts.theme)
		if !theme.Valid() {
			return fmt.Errorf("unknown theme: %s. Use: light, dark or system", opts.theme)
		}
		patch.Theme = &theme
	}
	if changed("export-format") {
		format := models.ExportFormat(opts.exportFormat)
		if !format.Valid() {
			return fmt.Errorf("unknown export format: %s. Use: text or pdf", opts.exportFormat)
		}
		patch.ExportFormat = &format
	}
	if changed("language") {
		if err := validation.ValidateLanguage(opts.language); err != nil {
			return err
		}
		patch.Language = &opts.language
	}

	if patch == (models.SettingsPatch{}) {
		return fmt.Errorf("nothing to change. Use --theme, --export-format or --language")
	}

	if _, err := c.store.UpdateSettings(ctx, patch); err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to update settings: %w", err)
	}

	c.io.Println("Settings updated.")
	return nil
}

func (c *Cli) runLock(ctx context.Context, change bool) error {
	var patch models.SettingsPatch

	if change || !c.store.Settings().HasPassword() {
		password, err := c.readNewPassword()
		if err != nil {
			return err
		}
		patch.Password = &password
	} else {
		locked := true
		patch.IsLocked = &locked
	}

	if _, err := c.store.UpdateSettings(ctx, patch); err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to lock diary: %w", err)
	}

	c.io.Println("Diary locked.")
	return nil
}

func (c *Cli) runUnlock(ctx context.Context, remove bool) error {
	var patch models.SettingsPatch
	if remove {
		empty := ""
		patch.Password = &empty
	} else {
		unlocked := false
		patch.IsLocked = &unlocked
	}

	if _, err := c.store.UpdateSettings(ctx, patch); err != nil {
		c.warnIfUnsaved(err)
		return fmt.Errorf("failed to unlock diary: %w", err)
	}

	if remove {
		c.io.Println("Diary unlocked, password removed.")
		return nil
	}
	c.io.Println("Diary unlocked.")
	return nil
}

// readNewPassword запрашивает новый пароль дважды
func (c *Cli) readNewPassword() (string, error) {
	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	repeat, err := c.io.ReadPassword("Repeat password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if repeat != password {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
