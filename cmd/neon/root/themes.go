package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/theme"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List themes and what unlocks them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses, err := svc.ThemeStatuses(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPalette, "Themes"))
			for _, st := range statuses {
				mark := "  "
				if st.Active {
					mark = ui.Good.Render("▸ ")
				}
				line := fmt.Sprintf("%s%-12s %s", mark, st.Theme.ID, st.Theme.Name)
				switch {
				case st.Locked:
					line += " " + ui.Muted.Render(fmt.Sprintf("%s needs %s", ui.IconLock, st.RewardID))
				case st.RewardID != "":
					line += " " + ui.Good.Render("unlocked")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or switch the active theme",
	}
	cmd.AddCommand(newThemeShowCmd(), newThemeSetCmd())
	return cmd
}

func newThemeShowCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the palette and priority tags of a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := svc.ActiveTheme(ctx)
			if err != nil {
				return err
			}
			if id != "" {
				parsed, ok := theme.ParseID(id)
				if !ok {
					return fmt.Errorf("unknown theme: %s", id)
				}
				d = theme.For(parsed)
				ui.Use(d)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Banner(d.Name))
			fmt.Fprintln(out, ui.Muted.Render(d.Description))
			fmt.Fprintln(out, ui.Dim.Render(d.Ambient.Divider(40)))
			fmt.Fprintln(out, ui.LabelValue("Accent", d.Accent))
			fmt.Fprintln(out, ui.LabelValue("Secondary", d.Secondary))
			fmt.Fprintln(out, ui.LabelValue("Background", d.Background))
			fmt.Fprintln(out, ui.LabelValue("Fonts", fmt.Sprintf("%s / %s / %s", d.Fonts.Title, d.Fonts.Body, d.Fonts.Mono)))
			for _, p := range theme.Priorities() {
				fmt.Fprintf(out, "- %-8s %s\n", p, d.Tag(p).Render())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Theme to preview instead of the active one")
	return cmd
}

func newThemeSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <theme_id>",
		Short: "Switch the active theme",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("theme_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, ok := theme.ParseID(args[0])
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(fmt.Sprintf("%s unknown theme %q, using %s", ui.IconWarn, args[0], theme.DefaultID)))
				id = theme.DefaultID
			}
			d, err := svc.SetTheme(ctx, id)
			if err != nil {
				return err
			}
			ui.Use(d)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPalette+" Theme"), ui.Banner(d.Name))
			return nil
		},
	}

	return cmd
}
