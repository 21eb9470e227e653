package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/knowledge"
	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile and preferences",
	}
	cmd.AddCommand(newProfileShowCmd(), newProfileSetCmd(), newProfilePrefsCmd(), newProfileExportCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show profile and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, ok, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			prefs, err := svc.Preferences(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Profile"))
			if !ok {
				fmt.Fprintln(out, ui.Muted.Render("(no profile yet: neon profile set --handle you --onboarded)"))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Name", p.Label()))
				fmt.Fprintln(out, ui.LabelValue("Handle", "@"+p.Handle))
				if p.Pronouns != "" {
					fmt.Fprintln(out, ui.LabelValue("Pronouns", p.Pronouns))
				}
				fmt.Fprintln(out, ui.LabelValue("Onboarded", p.Onboarded))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Preferences"))
			fmt.Fprintln(out, ui.LabelValue("Workday", fmt.Sprintf("%02d:00-%02d:00", prefs.WorkdayStartHour, prefs.WorkdayEndHour)))
			fmt.Fprintln(out, ui.LabelValue("Focus/Break", fmt.Sprintf("%dm / %dm", prefs.FocusMinutes, prefs.BreakMinutes)))
			fmt.Fprintln(out, ui.LabelValue("Reminder lead", fmt.Sprintf("%dm", prefs.ReminderLeadMinutes)))
			fmt.Fprintln(out, ui.LabelValue("24h clock", prefs.Use24HourClock))
			fmt.Fprintln(out, ui.LabelValue("Preferred theme", prefs.PreferredTheme))
			return nil
		},
	}

	return cmd
}

func newProfileSetCmd() *cobra.Command {
	var (
		handle    string
		name      string
		pronouns  string
		avatar    string
		onboarded bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, _, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("handle") {
				p.Handle = handle
			}
			if f.Changed("name") {
				p.DisplayName = name
			}
			if f.Changed("pronouns") {
				p.Pronouns = pronouns
			}
			if f.Changed("avatar") {
				p.Avatar = avatar
			}
			if f.Changed("onboarded") {
				p.Onboarded = onboarded
			}

			promoted, err := svc.SaveProfile(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Saved"), p.Label())
			for _, id := range promoted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconQuest+" Available"), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "Handle (without @)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&pronouns, "pronouns", "", "Pronouns")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar (emoji or URL)")
	cmd.Flags().BoolVar(&onboarded, "onboarded", false, "Mark onboarding as finished")
	return cmd
}

func newProfilePrefsCmd() *cobra.Command {
	var (
		start, end, focus, brk, lead int
		clock24                      bool
		preferred                    string
	)

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Update schedule preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Preferences(ctx)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("start") {
				p.WorkdayStartHour = start
			}
			if f.Changed("end") {
				p.WorkdayEndHour = end
			}
			if f.Changed("focus") {
				p.FocusMinutes = focus
			}
			if f.Changed("break") {
				p.BreakMinutes = brk
			}
			if f.Changed("lead") {
				p.ReminderLeadMinutes = lead
			}
			if f.Changed("24h") {
				p.Use24HourClock = clock24
			}
			if f.Changed("theme") {
				id, ok := theme.ParseID(preferred)
				if !ok {
					return fmt.Errorf("unknown theme: %s", preferred)
				}
				p.PreferredTheme = id
			}
			if err := svc.SavePreferences(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Preferences saved"))
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 9, "Workday start hour")
	cmd.Flags().IntVar(&end, "end", 18, "Workday end hour")
	cmd.Flags().IntVar(&focus, "focus", 25, "Focus block minutes")
	cmd.Flags().IntVar(&brk, "break", 5, "Break minutes")
	cmd.Flags().IntVar(&lead, "lead", 10, "Reminder lead minutes")
	cmd.Flags().BoolVar(&clock24, "24h", true, "Use a 24-hour clock")
	cmd.Flags().StringVar(&preferred, "theme", "", "Preferred theme")
	return cmd
}

type exportDoc struct {
	Profile     *schedule.UserProfile        `json:"profile,omitempty"`
	Preferences schedule.SchedulePreferences `json:"preferences"`
	Events      []schedule.ScheduledEvent    `json:"events"`
	Timers      []schedule.ActiveTimer       `json:"timers"`
	Facts       []knowledge.Fact             `json:"facts"`
	Rewards     []storage.Reward             `json:"rewards"`
	ActiveTheme theme.ID                     `json:"activeTheme"`
}

func newProfileExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print everything Neon stores as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var doc exportDoc
			if p, ok, err := svc.Profile(ctx); err != nil {
				return err
			} else if ok {
				doc.Profile = &p
			}
			if doc.Preferences, err = svc.Preferences(ctx); err != nil {
				return err
			}
			if doc.Events, err = svc.Events(ctx); err != nil {
				return err
			}
			if doc.Timers, err = svc.Timers(ctx); err != nil {
				return err
			}
			if doc.Facts, err = svc.Facts(ctx, false); err != nil {
				return err
			}
			if doc.Rewards, err = svc.Rewards(ctx); err != nil {
				return err
			}
			d, err := svc.ActiveTheme(ctx)
			if err != nil {
				return err
			}
			doc.ActiveTheme = d.ID

			b, err := schedule.EncodeIndent(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	return cmd
}
