package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/engine"
	"github.com/byten0kami/Neon-sub001/internal/theme"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseWhen reads a local date-time. A bare "15:04" means today.
func parseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("15:04", s, time.Local); err == nil {
		y, m, d := now.In(time.Local).Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (use 15:04 or 2006-01-02 15:04)", s)
}

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Schedule or remove events",
	}
	cmd.AddCommand(newEventAddCmd(), newEventRmCmd())
	return cmd
}

func newEventAddCmd() *cobra.Command {
	var (
		start    string
		end      string
		dur      time.Duration
		priority string
		notes    string
		location string
		allDay   bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Schedule an event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			now := svc.Now()
			from := now
			if start != "" {
				if from, err = parseWhen(start, now); err != nil {
					return err
				}
			}
			to := from.Add(dur)
			if end != "" {
				if to, err = parseWhen(end, now); err != nil {
					return err
				}
			}

			e, promoted, err := svc.AddEvent(ctx, engine.AddEventInput{
				Title:    args[0],
				Notes:    notes,
				Location: location,
				Start:    from,
				End:      to,
				Priority: theme.ParsePriority(priority),
				AllDay:   allDay,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconPlus+" Scheduled"), ui.PriorityTag(e.Priority), e.Title, ui.Muted.Render(e.TimeRangeLabel()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id "+e.ID))
			for _, id := range promoted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconQuest+" Available"), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start (15:04 or 2006-01-02 15:04, default now)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End (same formats as --start)")
	cmd.Flags().DurationVarP(&dur, "duration", "d", time.Hour, "Length when --end is not given")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")
	return cmd
}

func newEventRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <event_id>",
		Short: "Remove an event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("event_id is required")
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

			if err := svc.DeleteEvent(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed "+args[0]))
			return nil
		},
	}

	return cmd
}

func newEventsCmd() *cobra.Command {
	var all bool
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.UpcomingEvents(ctx, limit)
			if all {
				events, err = svc.Events(ctx)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconEvent, "Events"))
			if len(events) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing scheduled)"))
				return nil
			}
			now := svc.Now()
			for _, e := range events {
				mark := "  "
				if e.IsOngoing(now) {
					mark = ui.IconBolt
				}
				fmt.Fprintf(out, "%s%s %s %s %s\n", mark, ui.PriorityTag(e.Priority), e.StartTime.Local().Format("Mon 02 Jan"), e.TimeRangeLabel(), e.Title)
				if e.Location != "" {
					fmt.Fprintf(out, "   %s\n", ui.Muted.Render("@ "+e.Location))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include past events")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Max upcoming events")
	return cmd
}
