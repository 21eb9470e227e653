package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newTimerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run countdown timers",
	}
	cmd.AddCommand(newTimerStartCmd())
	return cmd
}

func newTimerStartCmd() *cobra.Command {
	var dur time.Duration
	var eventID string

	cmd := &cobra.Command{
		Use:   "start <label>",
		Short: "Start a countdown (defaults to the focus block length)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("label is required")
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

			d := dur
			if d == 0 {
				prefs, err := svc.Preferences(ctx)
				if err != nil {
					return err
				}
				d = prefs.FocusDuration()
			}
			t, err := svc.StartTimer(ctx, args[0], d, eventID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconClock+" Started"), t.Label, ui.Muted.Render("ends "+t.EndTime.Local().Format("15:04:05")))
			return nil
		},
	}

	cmd.Flags().DurationVarP(&dur, "duration", "d", 0, "Length (e.g. 25m)")
	cmd.Flags().StringVar(&eventID, "event", "", "Link the timer to an event id")
	return cmd
}

func newTimersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timers",
		Short: "List running timers and clear finished ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			done, err := svc.FinishTimers(ctx)
			if err != nil {
				return err
			}
			for _, t := range done {
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Finished"), t.Label)
			}
			printTriggered(cmd, nil, svc.Overlay().DrainEffects())

			timers, err := svc.Timers(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Timers"))
			if len(timers) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none running)"))
				return nil
			}
			now := svc.Now()
			for _, t := range timers {
				fmt.Fprintf(out, "- %s %s %s\n", t.Label, ui.Key.Render(t.RemainingLabel(now)), ui.Muted.Render(fmt.Sprintf("%.0f%%", t.Progress(now)*100)))
			}
			return nil
		},
	}

	return cmd
}
