package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a summary of progress and unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.Refresh(ctx); err != nil {
				return err
			}
			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			rewards, err := svc.Rewards(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			who := "runner"
			if snap.HasProfile {
				who = snap.Profile.Label()
			}
			fmt.Fprintln(out, ui.Banner("NEON // "+who))
			fmt.Fprintln(out, ui.LabelValue("Theme", snap.Theme.Name))
			fmt.Fprintln(out, ui.LabelValue("Tasks done", snap.CompletedTasks))
			fmt.Fprintln(out, ui.LabelValue("Upcoming", len(snap.Upcoming)))
			fmt.Fprintln(out, ui.LabelValue("Timers", len(snap.Timers)))
			fmt.Fprintln(out, "")

			counts := map[quest.Phase]int{}
			for _, q := range snap.Quests {
				counts[q.Phase]++
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
			for _, p := range []quest.Phase{quest.PhaseAvailable, quest.PhaseTriggered, quest.PhaseCompleted, quest.PhaseDormant} {
				if counts[p] == 0 {
					continue
				}
				fmt.Fprintf(out, "- %s %d\n", ui.PhaseText(p), counts[p])
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Rewards"))
			if len(rewards) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet)"))
			}
			for _, r := range rewards {
				fmt.Fprintf(out, "- %s %s\n", r.ID, ui.Muted.Render(r.GrantedAt.Local().Format("2006-01-02")))
			}
			return nil
		},
	}

	return cmd
}
