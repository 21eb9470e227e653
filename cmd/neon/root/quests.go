package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List quests and their phase",
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
			qs, err := svc.Quests(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
			for _, q := range qs {
				fmt.Fprintf(out, "%s %-14s %-14s %s\n", ui.PhaseIcon(q.Phase), q.ID, ui.PhaseText(q.Phase), q.Title)
				fmt.Fprintf(out, "   %s\n", ui.Muted.Render(q.Description))
				if q.CompletedAt != nil {
					fmt.Fprintf(out, "   %s\n", ui.Muted.Render("completed "+q.CompletedAt.Local().Format("2006-01-02 15:04")))
				}
			}
			return nil
		},
	}

	return cmd
}

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Act on a single quest",
	}
	cmd.AddCommand(newQuestCompleteCmd())
	return cmd
}

func newQuestCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <quest_id>",
		Short: "Claim a triggered quest and its reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
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

			ok, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("%s %s is not triggered yet", ui.IconWarn, args[0])))
				return nil
			}
			def, _ := quest.Lookup(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconTrophy+" Completed"), def.Quest.Title, ui.Muted.Render("(reward "+def.RewardID+")"))
			if d, err := svc.ActiveTheme(ctx); err == nil {
				ui.Use(d)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(ui.IconPalette+" Theme now"), ui.Banner(d.Name))
			}
			return nil
		},
	}

	return cmd
}

func newFireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fire <event>",
		Short: "Send an app event to the quests (task_completed|timer_finished|event_scheduled|app_opened)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("event is required")
			}
			if _, ok := quest.ParseEvent(args[0]); !ok {
				return fmt.Errorf("unknown event: %s", args[0])
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

			ev, _ := quest.ParseEvent(args[0])
			triggered, err := svc.Fire(ctx, ev)
			if err != nil {
				return err
			}
			printTriggered(cmd, triggered, svc.Overlay().DrainEffects())
			return nil
		},
	}

	return cmd
}

func printTriggered(cmd *cobra.Command, triggered []string, effects []string) {
	out := cmd.OutOrStdout()
	for _, e := range effects {
		fmt.Fprintln(out, ui.Key.Render(ui.IconBolt+" "+e))
	}
	for _, id := range triggered {
		fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconSparkle+" Triggered"), id, ui.Muted.Render("(neon quest complete "+id+")"))
	}
}
