package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Log a completed task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Done"), ui.Muted.Render(fmt.Sprintf("(%d tasks total)", res.CompletedTasks)))
			printTriggered(cmd, res.Triggered, svc.Overlay().DrainEffects())
			for _, id := range res.Available {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconQuest+" Available"), id)
			}
			return nil
		},
	}

	return cmd
}
