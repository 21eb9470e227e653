package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byten0kami/Neon-sub001/internal/ui"
)

func newFactsCmd() *cobra.Command {
	var all bool
	var category string

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "List what the assistant knows about you",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			kb, err := svc.Knowledge(ctx)
			if err != nil {
				return err
			}
			facts := kb.Active()
			switch {
			case category != "":
				facts = kb.ByCategory(category)
			case all:
				facts = kb.Facts()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBrain, "Knowledge"))
			if len(facts) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing yet)"))
				return nil
			}
			for _, f := range facts {
				line := fmt.Sprintf("- %s %s", ui.Key.Render("["+f.Category+"]"), f.Content)
				if !f.IsActive {
					line = ui.Dim.Render(line + " (inactive)")
				}
				fmt.Fprintln(out, line)
				if f.AINote != "" {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render(f.AINote))
				}
				fmt.Fprintf(out, "  %s\n", ui.Dim.Render(f.ID))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include inactive facts")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only this category")
	cmd.AddCommand(newFactsAddCmd(), newFactsDeactivateCmd())
	return cmd
}

func newFactsAddCmd() *cobra.Command {
	var category string
	var note string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Remember a fact",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("content is required")
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

			f, err := svc.AddFact(ctx, category, args[0], note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Remembered"), ui.Key.Render("["+f.Category+"]"), ui.Muted.Render(f.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "general", "Category")
	cmd.Flags().StringVar(&note, "note", "", "Assistant note")
	return cmd
}

func newFactsDeactivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate <fact_id>",
		Short: "Stop using a fact",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("fact_id is required")
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

			if err := svc.DeactivateFact(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Deactivated "+args[0]))
			return nil
		},
	}

	return cmd
}
