package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fittrack/pkg/client"
)

func (a *app) goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goals",
		Aliases: []string{"goal", "g"},
		Short:   "Track fitness goals",
	}
	cmd.AddCommand(a.goalsListCmd(), a.goalsAddCmd(), a.goalsProgressCmd(), a.goalsCompleteCmd(), a.goalsDeleteCmd())
	return cmd
}

func (a *app) goalsListCmd() *cobra.Command {
	var filter client.GoalFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your goals by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			goals, err := c.ListGoals(cmd.Context(), filter)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if len(goals) == 0 {
				fmt.Fprintln(out, "No goals yet. Add one with `fitctl goals add`.")
				return nil
			}
			tw := newTable(out, "id", "deadline", "name", "progress", "", "status")
			for _, g := range goals {
				status := "in progress"
				if g.Completed {
					status = "done"
				}
				pct := client.ProgressPercent(g)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g/%g %s\t%3d%% %s\t%s\n",
					g.ID, g.Deadline.UTC().Format("2006-01-02"), g.Name, g.Progress, g.Target, g.Unit, pct, progressBar(pct), status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter.Status, "status", "s", "", "completed|in-progress")
	cmd.Flags().StringVarP(&filter.Type, "type", "t", "", "Only this goal type")
	cmd.Flags().StringVarP(&filter.Search, "search", "q", "", "Only goals whose name contains this")
	return cmd
}

func (a *app) goalsAddCmd() *cobra.Command {
	var in client.GoalInput

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a goal",
		Example: `  fitctl goals add "Lose 5kg" --type weight --target 5 --unit kg --deadline 2024-12-31`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			in.Name = args[0]
			g, err := c.CreateGoal(cmd.Context(), in)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s goal %s created (%s)\n", green("✓"), bold(g.Name), g.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Type, "type", "t", "custom", "weight|workout|distance|strength|custom")
	cmd.Flags().Float64Var(&in.Target, "target", 0, "Target value, greater than zero")
	cmd.Flags().StringVarP(&in.Unit, "unit", "u", "", "Unit, e.g. kg or km")
	cmd.Flags().StringVar(&in.Deadline, "deadline", "", "Deadline, YYYY-MM-DD")
	for _, f := range []string{"target", "unit", "deadline"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) goalsProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <value>",
		Short: "Record the current progress of a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("progress must be a number: %q", args[1])
			}
			c, err := a.authed()
			if err != nil {
				return err
			}
			g, err := c.UpdateGoal(cmd.Context(), args[0], client.GoalPatch{Progress: &value})
			if err != nil {
				return explain(err)
			}
			pct := client.ProgressPercent(*g)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %3d%% %s\n", bold(g.Name), progressBar(pct), pct, cyan(fmt.Sprintf("%g/%g %s", g.Progress, g.Target, g.Unit)))
			return nil
		},
	}
}

func (a *app) goalsCompleteCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			completed := !undo
			g, err := c.UpdateGoal(cmd.Context(), args[0], client.GoalPatch{Completed: &completed})
			if err != nil {
				return explain(err)
			}
			if g.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s completed\n", green("✓"), bold(g.Name))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s reopened\n", bold(g.Name))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the goal as in progress again")
	return cmd
}

func (a *app) goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			if err := c.DeleteGoal(cmd.Context(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s goal deleted\n", green("✓"))
			return nil
		},
	}
}
