package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fittrack/pkg/client"
)

func (a *app) workoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workouts",
		Aliases: []string{"workout", "w"},
		Short:   "List, add, show and delete workouts",
	}
	cmd.AddCommand(a.workoutsListCmd(), a.workoutsAddCmd(), a.workoutsShowCmd(), a.workoutsDeleteCmd())
	return cmd
}

func (a *app) workoutsListCmd() *cobra.Command {
	var filter client.WorkoutFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your workouts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			workouts, err := c.ListWorkouts(cmd.Context(), filter)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if len(workouts) == 0 {
				fmt.Fprintln(out, "No workouts yet. Add one with `fitctl workouts add`.")
				return nil
			}
			tw := newTable(out, "id", "date", "type", "name", "minutes", "kcal", "exercises")
			for _, w := range workouts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%d\n",
					w.ID, w.Date.UTC().Format("2006-01-02"), w.Type, w.Name, w.Duration, orDash(w.CaloriesBurned), len(w.Exercises))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter.Type, "type", "t", "", "Only this workout type")
	cmd.Flags().StringVar(&filter.From, "from", "", "From date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.To, "to", "", "To date, YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVarP(&filter.Search, "search", "q", "", "Only workouts whose name contains this")
	return cmd
}

// parseExercise reads "name[:sets[:reps[:weight]]]", e.g. "Squats:3:12:100".
func parseExercise(raw string) (client.Exercise, error) {
	parts := strings.Split(raw, ":")
	ex := client.Exercise{Name: strings.TrimSpace(parts[0])}
	if ex.Name == "" {
		return ex, fmt.Errorf("exercise %q has no name", raw)
	}
	if len(parts) > 4 {
		return ex, fmt.Errorf("exercise %q: expected name[:sets[:reps[:weight]]]", raw)
	}
	if len(parts) > 1 && parts[1] != "" {
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return ex, fmt.Errorf("exercise %q: sets must be a number", raw)
		}
		ex.Sets = &v
	}
	if len(parts) > 2 && parts[2] != "" {
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return ex, fmt.Errorf("exercise %q: reps must be a number", raw)
		}
		ex.Reps = &v
	}
	if len(parts) > 3 && parts[3] != "" {
		v, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return ex, fmt.Errorf("exercise %q: weight must be a number", raw)
		}
		ex.Weight = &v
	}
	return ex, nil
}

func (a *app) workoutsAddCmd() *cobra.Command {
	var (
		in        client.WorkoutInput
		calories  int
		notes     string
		exercises []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a workout",
		Example: `  fitctl workouts add "Push day" --type strength --duration 45 \
    --exercise "Bench Press:3:10:70" --exercise "Dips:3:12"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}

			in.Name = args[0]
			if in.Date == "" {
				in.Date = time.Now().Format("2006-01-02")
			}
			if cmd.Flags().Changed("calories") {
				in.CaloriesBurned = &calories
			}
			if notes != "" {
				in.Notes = &notes
			}
			for _, raw := range exercises {
				ex, err := parseExercise(raw)
				if err != nil {
					return err
				}
				in.Exercises = append(in.Exercises, ex)
			}

			w, err := c.CreateWorkout(cmd.Context(), in)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s logged %s (%s)\n", green("✓"), bold(w.Name), w.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Type, "type", "t", "strength", "strength|cardio|flexibility|sports|other")
	cmd.Flags().IntVarP(&in.Duration, "duration", "d", 0, "Duration in minutes")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calories burned")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringArrayVarP(&exercises, "exercise", "x", nil, "Exercise as name[:sets[:reps[:weight]]], repeatable")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func (a *app) workoutsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one workout with its exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			w, err := c.GetWorkout(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", bold(w.Name), cyan(w.Date.UTC().Format("Mon 2006-01-02")))
			fmt.Fprintf(out, "Type: %s  Duration: %d min  Calories: %s\n", w.Type, w.Duration, orDash(w.CaloriesBurned))
			if w.Notes != nil {
				fmt.Fprintf(out, "Notes: %s\n", *w.Notes)
			}
			if len(w.Exercises) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			tw := newTable(out, "#", "exercise", "sets", "reps", "weight", "duration", "distance")
			for i, e := range w.Exercises {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					i+1, e.Name, orDash(e.Sets), orDash(e.Reps), floatOrDash(e.Weight), floatOrDash(e.Duration), floatOrDash(e.Distance))
			}
			return tw.Flush()
		},
	}
}

func (a *app) workoutsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a workout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			if err := c.DeleteWorkout(cmd.Context(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s workout deleted\n", green("✓"))
			return nil
		},
	}
}
