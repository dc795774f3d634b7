package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) summaryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Activity and goal summary for the last days",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.authed()
			if err != nil {
				return err
			}
			s, err := c.Summary(cmd.Context(), days)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s last %d days\n\n", bold("Activity"), s.Days)
			fmt.Fprintf(out, "  Workouts:        %d on %d days\n", s.TotalWorkouts, s.WorkoutDays)
			fmt.Fprintf(out, "  Active minutes:  %d (avg %d per workout day)\n", s.ActiveMinutes, s.AverageMinutes)
			fmt.Fprintf(out, "  Calories burned: %d\n", s.CaloriesBurned)
			if len(s.ByType) > 0 {
				parts := make([]string, 0, len(s.ByType))
				for _, t := range s.ByType {
					parts = append(parts, fmt.Sprintf("%s %d", t.Type, t.Count))
				}
				fmt.Fprintf(out, "  By type:         %s\n", strings.Join(parts, ", "))
			}

			var peak int64
			for _, d := range s.Daily {
				if d.Minutes > peak {
					peak = d.Minutes
				}
			}
			fmt.Fprintln(out)
			for _, d := range s.Daily {
				bar := ""
				if peak > 0 {
					bar = strings.Repeat("▇", int(d.Minutes*30/peak))
				}
				fmt.Fprintf(out, "  %s %s %s\n", d.Date, cyan(fmt.Sprintf("%4d min", d.Minutes)), green(bar))
			}

			fmt.Fprintf(out, "\n%s %d of %d completed, average progress %d%%\n",
				bold("Goals"), s.Goals.Completed, s.Goals.Total, s.Goals.AverageProgressPct)
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 7, "Window size in days (1-365)")
	return cmd
}
