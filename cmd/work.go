package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/earnings"
	"github.com/yevmiyelerim/yev/internal/ledger"
	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

var (
	workJob      string
	workRate     string
	workHours    string
	workOvertime bool
	workOTHours  string
	workOTRate   string
	workHalfDay  bool
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Record or remove worked days",
}

var workAddCmd = &cobra.Command{
	Use:   "add [date]",
	Short: "Record a work day (default: today)",
	Long: `Record a work day. The date is YYYY-MM-DD, "today" or "yesterday".
Saving again for the same date replaces the earlier entry.
When --job names a catalog job and --rate is omitted, the job's daily rate is used.
Amounts accept a dot or a comma as the decimal mark ("187.5", "187,5");
a comma before exactly three digits groups thousands ("1,500").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkAdd,
}

var workDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Remove the work entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkDelete,
}

func init() {
	workAddCmd.Flags().StringVar(&workJob, "job", "", "Job name from the catalog")
	workAddCmd.Flags().StringVar(&workRate, "rate", "", "Daily rate (default: the job's rate)")
	workAddCmd.Flags().StringVar(&workHours, "hours", "8", "Hours worked")
	workAddCmd.Flags().BoolVar(&workOvertime, "overtime", false, "The day included overtime")
	workAddCmd.Flags().StringVar(&workOTHours, "ot-hours", "0", "Overtime hours")
	workAddCmd.Flags().StringVar(&workOTRate, "ot-rate", "1.5", "Overtime multiplier (1.5 or 2)")
	workAddCmd.Flags().BoolVar(&workHalfDay, "half-day", false, "Half day: halves the day's total")
	workCmd.AddCommand(workAddCmd)
	workCmd.AddCommand(workDeleteCmd)
}

func runWorkAdd(cmd *cobra.Command, args []string) error {
	day := ""
	if len(args) == 1 {
		day = args[0]
	}
	key, err := resolveDay(day, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	entry := buildWorkEntry(a.sess.Jobs())
	if workJob != "" {
		if _, ok := ledger.FindJobByName(a.sess.Jobs(), workJob); !ok {
			fmt.Fprintf(os.Stderr, "Warning: job %q is not in the catalog\n", workJob)
		}
	}

	saved, err := a.sess.SaveWork(cmd.Context(), key, entry)
	if err != nil {
		a.fatal(2, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved work for %s", key)
	if saved.JobName != "" {
		fmt.Fprintf(out, " (%s)", saved.JobName)
	}
	fmt.Fprintf(out, ": %s\n", formatAmount(saved.TotalEarnings, a.cfg.Currency))
	if summary.DayState(a.sess.Store(), key) == model.StatePaid {
		fmt.Fprintln(out, "Note: this day also has a payment and shows as paid in the calendar.")
	}
	return nil
}

// buildWorkEntry assembles an entry from the add flags. Numbers that do not
// parse count as zero.
func buildWorkEntry(jobs []model.Job) model.WorkEntry {
	rate := earnings.ParseAmount(workRate)
	if workRate == "" && workJob != "" {
		if j, ok := ledger.FindJobByName(jobs, workJob); ok {
			rate = j.DailyRate
		}
	}
	return model.WorkEntry{
		JobName:            workJob,
		BaseHours:          earnings.ParseAmount(workHours),
		IsOvertime:         workOvertime,
		OvertimeHours:      earnings.ParseAmount(workOTHours),
		OvertimeMultiplier: earnings.Multiplier(earnings.ParseAmount(workOTRate)),
		DailyRate:          rate,
		IsHalfDay:          workHalfDay,
	}
}

func runWorkDelete(cmd *cobra.Command, args []string) error {
	key, err := resolveDay(args[0], time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	if _, ok := a.sess.Store().Work[key]; !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "No work recorded for %s.\n", key)
		return nil
	}
	if err := a.sess.DeleteWork(cmd.Context(), key); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted work for %s.\n", key)
	return nil
}
