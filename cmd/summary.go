package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/summary"
)

var (
	summaryMonth  string
	summaryShift  int
	summaryFormat string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show monthly earnings, payments and balance",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	addMonthFlags(summaryCmd, &summaryMonth, &summaryShift)
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "md", "Output format: md, json")
}

// addMonthFlags registers the month selection flags shared by the report commands.
func addMonthFlags(c *cobra.Command, month *string, shift *int) {
	c.Flags().StringVar(month, "month", "", "Month as YYYY-MM (default: current month)")
	c.Flags().IntVar(shift, "shift", 0, "Move the month by N months (e.g. -1 for the previous month)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonth(summaryMonth, summaryShift, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	totals := a.sess.Month(year, month)
	switch summaryFormat {
	case "json":
		if err := printSummaryJSON(cmd.OutOrStdout(), totals); err != nil {
			a.fatal(2, err)
		}
	default: // md
		printSummary(cmd.OutOrStdout(), totals, a.cfg.Currency)
	}
	return nil
}

func printSummary(w io.Writer, t summary.Totals, currency string) {
	fmt.Fprintln(w, monthLabel(t.Year, t.Month))
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s\n", "Earned", formatAmount(t.TotalEarnings, currency))
	fmt.Fprintf(w, "%-20s%s\n", "Received", formatAmount(t.TotalPayments, currency))
	fmt.Fprintf(w, "%-20s%s\n", "Remaining", formatAmount(t.RemainingAmount, currency))
	fmt.Fprintln(w, "--------------------------------")
	days := fmt.Sprintf("%d", t.WorkDays)
	if t.OvertimeDays > 0 {
		days += fmt.Sprintf(" (%d overtime)", t.OvertimeDays)
	}
	fmt.Fprintf(w, "%-20s%s\n", "Days worked", days)
}

func printSummaryJSON(w io.Writer, t summary.Totals) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}
