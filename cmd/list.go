package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/datekey"
	"github.com/yevmiyelerim/yev/internal/model"
)

var (
	listMonth string
	listShift int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the work and payments recorded in a month",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addMonthFlags(listCmd, &listMonth, &listShift)
}

func runList(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonth(listMonth, listShift, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	printList(cmd.OutOrStdout(), a.sess.Store(), year, month, a.cfg.Currency)
	return nil
}

// monthKeys returns the sorted keys in the month that have work or a payment.
func monthKeys(s model.Store, year, month int) []string {
	seen := map[string]bool{}
	var keys []string
	add := func(k string) {
		if datekey.InMonth(k, year, month) && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range s.Work {
		add(k)
	}
	for k := range s.Payments {
		add(k)
	}
	sort.Strings(keys)
	return keys
}

// describeWork renders the inputs of a work day, e.g. "Boyacı 8h +2h x1.5 half-day".
func describeWork(w model.WorkEntry) string {
	parts := []string{}
	if w.JobName != "" {
		parts = append(parts, w.JobName)
	}
	parts = append(parts, formatNumber(w.BaseHours)+"h")
	if w.IsOvertime {
		parts = append(parts, fmt.Sprintf("+%sh x%s", formatNumber(w.OvertimeHours), formatNumber(w.OvertimeMultiplier)))
	}
	if w.IsHalfDay {
		parts = append(parts, "half-day")
	}
	return strings.Join(parts, " ")
}

// printList prints one line per recorded day of the month.
func printList(w io.Writer, s model.Store, year, month int, currency string) {
	keys := monthKeys(s, year, month)
	if len(keys) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintln(w, monthLabel(year, month))
	for _, k := range keys {
		line := k
		if work, ok := s.Work[k]; ok {
			line += fmt.Sprintf("  %s  %s", describeWork(work), formatAmount(work.TotalEarnings, currency))
		}
		if p, ok := s.Payments[k]; ok {
			line += fmt.Sprintf("  received %s", formatAmount(p.Amount, currency))
			if p.Note != "" {
				line += fmt.Sprintf(" (%s)", p.Note)
			}
		}
		fmt.Fprintln(w, line)
	}
}
