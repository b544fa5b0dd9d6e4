package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/datekey"
	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

var (
	exportMonth  string
	exportShift  int
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a month's records to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	addMonthFlags(exportCmd, &exportMonth, &exportShift)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// monthExport is the JSON export document.
type monthExport struct {
	Month    string                        `json:"month"`
	Totals   summary.Totals                `json:"totals"`
	Work     map[string]model.WorkEntry    `json:"work"`
	Payments map[string]model.PaymentEntry `json:"payments"`
}

func runExport(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonth(exportMonth, exportShift, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	store := a.sess.Store()
	out := cmd.OutOrStdout()
	switch exportFormat {
	case "json":
		doc := monthExport{
			Month:    datekey.MonthPrefix(year, month),
			Totals:   summary.Month(store, year, month),
			Work:     map[string]model.WorkEntry{},
			Payments: map[string]model.PaymentEntry{},
		}
		for k, w := range store.Work {
			if datekey.InMonth(k, year, month) {
				doc.Work[k] = w
			}
		}
		for k, p := range store.Payments {
			if datekey.InMonth(k, year, month) {
				doc.Payments[k] = p
			}
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			a.fatal(2, fmt.Errorf("error encoding JSON: %w", err))
		}
		fmt.Fprintln(out, string(data))
	case "md":
		printList(out, store, year, month, a.cfg.Currency)
	default: // csv
		printCSV(out, store, year, month)
	}

	return nil
}

func printCSV(w io.Writer, s model.Store, year, month int) {
	fmt.Fprintln(w, "date,job,hours,overtime,overtime_hours,overtime_rate,daily_rate,half_day,earnings,payment,note")
	for _, k := range monthKeys(s, year, month) {
		row := []string{k, "", "", "", "", "", "", "", "", "", ""}
		if e, ok := s.Work[k]; ok {
			row[1] = e.JobName
			row[2] = formatNumber(e.BaseHours)
			row[3] = strconv.FormatBool(e.IsOvertime)
			row[4] = formatNumber(e.OvertimeHours)
			row[5] = formatNumber(e.OvertimeMultiplier)
			row[6] = formatNumber(e.DailyRate)
			row[7] = strconv.FormatBool(e.IsHalfDay)
			row[8] = formatNumber(e.TotalEarnings)
		}
		if p, ok := s.Payments[k]; ok {
			row[9] = formatNumber(p.Amount)
			row[10] = p.Note
		}
		for i, field := range row {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprint(w, csvEscape(field))
		}
		fmt.Fprintln(w)
	}
}

// csvEscape quotes a field holding a separator, quote or line break.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
