package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

var (
	calendarMonth  string
	calendarShift  int
	calendarFormat string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month as a calendar with worked, overtime and paid days",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

func init() {
	addMonthFlags(calendarCmd, &calendarMonth, &calendarShift)
	calendarCmd.Flags().StringVar(&calendarFormat, "format", "text", "Output format: text, json")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonth(calendarMonth, calendarShift, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	cal := a.sess.Calendar(year, month)
	switch calendarFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(cal); err != nil {
			a.fatal(2, fmt.Errorf("error encoding JSON: %w", err))
		}
	default:
		printCalendar(cmd.OutOrStdout(), cal)
	}
	return nil
}

// stateMarks is the suffix printed after a day number.
var stateMarks = map[model.CalendarState]string{
	model.StateEmpty:    " ",
	model.StateWorked:   "*",
	model.StateOvertime: "+",
	model.StatePaid:     "$",
}

func printCalendar(w io.Writer, cal summary.Calendar) {
	fmt.Fprintln(w, monthLabel(cal.Year, cal.Month))
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")
	for _, week := range cal.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			if c.Day == 0 {
				cells[i] = "   "
				continue
			}
			cells[i] = fmt.Sprintf("%2d%s", c.Day, stateMarks[c.State])
		}
		fmt.Fprintln(w, strings.TrimRight(" "+strings.Join(cells, " "), " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "* worked  + overtime  $ paid")
}
