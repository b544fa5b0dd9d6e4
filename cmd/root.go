package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yev",
	Short: "yev – daily wage and payment tracker",
	Long: `yev records the days you worked, what each day earned and the payments
you received, and shows monthly totals and a calendar of the month.
Data is stored in ~/.yev/ (JSON files by default, or a SQLite database).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
