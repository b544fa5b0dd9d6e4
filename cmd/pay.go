package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/earnings"
	"github.com/yevmiyelerim/yev/internal/model"
)

var (
	payAmount string
	payNote   string
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Record or remove payments received",
}

var payAddCmd = &cobra.Command{
	Use:   "add [date]",
	Short: "Record a payment received (default: today)",
	Long: `Record a payment received on a day. Saving again for the same date
replaces the earlier payment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPayAdd,
}

var payDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Remove the payment for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayDelete,
}

func init() {
	payAddCmd.Flags().StringVar(&payAmount, "amount", "", "Amount received")
	payAddCmd.Flags().StringVar(&payNote, "note", "", "Optional note")
	_ = payAddCmd.MarkFlagRequired("amount")
	payCmd.AddCommand(payAddCmd)
	payCmd.AddCommand(payDeleteCmd)
}

func runPayAdd(cmd *cobra.Command, args []string) error {
	day := ""
	if len(args) == 1 {
		day = args[0]
	}
	key, err := resolveDay(day, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	amount := earnings.ParseAmount(payAmount)
	if amount <= 0 {
		fmt.Fprintf(os.Stderr, "invalid --amount %q: must be a positive number\n", payAmount)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	if err := a.sess.SavePayment(cmd.Context(), key, model.PaymentEntry{Amount: amount, Note: payNote}); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved payment for %s: %s\n", key, formatAmount(amount, a.cfg.Currency))
	return nil
}

func runPayDelete(cmd *cobra.Command, args []string) error {
	key, err := resolveDay(args[0], time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	if _, ok := a.sess.Store().Payments[key]; !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "No payment recorded for %s.\n", key)
		return nil
	}
	if err := a.sess.DeletePayment(cmd.Context(), key); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted payment for %s.\n", key)
	return nil
}
