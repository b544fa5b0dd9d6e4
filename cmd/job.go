package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yevmiyelerim/yev/internal/earnings"
	"github.com/yevmiyelerim/yev/internal/ledger"
	"github.com/yevmiyelerim/yev/internal/model"
)

var (
	jobRate string
	jobName string
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage the job catalog",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog jobs",
	Args:  cobra.NoArgs,
	RunE:  runJobList,
}

var jobAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a job to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobAdd,
}

var jobEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a job's name or daily rate",
	Long: `Change a job's name or daily rate. Work already recorded keeps the
rate it was saved with.`,
	Args: cobra.ExactArgs(1),
	RunE: runJobEdit,
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a job from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobDelete,
}

func init() {
	jobAddCmd.Flags().StringVar(&jobRate, "rate", "", "Daily rate")
	_ = jobAddCmd.MarkFlagRequired("rate")
	jobEditCmd.Flags().StringVar(&jobRate, "rate", "", "New daily rate")
	jobEditCmd.Flags().StringVar(&jobName, "name", "", "New name")
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobAddCmd)
	jobCmd.AddCommand(jobEditCmd)
	jobCmd.AddCommand(jobDeleteCmd)
}

func runJobList(cmd *cobra.Command, args []string) error {
	a := mustOpenApp(cmd.Context())
	defer a.Close()

	printJobs(cmd.OutOrStdout(), a.sess.Jobs(), a.cfg.Currency)
	return nil
}

func printJobs(w io.Writer, jobs []model.Job, currency string) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs in the catalog.")
		return
	}
	for _, j := range jobs {
		fmt.Fprintf(w, "%-15d %-20s %s\n", j.ID, j.Name, formatAmount(j.DailyRate, currency))
	}
}

// validateJob is advisory: the catalog itself accepts any value.
func validateJob(name string, rate float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("job name cannot be empty")
	}
	if rate <= 0 {
		return fmt.Errorf("daily rate must be a positive number")
	}
	return nil
}

func runJobAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	rate := earnings.ParseAmount(jobRate)
	if err := validateJob(name, rate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	job, err := a.sess.SaveJob(cmd.Context(), model.Job{Name: name, DailyRate: rate})
	if err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added job %q (id %d) at %s per day\n", job.Name, job.ID, formatAmount(job.DailyRate, a.cfg.Currency))
	return nil
}

func runJobEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid job id %q\n", args[0])
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	jobs := a.sess.Jobs()
	i := ledger.IndexOfJob(jobs, id)
	if i < 0 {
		a.fatal(1, fmt.Errorf("no job with id %d", id))
	}
	job := jobs[i]
	if cmd.Flags().Changed("name") {
		job.Name = strings.TrimSpace(jobName)
	}
	if cmd.Flags().Changed("rate") {
		job.DailyRate = earnings.ParseAmount(jobRate)
	}
	if err := validateJob(job.Name, job.DailyRate); err != nil {
		a.fatal(1, err)
	}

	if _, err := a.sess.SaveJob(cmd.Context(), job); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated job %d: %s, %s per day\n", job.ID, job.Name, formatAmount(job.DailyRate, a.cfg.Currency))
	return nil
}

func runJobDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid job id %q\n", args[0])
		os.Exit(1)
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	if ledger.IndexOfJob(a.sess.Jobs(), id) < 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No job with id %d.\n", id)
		return nil
	}
	if err := a.sess.DeleteJob(cmd.Context(), id); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted job %d.\n", id)
	return nil
}
