package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all work and payment records",
	Long: `Delete all work and payment records. The job catalog is kept.
Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !resetYes && !confirm(cmd.InOrStdin(), out, "Delete all work and payment records?") {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	a := mustOpenApp(cmd.Context())
	defer a.Close()

	if err := a.sess.Reset(cmd.Context()); err != nil {
		a.fatal(2, err)
	}
	fmt.Fprintln(out, "All work and payment records deleted.")
	return nil
}

// confirm asks a yes/no question; anything but y or yes means no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
