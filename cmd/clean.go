package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/chatter/internal/logger"
)

var skipConfirm bool

// cleanLogPath is the file clean removes.
var cleanLogPath = logger.DefaultLogPath

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log",
	Long: `Removes chatter's debug log file. Chatter keeps no other state on disk.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(cmd.InOrStdin(), cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	if _, err := os.Stat(cleanLogPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	fmt.Fprintf(out, "  - %s\n", cleanLogPath)

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// Release our own handle before removing the file
	if logger.Path() == cleanLogPath {
		logger.Close()
	}
	cleared, err := logger.ClearLogs(cleanLogPath)
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Cleaned:\n  - %d log file(s) removed\n", cleared)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
