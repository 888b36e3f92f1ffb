package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/chatter/internal/demo"
	"github.com/zhubert/chatter/internal/demo/scenarios"
)

var (
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoAllFrames  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted chatter sessions",
	Long: `Replay scripted key presses against chatter without a terminal.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the final frame`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the final frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

func init() {
	demoRunCmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (scenario default when 0)")
	demoRunCmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (scenario default when 0)")
	demoRunCmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	demoRunCmd.Flags().BoolVar(&demoAllFrames, "all", false, "Print every captured frame, not just the last")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-15s %s\n", s.Name, s.Description)
	}
}

func getScenario(name string) (*demo.Scenario, error) {
	found, err := scenarios.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun 'chatter demo list' to see available scenarios", err)
	}

	// Run a copy so overrides don't leak into the registry
	scenario := *found
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return &scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	printFrames(cmd.OutOrStdout(), frames, demoAllFrames)
	return nil
}

// printFrames writes the last frame, or every frame when all is set.
func printFrames(w io.Writer, frames []demo.Frame, all bool) {
	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	if len(frames) == 0 {
		return
	}

	start := len(frames) - 1
	if all {
		start = 0
	}
	for i := start; i < len(frames); i++ {
		f := frames[i]
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(w, f.Content)
	}
}
