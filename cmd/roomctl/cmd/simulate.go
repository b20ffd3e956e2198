package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inamate/roomplanner/internal/engine"
	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/script"
)

var (
	simLevel  string
	simJSON   bool
	simRender bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script_file>",
	Short: "Replay an input script against a level",
	Long: `Replay a script of pointer, wheel and key input against a level and
print what the engine did with each step, followed by the final layout.

Script statements, one per line ('#' starts a comment):
  down X Y | move X Y | up | leave
  wheel DX DY [mod]
  rotate [ID] | undo | select ID | deselect
  space on|off | zoomin [X Y] | zoomout [X Y] | resetview

Coordinates are screen pixels under the level's default view.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVarP(&simLevel, "level", "l", layout.DefaultLevelID, "level id")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "print JSON instead of text")
	simulateCmd.Flags().BoolVar(&simRender, "render", false, "include draw commands for the final frame")
}

type simulateReport struct {
	Level    string              `json:"level"`
	Steps    []script.StepResult `json:"steps"`
	Summary  script.Summary      `json:"summary"`
	Snapshot engine.Snapshot     `json:"snapshot"`
	Render   json.RawMessage     `json:"render,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	lvl, err := layout.LevelByID(simLevel)
	if err != nil {
		return err
	}

	eng, err := engine.New(lvl)
	if err != nil {
		return err
	}

	parser, err := script.NewParser()
	if err != nil {
		return err
	}
	s, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing script: %w", err)
	}

	steps, sum := script.Run(eng, s, func(r script.StepResult) {
		slog.Debug("step", "line", r.Line, "type", r.Command.Type, "outcome", r.Result.Outcome, "reason", r.Result.Reason)
	})

	report := simulateReport{
		Level:    lvl.ID,
		Steps:    steps,
		Summary:  sum,
		Snapshot: eng.Snapshot(),
	}
	if simRender {
		report.Render = json.RawMessage(eng.Render())
	}

	if simJSON {
		return writeIndented(cmd, report)
	}
	showReport(cmd, report)
	return nil
}

func showReport(cmd *cobra.Command, r simulateReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Level: %s\n\n", r.Level)
	for _, st := range r.Steps {
		fmt.Fprintf(out, "%4d  %-14s %-10s", st.Line, st.Command.Type, st.Result.Outcome)
		if st.Result.ObjectID != "" {
			fmt.Fprintf(out, " %s", st.Result.ObjectID)
		}
		if st.Result.Reason != "" {
			fmt.Fprintf(out, " (%s)", st.Result.Reason)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Steps: %d  committed: %d  rejected: %d  undone: %d  ignored: %d\n",
		r.Summary.Steps, r.Summary.Committed, r.Summary.Rejected, r.Summary.Undone, r.Summary.Ignored)
	fmt.Fprintf(out, "Placed: %d/%d  history: %d\n\n", r.Snapshot.PlacedCount, r.Snapshot.TotalCount, r.Snapshot.HistoryDepth)

	fmt.Fprintln(out, "Objects:")
	for _, o := range r.Snapshot.Objects {
		state := "staged"
		if o.Placed {
			state = "placed"
		}
		fmt.Fprintf(out, "  %-14s %s at (%g,%g) %gx%g rot %d\n", o.ID, state, o.X, o.Y, o.EffectiveW, o.EffectiveH, o.Rotation)
	}

	if len(r.Render) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, string(r.Render))
	}
}
