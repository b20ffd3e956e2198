package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/inamate/roomplanner/internal/layout"
)

var levelsJSON bool

var levelsCmd = &cobra.Command{
	Use:   "levels [level_id]",
	Short: "List built-in levels",
	Long: `List the built-in levels.

With a level id: show that level's room and furniture`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
	levelsCmd.Flags().BoolVar(&levelsJSON, "json", false, "print JSON")
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		lvl, err := layout.LevelByID(args[0])
		if err != nil {
			return err
		}
		if levelsJSON {
			return writeIndented(cmd, lvl)
		}
		showLevel(cmd, lvl)
		return nil
	}

	levels := layout.Levels()
	if levelsJSON {
		return writeIndented(cmd, levels)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROOM\tGRID\tFURNITURE")
	for _, lvl := range levels {
		fmt.Fprintf(tw, "%s\t%s\t%gx%g\t%g\t%d\n",
			lvl.ID, lvl.Name, lvl.Room.Width, lvl.Room.Height, lvl.Room.GridSize, len(lvl.Furniture))
	}
	return tw.Flush()
}

func showLevel(cmd *cobra.Command, lvl layout.Level) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level: %s (%s)\n", lvl.ID, lvl.Name)
	fmt.Fprintf(out, "Room: %gx%g, grid %g\n", lvl.Room.Width, lvl.Room.Height, lvl.Room.GridSize)

	if len(lvl.Room.Zones) > 0 {
		fmt.Fprintln(out, "Zones:")
		for _, z := range lvl.Room.Zones {
			fmt.Fprintf(out, "  %-12s %gx%g at (%g,%g)\n", z.Label, z.W, z.H, z.X, z.Y)
		}
	}

	fmt.Fprintln(out, "Furniture:")
	for _, f := range lvl.Furniture {
		fmt.Fprintf(out, "  %-14s %gx%g %s\n", f.ID, f.W, f.H, f.Label)
	}
}

func writeIndented(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
