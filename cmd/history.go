package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danreyes/reckon/internal/history"
	"github.com/danreyes/reckon/internal/tui"
)

var flagHistoryBrowse bool

// historyCmd shows the last persisted undo/redo state. The snapshot is
// advisory: it reflects the most recent shell session and is refreshed on
// every operation, but history itself lives only inside a session.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last recorded undo/redo state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, found, err := history.ReadSnapshot(ctx.SnapshotPath)
		if err != nil {
			return err
		}

		if flagHistoryBrowse {
			return tui.RunHistoryBrowser(snapshot, found)
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(snapshot)
		}

		cli := ctx.CLIFormatter()
		if !found {
			cli.Muted("No history recorded yet. Run 'reckon shell' first.")
			return nil
		}

		cli.Title(fmt.Sprintf("Undoable (%d)", snapshot.UndoCount))
		if len(snapshot.UndoDescriptions) == 0 {
			cli.Muted("  (empty)")
		}
		for i := len(snapshot.UndoDescriptions) - 1; i >= 0; i-- {
			ctx.Formatter.Printf("  %s\n", snapshot.UndoDescriptions[i])
		}
		if snapshot.UndoCount > len(snapshot.UndoDescriptions) {
			cli.Muted(fmt.Sprintf("  ... and %d more",
				snapshot.UndoCount-len(snapshot.UndoDescriptions)))
		}

		cli.Title(fmt.Sprintf("Redoable (%d)", snapshot.RedoCount))
		if len(snapshot.RedoDescriptions) == 0 {
			cli.Muted("  (empty)")
		}
		for i := len(snapshot.RedoDescriptions) - 1; i >= 0; i-- {
			ctx.Formatter.Printf("  %s\n", snapshot.RedoDescriptions[i])
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVarP(&flagHistoryBrowse, "browse", "b", false,
		"Browse history in an interactive view")

	rootCmd.AddCommand(historyCmd)
}
