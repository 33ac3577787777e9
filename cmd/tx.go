package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danreyes/reckon/internal/model"
	"github.com/danreyes/reckon/internal/parser"
	"github.com/danreyes/reckon/internal/storage"
)

var (
	flagTxProject string
	flagTxKind    string
	flagTxFrom    string
	flagTxUntil   string
	flagTxLimit   int
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Inspect recorded transactions",
}

// txListCmd lists transactions without opening a shell session.
var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long: `List transactions, newest first. Filters combine with AND.

Examples:
  reckon tx list --project casa
  reckon tx list --kind expense --from "last month"
  reckon tx list --limit 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.Filter{
			ProjectSID: flagTxProject,
			Kind:       model.Kind(flagTxKind),
			Limit:      flagTxLimit,
		}

		if flagTxFrom != "" {
			from, err := parser.ParseDate(flagTxFrom)
			if err != nil {
				return err
			}
			filter.From = from
		}
		if flagTxUntil != "" {
			until, err := parser.ParseDate(flagTxUntil)
			if err != nil {
				return err
			}
			// Make the bound inclusive of the whole day.
			filter.Until = until.Add(24*time.Hour - time.Nanosecond)
		}

		txs, err := ctx.TransactionRepo.ListFiltered(filter)
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]interface{}{
				"transactions": txs,
				"totals":       storage.Aggregate(txs),
			})
		}

		cli := ctx.CLIFormatter()
		if len(txs) == 0 {
			cli.Muted("No transactions match")
			return nil
		}
		for _, tx := range txs {
			cli.PrintTransaction(tx)
		}

		totals := storage.Aggregate(txs)
		cli.Title(fmt.Sprintf("%d transactions", totals.Count))
		ctx.Formatter.Printf("  income:   %s\n", centsString(totals.Income))
		ctx.Formatter.Printf("  expenses: %s\n", centsString(totals.Expenses))
		ctx.Formatter.Printf("  net:      %s\n", centsString(totals.Net))
		return nil
	},
}

// centsString formats a signed cent amount as dollars.
func centsString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func init() {
	txListCmd.Flags().StringVarP(&flagTxProject, "project", "p", "",
		"Only transactions for this project")
	txListCmd.Flags().StringVarP(&flagTxKind, "kind", "k", "",
		"Only 'income' or 'expense' transactions")
	txListCmd.Flags().StringVar(&flagTxFrom, "from", "",
		"Only transactions on or after this date")
	txListCmd.Flags().StringVar(&flagTxUntil, "until", "",
		"Only transactions on or before this date")
	txListCmd.Flags().IntVarP(&flagTxLimit, "limit", "n", 0,
		"Maximum number of transactions (0 = all)")

	txCmd.AddCommand(txListCmd)
	rootCmd.AddCommand(txCmd)
}
