package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <account-no>",
	Short: "Show an account's persisted transaction history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Entries(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No transactions on file.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s: %s\n", e.Label, e.Amount)
	}
	return nil
}
