package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Loan account views",
}

var loanStatusCmd = &cobra.Command{
	Use:   "status <account-no>",
	Short: "Show a loan account's status",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoanStatus,
}

func init() {
	rootCmd.AddCommand(loanCmd)
	loanCmd.AddCommand(loanStatusCmd)
}

func runLoanStatus(cmd *cobra.Command, args []string) error {
	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := reg.LoanSummary(args[0])
	if err != nil {
		fmt.Println("Loan account not found.")
		return nil
	}

	fmt.Printf("Account Number: %s\n", s.AccountNo)
	fmt.Printf("Loan Amount: %s\n", s.Outstanding)
	fmt.Printf("Loan Duration: %d months\n", s.Duration)
	fmt.Printf("Interest Rate: %s\n", s.Rate)
	return nil
}
