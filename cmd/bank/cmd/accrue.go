package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smabank/bank/account"
)

var interestCmd = &cobra.Command{
	Use:   "interest <account-no>",
	Short: "Apply monthly interest to a saving account",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterest,
}

var paymentCmd = &cobra.Command{
	Use:   "payment <account-no>",
	Short: "Apply a monthly payment to a loan account",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayment,
}

func init() {
	rootCmd.AddCommand(interestCmd)
	rootCmd.AddCommand(paymentCmd)
}

func runInterest(cmd *cobra.Command, args []string) error {
	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	sav, ok := reg.Find(args[0]).(*account.SavingAccount)
	if !ok {
		fmt.Println("Saving account not found.")
		return nil
	}

	interest, err := sav.MonthlyInterest()
	if err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	fmt.Printf("Interest credited: %s\n", interest)
	fmt.Printf("Account Balance: %s\n", sav.Balance())
	return nil
}

func runPayment(cmd *cobra.Command, args []string) error {
	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	loan, ok := reg.Find(args[0]).(*account.LoanAccount)
	if !ok {
		fmt.Println("Loan account not found.")
		return nil
	}

	payment, err := loan.MonthlyPayment()
	if err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	fmt.Printf("Payment applied: %s\n", payment)
	fmt.Printf("Outstanding Balance: %s\n", loan.Balance())
	return nil
}
