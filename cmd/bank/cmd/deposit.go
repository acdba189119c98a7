package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/smabank/bank/account"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <account-no> <amount>",
	Short: "Deposit into an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeposit,
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <account-no> <amount>",
	Short: "Withdraw from an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runWithdraw,
}

var balanceCmd = &cobra.Command{
	Use:   "balance <account-no>",
	Short: "Show an account's balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(balanceCmd)
}

func runDeposit(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	a := reg.Find(args[0])
	if a == nil {
		reportDomainErr(account.ErrAccountNotFound)
		return nil
	}
	if err := a.Deposit(amount); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	fmt.Println("Deposit successful.")
	return nil
}

func runWithdraw(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	a := reg.Find(args[0])
	if a == nil {
		reportDomainErr(account.ErrAccountNotFound)
		return nil
	}
	if err := a.Withdraw(amount); err != nil {
		if reportDomainErr(err) {
			return nil
		}
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	fmt.Println("Withdrawal successful.")
	return nil
}

func runBalance(cmd *cobra.Command, args []string) error {
	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	a := reg.Find(args[0])
	if a == nil {
		reportDomainErr(account.ErrAccountNotFound)
		return nil
	}

	fmt.Printf("Account Balance: %s\n", a.Balance())
	if chk, ok := a.(*account.CheckingAccount); ok {
		fmt.Printf("Overdraft Facility: %s\n", chk.OverdraftFacility())
		fmt.Printf("Total Available: %s\n", chk.TotalBalance())
	}
	return nil
}
