package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/customer"
	"github.com/smabank/bank/ledger"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Open and inspect customer accounts",
	Long: `Manage the customer's accounts.

Subcommands:
  create - Open a new checking, saving or loan account
  list   - List the customer's accounts

Examples:
  bank account create --customer 42101-1234567-1 --type checking \
      --balance 100 --credit-limit 50 --overdraft-fee 5
  bank account list --customer 42101-1234567-1`,
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new account",
	Args:  cobra.NoArgs,
	RunE:  runAccountCreate,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the customer's accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var (
	createType      string
	createNumber    string
	createBalance   string
	createCredit    string
	createFee       string
	createRate      string
	createDuration  int
	createPrincipal string

	createUsername  string
	createFirstName string
	createLastName  string
	createAddress   string
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountListCmd)

	accountCreateCmd.Flags().StringVarP(&createType, "type", "t", "", "account type: checking, saving or loan (required)")
	accountCreateCmd.Flags().StringVarP(&createNumber, "number", "n", "", "account number (generated when omitted)")
	accountCreateCmd.Flags().StringVarP(&createBalance, "balance", "b", "0", "initial balance")
	accountCreateCmd.Flags().StringVar(&createCredit, "credit-limit", "0", "credit limit (checking)")
	accountCreateCmd.Flags().StringVar(&createFee, "overdraft-fee", "0", "overdraft fee (checking)")
	accountCreateCmd.Flags().StringVar(&createRate, "rate", "0", "interest rate as a fraction (saving, loan)")
	accountCreateCmd.Flags().IntVar(&createDuration, "duration", 0, "loan duration in months (loan)")
	accountCreateCmd.Flags().StringVar(&createPrincipal, "principal", "0", "principal loan amount (loan)")
	accountCreateCmd.Flags().StringVar(&createUsername, "username", "", "customer username")
	accountCreateCmd.Flags().StringVar(&createFirstName, "first-name", "", "customer first name")
	accountCreateCmd.Flags().StringVar(&createLastName, "last-name", "", "customer last name")
	accountCreateCmd.Flags().StringVar(&createAddress, "address", "", "customer address")
	accountCreateCmd.MarkFlagRequired("type")
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	kind, err := account.ParseKind(createType)
	if err != nil {
		return fmt.Errorf("%w: %q", err, createType)
	}

	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	if createUsername != "" || createFirstName != "" || createLastName != "" || createAddress != "" {
		reg.SetProfile(ledger.Profile{
			Username:  createUsername,
			FirstName: createFirstName,
			LastName:  createLastName,
			Address:   createAddress,
		})
	}

	spec := customer.CreateSpec{Number: createNumber, Duration: createDuration}
	for _, f := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"balance", createBalance, &spec.Balance},
		{"credit-limit", createCredit, &spec.CreditLimit},
		{"overdraft-fee", createFee, &spec.OverdraftFee},
		{"rate", createRate, &spec.InterestRate},
		{"principal", createPrincipal, &spec.Principal},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("invalid --%s %q", f.name, f.raw)
		}
		*f.dst = d
	}

	a, err := reg.Create(kind, spec)
	if err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	fmt.Printf("%s %s created successfully.\n", a.Kind(), a.Number())
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	reg, store, err := openRegistry()
	if err != nil {
		return err
	}
	defer store.Close()

	accounts := reg.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts on file.")
		return nil
	}
	for _, a := range accounts {
		fmt.Printf("%-30s %-16s %s\n", a.Number(), a.Kind(), a.Balance())
	}
	return nil
}
