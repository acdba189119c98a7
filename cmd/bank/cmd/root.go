package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/config"
	"github.com/smabank/bank/customer"
	"github.com/smabank/bank/journal"
	"github.com/smabank/bank/ledger"
)

var (
	cfgFile string
	cnic    string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bank",
	Short: "SMA bank customer account console",
	Long: `Bank manages customer accounts from the command line.

It provides tools for:
  - Opening checking, saving and loan accounts
  - Deposits, withdrawals and balance enquiries
  - Monthly interest and loan payment accrual
  - Transaction history and loan status views
  - Statement export to PDF and XLSX`,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./bank.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&cnic, "customer", "", "customer CNIC (national ID token)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// A .env file can point at an alternate config without touching flags.
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		path = os.Getenv("BANK_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat("bank.yaml"); err == nil {
			path = "bank.yaml"
		}
	}
	if path == "" {
		cfg = config.Default()
		return nil
	}

	c, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// openRegistry loads the customer's registry with the configured journal
// store attached. The caller closes the store.
func openRegistry() (*customer.Registry, journal.Store, error) {
	if cnic == "" {
		return nil, nil, fmt.Errorf("--customer is required")
	}

	store, err := journal.Open(cfg.Journal.Type, cfg.Journal.Dir, cfg.Journal.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	reg := customer.New(cfg.Data.Dir, ledger.Profile{CNIC: cnic})
	reg.SetJournal(store)
	if err := reg.Load(); err != nil {
		store.Close()
		return nil, nil, err
	}
	return reg, store, nil
}

// openJournal opens the configured journal store on its own, for
// commands that read history without loading the registry.
func openJournal() (journal.Store, error) {
	store, err := journal.Open(cfg.Journal.Type, cfg.Journal.Dir, cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

// reportDomainErr prints the user-facing message for expected negative
// outcomes and reports whether err was one of them. Anything else goes
// back to cobra as a hard error.
func reportDomainErr(err error) bool {
	switch {
	case errors.Is(err, account.ErrInsufficientFunds):
		fmt.Println("Insufficient balance, withdrawal not possible.")
	case errors.Is(err, account.ErrWithdrawalNotAllowed):
		fmt.Println("Withdrawal is not allowed for loan accounts.")
	case errors.Is(err, account.ErrAccountNotFound):
		fmt.Println("Account not found.")
	default:
		return false
	}
	return true
}
