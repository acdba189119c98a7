package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/statement"
)

var statementCmd = &cobra.Command{
	Use:   "statement <account-no>",
	Short: "Export an account statement",
	Long: `Export an account's statement, built from the persisted
transaction journal, to PDF or XLSX.

Examples:
  bank statement CH-100 --customer 42101-1234567-1 --format pdf
  bank statement LN-300 --customer 42101-1234567-1 --format xlsx -o loan.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runStatement,
}

var (
	statementFormat string
	statementOutput string
)

func init() {
	rootCmd.AddCommand(statementCmd)
	statementCmd.Flags().StringVarP(&statementFormat, "format", "f", "pdf", "output format: pdf or xlsx")
	statementCmd.Flags().StringVarP(&statementOutput, "output", "o", "", "output path (default <statement dir>/<account-no>.<format>)")
}

func runStatement(cmd *cobra.Command, args []string) error {
	if statementFormat != "pdf" && statementFormat != "xlsx" {
		return fmt.Errorf("unknown format %q", statementFormat)
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

	entries, err := store.Entries(a.Number())
	if err != nil {
		return err
	}
	s := statement.Build(reg.Profile(), a, entries)

	out := statementOutput
	if out == "" {
		if err := os.MkdirAll(cfg.Statement.Dir, 0o755); err != nil {
			return fmt.Errorf("create statement dir: %w", err)
		}
		out = filepath.Join(cfg.Statement.Dir, a.Number()+"."+statementFormat)
	}

	switch statementFormat {
	case "pdf":
		err = s.WritePDF(out)
	case "xlsx":
		err = s.WriteXLSX(out)
	}
	if err != nil {
		return fmt.Errorf("write statement: %w", err)
	}

	fmt.Printf("Statement written to %s\n", out)
	return nil
}
