// Package statement renders an account's journal into printable
// statements: PDF and XLSX.
package statement

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/ledger"
)

// Statement is the printable view of one account: the holder's profile,
// the account header fields, the persisted journal, and the loan summary
// for loan accounts.
type Statement struct {
	Profile ledger.Profile
	Account account.Account
	Entries []account.Entry
	Loan    *account.LoanSummary
}

// Build assembles a statement. entries should come from the journal
// store, not from the in-memory log, so statements work right after a
// reload.
func Build(p ledger.Profile, a account.Account, entries []account.Entry) Statement {
	s := Statement{Profile: p, Account: a, Entries: entries}
	if loan, ok := a.(*account.LoanAccount); ok {
		sum := loan.Summary()
		s.Loan = &sum
	}
	return s
}

func (s Statement) holder() string {
	return s.Profile.FirstName + " " + s.Profile.LastName
}

// WritePDF renders the statement as an A4 PDF at path.
func (s Statement) WritePDF(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "SMA Bank Account Statement")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(90, 7, fmt.Sprintf("Holder: %s", s.holder()))
	pdf.Cell(90, 7, fmt.Sprintf("CNIC: %s", s.Profile.CNIC))
	pdf.Ln(7)
	pdf.Cell(90, 7, fmt.Sprintf("Account Number: %s", s.Account.Number()))
	pdf.Cell(90, 7, fmt.Sprintf("Account Type: %s", s.Account.Kind()))
	pdf.Ln(7)
	pdf.Cell(90, 7, fmt.Sprintf("Balance: %s", s.Account.Balance()))
	pdf.Ln(12)

	// Journal table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 7, "Operation", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "Amount", "1", 0, "", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 12)
	for _, e := range s.Entries {
		pdf.CellFormat(90, 7, e.Label, "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 7, e.Amount.String(), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	if s.Loan != nil {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(90, 7, "Loan Summary")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(90, 7, fmt.Sprintf("Outstanding: %s", s.Loan.Outstanding))
		pdf.Ln(7)
		pdf.Cell(90, 7, fmt.Sprintf("Duration: %d months", s.Loan.Duration))
		pdf.Ln(7)
		pdf.Cell(90, 7, fmt.Sprintf("Interest Rate: %s", s.Loan.Rate))
		pdf.Ln(7)
	}

	return pdf.OutputFileAndClose(path)
}

// WriteXLSX renders the statement as a spreadsheet at path: header
// rows followed by one row per journal entry.
func (s Statement) WriteXLSX(path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Statement")
	if err != nil {
		return err
	}

	addPair := func(k, v string) {
		row := sheet.AddRow()
		row.AddCell().SetValue(k)
		row.AddCell().SetValue(v)
	}
	addPair("Holder", s.holder())
	addPair("CNIC", s.Profile.CNIC)
	addPair("Account Number", s.Account.Number())
	addPair("Account Type", string(s.Account.Kind()))
	addPair("Balance", s.Account.Balance().String())
	if s.Loan != nil {
		addPair("Loan Duration", strconv.Itoa(s.Loan.Duration))
		addPair("Interest Rate", s.Loan.Rate.String())
	}
	header := sheet.AddRow()
	header.AddCell().SetValue("Operation")
	header.AddCell().SetValue("Amount")
	for _, e := range s.Entries {
		row := sheet.AddRow()
		row.AddCell().SetValue(e.Label)
		row.AddCell().SetValue(e.Amount.String())
	}

	return file.Save(path)
}
