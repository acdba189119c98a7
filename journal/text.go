package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smabank/bank/account"
)

// Text stores one plain-text file per account under dir, one line per
// entry in the form "<label>: <amount>". Every save rewrites the file in
// full through a temp file and rename, so a crash mid-write never leaves
// a torn log behind.
type Text struct {
	dir string
}

// NewText creates the journal directory if needed.
func NewText(dir string) (*Text, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &Text{dir: dir}, nil
}

func (t *Text) path(accountNo string) string {
	return filepath.Join(t.dir, accountNo+".txt")
}

func (t *Text) Rewrite(accountNo string, entries []account.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Label, e.Amount)
	}

	path := t.path(accountNo)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return os.Rename(tmp, path)
}

func (t *Text) Entries(accountNo string) ([]account.Entry, error) {
	data, err := os.ReadFile(t.path(accountNo))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []account.Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ":")
		if idx < 0 {
			return nil, fmt.Errorf("%w: journal line %q", account.ErrMalformedRecord, line)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(line[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: journal line %q", account.ErrMalformedRecord, line)
		}
		entries = append(entries, account.Entry{
			Label:  strings.TrimSpace(line[:idx]),
			Amount: amount,
		})
	}
	return entries, nil
}

func (t *Text) Close() error { return nil }
