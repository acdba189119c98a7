package journal

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id TEXT PRIMARY KEY,
	account_no TEXT NOT NULL,
	seq INTEGER NOT NULL,
	label TEXT NOT NULL,
	amount TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_account ON entries(account_no, seq);
`
