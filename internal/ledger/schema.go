package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id               TEXT PRIMARY KEY,
    timestamp        TEXT NOT NULL,
    amount           REAL NOT NULL,
    type             TEXT NOT NULL,
    description      TEXT NOT NULL,
    source           TEXT NOT NULL,
    raw_notification TEXT,
    created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(timestamp);
`

// settingsKeyBudget is the settings row holding the budget singleton.
const settingsKeyBudget = "budget_settings"
