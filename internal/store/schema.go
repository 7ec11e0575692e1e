package store

// schemaSQL creates the snapshot tables. The snapshot is a disposable cache
// of the last successful fetch; dropping the file is always safe.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
	id           INTEGER PRIMARY KEY,
	title        TEXT NOT NULL,
	amount       REAL NOT NULL,
	category     TEXT NOT NULL,
	subcategory  TEXT NOT NULL DEFAULT '',
	payment_type TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL,
	date         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS budgets (
	id            INTEGER PRIMARY KEY,
	category      TEXT NOT NULL,
	budget_amount REAL NOT NULL,
	month         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS snapshot_meta (
	table_name TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
