package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_key   TEXT PRIMARY KEY,
    payload        TEXT NOT NULL,
    updated_at     TEXT NOT NULL
);
`
