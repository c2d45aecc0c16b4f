package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS releases (
    release_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    version       TEXT NOT NULL,
    next_version  TEXT NOT NULL,
    auditors      TEXT NOT NULL,
    duration_sec  INTEGER DEFAULT 0,
    step_count    INTEGER DEFAULT 0,
    cli_version   TEXT,
    released_at   DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_releases_released_at
    ON releases(released_at DESC);
CREATE INDEX IF NOT EXISTS idx_releases_version
    ON releases(version);
`
