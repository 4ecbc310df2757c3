package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/passaudit/passaudit/internal/model"
)

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "passaudit.db"

// AuditDB provides SQLite-based storage for audit records.
// It manages connection pooling and provides methods for saving and
// querying audit history.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created. If false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY churn for this workload.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// Path returns the path of the underlying database file.
func (adb *AuditDB) Path() string {
	return adb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	const schema = `
CREATE TABLE IF NOT EXISTS audits (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	fingerprint   TEXT    NOT NULL,
	score         INTEGER NOT NULL,
	entropy_bits  REAL    NOT NULL,
	length        INTEGER NOT NULL,
	strength      TEXT    NOT NULL,
	finding_count INTEGER NOT NULL,
	source        TEXT    NOT NULL,
	audited_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audits_fingerprint ON audits(fingerprint);
CREATE INDEX IF NOT EXISTS idx_audits_audited_at ON audits(audited_at);
`
	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveAudit persists an audit record and sets its ID.
func (adb *AuditDB) SaveAudit(ctx context.Context, record *model.AuditRecord) error {
	const query = `
INSERT INTO audits (fingerprint, score, entropy_bits, length, strength, finding_count, source, audited_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := adb.db.ExecContext(ctx, query,
		record.Fingerprint,
		record.Score,
		record.EntropyBits,
		record.Length,
		record.Strength,
		record.FindingCount,
		record.Source,
		record.AuditedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted audit ID: %w", err)
	}
	record.ID = id
	return nil
}

// RecentAudits returns the most recent audit records, newest first.
func (adb *AuditDB) RecentAudits(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	const query = `
SELECT id, fingerprint, score, entropy_bits, length, strength, finding_count, source, audited_at
FROM audits
ORDER BY audited_at DESC, id DESC
LIMIT ?`

	return adb.queryAudits(ctx, query, limit)
}

// AuditsForFingerprint returns audit records whose fingerprint starts
// with the given prefix, newest first. This is how repeated audits of
// the same password are linked without storing the password: a full
// fingerprint matches exactly, and a shorter hex prefix is enough to
// follow one password's trend from the CLI. The limit bounds matching
// rows, so old audits of a password stay reachable no matter how much
// unrelated history has accumulated since.
func (adb *AuditDB) AuditsForFingerprint(ctx context.Context, prefix string, limit int) ([]*model.AuditRecord, error) {
	// substr comparison instead of LIKE so the prefix needs no
	// wildcard escaping.
	const query = `
SELECT id, fingerprint, score, entropy_bits, length, strength, finding_count, source, audited_at
FROM audits
WHERE substr(fingerprint, 1, length(?)) = ?
ORDER BY audited_at DESC, id DESC
LIMIT ?`

	return adb.queryAudits(ctx, query, prefix, prefix, limit)
}

// CountAudits returns the total number of stored audit records.
func (adb *AuditDB) CountAudits(ctx context.Context) (int64, error) {
	var count int64
	if err := adb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audits").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit records: %w", err)
	}
	return count, nil
}

// queryAudits runs a SELECT over the audits table and scans the rows.
func (adb *AuditDB) queryAudits(ctx context.Context, query string, args ...any) ([]*model.AuditRecord, error) {
	rows, err := adb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []*model.AuditRecord
	for rows.Next() {
		var r model.AuditRecord
		if err := rows.Scan(
			&r.ID,
			&r.Fingerprint,
			&r.Score,
			&r.EntropyBits,
			&r.Length,
			&r.Strength,
			&r.FindingCount,
			&r.Source,
			&r.AuditedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit records: %w", err)
	}

	return records, nil
}
