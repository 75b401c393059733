package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"randlab/domain/battery"
	"randlab/internal/errors"
	"randlab/ports"
)

// Schema for the single table this repository owns.
const reportsSchema = `
CREATE TABLE IF NOT EXISTS randomness_reports (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	range_n     INTEGER NOT NULL,
	sample_size INTEGER NOT NULL,
	passed      BOOLEAN NOT NULL,
	payload     JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
)`

// ReportRepositoryImpl implements ReportStore for PostgreSQL
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// Open connects to PostgreSQL and ensures the reports table exists.
func Open(dsn string) (*ReportRepositoryImpl, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}
	if _, err := db.Exec(reportsSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ensure reports schema")
	}
	return &ReportRepositoryImpl{db: db}, nil
}

// NewReportRepository creates a repository on an existing connection.
func NewReportRepository(db *sqlx.DB) ports.ReportStore {
	return &ReportRepositoryImpl{db: db}
}

// SaveReport persists a finished report with its full JSON payload.
func (r *ReportRepositoryImpl) SaveReport(ctx context.Context, report *battery.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal report payload")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO randomness_reports (id, source, range_n, sample_size, passed, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, report.RunID.String(), report.Source, report.RangeN, report.SampleSize, report.AllPassed(), payload, report.ComputedAt.Time())

	return errors.Wrapf(err, "insert report %s", report.RunID)
}

// Close releases the underlying connection.
func (r *ReportRepositoryImpl) Close() error {
	return r.db.Close()
}
