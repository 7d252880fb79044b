package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("store: run not found")

// DefaultListLimit caps ListRuns when the caller passes a limit ≤ 0.
const DefaultListLimit = 50

// Record is one stored estimation run.
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Samples   int           `json:"samples"`
	Inside    int           `json:"inside"`
	Estimate  float64       `json:"estimate"`
	AbsError  float64       `json:"abs_error"`
	Seed      int64         `json:"seed"`
	Workers   int           `json:"workers"`
	Duration  time.Duration `json:"duration_ns"`
	CreatedAt time.Time     `json:"created_at"`
}

// runRow is the database shape of a Record.
type runRow struct {
	ID         uuid.UUID `db:"id"`
	Samples    int       `db:"samples"`
	Inside     int       `db:"inside"`
	Estimate   float64   `db:"estimate"`
	AbsError   float64   `db:"abs_error"`
	Seed       int64     `db:"seed"`
	Workers    int       `db:"workers"`
	DurationNS int64     `db:"duration_ns"`
	CreatedAt  int64     `db:"created_at"`
}

func toRow(r Record) runRow {
	return runRow{
		ID:         r.ID,
		Samples:    r.Samples,
		Inside:     r.Inside,
		Estimate:   r.Estimate,
		AbsError:   r.AbsError,
		Seed:       r.Seed,
		Workers:    r.Workers,
		DurationNS: int64(r.Duration),
		CreatedAt:  r.CreatedAt.UnixMilli(),
	}
}

func (row runRow) record() Record {
	return Record{
		ID:        row.ID,
		Samples:   row.Samples,
		Inside:    row.Inside,
		Estimate:  row.Estimate,
		AbsError:  row.AbsError,
		Seed:      row.Seed,
		Workers:   row.Workers,
		Duration:  time.Duration(row.DurationNS),
		CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
	}
}

// Repository reads and writes run records.
type Repository struct {
	dbConn *sqlx.DB
	now    func() time.Time
}

// NewRepository wraps an open connection from Open.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{dbConn: db, now: time.Now}
}

// Close terminates the database connection.
func (repo *Repository) Close() error {
	if err := repo.dbConn.Close(); err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

// SaveRun inserts rec. A zero ID is replaced with a fresh UUIDv7 and a zero
// CreatedAt with the current time; the stored record is returned.
func (repo *Repository) SaveRun(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return Record{}, fmt.Errorf("creating run id: %w", err)
		}
		rec.ID = id
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = repo.now()
	}
	rec.CreatedAt = rec.CreatedAt.Truncate(time.Millisecond).UTC()

	query := `INSERT INTO runs (id, samples, inside, estimate, abs_error, seed, workers, duration_ns, created_at)
	          VALUES (:id, :samples, :inside, :estimate, :abs_error, :seed, :workers, :duration_ns, :created_at)`
	if _, err := repo.dbConn.NamedExecContext(ctx, query, toRow(rec)); err != nil {
		return Record{}, fmt.Errorf("inserting run %s: %w", rec.ID, err)
	}
	return rec, nil
}

// GetRun returns the run with the given id, or ErrRunNotFound.
func (repo *Repository) GetRun(ctx context.Context, id uuid.UUID) (Record, error) {
	var row runRow
	query := `SELECT * FROM runs WHERE id = ?`

	err := repo.dbConn.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("getting run %s: %w", id, err)
	}
	return row.record(), nil
}

// ListRuns returns up to limit runs, newest first.
func (repo *Repository) ListRuns(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var rows []runRow
	query := `SELECT * FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`

	if err := repo.dbConn.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = row.record()
	}
	return out, nil
}

// CountRuns returns the number of stored runs.
func (repo *Repository) CountRuns(ctx context.Context) (int, error) {
	var count int
	if err := repo.dbConn.GetContext(ctx, &count, `SELECT COUNT(*) FROM runs`); err != nil {
		return 0, fmt.Errorf("getting run count: %w", err)
	}
	return count, nil
}
