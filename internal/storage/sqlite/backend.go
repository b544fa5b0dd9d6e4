// Package sqlite stores the record store and job catalog in a local SQLite
// file. Each save replaces the stored snapshot inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/yevmiyelerim/yev/internal/logging"
	"github.com/yevmiyelerim/yev/internal/model"
)

// catalogKey marks that a job catalog has been written at least once, so an
// emptied catalog is not re-seeded.
const catalogKey = "catalog_initialized"

// Backend is a SQLite-backed snapshot store.
type Backend struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates the database file if needed and applies migrations.
func Open(dbPath string, logger *slog.Logger) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Backend{db: db, log: logging.For(logger, logging.ComponentStorage)}, nil
}

// Close releases the database handle.
func (b *Backend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Load reads the whole snapshot. The catalog is nil until one has been saved.
func (b *Backend) Load(ctx context.Context) (model.Snapshot, error) {
	store := model.NewStore()

	rows, err := b.db.QueryContext(ctx, `SELECT date_key, job_name, base_hours, is_overtime,
		overtime_hours, overtime_multiplier, daily_rate, is_half_day, total_earnings
		FROM work_entries`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("query work entries: %w", err)
	}
	for rows.Next() {
		var key string
		var w model.WorkEntry
		if err := rows.Scan(&key, &w.JobName, &w.BaseHours, &w.IsOvertime, &w.OvertimeHours,
			&w.OvertimeMultiplier, &w.DailyRate, &w.IsHalfDay, &w.TotalEarnings); err != nil {
			rows.Close()
			return model.Snapshot{}, fmt.Errorf("scan work entry: %w", err)
		}
		store.Work[key] = w
	}
	if err := closeRows(rows); err != nil {
		return model.Snapshot{}, fmt.Errorf("read work entries: %w", err)
	}

	rows, err = b.db.QueryContext(ctx, `SELECT date_key, payment_date, amount, note FROM payments`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("query payments: %w", err)
	}
	for rows.Next() {
		var key string
		var p model.PaymentEntry
		if err := rows.Scan(&key, &p.DateKey, &p.Amount, &p.Note); err != nil {
			rows.Close()
			return model.Snapshot{}, fmt.Errorf("scan payment: %w", err)
		}
		store.Payments[key] = p
	}
	if err := closeRows(rows); err != nil {
		return model.Snapshot{}, fmt.Errorf("read payments: %w", err)
	}

	jobs, err := b.loadJobs(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}

	b.log.Debug("loaded data", "work", len(store.Work), "payments", len(store.Payments), "jobs", len(jobs))
	return model.Snapshot{Store: store, Jobs: jobs}, nil
}

func (b *Backend) loadJobs(ctx context.Context) ([]model.Job, error) {
	var marker string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, catalogKey).Scan(&marker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog marker: %w", err)
	}

	rows, err := b.db.QueryContext(ctx, `SELECT id, name, daily_rate FROM jobs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	jobs := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.Name, &j.DailyRate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}
	return jobs, nil
}

// Save replaces the stored snapshot with snap.
func (b *Backend) Save(ctx context.Context, snap model.Snapshot) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"work_entries", "payments", "jobs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for key, w := range snap.Store.Work {
		if _, err := tx.ExecContext(ctx, `INSERT INTO work_entries (date_key, job_name, base_hours,
			is_overtime, overtime_hours, overtime_multiplier, daily_rate, is_half_day, total_earnings)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key, w.JobName, w.BaseHours, w.IsOvertime, w.OvertimeHours,
			w.OvertimeMultiplier, w.DailyRate, w.IsHalfDay, w.TotalEarnings); err != nil {
			return fmt.Errorf("insert work entry %s: %w", key, err)
		}
	}
	for key, p := range snap.Store.Payments {
		if _, err := tx.ExecContext(ctx, `INSERT INTO payments (date_key, payment_date, amount, note) VALUES (?, ?, ?, ?)`,
			key, p.DateKey, p.Amount, p.Note); err != nil {
			return fmt.Errorf("insert payment %s: %w", key, err)
		}
	}
	for i, j := range snap.Jobs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO jobs (id, position, name, daily_rate) VALUES (?, ?, ?, ?)`,
			j.ID, i, j.Name, j.DailyRate); err != nil {
			return fmt.Errorf("insert job %d: %w", j.ID, err)
		}
	}
	if snap.Jobs != nil {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, '1')`, catalogKey); err != nil {
			return fmt.Errorf("write catalog marker: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	b.log.Debug("saved data", "work", len(snap.Store.Work), "payments", len(snap.Store.Payments), "jobs", len(snap.Jobs))
	return nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
