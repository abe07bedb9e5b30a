package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

// runHistory implements driven.RunHistory.
type runHistory struct {
	store *Store
}

var _ driven.RunHistory = (*runHistory)(nil)

// Record stores a batch report and its per-document results in one transaction.
func (h *runHistory) Record(ctx context.Context, report *domain.BatchReport) error {
	if report == nil || report.RunID == "" {
		return fmt.Errorf("%w: report has no run id", domain.ErrInvalidInput)
	}

	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning run insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, mode, started_at, succeeded, failed)
		VALUES (?, ?, ?, ?, ?)
	`, report.RunID, string(report.Mode), report.StartedAt.UTC(), report.Succeeded(), report.Failed())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_artifacts (id, run_id, position, kind, client_name, case_number, filename, status, reason, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing artifact insert: %w", err)
	}
	defer stmt.Close()

	for i, res := range report.Results {
		id := res.ID
		if id == "" {
			id = uuid.New().String()
		}
		warnings, err := json.Marshal(nonNil(res.Warnings))
		if err != nil {
			return fmt.Errorf("marshalling warnings: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, id, report.RunID, i, string(res.Kind), res.ClientName,
			res.CaseNumber, res.Filename, string(res.Status), res.Reason(), string(warnings)); err != nil {
			return fmt.Errorf("saving artifact result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *runHistory) Recent(ctx context.Context, limit int) ([]domain.BatchReport, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, mode, started_at FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	var reports []domain.BatchReport
	for rows.Next() {
		var report domain.BatchReport
		var mode string
		if err := rows.Scan(&report.RunID, &mode, &report.StartedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		report.Mode = domain.Mode(mode)
		reports = append(reports, report)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reports {
		results, err := h.results(ctx, reports[i].RunID)
		if err != nil {
			return nil, err
		}
		reports[i].Results = results
	}
	return reports, nil
}

// Get returns one run by id.
func (h *runHistory) Get(ctx context.Context, runID string) (*domain.BatchReport, error) {
	var report domain.BatchReport
	var mode string
	err := h.store.db.QueryRowContext(ctx, `SELECT id, mode, started_at FROM runs WHERE id = ?`, runID).
		Scan(&report.RunID, &mode, &report.StartedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	report.Mode = domain.Mode(mode)

	if report.Results, err = h.results(ctx, runID); err != nil {
		return nil, err
	}
	return &report, nil
}

func (h *runHistory) results(ctx context.Context, runID string) ([]domain.ArtifactResult, error) {
	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, kind, client_name, case_number, filename, status, reason, warnings
		FROM run_artifacts WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run artifacts: %w", err)
	}
	defer rows.Close()

	var results []domain.ArtifactResult
	for rows.Next() {
		var res domain.ArtifactResult
		var kind, status, reason, warnings string
		if err := rows.Scan(&res.ID, &kind, &res.ClientName, &res.CaseNumber,
			&res.Filename, &status, &reason, &warnings); err != nil {
			return nil, fmt.Errorf("scanning run artifact: %w", err)
		}
		res.Kind = domain.DocumentKind(kind)
		res.Status = domain.ArtifactStatus(status)
		if reason != "" {
			res.Err = errors.New(reason)
		}
		if err := json.Unmarshal([]byte(warnings), &res.Warnings); err != nil {
			return nil, fmt.Errorf("unmarshalling warnings: %w", err)
		}
		if len(res.Warnings) == 0 {
			res.Warnings = nil
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
