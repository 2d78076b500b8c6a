package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	portsrepo "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/repositories"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetFulfilmentCounts returns shift counts by lifecycle bucket for an organization.
func (r *PgxReportingRepository) GetFulfilmentCounts(ctx context.Context, orgID string) (int, int, int, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM shifts
		WHERE org_id = $1;
	`
	var total, assigned, completed int
	err := r.Pool.QueryRow(ctx, query, orgID, models.ShiftAssigned, models.ShiftCompleted).Scan(&total, &assigned, &completed)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count shifts for org %s: %w", orgID, err)
	}
	return total, assigned, completed, nil
}

// ListTimeToFillSamples returns one posting-to-assignment interval per accepted
// application of the organization's shifts. Rows without a reviewed_at fall
// back to created_at + 24h and are flagged as approximate.
func (r *PgxReportingRepository) ListTimeToFillSamples(ctx context.Context, orgID string) ([]domain.TimeToFillSample, error) {
	query := `
		SELECT a.shift_id, s.created_at, a.created_at, a.reviewed_at
		FROM shift_applications a
		JOIN shifts s ON s.shift_id = a.shift_id
		WHERE s.org_id = $1 AND a.status = $2;
	`
	rows, err := r.Pool.Query(ctx, query, orgID, models.ApplicationAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-to-fill samples for org %s: %w", orgID, err)
	}
	defer rows.Close()

	samples := make([]domain.TimeToFillSample, 0)
	for rows.Next() {
		var (
			shiftID        string
			shiftCreatedAt time.Time
			appCreatedAt   time.Time
			reviewedAt     *time.Time
		)
		if err := rows.Scan(&shiftID, &shiftCreatedAt, &appCreatedAt, &reviewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time-to-fill row: %w", err)
		}

		sample := domain.TimeToFillSample{ShiftID: shiftID}
		if reviewedAt != nil {
			sample.TimeToFill = reviewedAt.Sub(shiftCreatedAt)
		} else {
			sample.TimeToFill = appCreatedAt.Add(24 * time.Hour).Sub(shiftCreatedAt)
			sample.Approx = true
		}
		if sample.TimeToFill < 0 {
			sample.TimeToFill = 0
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time-to-fill rows: %w", err)
	}
	return samples, nil
}
