package postgresql

import (
	"context"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

type regularizationRepositoryImpl struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) regularization.RegularizationRepository {
	return &regularizationRepositoryImpl{db: db}
}

// GetByEmployee implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, reg_date, time_in, time_out, reason, created_at, updated_at
		FROM regularizations
		WHERE employee_id = $1
		ORDER BY reg_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []regularization.Regularization
	for rows.Next() {
		var (
			record  regularization.Regularization
			timeIn  string
			timeOut string
		)
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &timeIn, &timeOut,
			&record.Reason, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if record.TimeIn, err = timeutil.Parse(timeIn); err != nil {
			return nil, err
		}
		if record.TimeOut, err = timeutil.Parse(timeOut); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) Upsert(ctx context.Context, record regularization.Regularization) (regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO regularizations (id, employee_id, reg_date, time_in, time_out, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (employee_id, reg_date) DO UPDATE
		SET time_in = EXCLUDED.time_in,
		    time_out = EXCLUDED.time_out,
		    reason = EXCLUDED.reason,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date,
		record.TimeIn.String(), record.TimeOut.String(), record.Reason,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return regularization.Regularization{}, err
	}
	return record, nil
}
