package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Transact implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, fn)
}

// Create implements leave.LeaveRepository. The arbiter is the partial unique
// index leaves_employee_date_active_key on (employee_id, leave_date) WHERE
// status != 'cancelled': a racing insert for the same employee-date hits the
// conflict arm, returns no row and surfaces ErrLeaveAlreadyExists.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, employee_id, leave_date, status, remark, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (employee_id, leave_date) WHERE status != 'cancelled' DO NOTHING
		RETURNING id, employee_id, leave_date, status, remark, created_at, updated_at
	`

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		newLeave.ID, newLeave.EmployeeID, newLeave.Date, newLeave.Status, newLeave.Remark,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.Remark, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveAlreadyExists
		}
		return leave.Leave{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_date, status, remark, created_at, updated_at
		FROM leaves
		WHERE id = $1
	`

	var record leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.Remark, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return record, nil
}

// GetAllByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetAllByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_date, status, remark, created_at, updated_at
		FROM leaves
		WHERE employee_id = $1
		ORDER BY leave_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var record leave.Leave
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Status,
			&record.Remark, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetByEmployeeAndDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_date, status, remark, created_at, updated_at
		FROM leaves
		WHERE employee_id = $1 AND leave_date = $2
	`

	var record leave.Leave
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.Remark, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, updated leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, remark = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, updated.Status, updated.Remark, updated.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return err
	}
	return nil
}
