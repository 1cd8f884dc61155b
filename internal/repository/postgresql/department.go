package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

type departmentRepositoryImpl struct {
	db *database.DB

	// Fallback shift window for departments without explicit shift columns.
	defaultShiftStart timeutil.Time
	defaultShiftEnd   timeutil.Time
}

func NewDepartmentRepository(db *database.DB, defaultShiftStart, defaultShiftEnd timeutil.Time) department.DepartmentRepository {
	return &departmentRepositoryImpl{
		db:                db,
		defaultShiftStart: defaultShiftStart,
		defaultShiftEnd:   defaultShiftEnd,
	}
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, working_saturdays, shift_start, shift_end
		FROM departments
		WHERE id = $1
	`

	dept, err := r.scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, working_saturdays, shift_start, shift_end
		FROM departments
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		dept, err := r.scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepositoryImpl) scanDepartment(row pgx.Row) (department.Department, error) {
	var (
		dept             department.Department
		workingSaturdays []int32
		shiftStart       *string
		shiftEnd         *string
	)
	if err := row.Scan(&dept.ID, &dept.Name, &workingSaturdays, &shiftStart, &shiftEnd); err != nil {
		return department.Department{}, err
	}

	for _, ordinal := range workingSaturdays {
		dept.WorkingSaturdays = append(dept.WorkingSaturdays, int(ordinal))
	}

	dept.ShiftStart = r.defaultShiftStart
	dept.ShiftEnd = r.defaultShiftEnd
	if shiftStart != nil {
		parsed, err := timeutil.Parse(*shiftStart)
		if err != nil {
			return department.Department{}, err
		}
		dept.ShiftStart = parsed
	}
	if shiftEnd != nil {
		parsed, err := timeutil.Parse(*shiftEnd)
		if err != nil {
			return department.Department{}, err
		}
		dept.ShiftEnd = parsed
	}
	return dept, nil
}
