package postgresql

import (
	"context"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
)

type accessEventRepositoryImpl struct {
	db *database.DB
}

func NewAccessEventRepository(db *database.DB) attendance.AccessEventRepository {
	return &accessEventRepositoryImpl{db: db}
}

// GetForDateRange implements attendance.AccessEventRepository. The range is
// inclusive of both days; events come back in swipe order.
func (r *accessEventRepositoryImpl) GetForDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AccessEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, occurred_at, access_point
		FROM access_events
		WHERE employee_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.AccessEvent
	for rows.Next() {
		var ev attendance.AccessEvent
		if err := rows.Scan(&ev.EmployeeID, &ev.Timestamp, &ev.AccessPoint); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// GetForADay implements attendance.AccessEventRepository.
func (r *accessEventRepositoryImpl) GetForADay(ctx context.Context, employeeID string, date time.Time) ([]attendance.AccessEvent, error) {
	return r.GetForDateRange(ctx, employeeID, date, date)
}
