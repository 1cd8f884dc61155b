package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/user"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmployeeCode implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_code, password_hash, is_hr, created_at, updated_at
		FROM users
		WHERE employee_code = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&account.ID, &account.EmployeeID, &account.EmployeeCode,
		&account.PasswordHash, &account.IsHR, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return account, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_code, password_hash, is_hr, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.EmployeeID, &account.EmployeeCode,
		&account.PasswordHash, &account.IsHR, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return account, nil
}
