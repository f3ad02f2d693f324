package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"colorbet/internal/model"
	"colorbet/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetUser retrieves a user by id
func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT id, username, balance, created_at FROM users WHERE id = $1`

	user := &model.User{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.Balance, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by its unique username
func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, balance, created_at FROM users WHERE username = $1`

	user := &model.User{}
	err := r.pool.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Balance, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new user with the given starting balance
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, username string, balance decimal.Decimal) (*model.User, error) {
	query := `
        INSERT INTO users (username, balance)
        VALUES ($1, $2)
        RETURNING id, username, balance, created_at`

	user := &model.User{}
	err := r.pool.QueryRow(ctx, query, username, balance).Scan(&user.ID, &user.Username, &user.Balance, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, model.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserForUpdate retrieves a user with row-level lock
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error) {
	query := `SELECT id, username, balance, created_at FROM users WHERE id = $1 FOR UPDATE`

	user := &model.User{}
	err := tx.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.Balance, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user for update: %w", err)
	}
	return user, nil
}

// UpdateBalance update user balance
func (r *UserRepositoryImpl) UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal, tx pgx.Tx) error {
	query := `UPDATE users SET balance = $1 WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
