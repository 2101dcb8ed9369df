package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
)

const (
	InsertUser = `INSERT INTO USERS (id, username, email, password, role, status, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7);`
	InsertBankroll = `INSERT INTO BANKROLLS (user_id, initial_amount, current_amount, daily_risk_percent, return_multiplier)
						VALUES ($1, $2, $3, $4, $5);`
	GetUserByUsername = `SELECT id, username, email, password, role, status, created_at FROM USERS WHERE username=$1;`
	GetUsers          = `SELECT id, username, email, password, role, status, created_at FROM USERS ORDER BY created_at;`
	UpdateUserStatus  = `UPDATE USERS SET status = $1 WHERE id = $2;`
	CheckAdminExists  = `SELECT EXISTS(SELECT 1 FROM USERS WHERE role = 'ADMIN');`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

// AddUser - добавление пользователя и его банка в одной транзакции.
// Пользователь без банка существовать не должен (связь 1:1)
func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData, bankroll models.BankrollData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddUser. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.Exec(ctx, InsertUser, user.UserID, user.Username, user.Email, user.PasswordHash, user.Role, user.Status, user.CreatedAt)
	if err != nil {
		// Проверяем именно нарушение уникальности (код 23505)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = ErrAlreadyExists
			return err
		}
		return fmt.Errorf("failed to add user: %w", err)
	}

	_, err = tx.Exec(ctx, InsertBankroll, user.UserID, bankroll.InitialAmount, bankroll.CurrentAmount, bankroll.DailyRiskPercent, bankroll.ReturnMultiplier)
	if err != nil {
		return fmt.Errorf("failed to add bankroll: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("AddUser. Commit failed: %w", err)
	}

	return nil
}

func (s *UserDatabase) GetUserByUsername(ctx context.Context, username string) (*models.UserData, error) {
	var user models.UserData
	err := s.DB.Pool.QueryRow(ctx, GetUserByUsername, username).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserDatabase) GetUsers(ctx context.Context) ([]models.UserData, error) {
	var users []models.UserData
	rows, err := s.DB.Pool.Query(ctx, GetUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for rows.Next() {
		var (
			user      models.UserData
			createdAt time.Time
		)
		err := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Status,
			&createdAt,
		)
		if err != nil {
			return users, fmt.Errorf("failed scan user data: %w", err)
		}
		user.CreatedAt = createdAt
		users = append(users, user)
	}
	return users, err
}

// UpdateUserStatus - активация/деактивация учётной записи
func (s *UserDatabase) UpdateUserStatus(ctx context.Context, userID string, status string) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateUserStatus, status, userID)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// HasAdmin - проверка наличия учётной записи администратора (для начальной инициализации)
func (s *UserDatabase) HasAdmin(ctx context.Context) (bool, error) {
	var exist bool
	if err := s.DB.Pool.QueryRow(ctx, CheckAdminExists).Scan(&exist); err != nil {
		return false, fmt.Errorf("failed to check admin exists: %w", err)
	}
	return exist, nil
}
