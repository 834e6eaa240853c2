package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// accountColumns — единый список колонок таблицы accounts,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const accountColumns = `
id, username, email, password_hash, refresh_token_hash, name,
avatar_key, avatar_url, weight_kg, height_cm, age, gender, goal,
created_at, updated_at
`

// scanAccount сканирует одну строку аккаунта в доменную модель
// с корректными кастами типов (SMALLINT -> enum, INT -> uint32).
func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	var age *int32
	var gender, goal int16

	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.RefreshTokenHash,
		&account.Name,
		&account.AvatarKey,
		&account.AvatarURL,
		&account.WeightKg,
		&account.HeightCm,
		&age,
		&gender,
		&goal,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if age != nil && *age >= 0 {
		v := uint32(*age)
		account.Age = &v
	}

	account.Gender = models.Gender(gender)
	account.Goal = models.Goal(goal)

	return &account, nil
}

// SaveAccount создаёт новый аккаунт в БД.
func (s *Storage) SaveAccount(ctx context.Context, account *models.Account) error {
	const op = "storage.postgres.SaveAccount"

	query := `
		INSERT INTO accounts(id, username, email, password_hash, name, gender, goal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Name,
		int16(account.Gender),
		int16(account.Goal),
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AccountByUsername находит аккаунт по username.
func (s *Storage) AccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	const op = "storage.postgres.AccountByUsername"

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`

	account, err := scanAccount(s.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// AccountByID находит аккаунт по ID.
func (s *Storage) AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	const op = "storage.postgres.AccountByID"

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// UpdateRefreshTokenHash перезаписывает хэш действующего refresh-токена.
// nil сбрасывает сессию (все будущие попытки ротации получат Access Denied).
func (s *Storage) UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error {
	const op = "storage.postgres.UpdateRefreshTokenHash"

	query := `
		UPDATE accounts
		SET refresh_token_hash = $2, updated_at = now()
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdateAccount выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Ошибки: storage.ErrNotFound при отсутствии записи,
// storage.ErrAlreadyExists при конфликте уникальности email.
func (s *Storage) UpdateAccount(ctx context.Context, id uuid.UUID, update storage.AccountUpdate) (*models.Account, error) {
	const op = "storage.postgres.UpdateAccount"

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 8)
	args = append(args, id)
	count := 1

	if update.Name != nil {
		count++
		sets = append(sets, fmt.Sprintf("name = $%d", count))
		args = append(args, *update.Name)
	}

	if update.Email != nil {
		count++
		sets = append(sets, fmt.Sprintf("email = $%d", count))
		args = append(args, *update.Email)
	}

	if update.WeightKg != nil {
		count++
		sets = append(sets, fmt.Sprintf("weight_kg = $%d", count))
		args = append(args, *update.WeightKg)
	}

	if update.HeightCm != nil {
		count++
		sets = append(sets, fmt.Sprintf("height_cm = $%d", count))
		args = append(args, *update.HeightCm)
	}

	if update.Age != nil {
		count++
		sets = append(sets, fmt.Sprintf("age = $%d", count))
		args = append(args, int32(*update.Age))
	}

	if update.Gender != nil {
		count++
		sets = append(sets, fmt.Sprintf("gender = $%d", count))
		args = append(args, int16(*update.Gender))
	}

	if update.Goal != nil {
		count++
		sets = append(sets, fmt.Sprintf("goal = $%d", count))
		args = append(args, int16(*update.Goal))
	}

	query := `UPDATE accounts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + accountColumns

	account, err := scanAccount(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// UpdateAvatar сохраняет ключ и публичный URL аватара.
func (s *Storage) UpdateAvatar(ctx context.Context, id uuid.UUID, key, url string) error {
	const op = "storage.postgres.UpdateAvatar"

	query := `
		UPDATE accounts
		SET avatar_key = $2, avatar_url = $3, updated_at = now()
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, id, key, url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
