package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

// ErrUniqueViolation is returned when a write loses a race on a unique
// constraint (username, or provider account binding).
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `user_id, username, name, bio, about_me, avatar, image, created_at, updated_at`

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user holding a username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAccount resolves a (provider, provider account id) pair to its user,
// or nil when no account binds it.
func (r *UserReadRepository) GetByAccount(ctx context.Context, provider, providerAccountID string) (*models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.username, u.name, u.bio, u.about_me, u.avatar, u.image, u.created_at, u.updated_at
		FROM users u
		JOIN accounts a ON a.user_id = u.user_id
		WHERE a.provider = $1 AND a.provider_account_id = $2
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, provider, providerAccountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{provider, providerAccountID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveWithAccount creates a user and its wallet account binding in one
// statement. The unique constraint on (provider, provider_account_id)
// settles concurrent first contacts: the loser gets ErrUniqueViolation.
func (r *UserWriteRepository) SaveWithAccount(ctx context.Context, username, name, provider, providerAccountID string) (*models.UserDB, error) {
	const query = `
		WITH new_user AS (
			INSERT INTO users (user_id, username, name, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING ` + userColumns + `
		), new_account AS (
			INSERT INTO accounts (account_id, user_id, provider, provider_account_id, type, created_at)
			SELECT $4, user_id, $5, $6, $5, NOW() FROM new_user
		)
		SELECT ` + userColumns + ` FROM new_user
	`
	args := []any{uuid.New(), username, name, uuid.New(), provider, providerAccountID}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUsername atomically replaces the username; a concurrent claim of
// the same candidate surfaces as ErrUniqueViolation from the constraint.
func (r *UserWriteRepository) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update; nil patch fields keep the
// previous value.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name),
		    bio = COALESCE($3, bio),
		    about_me = COALESCE($4, about_me),
		    avatar = COALESCE($5, avatar),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{userID, patch.Name, patch.Bio, patch.AboutMe, patch.Avatar}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar stores a new avatar value (external URL or data URI).
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar string) error {
	const query = `
		UPDATE users
		SET avatar = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, avatar)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
