package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

const linkColumns = `link_id, user_id, title, url, icon, position, background_color, text_color, icon_color, created_at, updated_at`

type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetByID returns a link by id, or nil when absent. Ownership is checked
// by the caller.
func (r *LinkReadRepository) GetByID(ctx context.Context, linkID uuid.UUID) (*models.LinkDB, error) {
	const query = `
		SELECT ` + linkColumns + `
		FROM links
		WHERE link_id = $1
	`

	var link models.LinkDB
	err := r.db.GetContext(ctx, &link, query, linkID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUserID returns a user's links in display order. Creation time
// breaks position ties so the order stays stable.
func (r *LinkReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	const query = `
		SELECT ` + linkColumns + `
		FROM links
		WHERE user_id = $1
		ORDER BY position ASC, created_at ASC
	`

	var links []models.LinkDB
	err := r.db.SelectContext(ctx, &links, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(links),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return links, nil
}

type LinkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLinkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LinkWriteRepository {
	return &LinkWriteRepository{db: db, txGetter: txGetter}
}

func (r *LinkWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends a link at the end of the user's list: the position is
// max+1 over existing links (0 for the first). Two concurrent appends may
// compute the same position; ties only blur their mutual order.
func (r *LinkWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, url string, icon, backgroundColor, textColor, iconColor *string) (*models.LinkDB, error) {
	const query = `
		INSERT INTO links (link_id, user_id, title, url, icon, position, background_color, text_color, icon_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE((SELECT MAX(position) + 1 FROM links WHERE user_id = $2), 0),
			$6, $7, $8, NOW(), NOW())
		RETURNING ` + linkColumns + `
	`
	args := []any{uuid.New(), userID, title, url, icon, backgroundColor, textColor, iconColor}

	var link models.LinkDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Update applies a partial update to a link; nil patch fields keep the
// previous value. Returns nil when the link no longer exists.
func (r *LinkWriteRepository) Update(ctx context.Context, linkID uuid.UUID, patch models.LinkPatch) (*models.LinkDB, error) {
	const query = `
		UPDATE links
		SET title = COALESCE($2, title),
		    url = COALESCE($3, url),
		    icon = COALESCE($4, icon),
		    position = COALESCE($5, position),
		    background_color = COALESCE($6, background_color),
		    text_color = COALESCE($7, text_color),
		    icon_color = COALESCE($8, icon_color),
		    updated_at = NOW()
		WHERE link_id = $1
		RETURNING ` + linkColumns + `
	`
	args := []any{linkID, patch.Title, patch.URL, patch.Icon, patch.Position, patch.BackgroundColor, patch.TextColor, patch.IconColor}

	var link models.LinkDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, args...)

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
	return &link, nil
}

// Delete removes a link. Remaining positions are not renumbered; gaps are
// expected. Returns sql.ErrNoRows when nothing was deleted.
func (r *LinkWriteRepository) Delete(ctx context.Context, linkID uuid.UUID) error {
	const query = `
		DELETE FROM links
		WHERE link_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, linkID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkID},
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
