// Package postgres implements the news repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	newsUC "newsdesk/internal/usecase/news"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// DB is the subset of database/sql used by the repository. It is satisfied by
// both *sql.DB and the circuit-breaker wrapper.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type NewsRepo struct {
	db DB
}

func NewNewsRepo(db DB) repository.NewsRepository {
	return &NewsRepo{db: db}
}

func (repo *NewsRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.News, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT id, author, title, text, publication_date, first_hand, created_at
FROM news`)

	args := make([]any, 0, 3)
	if q.TitleFilter != "" {
		args = append(args, "%"+q.TitleFilter+"%")
		sb.WriteString(fmt.Sprintf("\nWHERE title ILIKE $%d", len(args)))
	}

	if q.Ascending {
		sb.WriteString("\nORDER BY publication_date ASC")
	} else {
		sb.WriteString("\nORDER BY publication_date DESC")
	}

	args = append(args, q.Limit)
	sb.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)))
	args = append(args, q.Offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	rows, err := repo.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.News, 0, q.Limit)
	for rows.Next() {
		var item entity.News
		if err := rows.Scan(&item.ID, &item.Author, &item.Title, &item.Text,
			&item.PublicationDate, &item.FirstHand, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (repo *NewsRepo) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	const query = `
SELECT id, author, title, text, publication_date, first_hand, created_at
FROM news
WHERE id = $1
LIMIT 1`
	var item entity.News
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Author, &item.Title, &item.Text,
			&item.PublicationDate, &item.FirstHand, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &item, nil
}

func (repo *NewsRepo) GetByTitle(ctx context.Context, title string) (*entity.News, error) {
	const query = `
SELECT id, author, title, text, publication_date, first_hand, created_at
FROM news
WHERE title = $1
LIMIT 1`
	var item entity.News
	err := repo.db.QueryRowContext(ctx, query, title).
		Scan(&item.ID, &item.Author, &item.Title, &item.Text,
			&item.PublicationDate, &item.FirstHand, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByTitle: %w", err)
	}
	return &item, nil
}

func (repo *NewsRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM news`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) Create(ctx context.Context, news *entity.News) error {
	const query = `
INSERT INTO news (author, title, text, publication_date, first_hand)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		news.Author, news.Title, news.Text, news.PublicationDate, news.FirstHand,
	).Scan(&news.ID, &news.CreatedAt)
	if err != nil {
		// A concurrent writer can slip past the use-case title check; the
		// unique constraint reports it as a conflict, not a server error.
		if isUniqueViolation(err) {
			return newsUC.ErrDuplicateTitle(news.Title)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *NewsRepo) Update(ctx context.Context, news *entity.News) error {
	const query = `
UPDATE news SET
       author           = $1,
       title            = $2,
       text             = $3,
       publication_date = $4,
       first_hand       = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		news.Author, news.Title, news.Text, news.PublicationDate,
		news.FirstHand, news.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return newsUC.ErrDuplicateTitle(news.Title)
		}
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *NewsRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM news WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
