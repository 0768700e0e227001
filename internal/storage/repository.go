package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/conversor/internal/domain/models"
	pq "github.com/lib/pq"
)

// MaxRecentLimit caps ListRecent.
const MaxRecentLimit = 100

// QuotesRepository defines contract for quote snapshot persistence.
type QuotesRepository interface {
	InsertQuote(ctx context.Context, q models.Quote) error
	InsertQuotesBatch(ctx context.Context, quotes []models.Quote) error
	ListRecent(ctx context.Context, from, to models.Currency, limit int) ([]models.Quote, error)
}

type quotesRepository struct {
	db *sql.DB
}

func NewQuotesRepository(db *sql.DB) QuotesRepository {
	return &quotesRepository{db: db}
}

// InsertQuote records a single quote snapshot.
func (r *quotesRepository) InsertQuote(ctx context.Context, q models.Quote) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotes (from_currency, to_currency, bid, rate, source, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, string(q.From), string(q.To), q.Bid, q.Rate, q.Source, q.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// InsertQuotesBatch inserts multiple quotes in a single transaction using COPY.
func (r *quotesRepository) InsertQuotesBatch(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"quotes",
		"from_currency",
		"to_currency",
		"bid",
		"rate",
		"source",
		"fetched_at",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, string(q.From), string(q.To), q.Bid, q.Rate, q.Source, q.FetchedAt); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListRecent returns the newest snapshots for a pair, newest first.
// limit is clamped to [1, MaxRecentLimit].
func (r *quotesRepository) ListRecent(ctx context.Context, from, to models.Currency, limit int) ([]models.Quote, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT from_currency, to_currency, bid, rate, source, fetched_at
		FROM quotes
		WHERE from_currency = $1 AND to_currency = $2
		ORDER BY fetched_at DESC
		LIMIT $3
	`, string(from), string(to), limit)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Quote, 0, limit)
	for rows.Next() {
		var q models.Quote
		var f, t string
		if err := rows.Scan(&f, &t, &q.Bid, &q.Rate, &q.Source, &q.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		q.From, q.To = models.Currency(f), models.Currency(t)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return out, nil
}
