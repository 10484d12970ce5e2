package records

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/litterlens/pkg/pagination"
	"github.com/JaimeStill/litterlens/pkg/query"
	"github.com/JaimeStill/litterlens/pkg/repository"
)

const insertSQL = `
	INSERT INTO records(latitude, longitude, description, score, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a record repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "records"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Insert(ctx context.Context, rec NewRecord) (int64, error) {
	if rec.Status == "" {
		rec.Status = StatusPending
	}

	args := []any{
		rec.Latitude,
		rec.Longitude,
		rec.Description,
		rec.Score,
		rec.Status,
	}

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		return repository.QueryOne(ctx, tx, insertSQL, args, scanID)
	})
	if err != nil {
		return 0, repository.MapError(err, ErrStore)
	}

	r.logger.Info("record created", "id", id, "score", rec.Score)
	return id, nil
}

func (r *repo) Top(ctx context.Context, n int) ([]Record, error) {
	if n < 1 {
		n = r.pagination.DefaultLimit
	}

	q, args := query.NewBuilder(projection, topSort).BuildLimit(n)

	recs, err := repository.QueryMany(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrStore)
	}
	return recs, nil
}

func scanID(s repository.Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}
