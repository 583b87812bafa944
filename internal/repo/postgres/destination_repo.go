package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/perugo/perugo-api/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	// ListRecent returns the newest catalog rows first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]domain.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	// ReplaceAll swaps the whole catalog for the given rows in one
	// transaction. Seeding twice leaves exactly len(destinations) rows.
	ReplaceAll(ctx context.Context, destinations []domain.Destination) error
	Count(ctx context.Context) (int64, error)
}

type destinationRepository struct {
	pool *pgxpool.Pool
}

func NewDestinationRepository(pool *pgxpool.Pool) DestinationRepository {
	return &destinationRepository{pool: pool}
}

const destinationCols = `id, slug, name, location, type, price, duration, budget, image, description, expenses, created_at`

func (r *destinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT ` + destinationCols + ` FROM destinations ORDER BY name`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []domain.Destination
	index := make(map[int64]int)
	for rows.Next() {
		var d domain.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		index[d.ID] = len(destinations)
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const tq = `SELECT destination_id, name, price, duration FROM destination_tours ORDER BY id`
	trows, err := r.pool.Query(ctx, tq)
	if err != nil {
		return nil, err
	}
	defer trows.Close()

	for trows.Next() {
		var destID int64
		var t domain.Tour
		if err := trows.Scan(&destID, &t.Name, &t.Price, &t.Duration); err != nil {
			return nil, err
		}
		if i, ok := index[destID]; ok {
			destinations[i].Tours = append(destinations[i].Tours, t)
		}
	}

	return destinations, trows.Err()
}

func (r *destinationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Destination, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	const q = `SELECT ` + destinationCols + ` FROM destinations ORDER BY created_at DESC, id DESC LIMIT $1`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []domain.Destination
	var ids []int64
	index := make(map[int64]int)
	for rows.Next() {
		var d domain.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		index[d.ID] = len(destinations)
		ids = append(ids, d.ID)
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(destinations) == 0 {
		return destinations, nil
	}

	const tq = `SELECT destination_id, name, price, duration FROM destination_tours WHERE destination_id = ANY($1) ORDER BY id`
	trows, err := r.pool.Query(ctx, tq, ids)
	if err != nil {
		return nil, err
	}
	defer trows.Close()

	for trows.Next() {
		var destID int64
		var t domain.Tour
		if err := trows.Scan(&destID, &t.Name, &t.Price, &t.Duration); err != nil {
			return nil, err
		}
		if i, ok := index[destID]; ok {
			destinations[i].Tours = append(destinations[i].Tours, t)
		}
	}

	return destinations, trows.Err()
}

func (r *destinationRepository) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	const q = `SELECT ` + destinationCols + ` FROM destinations WHERE slug = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var d domain.Destination
	err := scanDestination(r.pool.QueryRow(ctx, q, slug), &d)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const tq = `SELECT destination_id, name, price, duration FROM destination_tours WHERE destination_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, tq, d.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var destID int64
		var t domain.Tour
		if err := rows.Scan(&destID, &t.Name, &t.Price, &t.Duration); err != nil {
			return nil, err
		}
		d.Tours = append(d.Tours, t)
	}

	return &d, rows.Err()
}

func (r *destinationRepository) ReplaceAll(ctx context.Context, destinations []domain.Destination) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM destination_tours`); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM destinations`); err != nil {
		return err
	}

	const insertDest = `
		INSERT INTO destinations (slug, name, location, type, price, duration, budget, image, description, expenses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	const insertTour = `
		INSERT INTO destination_tours (destination_id, name, price, duration)
		VALUES ($1, $2, $3, $4)`

	for _, d := range destinations {
		var id int64
		err := tx.QueryRow(ctx, insertDest,
			d.Slug, d.Name, d.Location, d.Type, d.Price, d.Duration, d.Budget, d.Image, d.Description, d.Expenses,
		).Scan(&id)
		if err != nil {
			return err
		}

		for _, t := range d.Tours {
			if _, err := tx.Exec(ctx, insertTour, id, t.Name, t.Price, t.Duration); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM destinations`).Scan(&count)
	return count, err
}

func scanDestination(row pgx.Row, d *domain.Destination) error {
	return row.Scan(
		&d.ID, &d.Slug, &d.Name, &d.Location, &d.Type, &d.Price, &d.Duration,
		&d.Budget, &d.Image, &d.Description, &d.Expenses, &d.CreatedAt,
	)
}
