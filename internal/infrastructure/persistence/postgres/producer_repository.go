package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

type ProducerRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ repository.ProducerRepository = (*ProducerRepository)(nil)

func NewProducerRepository(db *sql.DB, logger *zap.Logger) *ProducerRepository {
	return &ProducerRepository{db: db, logger: logger}
}

func (r *ProducerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM producers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check producer existence: %w", err)
	}
	return exists, nil
}

func (r *ProducerRepository) ExistsByNameIgnoreCase(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM producers WHERE lower(name) = lower($1) AND id <> $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check producer name: %w", err)
	}
	return exists, nil
}

func (r *ProducerRepository) FindByID(ctx context.Context, id int64) (*model.Producer, error) {
	var p model.Producer
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM producers WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get producer: %w", err)
	}
	return &p, nil
}

func (r *ProducerRepository) FindAll(ctx context.Context, q model.ListQuery) ([]*model.Producer, error) {
	clause, args := listClause(q, producerSortColumns, "id", nil)
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM producers`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	defer closeRows(rows, r.logger)

	producers := make([]*model.Producer, 0)
	for rows.Next() {
		var p model.Producer
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan producer: %w", err)
		}
		producers = append(producers, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate producers: %w", err)
	}
	return producers, nil
}

func (r *ProducerRepository) Save(ctx context.Context, producer *model.Producer) error {
	if producer.ID == 0 {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO producers (name) VALUES ($1) RETURNING id`, producer.Name).Scan(&producer.ID)
		if dup := duplicateError(err, producerUniqueConstraints, model.MsgProducerNameExists); dup != nil {
			return dup
		}
		if err != nil {
			return fmt.Errorf("failed to insert producer: %w", err)
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx, `UPDATE producers SET name = $1 WHERE id = $2`, producer.Name, producer.ID)
	if dup := duplicateError(err, producerUniqueConstraints, model.MsgProducerNameExists); dup != nil {
		return dup
	}
	if err != nil {
		return fmt.Errorf("failed to update producer: %w", err)
	}
	return requireAffected(res)
}

func (r *ProducerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM producers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete producer: %w", err)
	}
	return requireAffected(res)
}

// requireAffected turns a statement that touched no row into ErrRecordNotFound.
func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}
