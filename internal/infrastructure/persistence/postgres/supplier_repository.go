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

type SupplierRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(db *sql.DB, logger *zap.Logger) *SupplierRepository {
	return &SupplierRepository{db: db, logger: logger}
}

func (r *SupplierRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check supplier existence: %w", err)
	}
	return exists, nil
}

func (r *SupplierRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.existsBy(ctx, "name", name, excludeID)
}

func (r *SupplierRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.existsBy(ctx, "email", email, excludeID)
}

func (r *SupplierRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID int64) (bool, error) {
	return r.existsBy(ctx, "phone_number", phoneNumber, excludeID)
}

// existsBy is only called with the fixed column names above.
func (r *SupplierRepository) existsBy(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM suppliers WHERE ` + column + ` = $1 AND id <> $2)`
	if err := r.db.QueryRowContext(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check supplier %s: %w", column, err)
	}
	return exists, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone_number FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepository) FindAll(ctx context.Context, q model.ListQuery) ([]*model.Supplier, error) {
	clause, args := listClause(q, supplierSortColumns, "id", nil)
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, phone_number FROM suppliers`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer closeRows(rows, r.logger)

	suppliers := make([]*model.Supplier, 0)
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepository) Save(ctx context.Context, supplier *model.Supplier) error {
	if supplier.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
            INSERT INTO suppliers (name, email, phone_number)
            VALUES ($1, $2, $3)
            RETURNING id`,
			supplier.Name, supplier.Email, supplier.PhoneNumber,
		).Scan(&supplier.ID)
		if dup := duplicateError(err, supplierUniqueConstraints, model.MsgSupplierNameExists); dup != nil {
			return dup
		}
		if err != nil {
			return fmt.Errorf("failed to insert supplier: %w", err)
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
        UPDATE suppliers SET name = $1, email = $2, phone_number = $3
        WHERE id = $4`,
		supplier.Name, supplier.Email, supplier.PhoneNumber, supplier.ID)
	if dup := duplicateError(err, supplierUniqueConstraints, model.MsgSupplierNameExists); dup != nil {
		return dup
	}
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return requireAffected(res)
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return requireAffected(res)
}
