package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"grocery/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

// Unique constraints per aggregate and the duplicate message each one reports.
var (
	producerUniqueConstraints = map[string]string{
		"producers_name_lower_key": model.MsgProducerNameExists,
	}

	supplierUniqueConstraints = map[string]string{
		"suppliers_name_key":         model.MsgSupplierNameExists,
		"suppliers_email_key":        model.MsgEmailExists,
		"suppliers_phone_number_key": model.MsgPhoneNumberExists,
	}
)

// duplicateError converts a unique violation into a DUPLICATE business error.
// It returns nil for any other error.
func duplicateError(err error, constraints map[string]string, fallback string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	message, ok := constraints[pgErr.ConstraintName]
	if !ok {
		message = fallback
	}
	return model.NewBusinessError(model.KindDuplicate, message)
}

// Whitelisted ORDER BY columns per aggregate. Keys are the declared sort fields.
var (
	orderSortColumns = map[string]string{
		"id":             "o.id",
		"created_date":   "o.created_date",
		"delivered_date": "o.delivered_date",
		"status":         "o.status",
		"customer_id":    "o.customer_id",
		"payment_id":     "o.payment_id",
	}

	producerSortColumns = map[string]string{
		"id":   "id",
		"name": "name",
	}

	supplierSortColumns = map[string]string{
		"id":           "id",
		"name":         "name",
		"email":        "email",
		"phone_number": "phone_number",
	}
)

// listClause renders ORDER BY and, for paged queries, LIMIT/OFFSET placeholders
// numbered after the query's existing args.
func listClause(q model.ListQuery, columns map[string]string, idColumn string, args []any) (string, []any) {
	clause := " ORDER BY " + idColumn
	if col, ok := columns[q.SortBy]; ok && col != idColumn {
		clause = " ORDER BY " + col + ", " + idColumn
	}
	if q.Paginate {
		clause += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, q.PageSize, q.Offset())
	}
	return clause, args
}

func closeRows(rows *sql.Rows, logger *zap.Logger) {
	if err := rows.Close(); err != nil {
		logger.Error("Failed to close rows", zap.Error(err))
	}
}

func rollback(tx *sql.Tx, logger *zap.Logger) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("Failed to rollback transaction", zap.Error(err))
	}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
