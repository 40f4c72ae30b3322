package memory

import (
	"cmp"
	"slices"

	"grocery/internal/domain/model"
)

// applyQuery orders rows by id, then stable-sorts them by the requested field
// and cuts the requested page. Rows tied on the field stay in id order.
func applyQuery[T any](rows []T, q model.ListQuery, id func(T) int64, fields map[string]func(a, b T) int) []T {
	slices.SortFunc(rows, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	if compare, ok := fields[q.SortBy]; ok {
		slices.SortStableFunc(rows, compare)
	}
	if !q.Paginate {
		return rows
	}
	start := q.Offset()
	if start >= len(rows) {
		return rows[:0]
	}
	end := min(start+q.PageSize, len(rows))
	return rows[start:end]
}
