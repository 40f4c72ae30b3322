// Package pagination guards listing parameters before they reach a store.
package pagination

import (
	"grocery/internal/domain/model"
)

// ValidatePageNo rejects negative page numbers. Pages are zero-based.
func ValidatePageNo(pageNo int) error {
	if pageNo < 0 {
		return model.NewBusinessError(model.KindInvalidPage, model.MsgPageNumberNegative)
	}
	return nil
}

// ValidatePageSize rejects page sizes below one.
func ValidatePageSize(pageSize int) error {
	if pageSize < 1 {
		return model.NewBusinessError(model.KindInvalidPageSize, model.MsgPageSizeNegative)
	}
	return nil
}

// ValidateSortField checks sortBy against the aggregate's declared attributes.
func ValidateSortField(sortBy string, fields map[string]bool) error {
	if !fields[sortBy] {
		return model.NewBusinessError(model.KindInvalidSortField, model.MsgSortFieldInvalid)
	}
	return nil
}

// Sorted builds a validated query sorted by one field.
func Sorted(sortBy string, fields map[string]bool) (model.ListQuery, error) {
	if err := ValidateSortField(sortBy, fields); err != nil {
		return model.ListQuery{}, err
	}
	return model.ListQuery{SortBy: sortBy}, nil
}

// Paged builds a validated query for one page in id order.
func Paged(pageNo, pageSize int) (model.ListQuery, error) {
	if err := ValidatePageNo(pageNo); err != nil {
		return model.ListQuery{}, err
	}
	if err := ValidatePageSize(pageSize); err != nil {
		return model.ListQuery{}, err
	}
	return model.ListQuery{Paginate: true, PageNo: pageNo, PageSize: pageSize}, nil
}

// PagedSorted validates page number, page size and sort field, in that order.
func PagedSorted(pageNo, pageSize int, sortBy string, fields map[string]bool) (model.ListQuery, error) {
	q, err := Paged(pageNo, pageSize)
	if err != nil {
		return model.ListQuery{}, err
	}
	if err := ValidateSortField(sortBy, fields); err != nil {
		return model.ListQuery{}, err
	}
	q.SortBy = sortBy
	return q, nil
}
