package model

import "errors"

// ErrRecordNotFound is returned by repositories when a lookup by id finds nothing.
var ErrRecordNotFound = errors.New("record not found")

// ErrorKind classifies a BusinessError. Transports map each kind to a status.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindDuplicate        ErrorKind = "DUPLICATE"
	KindInvalidPage      ErrorKind = "INVALID_PAGE"
	KindInvalidPageSize  ErrorKind = "INVALID_PAGE_SIZE"
	KindInvalidSortField ErrorKind = "INVALID_SORT_FIELD"
	KindInvalidInput     ErrorKind = "INVALID_INPUT"
)

// BusinessError is the single error type raised by rules and managers.
// Two business errors match under errors.Is when their kinds are equal.
type BusinessError struct {
	Kind    ErrorKind
	Message string
}

// NewBusinessError returns a rule violation of the given kind carrying the user-facing message.
func NewBusinessError(kind ErrorKind, message string) *BusinessError {
	return &BusinessError{Kind: kind, Message: message}
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound         = NewBusinessError(KindNotFound, "not found")
	ErrDuplicate        = NewBusinessError(KindDuplicate, "duplicate")
	ErrInvalidPage      = NewBusinessError(KindInvalidPage, "invalid page number")
	ErrInvalidPageSize  = NewBusinessError(KindInvalidPageSize, "invalid page size")
	ErrInvalidSortField = NewBusinessError(KindInvalidSortField, "invalid sort field")
	ErrInvalidInput     = NewBusinessError(KindInvalidInput, "invalid input")
)

// KindOf returns the kind of the first BusinessError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
