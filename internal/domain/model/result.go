package model

// Result is the envelope returned by every mutating operation.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// DataResult carries a payload on success. Failures never carry data.
type DataResult[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

func SuccessResult(message string) Result {
	return Result{Success: true, Message: message}
}

func ErrorResult(message string) Result {
	return Result{Success: false, Message: message}
}

func SuccessDataResult[T any](data T, message string) DataResult[T] {
	return DataResult[T]{Success: true, Message: message, Data: data}
}
