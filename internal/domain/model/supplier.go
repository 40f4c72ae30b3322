package model

// Supplier name, email and phone number are each unique.
type Supplier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=5,max=20"`
}

type UpdateSupplierRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=5,max=20"`
}

type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func NewSupplierResponse(s *Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email, PhoneNumber: s.PhoneNumber}
}
