package model

// Producer names are unique ignoring case.
type Producer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateProducerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateProducerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ProducerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewProducerResponse(p *Producer) ProducerResponse {
	return ProducerResponse{ID: p.ID, Name: p.Name}
}
