package memory

import (
	"cmp"
	"context"
	"strings"
	"sync"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"
)

var producerComparators = map[string]func(a, b model.Producer) int{
	"id":   func(a, b model.Producer) int { return cmp.Compare(a.ID, b.ID) },
	"name": func(a, b model.Producer) int { return cmp.Compare(a.Name, b.Name) },
}

type ProducerRepository struct {
	mu     sync.RWMutex
	items  map[int64]model.Producer
	nextID int64
	refs   *ReferenceStore
}

var _ repository.ProducerRepository = (*ProducerRepository)(nil)

// NewProducerRepository builds an empty store. When refs is set, deleting a
// producer clears it from the products that referenced it.
func NewProducerRepository(refs *ReferenceStore) *ProducerRepository {
	return &ProducerRepository{items: make(map[int64]model.Producer), refs: refs}
}

func (r *ProducerRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *ProducerRepository) ExistsByNameIgnoreCase(_ context.Context, name string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, p := range r.items {
		if id != excludeID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProducerRepository) FindByID(_ context.Context, id int64) (*model.Producer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return &p, nil
}

func (r *ProducerRepository) FindAll(_ context.Context, q model.ListQuery) ([]*model.Producer, error) {
	r.mu.RLock()
	rows := make([]model.Producer, 0, len(r.items))
	for _, p := range r.items {
		rows = append(rows, p)
	}
	r.mu.RUnlock()

	rows = applyQuery(rows, q, func(p model.Producer) int64 { return p.ID }, producerComparators)
	out := make([]*model.Producer, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *ProducerRepository) Save(_ context.Context, producer *model.Producer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if producer.ID == 0 {
		r.nextID++
		producer.ID = r.nextID
	} else if _, ok := r.items[producer.ID]; !ok {
		return model.ErrRecordNotFound
	}
	r.items[producer.ID] = *producer
	return nil
}

func (r *ProducerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.items[id]; !ok {
		r.mu.Unlock()
		return model.ErrRecordNotFound
	}
	delete(r.items, id)
	r.mu.Unlock()

	if r.refs != nil {
		r.refs.detachProducer(id)
	}
	return nil
}
