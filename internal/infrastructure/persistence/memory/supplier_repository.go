package memory

import (
	"cmp"
	"context"
	"sync"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"
)

var supplierComparators = map[string]func(a, b model.Supplier) int{
	"id":           func(a, b model.Supplier) int { return cmp.Compare(a.ID, b.ID) },
	"name":         func(a, b model.Supplier) int { return cmp.Compare(a.Name, b.Name) },
	"email":        func(a, b model.Supplier) int { return cmp.Compare(a.Email, b.Email) },
	"phone_number": func(a, b model.Supplier) int { return cmp.Compare(a.PhoneNumber, b.PhoneNumber) },
}

type SupplierRepository struct {
	mu     sync.RWMutex
	items  map[int64]model.Supplier
	nextID int64
	refs   *ReferenceStore
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(refs *ReferenceStore) *SupplierRepository {
	return &SupplierRepository{items: make(map[int64]model.Supplier), refs: refs}
}

func (r *SupplierRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *SupplierRepository) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(excludeID, func(s model.Supplier) bool { return s.Name == name }), nil
}

func (r *SupplierRepository) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(excludeID, func(s model.Supplier) bool { return s.Email == email }), nil
}

func (r *SupplierRepository) ExistsByPhoneNumber(_ context.Context, phoneNumber string, excludeID int64) (bool, error) {
	return r.exists(excludeID, func(s model.Supplier) bool { return s.PhoneNumber == phoneNumber }), nil
}

func (r *SupplierRepository) exists(excludeID int64, match func(model.Supplier) bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, s := range r.items {
		if id != excludeID && match(s) {
			return true
		}
	}
	return false
}

func (r *SupplierRepository) FindByID(_ context.Context, id int64) (*model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return &s, nil
}

func (r *SupplierRepository) FindAll(_ context.Context, q model.ListQuery) ([]*model.Supplier, error) {
	r.mu.RLock()
	rows := make([]model.Supplier, 0, len(r.items))
	for _, s := range r.items {
		rows = append(rows, s)
	}
	r.mu.RUnlock()

	rows = applyQuery(rows, q, func(s model.Supplier) int64 { return s.ID }, supplierComparators)
	out := make([]*model.Supplier, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *SupplierRepository) Save(_ context.Context, supplier *model.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if supplier.ID == 0 {
		r.nextID++
		supplier.ID = r.nextID
	} else if _, ok := r.items[supplier.ID]; !ok {
		return model.ErrRecordNotFound
	}
	r.items[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.items[id]; !ok {
		r.mu.Unlock()
		return model.ErrRecordNotFound
	}
	delete(r.items, id)
	r.mu.Unlock()

	if r.refs != nil {
		r.refs.detachSupplier(id)
	}
	return nil
}
