package memory

import (
	"context"
	"sync"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"
)

// ReferenceStore keeps the customers, payments and products orders point to.
type ReferenceStore struct {
	mu        sync.RWMutex
	customers map[int64]model.Customer
	payments  map[int64]model.Payment
	products  map[int64]model.Product
	nextID    int64
}

var (
	_ repository.CustomerLookup = (*ReferenceStore)(nil)
	_ repository.PaymentLookup  = (*ReferenceStore)(nil)
	_ repository.ProductLookup  = (*ReferenceStore)(nil)
)

func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{
		customers: make(map[int64]model.Customer),
		payments:  make(map[int64]model.Payment),
		products:  make(map[int64]model.Product),
	}
}

func (s *ReferenceStore) assignID(id int64) int64 {
	if id != 0 {
		s.nextID = max(s.nextID, id)
		return id
	}
	s.nextID++
	return s.nextID
}

// AddCustomer stores c and returns its id, assigning one when c.ID is zero.
func (s *ReferenceStore) AddCustomer(c model.Customer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.assignID(c.ID)
	s.customers[c.ID] = c
	return c.ID
}

func (s *ReferenceStore) AddPayment(p model.Payment) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.assignID(p.ID)
	s.payments[p.ID] = p
	return p.ID
}

func (s *ReferenceStore) AddProduct(p model.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.assignID(p.ID)
	s.products[p.ID] = p
	return p.ID
}

func (s *ReferenceStore) GetCustomerByID(_ context.Context, id int64) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *ReferenceStore) GetPaymentByID(_ context.Context, id int64) (*model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetProductsByIDs returns the products that exist, in the order their ids were asked for.
func (s *ReferenceStore) GetProductsByIDs(_ context.Context, ids []int64) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ReferenceStore) detachProducer(producerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.products {
		if p.ProducerID != nil && *p.ProducerID == producerID {
			p.ProducerID = nil
			s.products[id] = p
		}
	}
}

func (s *ReferenceStore) detachSupplier(supplierID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			p.SupplierID = nil
			s.products[id] = p
		}
	}
}

// resolve expands stored ids into records. Ids that vanished keep only their id.
func (s *ReferenceStore) resolve(customerID, paymentID int64, productIDs []int64) (model.Customer, model.Payment, []model.Product) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[customerID]
	if !ok {
		customer = model.Customer{ID: customerID}
	}
	payment, ok := s.payments[paymentID]
	if !ok {
		payment = model.Payment{ID: paymentID}
	}
	products := make([]model.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := s.products[id]
		if !ok {
			p = model.Product{ID: id}
		}
		products = append(products, p)
	}
	return customer, payment, products
}
