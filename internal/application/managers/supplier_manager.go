package managers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grocery/internal/application/pagination"
	"grocery/internal/application/rules"
	"grocery/internal/application/validation"
	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

const supplierNamespace = "supplier"

type SupplierManager struct {
	supplierRepo repository.SupplierRepository
	cache        coordinator
	validator    *validation.Validator
	logger       *zap.Logger
}

func NewSupplierManager(supplierRepo repository.SupplierRepository, cache repository.Cache, validator *validation.Validator, logger *zap.Logger) *SupplierManager {
	return &SupplierManager{
		supplierRepo: supplierRepo,
		cache:        newCoordinator(cache, supplierNamespace, logger),
		validator:    validator,
		logger:       logger,
	}
}

var _ repository.AggregateManager[model.CreateSupplierRequest, model.UpdateSupplierRequest, model.SupplierResponse] = (*SupplierManager)(nil)

func (m *SupplierManager) Add(ctx context.Context, req model.CreateSupplierRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	supplier := &model.Supplier{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}
	if err := rules.Run(ctx, m.uniqueFields(supplier, 0)...); err != nil {
		return model.Result{}, err
	}

	if err := m.supplierRepo.Save(ctx, supplier); err != nil {
		if model.KindOf(err) == model.KindDuplicate {
			m.logger.Warn("Supplier rejected by unique constraint", zap.Error(err), zap.String("name", supplier.Name))
			return model.Result{}, err
		}
		m.logger.Error("Failed to save supplier", zap.Error(err), zap.String("name", supplier.Name))
		return model.Result{}, fmt.Errorf("failed to save supplier: %w", err)
	}
	if err := m.cache.evictAll(ctx); err != nil {
		m.logger.Error("Failed to invalidate supplier cache", zap.Error(err), zap.Int64("supplier_id", supplier.ID))
		return model.Result{}, err
	}

	m.logger.Info("Supplier added", zap.Int64("supplier_id", supplier.ID), zap.String("name", supplier.Name))
	return model.SuccessResult(model.MsgSupplierCreated), nil
}

func (m *SupplierManager) Update(ctx context.Context, req model.UpdateSupplierRequest, id int64) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	supplier := &model.Supplier{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}
	checks := append([]rules.Rule{m.supplierExists(id)}, m.uniqueFields(supplier, id)...)
	if err := rules.Run(ctx, checks...); err != nil {
		return model.Result{}, err
	}

	if err := m.supplierRepo.Save(ctx, supplier); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		if model.KindOf(err) == model.KindDuplicate {
			m.logger.Warn("Supplier rejected by unique constraint", zap.Error(err), zap.Int64("supplier_id", id))
			return model.Result{}, err
		}
		m.logger.Error("Failed to update supplier", zap.Error(err), zap.Int64("supplier_id", id))
		return model.Result{}, fmt.Errorf("failed to update supplier: %w", err)
	}
	if err := m.cache.evictRecord(ctx, id); err != nil {
		m.logger.Error("Failed to invalidate supplier cache", zap.Error(err), zap.Int64("supplier_id", id))
		return model.Result{}, err
	}

	m.logger.Info("Supplier updated", zap.Int64("supplier_id", id), zap.String("name", supplier.Name))
	return model.SuccessResult(model.MsgSupplierUpdated), nil
}

func (m *SupplierManager) Delete(ctx context.Context, req model.DeleteRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	if err := rules.Run(ctx, m.supplierExists(req.ID)); err != nil {
		return model.Result{}, err
	}

	if err := m.supplierRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		m.logger.Error("Failed to delete supplier", zap.Error(err), zap.Int64("supplier_id", req.ID))
		return model.Result{}, fmt.Errorf("failed to delete supplier: %w", err)
	}
	if err := m.cache.evictRecord(ctx, req.ID); err != nil {
		m.logger.Error("Failed to invalidate supplier cache", zap.Error(err), zap.Int64("supplier_id", req.ID))
		return model.Result{}, err
	}

	m.logger.Info("Supplier deleted", zap.Int64("supplier_id", req.ID))
	return model.SuccessResult(model.MsgSupplierDeleted), nil
}

func (m *SupplierManager) GetByID(ctx context.Context, id int64) (model.DataResult[model.SupplierResponse], error) {
	return readThrough(ctx, m.cache, m.cache.namespace, keyByID(id),
		func(ctx context.Context) (model.DataResult[model.SupplierResponse], error) {
			supplier, err := m.supplierRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, model.ErrRecordNotFound) {
					return model.DataResult[model.SupplierResponse]{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
				}
				return model.DataResult[model.SupplierResponse]{}, fmt.Errorf("failed to get supplier: %w", err)
			}
			return model.SuccessDataResult(model.NewSupplierResponse(supplier), model.MsgSupplierListed), nil
		})
}

func (m *SupplierManager) GetAll(ctx context.Context) (model.DataResult[[]model.SupplierResponse], error) {
	return m.list(ctx, keyAll, model.ListQuery{}, model.MsgSuppliersListed)
}

func (m *SupplierManager) GetListBySorting(ctx context.Context, sortBy string) (model.DataResult[[]model.SupplierResponse], error) {
	q, err := pagination.Sorted(sortBy, model.SupplierSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.SupplierResponse]{}, err
	}
	return m.list(ctx, keySorted(sortBy), q, model.MsgSuppliersSorted+sortBy)
}

func (m *SupplierManager) GetListByPagination(ctx context.Context, pageNo, pageSize int) (model.DataResult[[]model.SupplierResponse], error) {
	q, err := pagination.Paged(pageNo, pageSize)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.Int("page_no", pageNo), zap.Int("page_size", pageSize))
		return model.DataResult[[]model.SupplierResponse]{}, err
	}
	return m.list(ctx, keyPaged(pageNo, pageSize), q, model.MsgSuppliersPaginated)
}

func (m *SupplierManager) GetListByPaginationAndSorting(ctx context.Context, pageNo, pageSize int, sortBy string) (model.DataResult[[]model.SupplierResponse], error) {
	q, err := pagination.PagedSorted(pageNo, pageSize, sortBy, model.SupplierSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err),
			zap.Int("page_no", pageNo), zap.Int("page_size", pageSize), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.SupplierResponse]{}, err
	}
	return m.list(ctx, keyPagedSorted(pageNo, pageSize, sortBy), q, model.MsgSuppliersPagSorted+sortBy)
}

func (m *SupplierManager) list(ctx context.Context, key string, q model.ListQuery, message string) (model.DataResult[[]model.SupplierResponse], error) {
	return readThrough(ctx, m.cache, m.cache.listNamespace(), key,
		func(ctx context.Context) (model.DataResult[[]model.SupplierResponse], error) {
			suppliers, err := m.supplierRepo.FindAll(ctx, q)
			if err != nil {
				return model.DataResult[[]model.SupplierResponse]{}, fmt.Errorf("failed to list suppliers: %w", err)
			}
			out := make([]model.SupplierResponse, 0, len(suppliers))
			for _, s := range suppliers {
				out = append(out, model.NewSupplierResponse(s))
			}
			return model.SuccessDataResult(out, message), nil
		})
}

func (m *SupplierManager) WarmUp(ctx context.Context) (int, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	warmed := 0
	for _, s := range all.Data {
		if _, err := m.GetByID(ctx, s.ID); err != nil {
			m.logger.Warn("Failed to warm supplier", zap.Error(err), zap.Int64("supplier_id", s.ID))
			continue
		}
		warmed++
	}
	return warmed, nil
}

// uniqueFields checks email, name and phone number, in that order.
func (m *SupplierManager) uniqueFields(s *model.Supplier, excludeID int64) []rules.Rule {
	return []rules.Rule{
		m.unique("email", s.Email, model.MsgEmailExists, func(ctx context.Context) (bool, error) {
			return m.supplierRepo.ExistsByEmail(ctx, s.Email, excludeID)
		}),
		m.unique("name", s.Name, model.MsgSupplierNameExists, func(ctx context.Context) (bool, error) {
			return m.supplierRepo.ExistsByName(ctx, s.Name, excludeID)
		}),
		m.unique("phone_number", s.PhoneNumber, model.MsgPhoneNumberExists, func(ctx context.Context) (bool, error) {
			return m.supplierRepo.ExistsByPhoneNumber(ctx, s.PhoneNumber, excludeID)
		}),
	}
}

func (m *SupplierManager) unique(field, value, message string, exists func(ctx context.Context) (bool, error)) rules.Rule {
	return func(ctx context.Context) error {
		taken, err := exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check supplier %s: %w", field, err)
		}
		if taken {
			m.logger.Warn("Supplier field repeated", zap.String("field", field), zap.String("value", value))
			return model.NewBusinessError(model.KindDuplicate, message)
		}
		return nil
	}
}

func (m *SupplierManager) supplierExists(id int64) rules.Rule {
	return func(ctx context.Context) error {
		exists, err := m.supplierRepo.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check supplier existence: %w", err)
		}
		if !exists {
			m.logger.Warn("Supplier not found", zap.Int64("supplier_id", id))
			return model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		return nil
	}
}
