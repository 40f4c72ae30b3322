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

const producerNamespace = "producer"

type ProducerManager struct {
	producerRepo repository.ProducerRepository
	cache        coordinator
	validator    *validation.Validator
	logger       *zap.Logger
}

func NewProducerManager(producerRepo repository.ProducerRepository, cache repository.Cache, validator *validation.Validator, logger *zap.Logger) *ProducerManager {
	return &ProducerManager{
		producerRepo: producerRepo,
		cache:        newCoordinator(cache, producerNamespace, logger),
		validator:    validator,
		logger:       logger,
	}
}

var _ repository.AggregateManager[model.CreateProducerRequest, model.UpdateProducerRequest, model.ProducerResponse] = (*ProducerManager)(nil)

func (m *ProducerManager) Add(ctx context.Context, req model.CreateProducerRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	name := strings.TrimSpace(req.Name)
	if err := rules.Run(ctx, m.nameIsFree(name, 0)); err != nil {
		return model.Result{}, err
	}

	producer := &model.Producer{Name: name}
	if err := m.producerRepo.Save(ctx, producer); err != nil {
		if model.KindOf(err) == model.KindDuplicate {
			m.logger.Warn("Producer rejected by unique constraint", zap.Error(err), zap.String("name", name))
			return model.Result{}, err
		}
		m.logger.Error("Failed to save producer", zap.Error(err), zap.String("name", name))
		return model.Result{}, fmt.Errorf("failed to save producer: %w", err)
	}
	if err := m.cache.evictAll(ctx); err != nil {
		m.logger.Error("Failed to invalidate producer cache", zap.Error(err), zap.Int64("producer_id", producer.ID))
		return model.Result{}, err
	}

	m.logger.Info("Producer added", zap.Int64("producer_id", producer.ID), zap.String("name", name))
	return model.SuccessResult(model.MsgProducerCreated), nil
}

func (m *ProducerManager) Update(ctx context.Context, req model.UpdateProducerRequest, id int64) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	name := strings.TrimSpace(req.Name)
	if err := rules.Run(ctx, m.producerExists(id), m.nameIsFree(name, id)); err != nil {
		return model.Result{}, err
	}

	producer := &model.Producer{ID: id, Name: name}
	if err := m.producerRepo.Save(ctx, producer); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		if model.KindOf(err) == model.KindDuplicate {
			m.logger.Warn("Producer rejected by unique constraint", zap.Error(err), zap.Int64("producer_id", id))
			return model.Result{}, err
		}
		m.logger.Error("Failed to update producer", zap.Error(err), zap.Int64("producer_id", id))
		return model.Result{}, fmt.Errorf("failed to update producer: %w", err)
	}
	if err := m.cache.evictRecord(ctx, id); err != nil {
		m.logger.Error("Failed to invalidate producer cache", zap.Error(err), zap.Int64("producer_id", id))
		return model.Result{}, err
	}

	m.logger.Info("Producer updated", zap.Int64("producer_id", id), zap.String("name", name))
	return model.SuccessResult(model.MsgProducerUpdated), nil
}

func (m *ProducerManager) Delete(ctx context.Context, req model.DeleteRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	if err := rules.Run(ctx, m.producerExists(req.ID)); err != nil {
		return model.Result{}, err
	}

	if err := m.producerRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		m.logger.Error("Failed to delete producer", zap.Error(err), zap.Int64("producer_id", req.ID))
		return model.Result{}, fmt.Errorf("failed to delete producer: %w", err)
	}
	if err := m.cache.evictRecord(ctx, req.ID); err != nil {
		m.logger.Error("Failed to invalidate producer cache", zap.Error(err), zap.Int64("producer_id", req.ID))
		return model.Result{}, err
	}

	m.logger.Info("Producer deleted", zap.Int64("producer_id", req.ID))
	return model.SuccessResult(model.MsgProducerDeleted), nil
}

func (m *ProducerManager) GetByID(ctx context.Context, id int64) (model.DataResult[model.ProducerResponse], error) {
	return readThrough(ctx, m.cache, m.cache.namespace, keyByID(id),
		func(ctx context.Context) (model.DataResult[model.ProducerResponse], error) {
			producer, err := m.producerRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, model.ErrRecordNotFound) {
					return model.DataResult[model.ProducerResponse]{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
				}
				return model.DataResult[model.ProducerResponse]{}, fmt.Errorf("failed to get producer: %w", err)
			}
			return model.SuccessDataResult(model.NewProducerResponse(producer), model.MsgProducerListed), nil
		})
}

func (m *ProducerManager) GetAll(ctx context.Context) (model.DataResult[[]model.ProducerResponse], error) {
	return m.list(ctx, keyAll, model.ListQuery{}, model.MsgProducersListed)
}

func (m *ProducerManager) GetListBySorting(ctx context.Context, sortBy string) (model.DataResult[[]model.ProducerResponse], error) {
	q, err := pagination.Sorted(sortBy, model.ProducerSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.ProducerResponse]{}, err
	}
	return m.list(ctx, keySorted(sortBy), q, model.MsgProducersSorted+sortBy)
}

func (m *ProducerManager) GetListByPagination(ctx context.Context, pageNo, pageSize int) (model.DataResult[[]model.ProducerResponse], error) {
	q, err := pagination.Paged(pageNo, pageSize)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.Int("page_no", pageNo), zap.Int("page_size", pageSize))
		return model.DataResult[[]model.ProducerResponse]{}, err
	}
	return m.list(ctx, keyPaged(pageNo, pageSize), q, model.MsgProducersPaginated)
}

func (m *ProducerManager) GetListByPaginationAndSorting(ctx context.Context, pageNo, pageSize int, sortBy string) (model.DataResult[[]model.ProducerResponse], error) {
	q, err := pagination.PagedSorted(pageNo, pageSize, sortBy, model.ProducerSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err),
			zap.Int("page_no", pageNo), zap.Int("page_size", pageSize), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.ProducerResponse]{}, err
	}
	return m.list(ctx, keyPagedSorted(pageNo, pageSize, sortBy), q, model.MsgProducersPagSorted+sortBy)
}

func (m *ProducerManager) list(ctx context.Context, key string, q model.ListQuery, message string) (model.DataResult[[]model.ProducerResponse], error) {
	return readThrough(ctx, m.cache, m.cache.listNamespace(), key,
		func(ctx context.Context) (model.DataResult[[]model.ProducerResponse], error) {
			producers, err := m.producerRepo.FindAll(ctx, q)
			if err != nil {
				return model.DataResult[[]model.ProducerResponse]{}, fmt.Errorf("failed to list producers: %w", err)
			}
			out := make([]model.ProducerResponse, 0, len(producers))
			for _, p := range producers {
				out = append(out, model.NewProducerResponse(p))
			}
			return model.SuccessDataResult(out, message), nil
		})
}

func (m *ProducerManager) WarmUp(ctx context.Context) (int, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	warmed := 0
	for _, p := range all.Data {
		if _, err := m.GetByID(ctx, p.ID); err != nil {
			m.logger.Warn("Failed to warm producer", zap.Error(err), zap.Int64("producer_id", p.ID))
			continue
		}
		warmed++
	}
	return warmed, nil
}

func (m *ProducerManager) producerExists(id int64) rules.Rule {
	return func(ctx context.Context) error {
		exists, err := m.producerRepo.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check producer existence: %w", err)
		}
		if !exists {
			m.logger.Warn("Producer not found", zap.Int64("producer_id", id))
			return model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		return nil
	}
}

func (m *ProducerManager) nameIsFree(name string, excludeID int64) rules.Rule {
	return func(ctx context.Context) error {
		taken, err := m.producerRepo.ExistsByNameIgnoreCase(ctx, name, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check producer name: %w", err)
		}
		if taken {
			m.logger.Warn("Producer name repeated", zap.String("name", name))
			return model.NewBusinessError(model.KindDuplicate, model.MsgProducerNameExists)
		}
		return nil
	}
}
