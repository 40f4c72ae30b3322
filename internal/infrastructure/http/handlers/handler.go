package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgInvalidID    = "Invalid id"
	msgInvalidQuery = "Invalid query parameter"
	msgInternal     = "Internal server error"
)

// AggregateHandler exposes one aggregate manager over HTTP.
type AggregateHandler[C, U, R any] struct {
	manager repository.AggregateManager[C, U, R]
	name    string
	logger  *zap.Logger
}

func NewAggregateHandler[C, U, R any](manager repository.AggregateManager[C, U, R], name string, logger *zap.Logger) *AggregateHandler[C, U, R] {
	return &AggregateHandler[C, U, R]{manager: manager, name: name, logger: logger}
}

// Register mounts the CRUD and listing routes on group.
func (h *AggregateHandler[C, U, R]) Register(group *gin.RouterGroup) {
	group.POST("", h.Add)
	group.GET("", h.GetAll)
	group.GET("/sorted", h.GetListBySorting)
	group.GET("/paginated", h.GetListByPagination)
	group.GET("/paginated-sorted", h.GetListByPaginationAndSorting)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *AggregateHandler[C, U, R]) Add(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind request", zap.String("aggregate", h.name), zap.Error(err))
		c.JSON(http.StatusBadRequest, model.ErrorResult(msgInvalidBody))
		return
	}

	result, err := h.manager.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *AggregateHandler[C, U, R]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind request", zap.String("aggregate", h.name), zap.Error(err))
		c.JSON(http.StatusBadRequest, model.ErrorResult(msgInvalidBody))
		return
	}

	result, err := h.manager.Update(c.Request.Context(), req, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.manager.Delete(c.Request.Context(), model.DeleteRequest{ID: id})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.manager.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) GetAll(c *gin.Context) {
	result, err := h.manager.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) GetListBySorting(c *gin.Context) {
	result, err := h.manager.GetListBySorting(c.Request.Context(), c.Query("sortBy"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) GetListByPagination(c *gin.Context) {
	pageNo, pageSize, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.manager.GetListByPagination(c.Request.Context(), pageNo, pageSize)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) GetListByPaginationAndSorting(c *gin.Context) {
	pageNo, pageSize, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.manager.GetListByPaginationAndSorting(c.Request.Context(), pageNo, pageSize, c.Query("sortBy"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AggregateHandler[C, U, R]) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("Invalid id parameter", zap.String("aggregate", h.name), zap.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, model.ErrorResult(msgInvalidID))
		return 0, false
	}
	return id, true
}

// pageParams reads pageNo and pageSize. Range checks belong to the manager.
func (h *AggregateHandler[C, U, R]) pageParams(c *gin.Context) (int, int, bool) {
	pageNo, errNo := strconv.Atoi(c.Query("pageNo"))
	pageSize, errSize := strconv.Atoi(c.Query("pageSize"))
	if err := errors.Join(errNo, errSize); err != nil {
		h.logger.Warn("Invalid paging parameters", zap.String("aggregate", h.name), zap.Error(err))
		c.JSON(http.StatusBadRequest, model.ErrorResult(msgInvalidQuery))
		return 0, 0, false
	}
	return pageNo, pageSize, true
}

func (h *AggregateHandler[C, U, R]) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("aggregate", h.name), zap.Error(err))
		c.JSON(status, model.ErrorResult(msgInternal))
		return
	}

	var be *model.BusinessError
	errors.As(err, &be)
	c.JSON(status, model.ErrorResult(be.Message))
}

func statusFor(err error) int {
	switch model.KindOf(err) {
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindDuplicate:
		return http.StatusConflict
	case model.KindInvalidPage, model.KindInvalidPageSize, model.KindInvalidSortField, model.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
