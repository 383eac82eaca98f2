package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ClearStock/clearstock/internal/apierror"
	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

func (h *StockHandler) List(c *gin.Context) {
	batches, err := h.svc.List(c.Request.Context(), middleware.GetRestaurantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar o stock"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "batches": batches})
}

func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	msg, err := h.svc.Create(c.Request.Context(), middleware.GetRestaurantID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.Success(msg))
}

func (h *StockHandler) Update(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	var req dto.UpdateBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	msg, err := h.svc.Update(c.Request.Context(), middleware.GetRestaurantID(c), batchID, req)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(msg))
}

func (h *StockHandler) AdjustQuantity(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	var req dto.AdjustQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	msg, err := h.svc.AdjustQuantity(c.Request.Context(), middleware.GetRestaurantID(c), batchID, req.Adjustment)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(msg))
}

func (h *StockHandler) Delete(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	msg, err := h.svc.Delete(c.Request.Context(), middleware.GetRestaurantID(c), batchID)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(msg))
}

func parseBatchID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

func writeStockError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrBatchNotFound) {
		c.JSON(http.StatusNotFound, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
}
