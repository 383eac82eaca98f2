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

type SettingsHandler struct{ svc service.TenantService }

func NewSettingsHandler(svc service.TenantService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetSettings(c.Request.Context(), middleware.GetRestaurantID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar as definições"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SettingsHandler) UpdateAlertDays(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateAlertDays(c.Request.Context(), middleware.GetRestaurantID(c), req.AlertDays); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.Success("Definições atualizadas."))
}

func (h *SettingsHandler) UpdateName(c *gin.Context) {
	var req dto.UpdateNameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateName(c.Request.Context(), middleware.GetRestaurantID(c), req.Name); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.Success("Nome do restaurante atualizado."))
}

func (h *SettingsHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCategory(c.Request.Context(), middleware.GetRestaurantID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": resp})
}

func (h *SettingsHandler) UpdateCategoryAlerts(c *gin.Context) {
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryAlertRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.UpdateCategoryAlerts(c.Request.Context(), middleware.GetRestaurantID(c), categoryID, req)
	if err != nil {
		writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Alertas da categoria atualizados."))
}

func (h *SettingsHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), middleware.GetRestaurantID(c), categoryID); err != nil {
		writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Categoria removida."))
}

func (h *SettingsHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateLocation(c.Request.Context(), middleware.GetRestaurantID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "location": resp})
}

func (h *SettingsHandler) DeleteLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteLocation(c.Request.Context(), middleware.GetRestaurantID(c), locationID); err != nil {
		writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Localização removida."))
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

func writeSettingsError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCategoryNotFound) || errors.Is(err, service.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, dto.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
}
