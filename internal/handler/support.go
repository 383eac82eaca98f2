package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClearStock/clearstock/internal/apierror"
	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/service"
)

type SupportHandler struct{ svc service.SupportService }

func NewSupportHandler(svc service.SupportService) *SupportHandler {
	return &SupportHandler{svc: svc}
}

func (h *SupportHandler) Submit(c *gin.Context) {
	var req dto.SupportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Submit(c.Request.Context(), middleware.GetRestaurantID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao enviar o pedido de suporte"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
