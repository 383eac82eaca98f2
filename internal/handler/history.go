package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClearStock/clearstock/internal/apierror"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/service"
)

type HistoryHandler struct{ svc service.HistoryService }

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List returns events for ?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to
// the current month when no range is given.
func (h *HistoryHandler) List(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	if start == "" && end == "" {
		now := time.Now()
		resp, err := h.svc.ListMonth(c.Request.Context(), middleware.GetRestaurantID(c), now.Year(), int(now.Month()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar o histórico"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListRange(c.Request.Context(), middleware.GetRestaurantID(c), start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Month returns events for /history/:year/:month.
func (h *HistoryHandler) Month(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Mês inválido"))
		return
	}

	resp, err := h.svc.ListMonth(c.Request.Context(), middleware.GetRestaurantID(c), year, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
