package visit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docvisit/practice-api/internal/handler"
	"github.com/docvisit/practice-api/internal/model"
)

type Service interface {
	List(ctx context.Context) ([]model.Visit, error)
	ListPage(ctx context.Context, patientID *int64, page, size int) (*model.Page, error)
	Schedule(ctx context.Context, req model.VisitRequest) (*model.Visit, error)
	Reschedule(ctx context.Context, id int64, req model.VisitRequest) (*model.Visit, error)
	Cancel(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/visits")
	{
		visits.GET("", h.ListVisits)
		visits.GET("/paged", h.ListVisitsPaged)
		visits.POST("", h.ScheduleVisit)
		visits.PUT("/:id", h.RescheduleVisit)
		visits.DELETE("/:id", h.CancelVisit)
	}
}

func (h *Handler) ListVisits(c *gin.Context) {
	visits, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(visits))
}

// ListVisitsPaged pages visits, newest slot first. The optional id query
// parameter filters by patient.
func (h *Handler) ListVisitsPaged(c *gin.Context) {
	page, size := handler.PageParams(c)

	var patientID *int64
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
			return
		}
		patientID = &id
	}

	result, err := h.service.ListPage(c.Request.Context(), patientID, page, size)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) ScheduleVisit(c *gin.Context) {
	var req model.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	visit, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/visits/%d", visit.ID))
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(visit))
}

func (h *Handler) RescheduleVisit(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	var req model.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	visit, err := h.service.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(visit))
}

func (h *Handler) CancelVisit(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
