package doctor

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docvisit/practice-api/internal/handler"
	"github.com/docvisit/practice-api/internal/model"
)

type Service interface {
	List(ctx context.Context) ([]model.Doctor, error)
	ListPage(ctx context.Context, page, size int) (*model.Page, error)
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Create(ctx context.Context, req model.DoctorRequest) (*model.Doctor, error)
	Update(ctx context.Context, id int64, req model.DoctorRequest) (*model.Doctor, error)
	Delete(ctx context.Context, id int64, cascade bool) (*model.Doctor, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/paged", h.ListDoctorsPaged)
		doctors.GET("/:id", h.GetDoctor)
		doctors.POST("", h.CreateDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListDoctorsPaged(c *gin.Context) {
	page, size := handler.PageParams(c)
	result, err := h.service.ListPage(c.Request.Context(), page, size)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	doctor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/doctors/%d", doctor.ID))
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doctor))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

// DeleteDoctor answers 200 with the deleted record, unlike the patient
// endpoint which answers 204.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, ok := handler.PathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}
	cascade := c.Query("cascade") == "true"

	doctor, err := h.service.Delete(c.Request.Context(), id, cascade)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}
