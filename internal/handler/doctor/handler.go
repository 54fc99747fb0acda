package doctor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/handler"
	"github.com/brightpath/care-api/internal/middleware"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
	"github.com/brightpath/care-api/internal/service/doctor"
	"github.com/brightpath/care-api/internal/service/hospital"
)

type Handler struct {
	svc         *doctor.Service
	hospitalSvc *hospital.Service
	auth        *middleware.AuthMiddleware
}

func NewHandler(svc *doctor.Service, hospitalSvc *hospital.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{svc: svc, hospitalSvc: hospitalSvc, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("/:id", h.GetDoctor)
		doctors.POST("",
			h.auth.Authenticate(),
			h.auth.RequireRole(model.RoleHospitalAdmin, model.RoleSuperAdmin),
			h.CreateDoctor,
		)
	}

	testimonials := r.Group("/testimonials")
	{
		testimonials.POST("",
			h.auth.Authenticate(),
			h.auth.RequireRole(model.RoleParent),
			h.CreateTestimonial,
		)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	// The hospital's verified roster changed.
	h.hospitalSvc.InvalidateRoster(created.HospitalID)

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	detail, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(detail))
}

func (h *Handler) CreateTestimonial(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.svc.AddTestimonial(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}
