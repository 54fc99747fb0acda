package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath/care-api/internal/handler"
	"github.com/brightpath/care-api/internal/middleware"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
	"github.com/brightpath/care-api/internal/service/appointment"
)

type Handler struct {
	svc  *appointment.Service
	auth *middleware.AuthMiddleware
}

func NewHandler(svc *appointment.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{svc: svc, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	appointments.Use(h.auth.Authenticate(), h.auth.RequireRole(model.RoleParent))
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.svc.Book(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrValidation):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
		default:
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	appointments, err := h.svc.ListForParent(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}
