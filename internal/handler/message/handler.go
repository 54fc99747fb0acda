package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath/care-api/internal/handler"
	"github.com/brightpath/care-api/internal/middleware"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/service/notification"
)

type Handler struct {
	svc  notification.Service
	auth *middleware.AuthMiddleware
}

func NewHandler(svc notification.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{svc: svc, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctor/messages",
		h.auth.Authenticate(),
		h.auth.RequireRole(model.RoleDoctor),
		h.ListDoctorMessages,
	)
}

// ListDoctorMessages returns the intake notices addressed to the
// calling doctor, newest first.
func (h *Handler) ListDoctorMessages(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	messages, err := h.svc.Inbox(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(messages))
}
