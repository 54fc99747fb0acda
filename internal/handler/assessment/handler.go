package assessment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath/care-api/internal/handler"
	"github.com/brightpath/care-api/internal/middleware"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/service/intake"
)

type Handler struct {
	svc  *intake.Service
	auth *middleware.AuthMiddleware
}

func NewHandler(svc *intake.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{svc: svc, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/assessments",
		h.auth.Authenticate(),
		h.auth.RequireRole(model.RoleParent),
		h.SubmitAssessment,
	)
	r.GET("/parent/assessments",
		h.auth.Authenticate(),
		h.auth.RequireRole(model.RoleParent),
		h.ListParentAssessments,
	)
	r.GET("/doctor/assessments",
		h.auth.Authenticate(),
		h.auth.RequireRole(model.RoleDoctor),
		h.ListDoctorAssessments,
	)
}

func (h *Handler) SubmitAssessment(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrNotParent):
			c.JSON(http.StatusForbidden, handler.NewErrorResponse(err.Error()))
		case errors.Is(err, intake.ErrValidation):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(result))
}

func (h *Handler) ListParentAssessments(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	assessments, err := h.svc.ListForParent(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, intake.ErrNotParent) {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(assessments))
}

func (h *Handler) ListDoctorAssessments(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	assessments, err := h.svc.ListForDoctor(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(assessments))
}
