package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/doctor"
)

type Handler struct {
	service doctor.Service
}

func NewHandler(service doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("/", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var payload model.DoctorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	id, err := h.service.CreateDoctor(c.Request.Context(), &payload)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"message":   "Doctor added successfully",
		"doctor_id": id,
	}))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doc, err := h.service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doc))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var payload model.DoctorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	if err := h.service.UpdateDoctor(c.Request.Context(), c.Param("id"), &payload); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Doctor information updated successfully"))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.service.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Doctor deleted successfully"))
}

// ListDoctors returns every doctor. An empty table is a success with an
// informational message, not an error.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	if len(doctors) == 0 {
		c.JSON(http.StatusOK, handler.NewMessageResponse("No doctors found."))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"doctors": doctors}))
}
