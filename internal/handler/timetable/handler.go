package timetable

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/timetable"
)

type Handler struct {
	service timetable.Service
}

func NewHandler(service timetable.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	slots := r.Group("/available_times")
	{
		slots.POST("/", h.CreateSlot)
		slots.GET("/:timetable_id", h.GetSlot)
		slots.PUT("/:timetable_id", h.UpdateSlot)
		slots.DELETE("/:timetable_id", h.DeleteSlot)
	}
}

func (h *Handler) CreateSlot(c *gin.Context) {
	var payload model.TimetableSlotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	id, err := h.service.CreateSlot(c.Request.Context(), &payload)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"message":      "Timetable record added successfully",
		"timetable_id": id,
	}))
}

func (h *Handler) GetSlot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("timetable_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid timetable ID"))
		return
	}

	slot, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slot))
}

func (h *Handler) UpdateSlot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("timetable_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid timetable ID"))
		return
	}

	var payload model.TimetableSlotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	if err := h.service.UpdateSlot(c.Request.Context(), id, &payload); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Timetable record updated successfully"))
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("timetable_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid timetable ID"))
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Timetable record deleted successfully"))
}
