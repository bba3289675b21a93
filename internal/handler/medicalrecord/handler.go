package medicalrecord

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/medicalrecord"
)

type Handler struct {
	service medicalrecord.Service
}

func NewHandler(service medicalrecord.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/medical_records")
	{
		records.POST("/", h.CreateRecord)
		records.GET("/:patient_id", h.ListRecordsByPatient)
		records.PUT("/:record_id", h.UpdateRecord)
		records.DELETE("/:record_id", h.DeleteRecord)
	}
}

// CreateRecord inserts a record and echoes the submitted payload. The
// store-assigned record_id is not returned; callers discover it by listing
// the patient's records.
func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	if err := h.service.CreateRecord(c.Request.Context(), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(req))
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	recordID, err := strconv.ParseInt(c.Param("record_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	var req model.UpdateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	if err := h.service.UpdateRecord(c.Request.Context(), recordID, &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(req))
}

func (h *Handler) ListRecordsByPatient(c *gin.Context) {
	records, err := h.service.ListRecordsByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) DeleteRecord(c *gin.Context) {
	recordID, err := strconv.ParseInt(c.Param("record_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	if err := h.service.DeleteRecord(c.Request.Context(), recordID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
