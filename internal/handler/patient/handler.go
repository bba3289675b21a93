package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/patient"
)

type Handler struct {
	service patient.Service
}

func NewHandler(service patient.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the patient endpoints. The group prefix repeats in
// the inner paths (/patients/patients...); existing clients depend on the
// doubled prefix, so it stays.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("/patients", h.CreatePatient)
		patients.GET("/patients", h.ListPatients)
		patients.GET("/patients/:id", h.GetPatient)
		patients.PUT("/patients/:id", h.UpdatePatient)
		patients.DELETE("/patients/:id", h.DeletePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var payload model.PatientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	id, err := h.service.CreatePatient(c.Request.Context(), &payload)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"message":    "Patient added successfully",
		"patient_id": id,
	}))
}

func (h *Handler) GetPatient(c *gin.Context) {
	p, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var payload model.PatientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindingErrorMessage(err)))
		return
	}

	if err := h.service.UpdatePatient(c.Request.Context(), c.Param("id"), &payload); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Patient information updated successfully"))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.service.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Patient deleted successfully"))
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	if len(patients) == 0 {
		c.JSON(http.StatusOK, handler.NewMessageResponse("No patients found."))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"patients": patients}))
}
