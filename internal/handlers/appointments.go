package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/store"
	"clinic-booking-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments store.AppointmentStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments store.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	Name           string                `json:"name" binding:"required"`
	ImageURL       string                `json:"imageUrl" binding:"required"`
	Specialization models.Specialization `json:"specialization" binding:"required,oneof=Cardiologist Dermatologist Pediatrician Psychiatrist"`
	Experience     string                `json:"experience" binding:"required"`
	Location       string                `json:"location" binding:"required"`
	Date           *time.Time            `json:"date"`
	// pointers so a present zero is distinguishable from an absent field;
	// "required" on a bare numeric would reject 0 as missing
	Slots *int     `json:"slots" binding:"required"`
	Fee   *float64 `json:"fee" binding:"required"`
}

// Create handles creating a new appointment.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment := models.Appointment{
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Location:       req.Location,
		Slots:          *req.Slots,
		Fee:            *req.Fee,
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}

	if err := h.Appointments.Create(c.Request.Context(), &appointment); err != nil {
		if errors.Is(err, store.ErrInvalid) {
			utils.BadRequest(c, "Invalid appointment data")
			return
		}
		log.Printf("appointments: create: %v", err)
		utils.InternalServerError(c, "Failed to create appointment!")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// List handles fetching every appointment.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		log.Printf("appointments: list: %v", err)
		utils.InternalServerError(c, "Failed to fetch appointments!")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentRequest represents the request body for a partial update.
// Pointer fields distinguish "absent" from "set to zero"; absent fields must
// not overwrite stored values.
type UpdateAppointmentRequest struct {
	Name           *string                `json:"name"`
	ImageURL       *string                `json:"imageUrl"`
	Specialization *models.Specialization `json:"specialization" binding:"omitempty,oneof=Cardiologist Dermatologist Pediatrician Psychiatrist"`
	Experience     *string                `json:"experience"`
	Location       *string                `json:"location"`
	Date           *time.Time             `json:"date"`
	Slots          *int                   `json:"slots"`
	Fee            *float64               `json:"fee"`
}

// Update handles a partial update of the appointment matching :id.
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patch := store.AppointmentPatch{
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Location:       req.Location,
		Date:           req.Date,
		Slots:          req.Slots,
		Fee:            req.Fee,
	}

	appointment, err := h.Appointments.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, store.ErrInvalid):
			utils.BadRequest(c, "Invalid appointment data")
		default:
			log.Printf("appointments: update %q: %v", c.Param("id"), err)
			utils.InternalServerError(c, "Failed to update appointment!")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Delete handles removing the appointment matching :id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.Appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
			return
		}
		log.Printf("appointments: delete %q: %v", c.Param("id"), err)
		utils.InternalServerError(c, "Failed to delete appointment!")
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles filtered, optionally sorted fetches. All parameters are
// optional; an unknown specialization simply matches nothing and an unknown
// sort token applies no ordering.
func (h *AppointmentHandler) Search(c *gin.Context) {
	query := store.AppointmentQuery{
		Specialization: c.Query("specialization"),
		Name:           c.Query("name"),
		Sort:           store.ParseSort(c.Query("sort")),
	}

	appointments, err := h.Appointments.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("appointments: search: %v", err)
		utils.InternalServerError(c, "Failed to fetch appointments!")
		return
	}
	c.JSON(http.StatusOK, appointments)
}
