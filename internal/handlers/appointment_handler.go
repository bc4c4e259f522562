package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bettyia/clinic-scheduler/internal/domain/booking"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
	"github.com/bettyia/clinic-scheduler/internal/httpresp"
	ucBooking "github.com/bettyia/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateAppointment
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		createUC: createUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`

	DoctorID          uint `json:"doctor_id" binding:"required"`
	PatientID         uint `json:"patient_id" binding:"required"`
	OfficeID          uint `json:"office_id" binding:"required"`
	AppointmentTypeID uint `json:"appointment_type_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		DoctorID:          req.DoctorID,
		PatientID:         req.PatientID,
		OfficeID:          req.OfficeID,
		AppointmentTypeID: req.AppointmentTypeID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "doctor_unavailable"):
			httperr.BadRequest(c, "doctor_unavailable", "Doctor is not available at this time")
		case httperr.IsBusiness(err, "doctor_not_found"):
			httperr.NotFound(c, "doctor_not_found", "Doctor not found")
		case httperr.IsBusiness(err, "patient_not_found"):
			httperr.NotFound(c, "patient_not_found", "Patient not found")
		case httperr.IsBusiness(err, "office_not_found"):
			httperr.NotFound(c, "office_not_found", "Office not found")
		case httperr.IsBusiness(err, "appointment_type_not_found"):
			httperr.NotFound(c, "appointment_type_not_found", "Appointment type not found")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (appointments intersecting [start, end) for a doctor)
// ======================================================

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Doctor id must be an integer.")
		return
	}

	if _, err := h.repo.GetDoctorByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found")
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "start must be an RFC3339 timestamp.")
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "end must be an RFC3339 timestamp.")
		return
	}

	apps, err := h.repo.ListAppointmentsForDoctor(c.Request.Context(), uint(id), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, apps)
}
