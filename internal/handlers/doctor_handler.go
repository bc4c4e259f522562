package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bettyia/clinic-scheduler/internal/cache"
	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/domain/booking"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
	"github.com/bettyia/clinic-scheduler/internal/httpresp"
	"github.com/bettyia/clinic-scheduler/internal/media"
	"github.com/bettyia/clinic-scheduler/internal/models"
	"github.com/bettyia/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	db       *gorm.DB
	config   *config.Config
	cache    *cache.Cache
	uploader *media.Uploader
}

func NewDoctorHandler(
	db *gorm.DB,
	cfg *config.Config,
	cc *cache.Cache,
	uploader *media.Uploader,
) *DoctorHandler {
	return &DoctorHandler{
		db:       db,
		config:   cfg,
		cache:    cc,
		uploader: uploader,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Title          string `json:"title"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsapp_number"`
	UserID         uint   `json:"user_id" binding:"required"`
}

type CreateOfficeRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type CreateScheduleRequest struct {
	DayOfWeek booking.DayOfWeek `json:"day_of_week" binding:"required"`
	StartTime string            `json:"start_time" binding:"required"`
	EndTime   string            `json:"end_time" binding:"required"`
}

type CreateAppointmentTypeRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

func doctorCacheKey(id uint) string {
	return fmt.Sprintf("doctor:%d", id)
}

// ======================================================
// CREATE
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.StrictEmailChecks && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_taken", "Email already registered")
		return
	}

	// UserID is stored as given. Whether it references a real user, or a
	// user that already owns a doctor, is not verified.
	doctor := models.Doctor{
		FullName:       req.FullName,
		Title:          req.Title,
		Email:          email,
		Phone:          req.Phone,
		WhatsappNumber: req.WhatsappNumber,
		UserID:         req.UserID,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_taken", "Email already registered")
			return
		}
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	httpresp.Created(c, doctor)
}

// ======================================================
// GET (with nested offices / schedule / appointment types)
// ======================================================

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := h.doctorID(c)
	if !ok {
		return
	}

	var doctor models.Doctor
	if h.cache.GetJSON(c.Request.Context(), doctorCacheKey(id), &doctor) {
		httpresp.OK(c, doctor)
		return
	}

	if err := h.db.
		Preload("Offices").
		Preload("Schedule").
		Preload("AppointmentTypes").
		First(&doctor, id).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found")
		return
	}

	h.cache.SetJSON(c.Request.Context(), doctorCacheKey(id), doctor)

	httpresp.OK(c, doctor)
}

// ======================================================
// NESTED CREATES
// ======================================================

func (h *DoctorHandler) CreateOffice(c *gin.Context) {
	id, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	var req CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	office := models.Office{
		DoctorID: id,
		Name:     req.Name,
		Address:  req.Address,
	}

	if err := h.db.Create(&office).Error; err != nil {
		httperr.Internal(c, "failed_to_create_office", "Could not create office.")
		return
	}

	h.cache.Delete(c.Request.Context(), doctorCacheKey(id))

	httpresp.Created(c, office)
}

func (h *DoctorHandler) CreateSchedule(c *gin.Context) {
	id, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	schedule := models.Schedule{
		DoctorID:  id,
		DayOfWeek: string(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Could not create schedule.")
		return
	}

	h.cache.Delete(c.Request.Context(), doctorCacheKey(id))

	httpresp.Created(c, schedule)
}

func (h *DoctorHandler) CreateAppointmentType(c *gin.Context) {
	id, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	var req CreateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at := models.AppointmentType{
		DoctorID:        id,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
	}

	if err := h.db.Create(&at).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment_type", "Could not create appointment type.")
		return
	}

	h.cache.Delete(c.Request.Context(), doctorCacheKey(id))

	httpresp.Created(c, at)
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

func (h *DoctorHandler) UploadPhoto(c *gin.Context) {
	id, ok := h.requireDoctor(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_photo", "Could not read the photo.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("doctors/%d/photo.webp", id)
	url, err := h.uploader.UploadPhoto(c.Request.Context(), key, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Photo must be a jpeg, png or webp image.")
		return
	}

	if err := h.db.Model(&models.Doctor{}).
		Where("id = ?", id).
		Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not store the photo URL.")
		return
	}

	h.cache.Delete(c.Request.Context(), doctorCacheKey(id))

	httpresp.OK(c, gin.H{"photo_url": url})
}

// ======================================================
// HELPERS
// ======================================================

func (h *DoctorHandler) doctorID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Doctor id must be an integer.")
		return 0, false
	}
	return uint(id), true
}

// requireDoctor resolves the path id and confirms the doctor row exists.
func (h *DoctorHandler) requireDoctor(c *gin.Context) (uint, bool) {
	id, ok := h.doctorID(c)
	if !ok {
		return 0, false
	}

	var count int64
	if err := h.db.Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		httperr.Internal(c, "doctor_lookup_failed", "Could not look up doctor.")
		return 0, false
	}
	if count == 0 {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found")
		return 0, false
	}

	return id, true
}
