package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bettyia/clinic-scheduler/internal/cache"
	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
	"github.com/bettyia/clinic-scheduler/internal/httpresp"
	"github.com/bettyia/clinic-scheduler/internal/models"
	"github.com/bettyia/clinic-scheduler/internal/validators"
)

type PatientHandler struct {
	db     *gorm.DB
	config *config.Config
	cache  *cache.Cache
}

func NewPatientHandler(db *gorm.DB, cfg *config.Config, cc *cache.Cache) *PatientHandler {
	return &PatientHandler{db: db, config: cfg, cache: cc}
}

type CreatePatientRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
}

func patientCacheKey(id uint) string {
	return fmt.Sprintf("patient:%d", id)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
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
	if err := h.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Could not create patient.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_taken", "Email already registered")
		return
	}

	patient := models.Patient{
		FullName: req.FullName,
		Email:    email,
		Phone:    req.Phone,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_taken", "Email already registered")
			return
		}
		httperr.Internal(c, "failed_to_create_patient", "Could not create patient.")
		return
	}

	httpresp.Created(c, patient)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Patient id must be an integer.")
		return
	}

	var patient models.Patient
	if h.cache.GetJSON(c.Request.Context(), patientCacheKey(uint(id)), &patient) {
		httpresp.OK(c, patient)
		return
	}

	if err := h.db.First(&patient, id).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found")
		return
	}

	h.cache.SetJSON(c.Request.Context(), patientCacheKey(uint(id)), patient)

	httpresp.OK(c, patient)
}
