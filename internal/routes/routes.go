package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bettyia/clinic-scheduler/internal/audit"
	"github.com/bettyia/clinic-scheduler/internal/cache"
	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/handlers"
	infraRepo "github.com/bettyia/clinic-scheduler/internal/infra/repository"
	"github.com/bettyia/clinic-scheduler/internal/media"
	"github.com/bettyia/clinic-scheduler/internal/middleware"
	ucBooking "github.com/bettyia/clinic-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cc := cache.New(cfg)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(cfg)
	doctorHandler := handlers.NewDoctorHandler(db, cfg, cc, uploader)
	patientHandler := handlers.NewPatientHandler(db, cfg, cc)
	appointmentHandler := handlers.NewAppointmentHandler(bookingRepo, createAppointmentUC)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to BettyIA"})
	})

	r.POST("/users/", userHandler.Create)
	r.POST("/users/login", userHandler.Login)
	r.GET("/users/me", middleware.AuthMiddleware(cfg), userHandler.Me)

	r.GET("/admin/", adminHandler.Secret)

	r.POST("/doctors/", doctorHandler.Create)
	r.GET("/doctors/:id", doctorHandler.Get)
	r.POST("/doctors/:id/offices/", doctorHandler.CreateOffice)
	r.POST("/doctors/:id/schedules/", doctorHandler.CreateSchedule)
	r.POST("/doctors/:id/appointment_types/", doctorHandler.CreateAppointmentType)

	if uploader != nil {
		r.POST("/doctors/:id/photo", doctorHandler.UploadPhoto)
	}

	r.POST("/patients/", patientHandler.Create)
	r.GET("/patients/:id", patientHandler.Get)

	r.POST("/appointments/", appointmentHandler.Create)
	r.GET("/doctors/:id/appointments", appointmentHandler.ListForDoctor)
}
