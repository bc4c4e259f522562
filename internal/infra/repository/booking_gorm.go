package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bettyia/clinic-scheduler/internal/domain/booking"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
	"github.com/bettyia/clinic-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *BookingGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// --------------------------------------------------
// Office
// --------------------------------------------------

func (r *BookingGormRepository) GetOfficeByID(
	ctx context.Context,
	id uint,
) (*models.Office, error) {

	var office models.Office
	if err := r.db.WithContext(ctx).First(&office, id).Error; err != nil {
		return nil, err
	}
	return &office, nil
}

// --------------------------------------------------
// AppointmentType
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentTypeByID(
	ctx context.Context,
	id uint,
) (*models.AppointmentType, error) {

	var at models.AppointmentType
	if err := r.db.WithContext(ctx).First(&at, id).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointmentExclusive scans for conflicting appointments and inserts
// inside a single transaction. On postgres the scan takes FOR UPDATE row
// locks, so a concurrent booking for the same doctor blocks until this one
// commits; the exclusion constraint catches anything that still slips by.
func (r *BookingGormRepository) CreateAppointmentExclusive(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflictIDs []uint
		if err := r.conflictScan(tx, ap).Pluck("id", &conflictIDs).Error; err != nil {
			return err
		}

		if len(conflictIDs) > 0 {
			return httperr.ErrBusiness("doctor_unavailable")
		}

		return tx.Create(ap).Error
	})
}

// conflictScan builds the overlap query for ap's doctor and interval.
// postgres rejects FOR UPDATE combined with aggregates, so callers pluck
// conflicting ids instead of counting them.
func (r *BookingGormRepository) conflictScan(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	scan := tx.Model(&models.Appointment{})
	if tx.Dialector.Name() == "postgres" {
		scan = scan.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return scan.Where(
		"doctor_id = ? AND start_time < ? AND end_time > ?",
		ap.DoctorID,
		ap.EndTime,
		ap.StartTime,
	)
}

func (r *BookingGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND start_time < ? AND end_time > ?",
			doctorID, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
