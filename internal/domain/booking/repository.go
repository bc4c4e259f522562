package booking

import (
	"context"
	"time"

	"github.com/bettyia/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// -------- Patient --------
	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	// -------- Office --------
	GetOfficeByID(
		ctx context.Context,
		id uint,
	) (*models.Office, error)

	// -------- AppointmentType --------
	GetAppointmentTypeByID(
		ctx context.Context,
		id uint,
	) (*models.AppointmentType, error)

	// -------- Appointment (create / conflict) --------
	//
	// CreateAppointmentExclusive runs the conflict scan and the insert
	// in one transaction, locking the doctor's conflicting rows for the
	// duration, so two concurrent bookings for the same doctor cannot
	// both pass the check.
	CreateAppointmentExclusive(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
