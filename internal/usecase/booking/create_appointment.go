package booking

import (
	"context"
	"time"

	"github.com/bettyia/clinic-scheduler/internal/audit"
	domain "github.com/bettyia/clinic-scheduler/internal/domain/booking"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
	"github.com/bettyia/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	StartTime time.Time
	EndTime   time.Time

	DoctorID          uint
	PatientID         uint
	OfficeID          uint
	AppointmentTypeID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Referenced rows must exist. Ownership of the
	//    office / appointment type is deliberately not
	//    checked.
	// --------------------------------------------------
	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if _, err := uc.repo.GetPatientByID(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if _, err := uc.repo.GetOfficeByID(ctx, in.OfficeID); err != nil {
		return nil, httperr.ErrBusiness("office_not_found")
	}

	if _, err := uc.repo.GetAppointmentTypeByID(ctx, in.AppointmentTypeID); err != nil {
		return nil, httperr.ErrBusiness("appointment_type_not_found")
	}

	// --------------------------------------------------
	// 2. Availability: no stored appointment for this
	//    doctor may overlap the candidate interval. The
	//    weekly Schedule rows are not consulted here.
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForDoctor(ctx, in.DoctorID, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	for _, other := range existing {
		if domain.Overlaps(other.StartTime, other.EndTime, in.StartTime, in.EndTime) {
			uc.dispatchConflict(in)
			return nil, httperr.ErrBusiness("doctor_unavailable")
		}
	}

	// --------------------------------------------------
	// 3. Conflict scan + insert, atomically. The scan
	//    above is advisory; this one holds the locks.
	// --------------------------------------------------
	ap := &models.Appointment{
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		DoctorID:          in.DoctorID,
		PatientID:         in.PatientID,
		OfficeID:          in.OfficeID,
		AppointmentTypeID: in.AppointmentTypeID,
	}

	if err := uc.repo.CreateAppointmentExclusive(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "doctor_unavailable") || httperr.IsExclusionConflict(err) {
			uc.dispatchConflict(in)
			return nil, httperr.ErrBusiness("doctor_unavailable")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit trail
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(in CreateAppointmentInput) {
	uc.audit.Dispatch(audit.Event{
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"doctor_id": in.DoctorID,
			"start":     in.StartTime,
			"end":       in.EndTime,
		},
	})
}
