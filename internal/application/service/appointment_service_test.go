package service

import (
	"context"
	"testing"
	"time"

	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAppointmentService(t *testing.T) (*AppointmentService, *entity.Patient, *entity.Doctor) {
	t.Helper()
	appointmentRepo := newFakeAppointmentRepo()
	patientRepo := newFakePatientRepo(nil)
	doctorRepo := newFakeDoctorRepo()

	patient := &entity.Patient{PatientNo: "PAT-APPT0001", FirstName: "John", LastName: "Smith"}
	require.NoError(t, patientRepo.Create(context.Background(), patient))

	doctor := &entity.Doctor{FirstName: "Alice", LastName: "Wanjiru", Specialization: "Cardiology"}
	require.NoError(t, doctorRepo.Create(context.Background(), doctor))

	return NewAppointmentService(appointmentRepo, patientRepo, doctorRepo), patient, doctor
}

func TestCreateAppointment(t *testing.T) {
	svc, patient, doctor := setupAppointmentService(t)
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	appointment, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  "09:00-09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentStatusScheduled, appointment.Status)

	// The same doctor cannot be double booked for the slot
	_, err = svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  "09:00-09:30",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestAppointmentStatusTransitions(t *testing.T) {
	svc, patient, doctor := setupAppointmentService(t)
	ctx := context.Background()

	appointment, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00-10:30",
	})
	require.NoError(t, err)

	appointment, err = svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentStatusConfirmed, appointment.Status)

	appointment, err = svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatusCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentStatusCompleted, appointment.Status)

	// Completed is terminal
	_, err = svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatusCancelled, nil)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRescheduleAppointment(t *testing.T) {
	svc, patient, doctor := setupAppointmentService(t)
	ctx := context.Background()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	appointment, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  "11:00-11:30",
	})
	require.NoError(t, err)

	appointment, err = svc.RescheduleAppointment(ctx, appointment.ID, date, "14:00-14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:00-14:30", appointment.TimeSlot)

	// Cancelled appointments stay put
	_, err = svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatusCancelled, nil)
	require.NoError(t, err)

	_, err = svc.RescheduleAppointment(ctx, appointment.ID, date, "15:00-15:30")
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	svc, patient, doctor := setupAppointmentService(t)
	ctx := context.Background()
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	appointment, err := svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  "09:00-09:30",
	})
	require.NoError(t, err)

	_, err = svc.UpdateAppointmentStatus(ctx, appointment.ID, enum.AppointmentStatusCancelled, nil)
	require.NoError(t, err)

	_, err = svc.CreateAppointment(ctx, &CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  "09:00-09:30",
	})
	require.NoError(t, err)
}
