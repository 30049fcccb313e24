package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWardService() (*WardService, *fakeWardRepo, *fakePatientRepo) {
	wardRepo := newFakeWardRepo()
	patientRepo := newFakePatientRepo(wardRepo)
	return NewWardService(wardRepo, patientRepo), wardRepo, patientRepo
}

func createTestPatient(t *testing.T, repo *fakePatientRepo, gender string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		PatientNo: "PAT-" + uuid.New().String()[:8],
		FirstName: "Test",
		LastName:  "Patient",
		Gender:    gender,
	}
	require.NoError(t, repo.Create(context.Background(), patient))
	return patient
}

func TestCreateWard(t *testing.T) {
	svc, _, _ := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{
		Name:      "General Ward A",
		Type:      "General",
		TotalBeds: 3,
		DailyRate: 150.00,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, ward.TotalBeds)
	assert.Len(t, ward.Beds, 3)
	assert.Equal(t, 1, ward.Beds[0].BedNumber)
	assert.Equal(t, 3, ward.Beds[2].BedNumber)
	assert.Equal(t, 3, ward.AvailableBeds())
	assert.Equal(t, 0, ward.OccupiedBeds())
	assert.Equal(t, int64(15000), ward.DailyRate)
}

func TestCreateWardRejectsZeroBeds(t *testing.T) {
	svc, _, _ := setupWardService()

	_, err := svc.CreateWard(context.Background(), &CreateWardInput{
		Name:      "Empty Ward",
		TotalBeds: 0,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateWardRejectsUnknownType(t *testing.T) {
	svc, _, _ := setupWardService()

	_, err := svc.CreateWard(context.Background(), &CreateWardInput{
		Name:      "Ward",
		Type:      "Penthouse",
		TotalBeds: 2,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAllocateBedAssignsLowestFreeBed(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 3})
	require.NoError(t, err)

	first := createTestPatient(t, patientRepo, "Male")
	second := createTestPatient(t, patientRepo, "Female")
	third := createTestPatient(t, patientRepo, "Male")

	bed, err := svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: first.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 1, bed.BedNumber)
	assert.True(t, bed.IsOccupied)
	assert.Equal(t, first.ID, *bed.PatientID)

	bed, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: second.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 2, bed.BedNumber)

	// Discharge bed 1 and readmit: the freed bed is reused before bed 3
	_, err = svc.ReleaseBed(ctx, ward.ID, 1)
	require.NoError(t, err)

	bed, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: third.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 1, bed.BedNumber)
}

func TestAllocateBedFullWard(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	occupant := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: occupant.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)

	turnedAway := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: turnedAway.ID, AdmissionDate: time.Now()})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Capacity accounting is unchanged by the rejected admission
	ward, err = svc.GetWard(ctx, ward.ID)
	require.NoError(t, err)
	assert.Equal(t, ward.TotalBeds, ward.OccupiedBeds()+ward.AvailableBeds())
	assert.Equal(t, 0, ward.AvailableBeds())
}

func TestAllocateBedRepeatAdmissionTakesNextBed(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 2})
	require.NoError(t, err)

	// Allocation is not deduplicated per patient: a repeated admission
	// occupies a second bed
	patient := createTestPatient(t, patientRepo, "Female")
	bed, err := svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 1, bed.BedNumber)

	bed, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 2, bed.BedNumber)
	assert.Equal(t, patient.ID, *bed.PatientID)
}

func TestAllocateBedRequiresAdmissionDate(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	patient := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAllocateBedStampsGivenAdmissionDate(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	// Backdated admissions are allowed; the bed carries the caller's date
	admitted := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	patient := createTestPatient(t, patientRepo, "Male")
	bed, err := svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: admitted})
	require.NoError(t, err)
	require.NotNil(t, bed.AdmissionDate)
	assert.Equal(t, admitted, *bed.AdmissionDate)
}

func TestAllocateBedHonorsGenderRestriction(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{
		Name:              "Womens Ward",
		TotalBeds:         2,
		GenderRestriction: "Female",
	})
	require.NoError(t, err)

	patient := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: time.Now()})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestReleaseBed(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 2})
	require.NoError(t, err)

	patient := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)

	bed, err := svc.ReleaseBed(ctx, ward.ID, 1)
	require.NoError(t, err)
	assert.False(t, bed.IsOccupied)
	assert.Nil(t, bed.PatientID)
	assert.Nil(t, bed.AdmissionDate)

	ward, err = svc.GetWard(ctx, ward.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, ward.AvailableBeds())
}

func TestReleaseBedAlreadyFree(t *testing.T) {
	svc, _, _ := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	_, err = svc.ReleaseBed(ctx, ward.ID, 1)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestReleaseBedUnknownBedNumber(t *testing.T) {
	svc, _, _ := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	_, err = svc.ReleaseBed(ctx, ward.ID, 5)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteWardWithOccupiedBeds(t *testing.T) {
	svc, _, patientRepo := setupWardService()
	ctx := context.Background()

	ward, err := svc.CreateWard(ctx, &CreateWardInput{Name: "Ward", TotalBeds: 1})
	require.NoError(t, err)

	patient := createTestPatient(t, patientRepo, "Male")
	_, err = svc.AllocateBed(ctx, &AllocateBedInput{WardID: ward.ID, PatientID: patient.ID, AdmissionDate: time.Now()})
	require.NoError(t, err)

	err = svc.DeleteWard(ctx, ward.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}
