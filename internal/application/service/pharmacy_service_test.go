package service

import (
	"context"
	"testing"
	"time"

	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPharmacyService() (*PharmacyService, *fakeMedicineRepo) {
	repo := newFakeMedicineRepo()
	return NewPharmacyService(repo), repo
}

func TestCreateMedicine(t *testing.T) {
	svc, _ := setupPharmacyService()

	medicine, err := svc.CreateMedicine(context.Background(), &CreateMedicineInput{
		Name:         "Paracetamol 500mg",
		Category:     "Analgesic",
		StockQty:     100,
		ReorderLevel: 20,
		UnitPrice:    0.50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, medicine.Code)
	assert.Equal(t, 100, medicine.StockQty)
	assert.Equal(t, int64(50), medicine.UnitPrice)
}

func TestCreateMedicineDuplicateCode(t *testing.T) {
	svc, _ := setupPharmacyService()
	ctx := context.Background()

	_, err := svc.CreateMedicine(ctx, &CreateMedicineInput{Code: "MED-AMOX250", Name: "Amoxicillin"})
	require.NoError(t, err)

	_, err = svc.CreateMedicine(ctx, &CreateMedicineInput{Code: "MED-AMOX250", Name: "Amoxicillin"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestAddStock(t *testing.T) {
	svc, _ := setupPharmacyService()
	ctx := context.Background()

	medicine, err := svc.CreateMedicine(ctx, &CreateMedicineInput{Name: "Ibuprofen", StockQty: 10})
	require.NoError(t, err)

	batch := "B-2026-09"
	expiry := time.Now().Add(365 * 24 * time.Hour)
	medicine, err = svc.AddStock(ctx, medicine.ID, &AddStockInput{
		Quantity:    40,
		BatchNumber: &batch,
		ExpiryDate:  &expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, medicine.StockQty)
	assert.Equal(t, "B-2026-09", *medicine.BatchNumber)

	_, err = svc.AddStock(ctx, medicine.ID, &AddStockInput{Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestReduceStockClampsAtZero(t *testing.T) {
	svc, _ := setupPharmacyService()
	ctx := context.Background()

	medicine, err := svc.CreateMedicine(ctx, &CreateMedicineInput{Name: "Insulin", StockQty: 5})
	require.NoError(t, err)

	medicine, err = svc.ReduceStock(ctx, medicine.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, medicine.StockQty)

	// Dispensing more than is on hand empties the stock instead of failing
	medicine, err = svc.ReduceStock(ctx, medicine.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, medicine.StockQty)
}

func TestSetStock(t *testing.T) {
	svc, _ := setupPharmacyService()
	ctx := context.Background()

	medicine, err := svc.CreateMedicine(ctx, &CreateMedicineInput{Name: "Saline", StockQty: 8})
	require.NoError(t, err)

	medicine, err = svc.SetStock(ctx, medicine.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, medicine.StockQty)

	// Zero is a valid overwrite, negatives are not
	medicine, err = svc.SetStock(ctx, medicine.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, medicine.StockQty)

	_, err = svc.SetStock(ctx, medicine.ID, -1)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetLowStockAndExpiring(t *testing.T) {
	svc, repo := setupPharmacyService()
	ctx := context.Background()

	soon := time.Now().Add(10 * 24 * time.Hour)
	farOff := time.Now().Add(400 * 24 * time.Hour)
	past := time.Now().Add(-5 * 24 * time.Hour)

	require.NoError(t, repo.Create(ctx, &entity.Medicine{
		Code: "MED-A", Name: "A", StockQty: 5, ReorderLevel: 20,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Medicine{
		Code: "MED-B", Name: "B", StockQty: 500, ReorderLevel: 20, ExpiryDate: &soon,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Medicine{
		Code: "MED-C", Name: "C", StockQty: 500, ReorderLevel: 20, ExpiryDate: &farOff,
	}))
	// Already expired; surfaces as Expired, never as expiring
	require.NoError(t, repo.Create(ctx, &entity.Medicine{
		Code: "MED-D", Name: "D", StockQty: 500, ReorderLevel: 20, ExpiryDate: &past,
	}))

	low, err := svc.GetLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "MED-A", low[0].Code)

	expiring, err := svc.GetExpiring(ctx, 30)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "MED-B", expiring[0].Code)
}
