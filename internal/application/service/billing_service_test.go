package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBillingService(t *testing.T) (*BillingService, *fakeBillRepo, *entity.Patient) {
	t.Helper()
	billRepo := newFakeBillRepo()
	patientRepo := newFakePatientRepo(nil)
	userRepo := newFakeUserRepo()

	user := &entity.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), user))

	patient := &entity.Patient{
		LinkedUserID: &user.ID,
		PatientNo:    "PAT-TEST0001",
		FirstName:    "Jane",
		LastName:     "Doe",
	}
	require.NoError(t, patientRepo.Create(context.Background(), patient))

	return NewBillingService(billRepo, patientRepo, userRepo), billRepo, patient
}

func createTestBill(t *testing.T, svc *BillingService, patientID uuid.UUID) *entity.Bill {
	t.Helper()
	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		PatientID: patientID,
		Discount:  5.00,
		Tax:       4.50,
		Items: []BillItemInput{
			{Description: "Consultation", Category: "Consultation", Quantity: 1, UnitPrice: 30.00},
			{Description: "X-Ray", Category: "Radiology", Quantity: 2, UnitPrice: 10.00},
		},
	})
	require.NoError(t, err)
	return bill
}

func TestCreateBillComputesTotals(t *testing.T) {
	svc, _, patient := setupBillingService(t)

	bill := createTestBill(t, svc, patient.ID)

	// subtotal 5000, minus 500 discount, plus 450 tax
	assert.Equal(t, int64(5000), bill.Subtotal)
	assert.Equal(t, int64(4950), bill.TotalAmount)
	assert.Equal(t, int64(0), bill.AmountPaid)
	assert.Equal(t, int64(4950), bill.Balance)
	assert.Equal(t, enum.PaymentStatusUnpaid, bill.PaymentStatus)
	assert.Len(t, bill.Items, 2)
}

func TestCreateBillRequiresItems(t *testing.T) {
	svc, _, patient := setupBillingService(t)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{PatientID: patient.ID})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateBillRejectsInvalidItem(t *testing.T) {
	svc, _, patient := setupBillingService(t)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		PatientID: patient.ID,
		Items:     []BillItemInput{{Description: "Bad", Quantity: 0, UnitPrice: 10.00}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateBillRequiresLinkedUser(t *testing.T) {
	billRepo := newFakeBillRepo()
	patientRepo := newFakePatientRepo(nil)
	userRepo := newFakeUserRepo()
	svc := NewBillingService(billRepo, patientRepo, userRepo)

	unlinked := &entity.Patient{PatientNo: "PAT-NOUSER01", FirstName: "No", LastName: "Account"}
	require.NoError(t, patientRepo.Create(context.Background(), unlinked))

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		PatientID: unlinked.ID,
		Items:     []BillItemInput{{Description: "Consultation", Quantity: 1, UnitPrice: 30.00}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateBillRejectsDanglingUserLink(t *testing.T) {
	billRepo := newFakeBillRepo()
	patientRepo := newFakePatientRepo(nil)
	userRepo := newFakeUserRepo()
	svc := NewBillingService(billRepo, patientRepo, userRepo)

	ghostID := uuid.New()
	patient := &entity.Patient{LinkedUserID: &ghostID, PatientNo: "PAT-GHOST001", FirstName: "Ghost", LastName: "Link"}
	require.NoError(t, patientRepo.Create(context.Background(), patient))

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		PatientID: patient.ID,
		Items:     []BillItemInput{{Description: "Consultation", Quantity: 1, UnitPrice: 30.00}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)

	bill, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		BillID: bill.ID,
		Amount: 20.00,
		Method: "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), bill.AmountPaid)
	assert.Equal(t, int64(2950), bill.Balance)
	assert.Equal(t, enum.PaymentStatusPartiallyPaid, bill.PaymentStatus)

	bill, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		BillID: bill.ID,
		Amount: 29.50,
		Method: "Card",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4950), bill.AmountPaid)
	assert.Equal(t, int64(0), bill.Balance)
	assert.Equal(t, enum.PaymentStatusPaid, bill.PaymentStatus)
	assert.Len(t, bill.Payments, 2)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)

	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		BillID: bill.ID,
		Amount: 60.00,
		Method: "Cash",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// The ledger is untouched by the rejected payment
	bill, err = svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bill.AmountPaid)
	assert.Equal(t, enum.PaymentStatusUnpaid, bill.PaymentStatus)
	assert.Empty(t, bill.Payments)
}

func TestRecordPaymentRejectsInvalidInput(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)

	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{BillID: bill.ID, Amount: -5, Method: "Cash"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{BillID: bill.ID, Amount: 5, Method: "Barter"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteBillOnlyWhenUnpaid(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)
	require.NoError(t, svc.DeleteBill(ctx, bill.ID))

	bill = createTestBill(t, svc, patient.ID)
	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{BillID: bill.ID, Amount: 10.00, Method: "Cash"})
	require.NoError(t, err)

	err = svc.DeleteBill(ctx, bill.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestAttachClaim(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)

	bill, err := svc.AttachClaim(ctx, &AttachClaimInput{
		BillID:        bill.ID,
		ClaimNumber:   "CLM-001",
		Provider:      "Jubilee Insurance",
		AmountClaimed: 40.00,
	})
	require.NoError(t, err)
	require.NotNil(t, bill.InsuranceClaim)
	assert.Equal(t, enum.ClaimStatusSubmitted, bill.InsuranceClaim.Status)
	assert.Equal(t, int64(4000), bill.InsuranceClaim.AmountClaimed)

	// Claims never move the payment ledger
	assert.Equal(t, int64(0), bill.AmountPaid)
	assert.Equal(t, enum.PaymentStatusUnpaid, bill.PaymentStatus)

	// A bill carries at most one claim
	_, err = svc.AttachClaim(ctx, &AttachClaimInput{
		BillID:        bill.ID,
		ClaimNumber:   "CLM-002",
		Provider:      "Other Insurance",
		AmountClaimed: 10.00,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestAttachClaimRejectsExcessAmount(t *testing.T) {
	svc, _, patient := setupBillingService(t)

	bill := createTestBill(t, svc, patient.ID)

	_, err := svc.AttachClaim(context.Background(), &AttachClaimInput{
		BillID:        bill.ID,
		ClaimNumber:   "CLM-003",
		Provider:      "Insurance",
		AmountClaimed: 99.00,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateClaimStatus(t *testing.T) {
	svc, _, patient := setupBillingService(t)
	ctx := context.Background()

	bill := createTestBill(t, svc, patient.ID)

	_, err := svc.UpdateClaimStatus(ctx, bill.ID, "Approved")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	_, err = svc.AttachClaim(ctx, &AttachClaimInput{
		BillID:        bill.ID,
		ClaimNumber:   "CLM-004",
		Provider:      "Insurance",
		AmountClaimed: 20.00,
	})
	require.NoError(t, err)

	bill, err = svc.UpdateClaimStatus(ctx, bill.ID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, enum.ClaimStatusApproved, bill.InsuranceClaim.Status)

	_, err = svc.UpdateClaimStatus(ctx, bill.ID, "Lost")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
