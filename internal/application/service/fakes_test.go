package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/domain/entity"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// In-memory repository fakes used across the service tests.

type fakeWardRepo struct {
	wards map[uuid.UUID]*entity.Ward
	beds  map[uuid.UUID]*entity.Bed
}

func newFakeWardRepo() *fakeWardRepo {
	return &fakeWardRepo{
		wards: make(map[uuid.UUID]*entity.Ward),
		beds:  make(map[uuid.UUID]*entity.Bed),
	}
}

func (r *fakeWardRepo) Create(_ context.Context, ward *entity.Ward) error {
	if ward.ID == uuid.Nil {
		ward.ID = uuid.New()
	}
	for i := range ward.Beds {
		bed := &ward.Beds[i]
		if bed.ID == uuid.Nil {
			bed.ID = uuid.New()
		}
		bed.WardID = ward.ID
		r.beds[bed.ID] = bed
	}
	r.wards[ward.ID] = ward
	return nil
}

func (r *fakeWardRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Ward, error) {
	ward, ok := r.wards[id]
	if !ok {
		return nil, nil
	}
	ward.Beds = r.wardBeds(id)
	return ward, nil
}

func (r *fakeWardRepo) Update(_ context.Context, ward *entity.Ward) error {
	r.wards[ward.ID] = ward
	return nil
}

func (r *fakeWardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.wards, id)
	return nil
}

func (r *fakeWardRepo) List(_ context.Context, params *repository.WardFilterParams) ([]entity.Ward, int64, error) {
	var out []entity.Ward
	for _, w := range r.wards {
		w.Beds = r.wardBeds(w.ID)
		out = append(out, *w)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWardRepo) GetBedByNumber(_ context.Context, wardID uuid.UUID, bedNumber int) (*entity.Bed, error) {
	for _, bed := range r.beds {
		if bed.WardID == wardID && bed.BedNumber == bedNumber {
			return bed, nil
		}
	}
	return nil, nil
}

func (r *fakeWardRepo) ClaimFirstFreeBed(_ context.Context, wardID, patientID uuid.UUID, admission time.Time, expectedDischarge *time.Time) (*entity.Bed, error) {
	beds := r.wardBeds(wardID)
	for i := range beds {
		bed := r.beds[beds[i].ID]
		if !bed.IsOccupied {
			bed.IsOccupied = true
			bed.PatientID = &patientID
			bed.AdmissionDate = &admission
			bed.ExpectedDischargeDate = expectedDischarge
			return bed, nil
		}
	}
	return nil, nil
}

func (r *fakeWardRepo) FreeBed(_ context.Context, bedID uuid.UUID) (bool, error) {
	bed, ok := r.beds[bedID]
	if !ok || !bed.IsOccupied {
		return false, nil
	}
	bed.IsOccupied = false
	bed.PatientID = nil
	bed.AdmissionDate = nil
	bed.ExpectedDischargeDate = nil
	return true, nil
}

func (r *fakeWardRepo) CountOccupied(_ context.Context, wardID uuid.UUID) (int64, error) {
	var count int64
	for _, bed := range r.beds {
		if bed.WardID == wardID && bed.IsOccupied {
			count++
		}
	}
	return count, nil
}

func (r *fakeWardRepo) wardBeds(wardID uuid.UUID) []entity.Bed {
	var beds []entity.Bed
	for _, bed := range r.beds {
		if bed.WardID == wardID {
			beds = append(beds, *bed)
		}
	}
	sort.Slice(beds, func(i, j int) bool { return beds[i].BedNumber < beds[j].BedNumber })
	return beds
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
	wards    *fakeWardRepo
}

func newFakePatientRepo(wards *fakeWardRepo) *fakePatientRepo {
	return &fakePatientRepo{
		patients: make(map[uuid.UUID]*entity.Patient),
		wards:    wards,
	}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.patients[id], nil
}

func (r *fakePatientRepo) GetByPatientNo(_ context.Context, patientNo string) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.PatientNo == patientNo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, params *repository.PatientFilterParams) ([]entity.Patient, int64, error) {
	var out []entity.Patient
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePatientRepo) IsAdmitted(_ context.Context, id uuid.UUID) (bool, error) {
	if r.wards == nil {
		return false, nil
	}
	for _, bed := range r.wards.beds {
		if bed.IsOccupied && bed.PatientID != nil && *bed.PatientID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateRoles(_ context.Context, userID uuid.UUID, roles []entity.Role) error {
	if u, ok := r.users[userID]; ok {
		u.Roles = roles
	}
	return nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) List(_ context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBillRepo) AppendPayment(_ context.Context, billID uuid.UUID, payment *entity.BillPayment) (bool, error) {
	bill, ok := r.bills[billID]
	if !ok || bill.Balance < payment.Amount {
		return false, nil
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.BillID = billID
	bill.AmountPaid += payment.Amount
	bill.Balance -= payment.Amount
	bill.PaymentStatus = enum.PaymentStatusFor(bill.AmountPaid, bill.TotalAmount)
	bill.Payments = append(bill.Payments, *payment)
	return true, nil
}

func (r *fakeBillRepo) AttachClaim(_ context.Context, claim *entity.InsuranceClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	if bill, ok := r.bills[claim.BillID]; ok {
		bill.InsuranceClaim = claim
	}
	return nil
}

func (r *fakeBillRepo) UpdateClaimStatus(_ context.Context, billID uuid.UUID, status enum.ClaimStatus) error {
	if bill, ok := r.bills[billID]; ok && bill.InsuranceClaim != nil {
		bill.InsuranceClaim.Status = status
	}
	return nil
}

func (r *fakeBillRepo) OutstandingBalance(_ context.Context) (int64, error) {
	var total int64
	for _, b := range r.bills {
		total += b.Balance
	}
	return total, nil
}

type fakeMedicineRepo struct {
	medicines map[uuid.UUID]*entity.Medicine
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: make(map[uuid.UUID]*entity.Medicine)}
}

func (r *fakeMedicineRepo) Create(_ context.Context, medicine *entity.Medicine) error {
	if medicine.ID == uuid.Nil {
		medicine.ID = uuid.New()
	}
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Medicine, error) {
	return r.medicines[id], nil
}

func (r *fakeMedicineRepo) GetByCode(_ context.Context, code string) (*entity.Medicine, error) {
	for _, m := range r.medicines {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMedicineRepo) Update(_ context.Context, medicine *entity.Medicine) error {
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.medicines, id)
	return nil
}

func (r *fakeMedicineRepo) List(_ context.Context, params *repository.MedicineFilterParams) ([]entity.Medicine, int64, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMedicineRepo) GetLowStock(_ context.Context) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		if m.StockQty <= m.ReorderLevel {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) GetExpiring(_ context.Context, now, cutoff time.Time) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		if m.ExpiryDate != nil && m.ExpiryDate.After(now) && !m.ExpiryDate.After(cutoff) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) AddStock(_ context.Context, id uuid.UUID, quantity int, batchNumber *string, expiryDate *time.Time) error {
	m := r.medicines[id]
	m.StockQty += quantity
	if batchNumber != nil {
		m.BatchNumber = batchNumber
	}
	if expiryDate != nil {
		m.ExpiryDate = expiryDate
	}
	return nil
}

func (r *fakeMedicineRepo) ReduceStock(_ context.Context, id uuid.UUID, quantity int) error {
	m := r.medicines[id]
	m.StockQty -= quantity
	if m.StockQty < 0 {
		m.StockQty = 0
	}
	return nil
}

func (r *fakeMedicineRepo) SetStock(_ context.Context, id uuid.UUID, quantity int) error {
	r.medicines[id].StockQty = quantity
	return nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*entity.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) List(_ context.Context, params *repository.DoctorFilterParams) ([]entity.Doctor, int64, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, params *repository.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAppointmentRepo) ExistsForSlot(_ context.Context, doctorID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.TimeSlot == timeSlot &&
			a.Status != enum.AppointmentStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}
