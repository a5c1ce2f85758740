package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/ledger"
	"github.com/stretchr/testify/mock"
)

// Mock implementations

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *ledger.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*ledger.Payment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*ledger.Payment, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPaymentRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockPaymentRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockPaymentRepository) UnlinkBillsByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockPaymentRepository) UnlinkBillsByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type mockReceiptRepository struct {
	mock.Mock
}

func (m *mockReceiptRepository) Save(ctx context.Context, receipt *ledger.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *mockReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Receipt), args.Error(1)
}

func (m *mockReceiptRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) (*ledger.Receipt, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Receipt), args.Error(1)
}

func (m *mockReceiptRepository) DeleteByPayment(ctx context.Context, paymentID uuid.UUID) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *mockReceiptRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockReceiptRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type mockBillRepository struct {
	mock.Mock
}

func (m *mockBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) Update(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (*billing.Bill, error) {
	args := m.Called(ctx, unitID, billMonth, billYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) ExistsForUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (bool, error) {
	args := m.Called(ctx, unitID, billMonth, billYear)
	return args.Bool(0), args.Error(1)
}

func (m *mockBillRepository) FindLatestUnpaidByUnit(ctx context.Context, unitID uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type mockLetterRepository struct {
	mock.Mock
}

func (m *mockLetterRepository) Save(ctx context.Context, letter *billing.Letter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *mockLetterRepository) Update(ctx context.Context, letter *billing.Letter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *mockLetterRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Letter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Letter), args.Error(1)
}

func (m *mockLetterRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Letter, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Letter), args.Error(1)
}

func (m *mockLetterRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Letter, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Letter), args.Error(1)
}

func (m *mockLetterRepository) FindByUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (*billing.Letter, error) {
	args := m.Called(ctx, unitID, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Letter), args.Error(1)
}

func (m *mockLetterRepository) ExistsForUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (bool, error) {
	args := m.Called(ctx, unitID, financialYear)
	return args.Bool(0), args.Error(1)
}

func (m *mockLetterRepository) FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*billing.Letter, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Letter), args.Error(1)
}

func (m *mockLetterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLetterRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockLetterRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockLetterRepository) DeleteAddOnsByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockLetterRepository) DeleteAddOnsByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}
