package service

import (
	"context"
	"errors"
	"testing"

	"camrent-backend/internal/config"
	"camrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	staffActor    = &domain.User{ID: 7, Name: "Sam Staff", Email: "sam@camrent.example", Role: domain.RoleStaff}
	customerActor = &domain.User{ID: 8, Name: "Cleo Customer", Email: "cleo@example.com", Role: domain.RoleCustomer}

	checkoutInfo = CustomerInfo{Name: "Walk-in Customer", Email: "walkin@example.com", Phone: "555-0100"}
)

func testLines() []domain.CartLine {
	return []domain.CartLine{
		{EquipmentID: 1, EquipmentName: "Camera A", Duration: domain.Duration12h, RentDate: "2026-04-01", ReturnDate: "2026-04-02", Quantity: 1, UnitRateCents: 500, TotalCents: 500},
		{EquipmentID: 2, EquipmentName: "Lens B", Duration: domain.Duration24h, RentDate: "2026-04-01", ReturnDate: "2026-04-02", Quantity: 2, UnitRateCents: 300, TotalCents: 600},
		{EquipmentID: 3, EquipmentName: "Tripod C", Duration: domain.Duration12h, RentDate: "2026-04-01", ReturnDate: "2026-04-02", Quantity: 1, UnitRateCents: 150, TotalCents: 150},
	}
}

func stubEquipment(equipmentRepo *MockEquipmentRepo, ctx context.Context) {
	equipmentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, Name: "Camera A", Rate12hCents: 500, Rate24hCents: 900}, nil).Maybe()
	equipmentRepo.On("GetByID", ctx, int32(2)).Return(&domain.Equipment{ID: 2, Name: "Lens B", Rate12hCents: 200, Rate24hCents: 300}, nil).Maybe()
	equipmentRepo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Name: "Tripod C", Rate12hCents: 150, Rate24hCents: 250}, nil).Maybe()
}

func TestCheckoutSuccess(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	emailSvc := new(MockEmailService)
	noteSvc := new(MockNotificationService)
	svc := NewCheckoutService(orderRepo, equipmentRepo, emailSvc, noteSvc, config.CheckoutPolicyAllOrNothing)
	ctx := context.Background()

	stubEquipment(equipmentRepo, ctx)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Times(3)
	// 500 + 600 + 150, repriced from the live equipment records.
	emailSvc.On("SendOrderConfirmation", ctx, checkoutInfo.Email, checkoutInfo.Name, 3, int32(1250)).Return(nil).Once()
	noteSvc.On("NotifyStaff", ctx, "Orders created", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	created, err := svc.Checkout(ctx, staffActor, testLines(), checkoutInfo)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)

	orderRepo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
	noteSvc.AssertExpectations(t)
}

func TestCheckoutRepricesFromLiveEquipment(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	emailSvc := new(MockEmailService)
	noteSvc := new(MockNotificationService)
	svc := NewCheckoutService(orderRepo, equipmentRepo, emailSvc, noteSvc, config.CheckoutPolicyAllOrNothing)
	ctx := context.Background()

	// The cart line carries a stale total; the live rate is what gets stored.
	lines := []domain.CartLine{
		{EquipmentID: 1, Duration: domain.Duration12h, RentDate: "2026-04-01", ReturnDate: "2026-04-02", Quantity: 2, UnitRateCents: 100, TotalCents: 200},
	}
	equipmentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, Name: "Camera A", Rate12hCents: 500, Rate24hCents: 900}, nil).Once()
	orderRepo.On("Create", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.TotalCents == 1000 && o.Status == domain.OrderStatusPending && o.HandledBy != nil && *o.HandledBy == staffActor.ID
	})).Return(nil).Once()
	emailSvc.On("SendOrderConfirmation", ctx, checkoutInfo.Email, checkoutInfo.Name, 1, int32(1000)).Return(nil).Once()
	noteSvc.On("NotifyStaff", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	created, err := svc.Checkout(ctx, staffActor, lines, checkoutInfo)
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutPartialFailureReportsZero(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	emailSvc := new(MockEmailService)
	noteSvc := new(MockNotificationService)
	svc := NewCheckoutService(orderRepo, equipmentRepo, emailSvc, noteSvc, config.CheckoutPolicyAllOrNothing)
	ctx := context.Background()

	stubEquipment(equipmentRepo, ctx)

	// First line lands, second is rejected, third is never attempted.
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 101
	}).Once()
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(errors.New("connection reset")).Once()
	// All-or-nothing compensates the order that did land.
	orderRepo.On("Delete", ctx, int32(101)).Return(nil).Once()

	created, err := svc.Checkout(ctx, staffActor, testLines(), checkoutInfo)
	assert.ErrorIs(t, err, ErrCheckoutFailed)
	assert.Equal(t, 0, created)

	orderRepo.AssertExpectations(t)
	orderRepo.AssertNumberOfCalls(t, "Create", 2)
	emailSvc.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutBestEffortSkipsCompensation(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	emailSvc := new(MockEmailService)
	noteSvc := new(MockNotificationService)
	svc := NewCheckoutService(orderRepo, equipmentRepo, emailSvc, noteSvc, config.CheckoutPolicyBestEffort)
	ctx := context.Background()

	stubEquipment(equipmentRepo, ctx)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(errors.New("connection reset")).Once()

	created, err := svc.Checkout(ctx, staffActor, testLines(), checkoutInfo)
	assert.ErrorIs(t, err, ErrCheckoutFailed)
	// The reported count is still zero even though one row was written.
	assert.Equal(t, 0, created)

	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCheckoutCustomerActorIsRejected(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	svc := NewCheckoutService(orderRepo, equipmentRepo, new(MockEmailService), new(MockNotificationService), config.CheckoutPolicyAllOrNothing)
	ctx := context.Background()

	created, err := svc.Checkout(ctx, customerActor, testLines(), checkoutInfo)
	assert.ErrorIs(t, err, ErrCustomerCheckout)
	assert.Equal(t, 0, created)

	created, err = svc.Checkout(ctx, nil, testLines(), checkoutInfo)
	assert.ErrorIs(t, err, ErrCustomerCheckout)
	assert.Equal(t, 0, created)

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutValidationBeforeIO(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	svc := NewCheckoutService(orderRepo, equipmentRepo, new(MockEmailService), new(MockNotificationService), config.CheckoutPolicyAllOrNothing)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, staffActor, nil, checkoutInfo)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.Checkout(ctx, staffActor, testLines(), CustomerInfo{Name: "  ", Email: "walkin@example.com"})
	assert.ErrorIs(t, err, ErrInvalidCustomer)

	_, err = svc.Checkout(ctx, staffActor, testLines(), CustomerInfo{Name: "Walk-in", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidCustomer)

	badLines := testLines()
	badLines[1].Quantity = 0
	_, err = svc.Checkout(ctx, staffActor, badLines, checkoutInfo)
	assert.Error(t, err)

	badLines = testLines()
	badLines[0].Duration = domain.RentalDuration("48hr")
	_, err = svc.Checkout(ctx, staffActor, badLines, checkoutInfo)
	assert.Error(t, err)

	// No repository call happens on any of these paths.
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	equipmentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
