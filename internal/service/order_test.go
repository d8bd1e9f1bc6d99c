package service

import (
	"context"
	"testing"

	"camrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderListClampsPaging(t *testing.T) {
	repo := new(MockOrderRepo)
	svc := NewOrderService(repo)
	ctx := context.Background()

	repo.On("List", ctx, "", int32(1), int32(20)).Return([]domain.Order{}, int32(0), nil).Times(3)

	_, _, err := svc.List(ctx, "", 0, 0)
	assert.NoError(t, err)
	_, _, err = svc.List(ctx, "", -5, 500)
	assert.NoError(t, err)
	_, _, err = svc.List(ctx, "", 1, 20)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOrderAdvanceStatus(t *testing.T) {
	repo := new(MockOrderRepo)
	svc := NewOrderService(repo)
	ctx := context.Background()
	actor := &domain.User{ID: 7, Role: domain.RoleStaff}

	stored := &domain.Order{ID: 42, Status: domain.OrderStatusPending}
	repo.On("GetByID", ctx, int32(42)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusConfirmed && o.HandledBy != nil && *o.HandledBy == int32(7)
	})).Return(nil).Once()

	order, err := svc.AdvanceStatus(ctx, actor, 42, domain.OrderStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	repo.AssertExpectations(t)
}

func TestOrderAdvanceStatusRejectsUnknown(t *testing.T) {
	repo := new(MockOrderRepo)
	svc := NewOrderService(repo)

	_, err := svc.AdvanceStatus(context.Background(), &domain.User{ID: 7}, 42, domain.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
