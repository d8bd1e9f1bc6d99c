package service

import (
	"context"
	"errors"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.orderRepo.List(ctx, status, page, pageSize)
}

func (s *orderService) Get(ctx context.Context, id int32) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) AdvanceStatus(ctx context.Context, actor *domain.User, orderID int32, status domain.OrderStatus) (*domain.Order, error) {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusConfirmed, domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		return nil, ErrUnknownOrderStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	handledBy := actor.ID
	order.HandledBy = &handledBy
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
