package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"camrent-backend/internal/authz"
	"camrent-backend/internal/config"
	"camrent-backend/internal/domain"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository"
	"camrent-backend/internal/utils"

	"github.com/google/uuid"
)

var (
	// ErrCustomerCheckout: a customer owns the cart but may not finalize the
	// order themselves; they are routed to a contact-staff state instead.
	ErrCustomerCheckout = errors.New("customers cannot finalize orders, please contact staff")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidCustomer  = errors.New("customer name and a valid email are required")
	// ErrCheckoutFailed is the single aggregate error surfaced for any
	// rejected create in the batch. It does not say which lines succeeded.
	ErrCheckoutFailed = errors.New("failed to create orders, please try again")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type checkoutService struct {
	orderRepo     repository.OrderRepository
	equipmentRepo repository.EquipmentRepository
	emailSvc      EmailService
	noteSvc       NotificationService
	policy        string
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	equipmentRepo repository.EquipmentRepository,
	emailSvc EmailService,
	noteSvc NotificationService,
	policy string,
) CheckoutService {
	return &checkoutService{
		orderRepo:     orderRepo,
		equipmentRepo: equipmentRepo,
		emailSvc:      emailSvc,
		noteSvc:       noteSvc,
		policy:        policy,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, actor *domain.User, lines []domain.CartLine, info CustomerInfo) (int, error) {
	// Validation happens before any I/O.
	if actor == nil || !authz.RoleSatisfies(actor.Role, authz.RequireStaff) {
		return 0, ErrCustomerCheckout
	}
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}
	if strings.TrimSpace(info.Name) == "" || !emailPattern.MatchString(info.Email) {
		return 0, ErrInvalidCustomer
	}
	for i := range lines {
		if lines[i].Quantity <= 0 {
			return 0, fmt.Errorf("cart line for equipment %d has non-positive quantity", lines[i].EquipmentID)
		}
		if !lines[i].Duration.Valid() {
			return 0, fmt.Errorf("cart line for equipment %d has unknown duration %q", lines[i].EquipmentID, lines[i].Duration)
		}
	}

	// One create per line; the batch is not a transaction. The orderRepo
	// gives at most per-call atomicity, never multi-call commits.
	handledBy := actor.ID
	var created []*domain.Order
	var batchErr error
	var totalCents int32

	for i := range lines {
		line := &lines[i]
		order, err := s.buildOrder(ctx, line, info, handledBy)
		if err != nil {
			batchErr = err
			break
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			batchErr = err
			break
		}
		created = append(created, order)
		totalCents += order.TotalCents
	}

	if batchErr != nil {
		logger.Error("Checkout batch failed", "created", len(created), "of", len(lines), "error", batchErr)
		if s.policy == config.CheckoutPolicyAllOrNothing {
			s.compensate(ctx, created)
		}
		// The caller must not clear the cart on this path.
		return 0, ErrCheckoutFailed
	}

	if err := s.emailSvc.SendOrderConfirmation(ctx, info.Email, info.Name, len(created), totalCents); err != nil {
		logger.Warn("Order confirmation email failed", "email", info.Email, "error", err)
	}
	if err := s.noteSvc.NotifyStaff(ctx, "Orders created",
		fmt.Sprintf("%s checked out %d order(s) for %s", actor.Name, len(created), info.Name),
		map[string]string{"type": "CHECKOUT", "count": fmt.Sprintf("%d", len(created))}); err != nil {
		logger.Warn("Staff notification failed after checkout", "error", err)
	}

	return len(created), nil
}

// buildOrder reprices the line from the live equipment record; a stale
// client-supplied total is never trusted.
func (s *checkoutService) buildOrder(ctx context.Context, line *domain.CartLine, info CustomerInfo, handledBy int32) (*domain.Order, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, line.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("equipment %d lookup failed: %w", line.EquipmentID, err)
	}
	total, err := utils.RentalCost(eq, line.Duration, line.Quantity)
	if err != nil {
		return nil, err
	}
	return &domain.Order{
		Reference:     uuid.New().String(),
		EquipmentID:   line.EquipmentID,
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		CustomerPhone: info.Phone,
		Duration:      line.Duration,
		RentDate:      line.RentDate,
		ReturnDate:    line.ReturnDate,
		Quantity:      line.Quantity,
		TotalCents:    total,
		Status:        domain.OrderStatusPending,
		HandledBy:     &handledBy,
	}, nil
}

// compensate deletes the orders a failed all-or-nothing batch already
// created. Each delete is itself best-effort; a failed compensation is
// logged and left for staff to clean up.
func (s *checkoutService) compensate(ctx context.Context, created []*domain.Order) {
	for _, order := range created {
		if err := s.orderRepo.Delete(ctx, order.ID); err != nil {
			logger.Error("Compensating delete failed, order orphaned", "order_id", order.ID, "reference", order.Reference, "error", err)
		}
	}
}
