package service

import (
	"context"
	"errors"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

var ErrNegativeRate = errors.New("equipment rates must be non-negative")

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListAvailable(ctx)
}

func (s *equipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) Get(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) Add(ctx context.Context, eq *domain.Equipment) error {
	if eq.Rate12hCents < 0 || eq.Rate24hCents < 0 {
		return ErrNegativeRate
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) Update(ctx context.Context, eq *domain.Equipment) error {
	if eq.Rate12hCents < 0 || eq.Rate24hCents < 0 {
		return ErrNegativeRate
	}
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) Delete(ctx context.Context, id int32) error {
	return s.equipmentRepo.Delete(ctx, id)
}
