package services

import (
	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
)

type PaymentService struct {
	PaymentRepo *repository.PaymentRepository
}

func NewPaymentService(paymentRepo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{PaymentRepo: paymentRepo}
}

func (s *PaymentService) GetByUUID(paymentUUID string) (*entity.PaymentMethod, error) {
	payment, err := s.PaymentRepo.GetByUUID(paymentUUID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.PaymentNotFound()
	}
	return payment, nil
}

func (s *PaymentService) ListAll() ([]entity.PaymentMethod, error) {
	return s.PaymentRepo.ListAll()
}
