package services

import (
	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressService struct {
	DB          *gorm.DB
	AddressRepo *repository.AddressRepository
	StateRepo   *repository.StateRepository
	OrderRepo   *repository.OrderRepository
}

func NewAddressService(db *gorm.DB, addressRepo *repository.AddressRepository,
	stateRepo *repository.StateRepository, orderRepo *repository.OrderRepository) *AddressService {
	return &AddressService{DB: db, AddressRepo: addressRepo, StateRepo: stateRepo, OrderRepo: orderRepo}
}

type SaveAddressInput struct {
	FlatBuilNo string
	Locality   string
	City       string
	Pincode    string
	StateUUID  string
}

func (s *AddressService) SaveAddress(customer *entity.Customer, in SaveAddressInput) (*entity.Address, error) {
	if utils.IsBlank(in.FlatBuilNo) || utils.IsBlank(in.Locality) ||
		utils.IsBlank(in.City) || utils.IsBlank(in.Pincode) || utils.IsBlank(in.StateUUID) {
		return nil, apperr.MissingAddressFields()
	}
	if !utils.IsValidPincode(in.Pincode) {
		return nil, apperr.InvalidPincode()
	}
	state, err := s.StateRepo.GetByUUID(in.StateUUID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperr.StateNotFound()
	}

	address := &entity.Address{
		UUID:       uuid.NewString(),
		FlatBuilNo: in.FlatBuilNo,
		Locality:   in.Locality,
		City:       in.City,
		Pincode:    in.Pincode,
		Active:     true,
		StateID:    state.ID,
		State:      *state,
		CustomerID: customer.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.AddressRepo.Create(tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) ListForCustomer(customer *entity.Customer) ([]entity.Address, error) {
	return s.AddressRepo.ListActiveByCustomer(customer.ID)
}

// GetAddressForOrder resolves a delivery address for order placement. An
// unknown id, another customer's address, or an archived address all fail
// as address-not-found.
func (s *AddressService) GetAddressForOrder(customer *entity.Customer, addressUUID string) (*entity.Address, error) {
	address, err := s.AddressRepo.GetByUUID(addressUUID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.CustomerID != customer.ID || !address.Active {
		return nil, apperr.AddressNotFound()
	}
	return address, nil
}

// DeleteAddress removes the customer's address. An address already
// referenced by an order is archived instead so order history stays intact.
func (s *AddressService) DeleteAddress(customer *entity.Customer, addressUUID string) (*entity.Address, error) {
	if utils.IsBlank(addressUUID) {
		return nil, apperr.EmptyAddressID()
	}
	address, err := s.AddressRepo.GetByUUID(addressUUID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apperr.AddressNotFound()
	}
	if address.CustomerID != customer.ID {
		return nil, apperr.NotOwner()
	}

	referenced, err := s.OrderRepo.CountByAddress(address.ID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if referenced > 0 {
			address.Active = false
			return s.AddressRepo.Update(tx, address)
		}
		return s.AddressRepo.Delete(tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) ListStates() ([]entity.State, error) {
	return s.StateRepo.ListAll()
}
