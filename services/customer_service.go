package services

import (
	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService struct {
	DB           *gorm.DB
	CustomerRepo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, CustomerRepo: customerRepo}
}

type SignupInput struct {
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	Password      string
}

// Signup validates in a fixed order: field presence, duplicate contact,
// email format, contact format, password strength. Last name is the only
// optional field.
func (s *CustomerService) Signup(in SignupInput) (*entity.Customer, error) {
	if utils.IsBlank(in.FirstName) || utils.IsBlank(in.Email) ||
		utils.IsBlank(in.ContactNumber) || utils.IsBlank(in.Password) {
		return nil, apperr.MissingSignupFields()
	}

	existing, err := s.CustomerRepo.GetByContactNumber(in.ContactNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateContact()
	}

	if !utils.IsValidEmail(in.Email) {
		return nil, apperr.InvalidEmail()
	}
	if !utils.IsValidContactNumber(in.ContactNumber) {
		return nil, apperr.InvalidContact()
	}
	if utils.IsWeakPassword(in.Password) {
		return nil, apperr.WeakPassword()
	}

	salt, hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		UUID:          uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Password:      hash,
		Salt:          salt,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CustomerRepo.Create(tx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) UpdateProfile(customer *entity.Customer, firstName, lastName string) (*entity.Customer, error) {
	if utils.IsBlank(firstName) {
		return nil, apperr.EmptyFirstName()
	}
	customer.FirstName = firstName
	customer.LastName = lastName
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CustomerRepo.Update(tx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdatePassword re-hashes under a fresh salt so a password change never
// reuses old salt material.
func (s *CustomerService) UpdatePassword(customer *entity.Customer, oldPassword, newPassword string) (*entity.Customer, error) {
	if utils.IsBlank(oldPassword) || utils.IsBlank(newPassword) {
		return nil, apperr.EmptyPasswordField()
	}
	if utils.IsWeakPassword(newPassword) {
		return nil, apperr.WeakNewPassword()
	}
	if !utils.CheckPassword(oldPassword, customer.Salt, customer.Password) {
		return nil, apperr.WrongOldPassword()
	}

	salt, hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	customer.Salt = salt
	customer.Password = hash
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CustomerRepo.Update(tx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}
