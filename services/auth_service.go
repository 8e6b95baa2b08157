package services

import (
	"encoding/base64"
	"strings"
	"time"

	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService owns credentials and login sessions: Basic-header login,
// token issue/validate/revoke, header parsing.
type AuthService struct {
	DB           *gorm.DB
	CustomerRepo *repository.CustomerRepository
	AuthRepo     *repository.CustomerAuthRepository

	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, customerRepo *repository.CustomerRepository,
	authRepo *repository.CustomerAuthRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:           db,
		CustomerRepo: customerRepo,
		AuthRepo:     authRepo,
		jwtSecret:    secret,
		tokenTTL:     ttl,
	}
}

// BasicCredentials decodes an "Authorization: Basic base64(contact:password)"
// header value.
func (s *AuthService) BasicCredentials(authorization string) (string, string, error) {
	if !strings.HasPrefix(authorization, "Basic ") {
		return "", "", apperr.MalformedBasicHeader()
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authorization, "Basic "))
	if err != nil {
		return "", "", apperr.MalformedBasicHeader()
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", "", apperr.MalformedBasicHeader()
	}
	return parts[0], parts[1], nil
}

// BearerToken extracts the token from an "Authorization: Bearer token"
// header value.
func (s *AuthService) BearerToken(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", apperr.MalformedBearerHeader()
	}
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token == "" {
		return "", apperr.MalformedBearerHeader()
	}
	return token, nil
}

// Login checks the credentials and issues a fresh session token. Earlier
// sessions for the same customer stay valid; a customer may hold several
// live sessions at once.
func (s *AuthService) Login(contactNumber, password string) (*entity.CustomerAuth, error) {
	customer, err := s.CustomerRepo.GetByContactNumber(contactNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.UnknownContact()
	}
	if !utils.CheckPassword(password, customer.Salt, customer.Password) {
		return nil, apperr.InvalidCredentials()
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	accessToken, err := utils.GenerateAccessToken(customer.UUID, s.jwtSecret, now, expiresAt)
	if err != nil {
		return nil, err
	}

	auth := &entity.CustomerAuth{
		UUID:        uuid.NewString(),
		AccessToken: accessToken,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
		CustomerID:  customer.ID,
		Customer:    *customer,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.AuthRepo.Create(tx, auth)
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// ValidateToken returns the session for a usable token. The failure kind
// tells the caller whether the token was never issued, revoked, or expired.
func (s *AuthService) ValidateToken(accessToken string) (*entity.CustomerAuth, error) {
	auth, err := s.AuthRepo.GetByAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, apperr.NotSignedIn()
	}
	if auth.LogoutAt != nil {
		return nil, apperr.SignedOut()
	}
	if !time.Now().Before(auth.ExpiresAt) {
		return nil, apperr.SessionExpired()
	}
	return auth, nil
}

// Logout revokes the session: logout time is set and the expiry collapses
// to now. Revoking a token that is unknown, already revoked, or expired
// fails uniformly as not-signed-in.
func (s *AuthService) Logout(accessToken string) (*entity.CustomerAuth, error) {
	auth, err := s.AuthRepo.GetByAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	if auth == nil || auth.LogoutAt != nil || !time.Now().Before(auth.ExpiresAt) {
		return nil, apperr.NotSignedIn()
	}
	now := time.Now()
	auth.LogoutAt = &now
	auth.ExpiresAt = now
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.AuthRepo.Update(tx, auth)
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}
