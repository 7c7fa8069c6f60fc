package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AccountService covers registration, sessions, profile edits and the
// address book.
type AccountService struct {
	users     UserStore
	addresses AddressStore
	logger    *zap.Logger
}

func NewAccountService(users UserStore, addresses AddressStore, logger *zap.Logger) *AccountService {
	return &AccountService{
		users:     users,
		addresses: addresses,
		logger:    logger,
	}
}

func (s *AccountService) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created", zap.String("user_id", user.UserID))
	return user, nil
}

// Login verifies the password and rotates the opaque session token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	user.SessionToken = uuid.NewString()
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.PutUser(ctx, user); err != nil {
		return nil, "", err
	}

	return user, user.SessionToken, nil
}

// Authenticate resolves a bearer token to its principal.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, user *domain.User, oldPass, newPass string) (*domain.User, error) {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPass)) != nil {
		return nil, ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile edits name/phone and, when an address is supplied, upserts
// the user's single profile address: the first stored address is
// overwritten in place, or a new record is created when none exists.
func (s *AccountService) UpdateProfile(ctx context.Context, user *domain.User, input domain.UpdateProfileInput) (*domain.User, error) {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if input.Address != nil {
		if err := validateInput(*input.Address); err != nil {
			return nil, err
		}

		existing, err := s.addresses.ListByUser(ctx, user.UserID)
		if err != nil {
			return nil, err
		}

		var address *domain.Address
		if len(existing) > 0 {
			address = &existing[0]
		} else {
			address = &domain.Address{
				AddressID: uuid.NewString(),
				UserID:    user.UserID,
				CreatedAt: time.Now().UTC(),
			}
		}

		address.Name = input.Address.Name
		address.Phone = input.Address.Phone
		address.Address1 = input.Address.Address1
		address.Address2 = input.Address.Address2
		address.Pincode = input.Address.Pincode
		address.City = input.Address.City
		address.State = input.Address.State
		if input.Address.Country != "" {
			address.Country = input.Address.Country
		}
		address.UpdatedAt = time.Now().UTC()

		if err := s.addresses.PutAddress(ctx, address); err != nil {
			return nil, err
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) CreateAddress(ctx context.Context, user *domain.User, input domain.AddressInput) (*domain.Address, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	address := &domain.Address{
		AddressID: uuid.NewString(),
		UserID:    user.UserID,
		Name:      input.Name,
		Phone:     input.Phone,
		Address1:  input.Address1,
		Address2:  input.Address2,
		Pincode:   input.Pincode,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.addresses.PutAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AccountService) DeleteAddress(ctx context.Context, user *domain.User, addressID string) error {
	address, err := s.addresses.GetAddress(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return ErrAddressNotFound
		}
		return err
	}

	if address.UserID != user.UserID {
		return ErrNotAddressOwner
	}

	return s.addresses.DeleteAddress(ctx, addressID)
}

func (s *AccountService) ListAddresses(ctx context.Context, user *domain.User) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, user.UserID)
}
