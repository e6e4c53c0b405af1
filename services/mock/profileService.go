package mock

import (
	"context"
	"sync"

	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
	"go.uber.org/zap"
)

type mockProfileService struct {
	logger   *zap.Logger
	mu       sync.RWMutex
	profiles map[string]entities.Profile
}

// NewMockProfileService creates a ProfileService keeping one profile per demo account in memory.
// Changes last until the process exits.
func NewMockProfileService(logger *zap.Logger, cfg *config.AppConfig) services.ProfileService {
	profiles := make(map[string]entities.Profile, len(cfg.DemoAccounts))
	for _, account := range cfg.DemoAccounts {
		profiles[account.Email] = seedProfile(account.Role, account.Email)
	}

	return &mockProfileService{
		logger:   logger,
		profiles: profiles,
	}
}

func (s *mockProfileService) GetProfile(ctx context.Context, email string) (*entities.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[email]
	if !ok {
		return nil, services.ErrNotFound
	}
	return copyProfile(profile), nil
}

func (s *mockProfileService) UpdateProfile(ctx context.Context, email string, update entities.ProfileUpdate) (*entities.Profile, error) {
	update = update.Normalize()
	if len(entities.ValidateStruct(update)) > 0 {
		return nil, services.ErrProfileNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[email]
	if !ok {
		return nil, services.ErrNotFound
	}

	profile.Name = update.Name
	profile.Surname = update.Surname
	profile.Phone = update.Phone
	profile.Whatsapp = update.Whatsapp
	profile.City = update.City
	profile.Bio = update.Bio
	profile.Specialties = update.SpecialtyList()
	s.profiles[email] = profile

	return copyProfile(profile), nil
}

// ChangePassword validates the form and discards it. Nothing is checked against the current password.
func (s *mockProfileService) ChangePassword(ctx context.Context, email string, change entities.PasswordChange) error {
	validationErrs := entities.ValidateStruct(change)
	switch {
	case entities.HasFailedTag(validationErrs, "required"):
		return services.ErrPasswordFieldsRequired
	case entities.HasFailedTag(validationErrs, "min"):
		return services.ErrPasswordTooShort
	case entities.HasFailedTag(validationErrs, "eqfield"):
		return services.ErrPasswordMismatch
	}

	s.mu.RLock()
	_, ok := s.profiles[email]
	s.mu.RUnlock()
	if !ok {
		return services.ErrNotFound
	}

	s.logger.Warn("password change accepted but not stored", zap.String("email", email))
	return nil
}

func copyProfile(profile entities.Profile) *entities.Profile {
	profile.Specialties = append([]string{}, profile.Specialties...)
	return &profile
}
