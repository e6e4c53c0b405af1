package demo

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// compared against when the email is unknown so that both failure paths cost the same
const unknownAccountPassword = "matriz-unknown-account"

type account struct {
	passwordHash string
	role         common.Role
}

type demoSessionService struct {
	logger      *zap.Logger
	accounts    map[string]account
	unknownHash string
}

// NewDemoSessionService creates a SessionService accepting only the demo accounts from the config.
// It is a UI demo, not an authentication system.
func NewDemoSessionService(logger *zap.Logger, cfg *config.AppConfig) (services.SessionService, error) {
	accounts := make(map[string]account, len(cfg.DemoAccounts))
	for _, demoAccount := range cfg.DemoAccounts {
		hash, err := auth.GetHashForPassword(demoAccount.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "could not hash password of demo account %s", demoAccount.Email)
		}
		accounts[demoAccount.Email] = account{
			passwordHash: hash,
			role:         demoAccount.Role,
		}
	}

	unknownHash, err := auth.GetHashForPassword(unknownAccountPassword)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash placeholder password")
	}

	logger.Info("demo accounts loaded", zap.Int("count", len(accounts)))

	return &demoSessionService{
		logger:      logger,
		accounts:    accounts,
		unknownHash: unknownHash,
	}, nil
}

func (s *demoSessionService) Authenticate(ctx context.Context, credentials entities.Credentials) (*entities.Session, error) {
	validationErrs := entities.ValidateStruct(credentials)
	if entities.HasFailedTag(validationErrs, "required") {
		return nil, services.ErrMissingCredentials
	}
	if len(validationErrs) > 0 {
		return nil, services.ErrMalformedEmail
	}

	acc, known := s.accounts[credentials.Email]
	hash := acc.passwordHash
	if !known {
		hash = s.unknownHash
	}

	err := auth.CompareHashAndPassword(hash, credentials.Password)
	if !known || err != nil {
		return nil, services.ErrInvalidCredentials
	}

	return &entities.Session{
		Email: credentials.Email,
		Role:  acc.role,
	}, nil
}
