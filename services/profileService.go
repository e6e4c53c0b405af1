package services

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
)

// ProfileService is the service for the profile page of a logged in account
type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, email string, update entities.ProfileUpdate) (*entities.Profile, error)
	ChangePassword(ctx context.Context, email string, change entities.PasswordChange) error
}
