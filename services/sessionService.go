package services

//go:generate mockgen -destination=../mocks/services/mock_services.go -package=mock_services github.com/matrizimoveis/matriz_portal/services SessionService,ProfileService,DashboardService,ReportService,PropertyService

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
)

// SessionService resolves login credentials into a session
type SessionService interface {
	Authenticate(ctx context.Context, credentials entities.Credentials) (*entities.Session, error)
}
