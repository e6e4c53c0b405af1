package services

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
)

// DashboardService provides the landing page content of each role
type DashboardService interface {
	GetDashboard(ctx context.Context, role common.Role) (*entities.Dashboard, error)
}
