package mock

import (
	"context"
	"fmt"

	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
)

type mockDashboardService struct{}

// NewMockDashboardService creates a DashboardService serving the literal dashboards of each role
func NewMockDashboardService() services.DashboardService {
	return &mockDashboardService{}
}

// GetDashboard builds a fresh copy of the role's dashboard on every call
func (s *mockDashboardService) GetDashboard(ctx context.Context, role common.Role) (*entities.Dashboard, error) {
	var dashboard entities.Dashboard
	switch role {
	case common.Admin:
		dashboard = adminDashboard()
	case common.Subadmin:
		dashboard = subadminDashboard()
	case common.User:
		dashboard = userDashboard()
	default:
		return nil, errors.Wrap(common.ErrUnknownRole, fmt.Sprintf("no dashboard for role %s", role))
	}
	return &dashboard, nil
}
