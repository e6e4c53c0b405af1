package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_GetDashboard__should_return_four_sections_for_each_role(t *testing.T) {
	service := NewMockDashboardService()

	for _, role := range common.Roles {
		t.Run(string(role), func(t *testing.T) {
			dashboard, err := service.GetDashboard(context.Background(), role)
			assert.NoError(t, err)

			assert.Equal(t, role, dashboard.Role)
			assert.Len(t, dashboard.Stats, 4)
			assert.NotEmpty(t, dashboard.Activity)
			assert.NotEmpty(t, dashboard.Secondary.Title)
			assert.NotEmpty(t, dashboard.Secondary.Rows)
			assert.NotEmpty(t, dashboard.QuickActions)
		})
	}
}

func Test_GetDashboard__links_should_stay_within_role_or_public_pages(t *testing.T) {
	service := NewMockDashboardService()

	for _, role := range common.Roles {
		t.Run(string(role), func(t *testing.T) {
			dashboard, err := service.GetDashboard(context.Background(), role)
			assert.NoError(t, err)

			var hrefs []string
			for _, stat := range dashboard.Stats {
				hrefs = append(hrefs, stat.Href)
			}
			for _, item := range dashboard.Activity {
				hrefs = append(hrefs, item.Href)
			}
			for _, action := range dashboard.QuickActions {
				hrefs = append(hrefs, action.Href)
			}

			for _, href := range hrefs {
				assert.True(t, strings.HasPrefix(href, role.BasePath()) || href == "/services", href)
			}
		})
	}
}

func Test_GetDashboard__should_keep_literal_order(t *testing.T) {
	service := NewMockDashboardService()

	dashboard, err := service.GetDashboard(context.Background(), common.Admin)
	assert.NoError(t, err)

	assert.Equal(t, "Imóveis ativos", dashboard.Stats[0].Title)
	assert.Equal(t, "Novos clientes", dashboard.Stats[3].Title)
	assert.Equal(t, "Carlos Lima", dashboard.Secondary.Rows[0].Title)
}

func Test_GetDashboard__should_return_fresh_copy(t *testing.T) {
	service := NewMockDashboardService()

	first, err := service.GetDashboard(context.Background(), common.User)
	assert.NoError(t, err)
	first.Stats[0].Value = "changed"

	second, err := service.GetDashboard(context.Background(), common.User)
	assert.NoError(t, err)
	assert.NotEqual(t, "changed", second.Stats[0].Value)
}

func Test_GetDashboard__should_return_error_for_unknown_role(t *testing.T) {
	service := NewMockDashboardService()

	dashboard, err := service.GetDashboard(context.Background(), common.Role("root"))

	assert.Nil(t, dashboard)
	assert.Equal(t, common.ErrUnknownRole, errors.Cause(err))
}
