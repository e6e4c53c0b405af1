package frontend

var (
	loginPage    = newFrontendPage("LoginPage", "login.gohtml", nil)
	logoutPage   = newFrontendPage("LogoutPage", "logout.gohtml", nil)
	servicesPage = newFrontendPage("ServicesPage", "services.gohtml", nil)
	statusPage   = newFrontendPage("StatusPage", "status.gohtml", nil)

	dashboardPage = newFrontendPage("DashboardPage", "dashboard.gohtml",
		frontendComponents{
			layout,
			dashboardSections,
		})
	profilePage = newFrontendPage("ProfilePage", "profile.gohtml",
		frontendComponents{
			layout,
		})
	reportsPage = newFrontendPage("ReportsPage", "reports.gohtml",
		frontendComponents{
			layout,
			reportPanel,
		})
	propertiesPage = newFrontendPage("PropertiesPage", "properties.gohtml",
		frontendComponents{
			layout,
			propertiesList,
		})
	propertyPage = newFrontendPage("PropertyPage", "property.gohtml",
		frontendComponents{
			layout,
		})
)

func newFrontendPage(pageName, templateName string, components frontendComponents) frontendPage {
	return frontendPage{
		name:         pageName,
		templateName: templateName,
		components:   components,
	}
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}
