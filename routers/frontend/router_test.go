package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/environment"
	mock_services "github.com/matrizimoveis/matriz_portal/mocks/services"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/testutils"
	"github.com/matrizimoveis/matriz_portal/utils"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	authCommon "github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/matrizimoveis/matriz_portal/utils/charts"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "verysecret"

// tokens are checked against the wall clock, so the pinned instant has to be recent
var testNow = time.Now().Truncate(time.Second)

type testSetup struct {
	mockSessionService   *mock_services.MockSessionService
	mockProfileService   *mock_services.MockProfileService
	mockDashboardService *mock_services.MockDashboardService
	mockReportService    *mock_services.MockReportService
	mockPropertyService  *mock_services.MockPropertyService
	cfg                  *config.AppConfig
	env                  *environment.Env
	router               *frontendRouter
	w                    *httptest.ResponseRecorder
	testCtx              *gin.Context
	testServer           *gin.Engine
}

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Name: "Matriz Imóveis",
		DemoAccounts: []config.DemoAccount{
			{Email: "admin@matriz.com", Password: "admin123", Role: authCommon.Admin},
			{Email: "subadmin@matriz.com", Password: "subadmin123", Role: authCommon.Subadmin},
			{Email: "usuario@matriz.com", Password: "user123", Role: authCommon.User},
		},
		LoginRedirectDelay:  1500,
		LogoutRedirectDelay: 1000,
		ChartTheme:          "westeros",
		Session: config.SessionConfig{
			CookieMaxAge: 3600,
		},
	}
}

func setupTest(t *testing.T) *testSetup {
	ctrl := gomock.NewController(t)
	mockSessionService := mock_services.NewMockSessionService(ctrl)
	mockProfileService := mock_services.NewMockProfileService(ctrl)
	mockDashboardService := mock_services.NewMockDashboardService(ctrl)
	mockReportService := mock_services.NewMockReportService(ctrl)
	mockPropertyService := mock_services.NewMockPropertyService(ctrl)

	restore := testutils.SetEnvVars(map[string]string{
		environment.SessionSecret: testSecret,
	})
	env := environment.NewEnv(zap.NewNop())
	restore()

	cfg := testAppConfig()

	router := &frontendRouter{
		logger:           zap.NewNop(),
		cfg:              cfg,
		env:              env,
		sessionService:   mockSessionService,
		profileService:   mockProfileService,
		dashboardService: mockDashboardService,
		reportService:    mockReportService,
		propertyService:  mockPropertyService,
		timeProvider:     utils.NewFixedTimeProvider(testNow),
		charts:           charts.NewBarRenderer(cfg.ChartTheme),
	}

	w := httptest.NewRecorder()
	testCtx, testServer := gin.CreateTestContext(w)
	tmpl, err := utils.LoadTemplates("../../templates/*/*.gohtml")
	assert.NoError(t, err)
	testServer.SetHTMLTemplate(tmpl)

	return &testSetup{
		mockSessionService:   mockSessionService,
		mockProfileService:   mockProfileService,
		mockDashboardService: mockDashboardService,
		mockReportService:    mockReportService,
		mockPropertyService:  mockPropertyService,
		cfg:                  cfg,
		env:                  env,
		router:               router,
		w:                    w,
		testCtx:              testCtx,
		testServer:           testServer,
	}
}

// withSession puts the claims of a logged in session on the test context, as the role verifier would
func (s *testSetup) withSession(email string, role authCommon.Role) {
	s.testCtx.Set(auth.SessionContextKey, &authCommon.SessionClaims{Email: email, Role: role})
}

func sessionCookie(t *testing.T, email string, role authCommon.Role) *http.Cookie {
	token, err := auth.NewSessionJWT(email, role, testNow.Unix(), time.Hour, []byte(testSecret))
	assert.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func Test_NewRouter__should_return_router_with_chart_renderer(t *testing.T) {
	setup := setupTest(t)

	router := NewRouter(zap.NewNop(), setup.cfg, setup.env, setup.mockSessionService, setup.mockProfileService,
		setup.mockDashboardService, setup.mockReportService, setup.mockPropertyService, utils.NewTimeProvider())

	assert.NotNil(t, router.(*frontendRouter).charts)
}

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	setup := setupTest(t)

	tests := []struct {
		route  string
		method string
	}{
		{route: "/", method: http.MethodGet},
		{route: "/services", method: http.MethodGet},
		{route: "/login", method: http.MethodGet},
		{route: "/login", method: http.MethodPost},
		{route: "/logout", method: http.MethodGet},
		{route: "/admin", method: http.MethodGet},
		{route: "/admin/reports", method: http.MethodGet},
		{route: "/admin/reports/export", method: http.MethodPost},
		{route: "/admin/profile", method: http.MethodGet},
		{route: "/admin/profile", method: http.MethodPost},
		{route: "/admin/profile/password", method: http.MethodPost},
		{route: "/admin/properties", method: http.MethodGet},
		{route: "/admin/properties/apto-batel-301", method: http.MethodGet},
		{route: "/subadmin", method: http.MethodGet},
		{route: "/subadmin/reports", method: http.MethodGet},
		{route: "/subadmin/reports/export", method: http.MethodPost},
		{route: "/subadmin/profile", method: http.MethodGet},
		{route: "/subadmin/properties", method: http.MethodGet},
		{route: "/dashboard", method: http.MethodGet},
		{route: "/dashboard/profile", method: http.MethodGet},
		{route: "/dashboard/profile", method: http.MethodPost},
		{route: "/dashboard/profile/password", method: http.MethodPost},
		{route: "/dashboard/properties", method: http.MethodGet},
		{route: "/dashboard/properties/apto-batel-301", method: http.MethodGet},
	}

	setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrMissingCredentials).AnyTimes()

	setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.route, nil)

			setup.testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func Test_RegisterRoutes__should_not_register_reports_for_user_role(t *testing.T) {
	setup := setupTest(t)
	setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/reports", nil)
	req.AddCookie(sessionCookie(t, "usuario@matriz.com", authCommon.User))

	setup.testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_RoleGroups__should_redirect_to_login_without_session(t *testing.T) {
	setup := setupTest(t)
	setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)

	setup.testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func Test_RoleGroups__should_redirect_session_of_other_role_to_its_landing_path(t *testing.T) {
	setup := setupTest(t)
	setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subadmin", nil)
	req.AddCookie(sessionCookie(t, "admin@matriz.com", authCommon.Admin))

	setup.testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func Test_NotFoundPage__should_render_status_page(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/nowhere", nil)

	setup.router.NotFoundPage(setup.testCtx)

	assert.Equal(t, http.StatusNotFound, setup.w.Code)
	assert.Contains(t, setup.w.Body.String(), "Página não encontrada")
	assert.Contains(t, setup.w.Body.String(), `href="/"`)
}

func Test_NotFoundPage__should_link_back_to_landing_path_of_session(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/admin/nowhere", nil)
	setup.withSession("admin@matriz.com", authCommon.Admin)

	setup.router.NotFoundPage(setup.testCtx)

	assert.Equal(t, http.StatusNotFound, setup.w.Code)
	assert.Contains(t, setup.w.Body.String(), `href="/admin"`)
}
