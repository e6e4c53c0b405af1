package frontend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/config/role"
	"github.com/matrizimoveis/matriz_portal/environment"
	"github.com/matrizimoveis/matriz_portal/routers/api/models"
	"github.com/matrizimoveis/matriz_portal/routers/common"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/utils"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	authCommon "github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/matrizimoveis/matriz_portal/utils/charts"
	"go.uber.org/zap"
)

func sessionTokenProvider(ctx *gin.Context) string {
	token, err := ctx.Cookie(auth.SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func invalidSessionHandler(ctx *gin.Context) {
	common.SetFlash(ctx, common.NewInfoToast("Faça login para continuar"))
	ctx.Redirect(http.StatusSeeOther, "/login")
	ctx.Abort()
}

//go:generate mockgen -destination ../../mocks/routers/frontend/mock_router.go -package mock_frontend github.com/matrizimoveis/matriz_portal/routers/frontend Router

type Router interface {
	models.Router
	Landing(*gin.Context)
	ServicesPage(*gin.Context)
	LoginPage(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	DashboardPage(*gin.Context)
	ProfilePage(*gin.Context)
	UpdateProfile(*gin.Context)
	ChangePassword(*gin.Context)
	ReportsPage(*gin.Context)
	ExportReport(*gin.Context)
	PropertiesPage(*gin.Context)
	PropertyPage(*gin.Context)
	NotFoundPage(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger           *zap.Logger
	cfg              *config.AppConfig
	env              *environment.Env
	sessionService   services.SessionService
	profileService   services.ProfileService
	dashboardService services.DashboardService
	reportService    services.ReportService
	propertyService  services.PropertyService
	timeProvider     utils.TimeProvider
	charts           *charts.BarRenderer
}

func NewRouter(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, sessionService services.SessionService,
	profileService services.ProfileService, dashboardService services.DashboardService, reportService services.ReportService,
	propertyService services.PropertyService, timeProvider utils.TimeProvider) Router {
	if env.Get(environment.SessionSecret) == "" {
		logger.Warn("session secret not set, logins will fail")
	}

	return &frontendRouter{
		logger:           logger,
		cfg:              cfg,
		env:              env,
		sessionService:   sessionService,
		profileService:   profileService,
		dashboardService: dashboardService,
		reportService:    reportService,
		propertyService:  propertyService,
		timeProvider:     timeProvider,
		charts:           charts.NewBarRenderer(cfg.ChartTheme),
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.Landing)
	routerGroup.GET("services", r.ServicesPage)
	routerGroup.GET("login", r.LoginPage)
	routerGroup.POST("login", r.Login)
	routerGroup.GET("logout", r.Logout)

	for _, sessionRole := range authCommon.Roles {
		chrome, err := role.ChromeFor(sessionRole)
		if err != nil {
			r.logger.Error("could not register routes for role", zap.String("role", string(sessionRole)), zap.Error(err))
			continue
		}

		isRole := auth.RoleVerifierFactory(sessionRole, sessionTokenProvider, r.sessionSecret(), invalidSessionHandler)

		roleGroup := routerGroup.Group(chrome.BasePath[1:], isRole)
		roleGroup.GET("", r.DashboardPage)
		roleGroup.GET("profile", r.ProfilePage)
		roleGroup.POST("profile", r.UpdateProfile)
		roleGroup.POST("profile/password", r.ChangePassword)
		roleGroup.GET("properties", r.PropertiesPage)
		roleGroup.GET("properties/:id", r.PropertyPage)
		if chrome.HasPage("/reports") {
			roleGroup.GET("reports", r.ReportsPage)
			roleGroup.POST("reports/export", r.ExportReport)
		}
	}
}

func (r *frontendRouter) sessionSecret() []byte {
	return []byte(r.env.Get(environment.SessionSecret))
}

// sessionMaxAge keeps the token expiry in line with the session cookie's max age
func (r *frontendRouter) sessionMaxAge() time.Duration {
	return time.Duration(r.cfg.Session.CookieMaxAge) * time.Second
}

// renderPage collects the data of every component of the page and renders its template.
// A failing component turns the response into an error page.
func (r *frontendRouter) renderPage(ctx *gin.Context, page frontendPage, status int, model pageDataModel) {
	model.Cfg = r.cfg
	model.Components = make(map[string]interface{}, len(page.components))

	for _, component := range page.components {
		data, err := component.dataProvider(ctx, r)
		if err != nil {
			r.logger.Error("could not build page component",
				zap.String("page", page.name),
				zap.String("component", component.name),
				zap.Error(err))
			r.renderStatusPage(ctx, http.StatusInternalServerError, "Algo deu errado", "Não foi possível carregar esta página.")
			return
		}
		model.Components[component.name] = data
	}

	ctx.HTML(status, page.templateName, model)
}

func (r *frontendRouter) renderStatusPage(ctx *gin.Context, status int, title, message string) {
	backHref := "/"
	if claims, ok := auth.GetSessionFromContext(ctx); ok {
		backHref = claims.Role.LandingPath()
	}

	ctx.HTML(status, statusPage.templateName, pageDataModel{
		Cfg: r.cfg,
		Data: statusDataModel{
			Code:     status,
			Title:    title,
			Message:  message,
			BackHref: backHref,
		},
	})
}

func (r *frontendRouter) NotFoundPage(ctx *gin.Context) {
	r.renderStatusPage(ctx, http.StatusNotFound, "Página não encontrada", "O endereço acessado não existe.")
}
