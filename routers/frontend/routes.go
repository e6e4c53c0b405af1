package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/routers/common"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	loginErrMissingFields      = "Preencha e-mail e senha"
	loginErrMalformedEmail     = "Informe um e-mail válido"
	loginErrInvalidCredentials = "E-mail ou senha inválidos"
	loginSuccess               = "Login realizado com sucesso"
	errSomethingWentWrong      = "Algo deu errado, tente novamente"
)

// Landing sends a logged in session to its landing page and everyone else to the login page
func (r *frontendRouter) Landing(ctx *gin.Context) {
	claims, err := auth.GetSessionClaims(sessionTokenProvider(ctx), r.sessionSecret())
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}
	ctx.Redirect(http.StatusSeeOther, claims.Role.LandingPath())
}

func (r *frontendRouter) ServicesPage(ctx *gin.Context) {
	r.renderPage(ctx, servicesPage, http.StatusOK, pageDataModel{
		Data: servicesContent(ctx.Query("tab")),
	})
}

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	r.renderPage(ctx, loginPage, http.StatusOK, pageDataModel{
		Toast: common.PopFlash(ctx),
		Data:  loginDataModel{},
	})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	var credentials entities.Credentials
	_ = ctx.ShouldBind(&credentials)

	session, err := r.sessionService.Authenticate(ctx, credentials)
	if err != nil {
		var message string
		switch errors.Cause(err) {
		case services.ErrMissingCredentials:
			r.logger.Warn("email or password was not provided")
			message = loginErrMissingFields
		case services.ErrMalformedEmail:
			r.logger.Warn("malformed email", zap.String("email", credentials.Email))
			message = loginErrMalformedEmail
		case services.ErrInvalidCredentials:
			r.logger.Warn("invalid credentials", zap.String("email", credentials.Email))
			message = loginErrInvalidCredentials
		default:
			r.logger.Error("could not authenticate", zap.Error(err))
			message = errSomethingWentWrong
		}
		r.renderPage(ctx, loginPage, http.StatusOK, pageDataModel{
			Toast: common.NewErrorToast(message),
			Data:  loginDataModel{Email: credentials.Email},
		})
		return
	}

	token, err := auth.NewSessionJWT(session.Email, session.Role, r.timeProvider.Now().Unix(), r.sessionMaxAge(), r.sessionSecret())
	if err != nil {
		r.logger.Error("could not create session token", zap.String("email", session.Email), zap.Error(err))
		r.renderPage(ctx, loginPage, http.StatusOK, pageDataModel{
			Toast: common.NewErrorToast(errSomethingWentWrong),
			Data:  loginDataModel{Email: credentials.Email},
		})
		return
	}

	ctx.SetCookie(auth.SessionCookieName, token, r.cfg.Session.CookieMaxAge, "/", "", r.cfg.Session.SecureCookie, true)
	r.logger.Info("session started", zap.String("email", session.Email), zap.String("role", string(session.Role)))

	r.renderPage(ctx, loginPage, http.StatusOK, pageDataModel{
		Toast:    common.NewSuccessToast(loginSuccess),
		Redirect: newRedirect(session.Role.LandingPath(), r.cfg.LoginRedirectDelay),
		Data:     loginDataModel{Email: session.Email},
	})
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", r.cfg.Session.SecureCookie, true)

	r.renderPage(ctx, logoutPage, http.StatusOK, pageDataModel{
		Toast:    common.NewInfoToast("Saindo..."),
		Redirect: newRedirect("/login", r.cfg.LogoutRedirectDelay),
	})
}
