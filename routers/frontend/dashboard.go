package frontend

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/routers/common"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	profileErrNameRequired    = "Nome e sobrenome são obrigatórios"
	profileSaved              = "Perfil atualizado com sucesso"
	passwordErrFieldsRequired = "Preencha todos os campos de senha"
	passwordErrTooShort       = "A nova senha deve ter pelo menos 6 caracteres"
	passwordErrMismatch       = "A confirmação não confere com a nova senha"
	passwordChanged           = "Senha alterada com sucesso"
	reportExportStartedPrefix = "Exportação iniciada: "
	propertyNotFoundTitle     = "Imóvel não encontrado"
	propertyNotFoundMessage   = "O imóvel procurado não existe ou foi removido."
)

func (r *frontendRouter) DashboardPage(ctx *gin.Context) {
	r.renderPage(ctx, dashboardPage, http.StatusOK, pageDataModel{
		Toast: common.PopFlash(ctx),
	})
}

func (r *frontendRouter) ProfilePage(ctx *gin.Context) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		invalidSessionHandler(ctx)
		return
	}

	profile, err := r.profileService.GetProfile(ctx, claims.Email)
	if err != nil {
		r.logger.Error("could not fetch profile", zap.String("email", claims.Email), zap.Error(err))
		r.renderStatusPage(ctx, http.StatusInternalServerError, "Algo deu errado", "Não foi possível carregar o perfil.")
		return
	}

	state := entities.ParseProfileEditState(ctx.Request.URL.Query())
	r.renderProfilePage(ctx, *profile, entities.ProfileUpdateFrom(*profile), state, common.PopFlash(ctx))
}

func (r *frontendRouter) UpdateProfile(ctx *gin.Context) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		invalidSessionHandler(ctx)
		return
	}

	var form entities.ProfileUpdate
	_ = ctx.ShouldBind(&form)
	state := entities.ParseProfileEditState(ctx.Request.URL.Query())
	state.Editing = true

	_, err := r.profileService.UpdateProfile(ctx, claims.Email, form)
	if err != nil {
		message := errSomethingWentWrong
		if errors.Cause(err) == services.ErrProfileNameRequired {
			r.logger.Warn("profile name or surname was not provided", zap.String("email", claims.Email))
			message = profileErrNameRequired
		} else {
			r.logger.Error("could not update profile", zap.String("email", claims.Email), zap.Error(err))
		}

		profile, getErr := r.profileService.GetProfile(ctx, claims.Email)
		if getErr != nil {
			r.logger.Error("could not fetch profile", zap.String("email", claims.Email), zap.Error(getErr))
			r.renderStatusPage(ctx, http.StatusInternalServerError, "Algo deu errado", "Não foi possível carregar o perfil.")
			return
		}
		r.renderProfilePage(ctx, *profile, form, state, common.NewErrorToast(message))
		return
	}

	state.Editing = false
	common.SetFlash(ctx, common.NewSuccessToast(profileSaved))
	ctx.Redirect(http.StatusSeeOther, claims.Role.BasePath()+"/profile"+state.Query())
}

// ChangePassword validates the password form. Nothing is stored and the current password isn't checked.
func (r *frontendRouter) ChangePassword(ctx *gin.Context) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		invalidSessionHandler(ctx)
		return
	}

	var form entities.PasswordChange
	_ = ctx.ShouldBind(&form)
	state := entities.ParseProfileEditState(ctx.Request.URL.Query())
	state.ChangingPassword = true

	err := r.profileService.ChangePassword(ctx, claims.Email, form)
	if err != nil {
		var message string
		switch errors.Cause(err) {
		case services.ErrPasswordFieldsRequired:
			message = passwordErrFieldsRequired
		case services.ErrPasswordTooShort:
			message = passwordErrTooShort
		case services.ErrPasswordMismatch:
			message = passwordErrMismatch
		default:
			r.logger.Error("could not change password", zap.String("email", claims.Email), zap.Error(err))
			message = errSomethingWentWrong
		}
		r.logger.Warn("password change rejected", zap.String("email", claims.Email), zap.String("reason", err.Error()))

		profile, getErr := r.profileService.GetProfile(ctx, claims.Email)
		if getErr != nil {
			r.logger.Error("could not fetch profile", zap.String("email", claims.Email), zap.Error(getErr))
			r.renderStatusPage(ctx, http.StatusInternalServerError, "Algo deu errado", "Não foi possível carregar o perfil.")
			return
		}
		r.renderProfilePage(ctx, *profile, entities.ProfileUpdateFrom(*profile), state, common.NewErrorToast(message))
		return
	}

	state.ChangingPassword = false
	common.SetFlash(ctx, common.NewSuccessToast(passwordChanged))
	ctx.Redirect(http.StatusSeeOther, claims.Role.BasePath()+"/profile"+state.Query())
}

func (r *frontendRouter) renderProfilePage(ctx *gin.Context, profile entities.Profile, form entities.ProfileUpdate,
	state entities.ProfileEditState, toast *common.Toast) {
	claims, _ := auth.GetSessionFromContext(ctx)

	r.renderPage(ctx, profilePage, http.StatusOK, pageDataModel{
		Toast: toast,
		Data: profilePageDataModel{
			Profile:       profile,
			Form:          form,
			State:         state,
			BasePath:      claims.Role.BasePath(),
			EditQuery:     state.ToggleEditing().Query(),
			PasswordQuery: state.TogglePassword().Query(),
			CurrentQuery:  state.Query(),
		},
	})
}

func (r *frontendRouter) ReportsPage(ctx *gin.Context) {
	r.renderPage(ctx, reportsPage, http.StatusOK, pageDataModel{
		Toast: common.PopFlash(ctx),
	})
}

// ExportReport logs the name of the export file and sends the user back to the report
func (r *frontendRouter) ExportReport(ctx *gin.Context) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		invalidSessionHandler(ctx)
		return
	}

	var filter entities.ReportFilter
	_ = ctx.ShouldBind(&filter)
	filter = filter.Normalize()

	filename, err := r.reportService.Export(ctx, filter)
	if err != nil {
		r.logger.Error("could not export report", zap.Error(err))
		common.SetFlash(ctx, common.NewErrorToast(errSomethingWentWrong))
	} else {
		common.SetFlash(ctx, common.NewInfoToast(reportExportStartedPrefix+filename))
	}

	query := url.Values{}
	query.Set("period", string(filter.Period))
	query.Set("type", string(filter.Type))
	ctx.Redirect(http.StatusSeeOther, claims.Role.BasePath()+"/reports?"+query.Encode())
}

func (r *frontendRouter) PropertiesPage(ctx *gin.Context) {
	r.renderPage(ctx, propertiesPage, http.StatusOK, pageDataModel{})
}

func (r *frontendRouter) PropertyPage(ctx *gin.Context) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		invalidSessionHandler(ctx)
		return
	}

	id := ctx.Param("id")
	property, err := r.propertyService.GetPropertyWithID(ctx, id)
	if err != nil {
		if errors.Cause(err) == services.ErrNotFound {
			r.logger.Warn("property not found", zap.String("id", id))
			r.renderStatusPage(ctx, http.StatusNotFound, propertyNotFoundTitle, propertyNotFoundMessage)
			return
		}
		r.logger.Error("could not fetch property", zap.String("id", id), zap.Error(err))
		r.renderStatusPage(ctx, http.StatusInternalServerError, "Algo deu errado", "Não foi possível carregar o imóvel.")
		return
	}

	r.renderPage(ctx, propertyPage, http.StatusOK, pageDataModel{
		Data: propertyDataModel{
			Property: *property,
			BasePath: claims.Role.BasePath(),
		},
	})
}
