package frontend

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
	"github.com/matrizimoveis/matriz_portal/services/demo"
	"github.com/matrizimoveis/matriz_portal/testutils"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	authCommon "github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// flashMessage returns the unescaped value of the flash cookie set in the response
func flashMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	cookie := responseCookie(w, "Flash")
	if cookie == nil {
		return ""
	}
	value, err := url.QueryUnescape(cookie.Value)
	assert.NoError(t, err)
	return value
}

func Test_Landing__should_redirect_to_login_without_session(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	setup.router.Landing(setup.testCtx)

	assert.Equal(t, http.StatusSeeOther, setup.w.Code)
	assert.Equal(t, "/login", setup.w.Header().Get("Location"))
}

func Test_Landing__should_redirect_to_landing_path_of_session(t *testing.T) {
	setup := setupTest(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, "usuario@matriz.com", authCommon.User))
	setup.testCtx.Request = req

	setup.router.Landing(setup.testCtx)

	assert.Equal(t, http.StatusSeeOther, setup.w.Code)
	assert.Equal(t, "/dashboard", setup.w.Header().Get("Location"))
}

func Test_ServicesPage__should_select_requested_tab(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/services?tab=vender", nil)

	setup.router.ServicesPage(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.Contains(t, setup.w.Body.String(), `data-tab="vender"`)
	assert.NotContains(t, setup.w.Body.String(), `data-tab="comprar"`)
}

func Test_ServicesPage__should_fall_back_to_first_tab(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/services?tab=unknown", nil)

	setup.router.ServicesPage(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.Contains(t, setup.w.Body.String(), `data-tab="comprar"`)
}

func Test_LoginPage__should_render_flash_toast(t *testing.T) {
	setup := setupTest(t)
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "Flash", Value: url.QueryEscape("info|Faça login para continuar")})
	setup.testCtx.Request = req

	setup.router.LoginPage(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.Contains(t, setup.w.Body.String(), `data-toast="info"`)
	assert.Contains(t, setup.w.Body.String(), "Faça login para continuar")
}

func Test_Login(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		prep         func(*testSetup)
		wantToast    string
		wantMessage  string
		wantCookie   bool
		wantRedirect string
	}{
		{
			name:  "should show error toast without cookie when password is empty",
			email: "admin@matriz.com",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), entities.Credentials{Email: "admin@matriz.com"}).
					Return(nil, services.ErrMissingCredentials).Times(1)
			},
			wantToast:   "error",
			wantMessage: loginErrMissingFields,
		},
		{
			name:     "should show error toast when email is malformed",
			email:    "admin",
			password: "admin123",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrMalformedEmail).Times(1)
			},
			wantToast:   "error",
			wantMessage: loginErrMalformedEmail,
		},
		{
			name:     "should show generic error toast when credentials are invalid",
			email:    "admin@matriz.com",
			password: "wrong",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrInvalidCredentials).Times(1)
			},
			wantToast:   "error",
			wantMessage: loginErrInvalidCredentials,
		},
		{
			name:     "should show generic error toast when invalid credentials error is wrapped",
			email:    "admin@matriz.com",
			password: "wrong",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, errors.Wrap(services.ErrInvalidCredentials, "authenticating")).Times(1)
			},
			wantToast:   "error",
			wantMessage: loginErrInvalidCredentials,
		},
		{
			name:     "should show error toast when service fails",
			email:    "admin@matriz.com",
			password: "admin123",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("service err")).Times(1)
			},
			wantToast:   "error",
			wantMessage: errSomethingWentWrong,
		},
		{
			name:     "should set session cookie and navigate admin to /admin",
			email:    "admin@matriz.com",
			password: "admin123",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), entities.Credentials{Email: "admin@matriz.com", Password: "admin123"}).
					Return(&entities.Session{Email: "admin@matriz.com", Role: authCommon.Admin}, nil).Times(1)
			},
			wantToast:    "success",
			wantMessage:  loginSuccess,
			wantCookie:   true,
			wantRedirect: "/admin",
		},
		{
			name:     "should set session cookie and navigate user to /dashboard",
			email:    "usuario@matriz.com",
			password: "user123",
			prep: func(setup *testSetup) {
				setup.mockSessionService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(&entities.Session{Email: "usuario@matriz.com", Role: authCommon.User}, nil).Times(1)
			},
			wantToast:    "success",
			wantMessage:  loginSuccess,
			wantCookie:   true,
			wantRedirect: "/dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddFormRequestToCtx(setup.testCtx, http.MethodPost, "/test", map[string]string{
				"email":    tt.email,
				"password": tt.password,
			})

			setup.router.Login(setup.testCtx)

			body := setup.w.Body.String()
			assert.Equal(t, http.StatusOK, setup.w.Code)
			assert.Contains(t, body, `data-toast="`+tt.wantToast+`"`)
			assert.Contains(t, body, tt.wantMessage)

			cookie := responseCookie(setup.w, auth.SessionCookieName)
			if tt.wantCookie {
				assert.NotNil(t, cookie)
				claims, err := auth.GetSessionClaims(cookie.Value, []byte(testSecret))
				assert.NoError(t, err)
				assert.Equal(t, tt.email, claims.Email)
				assert.Equal(t, testNow.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, cookie)
			}

			if tt.wantRedirect != "" {
				assert.Contains(t, body, `id="redirect-link" href="`+tt.wantRedirect+`"`)
				assert.Contains(t, body, "1500")
			} else {
				assert.NotContains(t, body, "redirect-link")
				assert.NotContains(t, body, "setTimeout")
			}
		})
	}
}

func Test_Login__should_show_same_message_for_unknown_email_and_wrong_password(t *testing.T) {
	cfg := testAppConfig()
	sessionService, err := demo.NewDemoSessionService(zap.NewNop(), cfg)
	assert.NoError(t, err)

	render := func(email, password string) string {
		setup := setupTest(t)
		setup.router.sessionService = sessionService
		testutils.AddFormRequestToCtx(setup.testCtx, http.MethodPost, "/test", map[string]string{
			"email":    email,
			"password": password,
		})

		setup.router.Login(setup.testCtx)

		assert.Nil(t, responseCookie(setup.w, auth.SessionCookieName))
		return toastOf(setup.w.Body.String())
	}

	wrongPassword := render("admin@matriz.com", "wrong-password")
	unknownEmail := render("nobody@matriz.com", "admin123")

	assert.Contains(t, wrongPassword, loginErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

// toastOf cuts the toast markup out of a rendered page
func toastOf(body string) string {
	start := strings.Index(body, `<div class="notification toast`)
	if start < 0 {
		return ""
	}
	end := strings.Index(body[start:], "</div>")
	if end < 0 {
		return body[start:]
	}
	return body[start : start+end]
}

func Test_Logout__should_clear_session_cookie_and_navigate_to_login(t *testing.T) {
	setup := setupTest(t)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie(t, "admin@matriz.com", authCommon.Admin))
	setup.testCtx.Request = req

	setup.router.Logout(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)

	cookie := responseCookie(setup.w, auth.SessionCookieName)
	assert.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
	assert.True(t, cookie.MaxAge < 0)

	body := setup.w.Body.String()
	assert.Contains(t, body, `data-toast="info"`)
	assert.Contains(t, body, `id="redirect-link" href="/login"`)
	assert.Contains(t, body, "1000")
}
