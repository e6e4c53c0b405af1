package config

import (
	"fmt"
	"path/filepath"

	"github.com/matrizimoveis/matriz_portal/environment"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"

	"go.uber.org/config"
)

// DemoAccount is one of the hard-coded credential pairs accepted by the login page
type DemoAccount struct {
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Role     common.Role `yaml:"role"`
}

// SessionConfig stores the settings of the session cookie
type SessionConfig struct {
	CookieMaxAge int  `yaml:"cookie_max_age"`
	SecureCookie bool `yaml:"secure_cookie"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name                string        `yaml:"name"`
	DemoAccounts        []DemoAccount `yaml:"demo_accounts"`
	LoginRedirectDelay  int           `yaml:"login_redirect_delay_ms"`
	LogoutRedirectDelay int           `yaml:"logout_redirect_delay_ms"`
	ChartTheme          string        `yaml:"chart_theme"`
	Session             SessionConfig `yaml:"session"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.Get(environment.ConfigDir)
	if dir == "" {
		dir = "."
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(dir, "base.yaml"))}
	if env.IsProduction() {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	for _, account := range cfg.DemoAccounts {
		if !account.Role.Valid() {
			return nil, errors.Wrap(common.ErrUnknownRole, fmt.Sprintf("demo account %s has role %s", account.Email, account.Role))
		}
	}

	return &cfg, nil
}
