package environment

import (
	"os"

	"go.uber.org/zap"
)

// names of env vars
const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	SessionSecret = "SESSION_SECRET"
	ConfigDir     = "CONFIG_DIR"
)

// Production is the value of ENVIRONMENT in production
const Production = "prod"

// fallbacks of the env vars, an empty fallback means the var is expected to be set
var fallbacks = map[string]string{
	Environment:   "",
	Port:          "8000",
	SessionSecret: "",
	ConfigDir:     ".",
}

// NewEnv reads the env vars of the portal once; later changes to the process environment are not seen
func NewEnv(logger *zap.Logger) *Env {
	vars := make(map[string]string, len(fallbacks))
	for name, fallback := range fallbacks {
		vars[name] = lookupEnvVar(logger, name, fallback)
	}

	return &Env{vars: vars}
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// IsProduction reports whether ENVIRONMENT is set to prod
func (env *Env) IsProduction() bool {
	return env.vars[Environment] == Production
}

func lookupEnvVar(logger *zap.Logger, name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	if fallback == "" {
		logger.Warn("expected environment variable not defined", zap.String("var", name))
	} else {
		logger.Debug("environment variable not defined, using fallback",
			zap.String("var", name), zap.String("fallback", fallback))
	}
	return fallback
}
