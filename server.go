package main

import (
	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/environment"
	"github.com/matrizimoveis/matriz_portal/routers"
	"github.com/matrizimoveis/matriz_portal/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const templatesPattern = "templates/*/*.gohtml"

// Server is the gin engine of the portal together with what main needs to run it
type Server struct {
	*gin.Engine
	Port   string
	Logger *zap.Logger
}

func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter) (Server, error) {
	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(utils.RequestLogger(logger), gin.Recovery())

	tmpl, err := utils.LoadTemplates(templatesPattern)
	if err != nil {
		return Server{}, errors.Wrap(err, "could not load page templates")
	}
	engine.SetHTMLTemplate(tmpl)

	mainRouter.RegisterRoutes(engine.Group("/"))
	engine.NoRoute(mainRouter.NotFound)

	return Server{
		Engine: engine,
		Port:   env.Get(environment.Port),
		Logger: logger,
	}, nil
}
