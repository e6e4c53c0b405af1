//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/matrizimoveis/matriz_portal/config"
	"github.com/matrizimoveis/matriz_portal/environment"
	"github.com/matrizimoveis/matriz_portal/routers"
	"github.com/matrizimoveis/matriz_portal/routers/frontend"
	"github.com/matrizimoveis/matriz_portal/services/demo"
	"github.com/matrizimoveis/matriz_portal/services/mock"
	"github.com/matrizimoveis/matriz_portal/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		demo.NewDemoSessionService,
		mock.NewMockProfileService,
		mock.NewMockDashboardService,
		mock.NewMockReportService,
		mock.NewMockPropertyService,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
