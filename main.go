package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 2 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// a missing .env is fine, the variables can come from the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(fmt.Sprintf("could not load .env file: %s", err))
	}

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", server.Port),
		Handler:           server.Engine,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		server.Logger.Info("server started", zap.String("address", fmt.Sprintf("localhost:%s", server.Port)))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	sig := <-signals
	server.Logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		server.Logger.Error("could not shut down server", zap.Error(err))
	}
	_ = server.Logger.Sync()
}
