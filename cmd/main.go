package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ray-remotestate/bento/config"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/server"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.Init()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := database.ConnectAndMigrate(
		config.DBHost(),
		config.DBPort(),
		config.DBName(),
		config.DBUser(),
		config.DBPassword(),
		config.DBSSLMode(),
		config.MigrationPath(),
	); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(config.ServerPort()); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Panic("server stopped unexpectedly")
		}
	}()
	logrus.Printf("server listening on %s", config.ServerPort())

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection")
	}
}
