package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"

	"salon-analytics/internal/api"
	"salon-analytics/internal/api/handler"
	"salon-analytics/internal/config"
	"salon-analytics/internal/pipeline"
	"salon-analytics/internal/store"
)

var log = logging.MustGetLogger("main")

// InitLogger parses the log level string and installs the formatted
// stdout backend. An invalid level string is an error.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debugf("config: %+v", cfg)

	pipeline.SetBusinessWindow(cfg.BusinessOpen, cfg.BusinessClose)
	pipeline.SetDateOrder(cfg.DateOrder)

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	handler.Init(pipeline.NewExporter(cfg.OutputDir))

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: api.NewRouter(),
	}

	go func() {
		log.Infof("salon analytics API listening on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Info("server exiting")
}
