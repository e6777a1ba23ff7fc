package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/iwvelando/rehab-plan/internal/logging"
	"github.com/iwvelando/rehab-plan/internal/server"
	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg.UploadSizeBytes(), version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting plan server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
		zap.String("version", version),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
