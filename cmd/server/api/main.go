package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/shaft/pkg/api"
	"github.com/cbodonnell/shaft/pkg/api/handlers"
	authproviders "github.com/cbodonnell/shaft/pkg/auth/providers"
	"github.com/cbodonnell/shaft/pkg/config"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/cbodonnell/shaft/pkg/version"
)

func main() {
	configPath := flag.String("config", "shaft.yaml", "Path to the settings file")
	port := flag.Int("port", 0, "port to listen on, overrides the settings file")
	logLevel := flag.String("log-level", "", "Log level, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load settings: %v", err))
	}
	if *port != 0 {
		settings.Server.APIPort = *port
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(settings.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if settings.Firebase.ProjectID == "" {
		panic(fmt.Sprintf("%s environment variable must be set", config.EnvFirebaseProjectID))
	}
	authProvider, err := authproviders.NewFirebaseAuthProvider(ctx, settings.Firebase.ProjectID, settings.Firebase.APIKey)
	if err != nil {
		panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
	}

	repository, err := repositories.Open(ctx, settings.Server.DatabaseURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	apiServerOpts := api.NewAPIServerOptions{
		Port:         settings.Server.APIPort,
		AuthProvider: authProvider,
		Repository:   repository,
	}
	if settings.Firebase.APIKey != "" {
		apiServerOpts.Accounts = handlers.NewAccountsHandler(handlers.NewAccountsHandlerOptions{
			APIKey: settings.Firebase.APIKey,
		})
	}
	if settings.Server.TLSCertFile != "" && settings.Server.TLSKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: settings.Server.TLSCertFile,
			KeyFile:  settings.Server.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	<-ctx.Done()
	if err := server.Stop(context.Background()); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
