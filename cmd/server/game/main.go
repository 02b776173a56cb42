package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	authproviders "github.com/cbodonnell/shaft/pkg/auth/providers"
	"github.com/cbodonnell/shaft/pkg/blocks"
	"github.com/cbodonnell/shaft/pkg/config"
	"github.com/cbodonnell/shaft/pkg/game"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/network"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/cbodonnell/shaft/pkg/version"
	"github.com/cbodonnell/shaft/pkg/workers"
)

func main() {
	configPath := flag.String("config", "shaft.yaml", "Path to the settings file")
	wsPort := flag.Int("ws-port", 0, "WebSocket port to listen on, overrides the settings file")
	logLevel := flag.String("log-level", "", "Log level, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load settings: %v", err))
	}
	if *wsPort != 0 {
		settings.Server.WSPort = *wsPort
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

	log.Info("Starting game server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var authProvider authproviders.AuthProvider
	if settings.Firebase.ProjectID != "" {
		authProvider, err = authproviders.NewFirebaseAuthProvider(ctx, settings.Firebase.ProjectID, settings.Firebase.APIKey)
		if err != nil {
			panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
		}
	} else {
		log.Warn("No Firebase project configured, all players are anonymous")
	}

	repository, err := repositories.Open(ctx, settings.Server.DatabaseURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	clientMessageQueue := queue.NewInMemoryQueue(10000)
	connectionEventQueue := queue.NewInMemoryQueue(1000)

	clientManager := network.NewClientManager(network.NewClientManagerOptions{
		MaxClients:           settings.Server.MaxClients,
		ConnectionEventQueue: connectionEventQueue,
	})

	networkManagerOpts := network.NewNetworkManagerOptions{
		AuthProvider:  authProvider,
		ClientManager: clientManager,
		MessageQueue:  clientMessageQueue,
		WSPort:        settings.Server.WSPort,
	}
	if settings.Server.TLSCertFile != "" && settings.Server.TLSKeyFile != "" {
		networkManagerOpts.WSServerTLS = &network.TLSConfig{
			CertFile: settings.Server.TLSCertFile,
			KeyFile:  settings.Server.TLSKeyFile,
		}
	}
	networkManager := network.NewNetworkManager(networkManagerOpts)
	go networkManager.Start(ctx)

	saveScoreChannelSize := 100
	saveScoreChan := make(chan workers.SaveScoreRequest, saveScoreChannelSize)
	saveScoreWorker := workers.NewSaveScoreWorker(workers.NewSaveScoreWorkerOptions{
		Repository:    repository,
		SaveScoreChan: saveScoreChan,
	})
	go saveScoreWorker.Start(ctx)

	serverMessageChannelSize := 1000
	serverMessageChan := make(chan workers.ServerMessage, serverMessageChannelSize)
	serverMessageWorker := workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		Sender:            networkManager,
		ServerMessageChan: serverMessageChan,
	})
	go serverMessageWorker.Start(ctx)

	builtin, err := blocks.List(blocks.Builtin())
	if err != nil {
		panic(fmt.Sprintf("Failed to list built-in blocksets: %v", err))
	}
	log.Info("Built-in blocksets: %v", builtin)

	var blocksets fs.FS
	if settings.Server.BlocksetDir != "" {
		blocksets = os.DirFS(settings.Server.BlocksetDir)
		custom, err := blocks.List(blocksets)
		if err != nil {
			panic(fmt.Sprintf("Failed to list blocksets in %s: %v", settings.Server.BlocksetDir, err))
		}
		log.Info("Blocksets in %s: %v", settings.Server.BlocksetDir, custom)
	}

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue:   clientMessageQueue,
		ConnectionEventQueue: connectionEventQueue,
		Repository:           repository,
		ServerMessageChan:    serverMessageChan,
		SaveScoreChan:        saveScoreChan,
		GameLoopInterval:     constants.GameLoopInterval,
		Blocksets:            blocksets,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start game manager: %v", err))
	}

	// the game manager queued its last saves while stopping
	close(saveScoreChan)
	<-saveScoreWorker.Done()
	log.Info("Game server stopped")
}
