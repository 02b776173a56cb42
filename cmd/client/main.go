package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/shaft/client/game"
	"github.com/cbodonnell/shaft/pkg/client/network"
	"github.com/cbodonnell/shaft/pkg/config"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/cbodonnell/shaft/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "shaft.yaml", "Path to the settings file")
	serverURL := flag.String("server", "", "Game server URL, overrides the settings file")
	logLevel := flag.String("log-level", "", "Log level, overrides the settings file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	saveConfig := flag.Bool("save-config", false, "Write the effective settings to the settings file and exit")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load settings: %v", err))
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if *serverURL != "" {
		settings.Client.ServerURL = *serverURL
	}

	if *saveConfig {
		if err := settings.Save(*configPath); err != nil {
			panic(fmt.Sprintf("Failed to save settings: %v", err))
		}
		fmt.Printf("Settings written to %s\n", *configPath)
		return
	}

	parsedLogLevel, err := log.ParseLogLevel(settings.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	serverMessageQueue := queue.NewInMemoryQueue(1024)
	client := network.NewWSClient(network.NewWSClientOptions{
		ServerURL:    settings.Client.ServerURL,
		Token:        settings.Client.Token,
		MessageQueue: serverMessageQueue,
	})

	var scoreClient *network.ScoreClient
	if settings.Client.APIURL != "" {
		scoreClient = network.NewScoreClient(network.NewScoreClientOptions{APIURL: settings.Client.APIURL})
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:        *debug,
		Settings:     settings.Game,
		Client:       client,
		ScoreClient:  scoreClient,
		MessageQueue: serverMessageQueue,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Shaaft")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
