// Package config loads the settings shared by the shaft server and client.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/log"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvDatabaseURL       = "SHAFT_DATABASE_URL"
	EnvFirebaseProjectID = "SHAFT_FIREBASE_PROJECT_ID"
	EnvFirebaseAPIKey    = "SHAFT_FIREBASE_API_KEY"
	EnvTLSCertFile       = "SHAFT_TLS_CERT_FILE"
	EnvTLSKeyFile        = "SHAFT_TLS_KEY_FILE"
)

// Game holds the defaults of a new game.
type Game struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Depth        int    `yaml:"depth"`
	StartLevel   int    `yaml:"startLevel"`
	Blockset     string `yaml:"blockset"`
	PracticeMode bool   `yaml:"practiceMode"`
	PlayerName   string `yaml:"playerName"`
}

type Server struct {
	WSPort  int `yaml:"wsPort"`
	APIPort int `yaml:"apiPort"`
	// MaxClients bounds concurrent games, 0 means unlimited.
	MaxClients  int    `yaml:"maxClients"`
	DatabaseURL string `yaml:"databaseURL"`
	// BlocksetDir holds extra block sets next to the built-in ones.
	BlocksetDir string `yaml:"blocksetDir"`
	TLSCertFile string `yaml:"tlsCertFile"`
	TLSKeyFile  string `yaml:"tlsKeyFile"`
}

type Firebase struct {
	ProjectID string `yaml:"projectID"`
	APIKey    string `yaml:"apiKey"`
}

type Client struct {
	ServerURL string `yaml:"serverURL"`
	APIURL    string `yaml:"apiURL"`
	// Token is sent with online score lookups.
	Token string `yaml:"token"`
}

// Settings is the content of a shaft.yaml file.
type Settings struct {
	LogLevel string   `yaml:"logLevel"`
	Game     Game     `yaml:"game"`
	Server   Server   `yaml:"server"`
	Firebase Firebase `yaml:"firebase"`
	Client   Client   `yaml:"client"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		LogLevel: "info",
		Game: Game{
			Width:      constants.DefaultShaftWidth,
			Height:     constants.DefaultShaftHeight,
			Depth:      constants.DefaultShaftDepth,
			StartLevel: constants.DefaultStartLevel,
			Blockset:   constants.DefaultBlockset,
		},
		Server: Server{
			WSPort:      8888,
			APIPort:     9090,
			DatabaseURL: "sqlite://shaft.db",
		},
		Client: Client{
			ServerURL: "ws://localhost:8888",
			APIURL:    "http://localhost:9090",
		},
	}
}

// Load reads path over the defaults and applies the environment. A missing
// file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug("No settings file at %s, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read settings: %v", err)
		default:
			if err := yaml.Unmarshal(b, s); err != nil {
				return nil, fmt.Errorf("failed to parse settings %s: %v", path, err)
			}
		}
	}

	s.ApplyEnv(os.Getenv)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyEnv overrides settings with the non empty environment variables.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	override := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	override(&s.Server.DatabaseURL, EnvDatabaseURL)
	override(&s.Firebase.ProjectID, EnvFirebaseProjectID)
	override(&s.Firebase.APIKey, EnvFirebaseAPIKey)
	override(&s.Server.TLSCertFile, EnvTLSCertFile)
	override(&s.Server.TLSKeyFile, EnvTLSKeyFile)
}

// Validate checks the ranges the game can run with.
func (s *Settings) Validate() error {
	if _, err := log.ParseLogLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	if err := ValidateShaft(s.Game.Width, s.Game.Height, s.Game.Depth); err != nil {
		return err
	}
	if s.Game.StartLevel < 0 || s.Game.StartLevel > constants.MaxLevel {
		return fmt.Errorf("start level %d out of range [0, %d]", s.Game.StartLevel, constants.MaxLevel)
	}
	if s.Game.Blockset == "" {
		return fmt.Errorf("blockset is required")
	}
	if (s.Server.TLSCertFile == "") != (s.Server.TLSKeyFile == "") {
		return fmt.Errorf("tls cert and key files must be set together")
	}
	if s.Server.MaxClients < 0 {
		return fmt.Errorf("max clients must not be negative")
	}
	return nil
}

// ValidateShaft checks shaft dimensions against the supported range.
func ValidateShaft(width, height, depth int) error {
	for _, d := range []struct {
		name  string
		value int
	}{{"width", width}, {"height", height}, {"depth", depth}} {
		if d.value < constants.MinShaftSize || d.value > constants.MaxShaftSize {
			return fmt.Errorf("shaft %s %d out of range [%d, %d]", d.name, d.value, constants.MinShaftSize, constants.MaxShaftSize)
		}
	}
	return nil
}

// Save writes the settings as YAML.
func (s *Settings) Save(path string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %v", err)
	}
	return nil
}
