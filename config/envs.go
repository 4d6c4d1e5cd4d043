package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults match the classic 800x600 window split into 20px cells.
const (
	defaultMazeWidth  = 40
	defaultMazeHeight = 30
	defaultAlgorithm  = "prims"
	defaultHostIP     = "localhost"
	defaultRESTPort   = 8080
	defaultGinMode    = "release"
	defaultSessionTTL = 5 * time.Minute
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string        // Host IP for the server
	RESTPort      int           // Port for the REST API
	GinMode       string        // Mode for the Gin framework (e.g., release, debug, test)
	MazeWidth     int           // Number of maze columns
	MazeHeight    int           // Number of maze rows
	MazeSeed      int64         // Seed for maze generation; 0 picks one from the clock
	MazeAlgorithm string        // Algorithm used for a new maze (prims or kruskals)
	SessionTTL    time.Duration // Idle lifetime of a maze session
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c, err := Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return c
}

// Load builds a Config from the current environment, falling back to
// defaults for unset variables.
func Load() (Config, error) {
	width, err := getEnvAsIntWithDefault("MAZE_WIDTH", defaultMazeWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := getEnvAsIntWithDefault("MAZE_HEIGHT", defaultMazeHeight)
	if err != nil {
		return Config{}, err
	}
	port, err := getEnvAsIntWithDefault("REST_PORT", defaultRESTPort)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt64WithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	ttl, err := getEnvAsDurationWithDefault("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", defaultHostIP),
		RESTPort:      port,
		GinMode:       getEnvWithDefault("GIN_MODE", defaultGinMode),
		MazeWidth:     width,
		MazeHeight:    height,
		MazeSeed:      seed,
		MazeAlgorithm: getEnvWithDefault("MAZE_ALGORITHM", defaultAlgorithm),
		SessionTTL:    ttl,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default when unset.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsInt64WithDefault(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsDurationWithDefault reads a positive duration such as "5m" or "90s".
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("environment variable %s must be positive, got %s", key, value)
	}
	return value, nil
}
