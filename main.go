package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Global variables for dependencies
var (
	gameSessionManager i.GameSessionManager
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	alg, err := maze.ParseAlgorithm(config.Envs.MazeAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Reading default algorithm: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Width:            config.Envs.MazeWidth,
		Height:           config.Envs.MazeHeight,
		Seed:             config.Envs.MazeSeed,
		DefaultAlgorithm: alg,
		SessionTTL:       config.Envs.SessionTTL,
		Logger:           sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info(fmt.Sprintf("Session manager initialized: %dx%d, default %s, idle ttl %s",
		config.Envs.MazeWidth, config.Envs.MazeHeight, alg, gameSessionManager.TTL()))
}

// startSessionSweeper drops idle sessions on a ticker for the life of the process.
func startSessionSweeper() {
	interval := max(gameSessionManager.TTL()/2, time.Second)
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for now := range ticker.C {
			if n := gameSessionManager.ExpireIdle(now); n > 0 {
				appLogger.Info(fmt.Sprintf("Expired %d idle sessions", n))
			}
		}
	}()
	appLogger.Info(fmt.Sprintf("Session sweeper started, every %s", interval))
}

func initMazeController() {
	controllerLogger, err := logger.New("MAZE-API", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = gameapi.NewMazeController(gameSessionManager, controllerLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Mode:        config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initSessionManager()
	startSessionSweeper()
	initMazeController()
	initRouter()

	// Run HTTP server
	appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
