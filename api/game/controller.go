package gameapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes maze sessions over HTTP.
type MazeController struct {
	sessions i.GameSessionManager
	logger   i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(sessions i.GameSessionManager, logger i.Logger) (*MazeController, error) {
	if sessions == nil || logger == nil {
		return nil, errors.New("session manager and logger are required")
	}
	return &MazeController{
		sessions: sessions,
		logger:   logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.state)
		mazes.GET("/:ID/ascii", mc.ascii)
		mazes.POST("/:ID/generate", mc.generate)
		mazes.POST("/:ID/move", mc.move)
		mazes.DELETE("/:ID", mc.end)
	}
}

// create handles new maze sessions.
func (mc *MazeController) create(ctx *gin.Context) {
	alg, ok := mc.bindAlgorithm(ctx)
	if !ok {
		return
	}

	id, state, err := mc.sessions.NewSession(alg)
	if err != nil {
		mc.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &SessionResponse{ID: id.String(), State: state})
}

// state returns the current snapshot of a session.
func (mc *MazeController) state(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	state, err := mc.sessions.Snapshot(id)
	if err != nil {
		mc.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// ascii renders a session as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	out, err := mc.sessions.Render(id)
	if err != nil {
		mc.respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, out)
}

// generate rebuilds a session's maze.
func (mc *MazeController) generate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	alg, ok := mc.bindAlgorithm(ctx)
	if !ok {
		return
	}

	state, err := mc.sessions.Regenerate(id, alg)
	if err != nil {
		mc.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// move handles a directional input.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reached, state, err := mc.sessions.Move(id, dir)
	if err != nil {
		mc.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &MoveResponse{ReachedEnd: reached, State: state})
}

// end drops a session.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.End(id); err != nil {
		mc.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// bindAlgorithm reads an optional GenerateRequest body.
func (mc *MazeController) bindAlgorithm(ctx *gin.Context) (maze.Algorithm, bool) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	if request.Algorithm == "" {
		return 0, true
	}

	alg, err := maze.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return alg, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (mc *MazeController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrGameWon):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDirection), errors.Is(err, maze.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
