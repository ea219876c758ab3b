package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const seedHeader = "X-Maze-Seed"

// MazeService is the part of service.MazeService the controller uses.
type MazeService interface {
	Generate(req service.MazeRequest) (*maze.Grid, string, maze.NoiseBias, error)
	Render(ctx context.Context, req service.MazeRequest) (*service.Rendered, error)
	Create(ctx context.Context, owner string, req service.MazeRequest) (*dmn.MazeRecord, error)
	Record(ctx context.Context, owner string, id uuid.UUID) (*dmn.MazeRecord, error)
	Records(ctx context.Context, owner string) ([]*dmn.MazeRecord, error)
	RenderRecord(ctx context.Context, owner string, id uuid.UUID, format string) (*service.Rendered, error)
}

// MazeController serves maze images and saved maze records.
type MazeController struct {
	mazeService MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.image)
		mazes.GET("/ascii", mc.ascii)
		mazes.GET("/rules", mc.rules)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	records := route.Group("/mazes")
	{
		records.POST("", mc.create)
		records.GET("", mc.list)
		records.GET("/:ID", mc.record)
		records.GET("/:ID/image", mc.recordImage)
	}
}

// image renders a maze from query parameters.
func (mc *MazeController) image(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := mc.mazeService.Render(ctx.Request.Context(), service.MazeRequest(query))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	writeImage(ctx, out)
}

// ascii renders a maze as '#'/'.' text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, seed, _, err := mc.mazeService.Generate(service.MazeRequest(query))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header(seedHeader, seed)
	ctx.String(http.StatusOK, grid.String())
}

// rules describes the maze image format.
func (mc *MazeController) rules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, RulesResponse{Rules: maze.Rules})
}

// create generates a maze and saves its record for the caller.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Create(ctx.Request.Context(), identity.Subject(ctx), service.MazeRequest{
		Width:  request.Width,
		Height: request.Height,
		Noise:  request.Noise,
		Seed:   request.Seed,
	})
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header(seedHeader, record.Seed)
	ctx.JSON(http.StatusCreated, record)
}

// list returns the caller's newest records.
func (mc *MazeController) list(ctx *gin.Context) {
	records, err := mc.mazeService.Records(ctx.Request.Context(), identity.Subject(ctx))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// record returns one of the caller's records.
func (mc *MazeController) record(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := mc.mazeService.Record(ctx.Request.Context(), identity.Subject(ctx), ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// recordImage regenerates the image of one of the caller's records.
func (mc *MazeController) recordImage(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	out, err := mc.mazeService.RenderRecord(ctx.Request.Context(), identity.Subject(ctx), ID, ctx.Query("format"))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	writeImage(ctx, out)
}

func writeImage(ctx *gin.Context, out *service.Rendered) {
	ctx.Header(seedHeader, out.Seed)
	ctx.Data(http.StatusOK, out.Format.ContentType(), out.Data)
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidNoiseBias),
		errors.Is(err, render.ErrUnknownFormat),
		errors.Is(err, service.ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRecordsDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
