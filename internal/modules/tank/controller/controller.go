package controller

import (
	"context"
	"net/http"

	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

// TankService is what the HTTP layer needs from the query service.
type TankService interface {
	GetLatest(ctx context.Context, tankID int) (types.Reading, error)
	GetPeriodAverage(ctx context.Context, tankID int, period string) ([]types.Average, error)
}

type TankController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type tankControllerImpl struct {
	service TankService
}

func NewTankController(service TankService) TankController {
	return &tankControllerImpl{service: service}
}

func (c *tankControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /caixa/{tank_id}/ultimo", c.handleLatest)
	mux.HandleFunc("GET /caixa/{tank_id}/media", c.handleAverage)
}
