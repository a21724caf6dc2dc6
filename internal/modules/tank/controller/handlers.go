package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/numdez/daguaCollection/internal/modules/tank/types"
	"github.com/numdez/daguaCollection/internal/utils"
)

func (c *tankControllerImpl) handleLatest(w http.ResponseWriter, r *http.Request) {
	tankID, err := parseTankID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	latest, err := c.service.GetLatest(r.Context(), tankID)
	switch {
	case errors.Is(err, types.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "no reading found for tank")
		return
	case err != nil:
		writeServiceError(w, r, "latest", tankID, err, "failed to load reading")
		return
	}
	utils.WriteJSON(w, http.StatusOK, latest)
}

func (c *tankControllerImpl) handleAverage(w http.ResponseWriter, r *http.Request) {
	tankID, err := parseTankID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	averages, err := c.service.GetPeriodAverage(r.Context(), tankID, parsePeriodQuery(r))
	switch {
	case errors.Is(err, types.ErrInvalidPeriod):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeServiceError(w, r, "average", tankID, err, "failed to load averages")
		return
	}
	if averages == nil {
		averages = []types.Average{}
	}
	utils.WriteJSON(w, http.StatusOK, averages)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, op string, tankID int, err error, msg string) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		slog.Debug(op+": client went away", "tank_id", tankID)
		return
	}
	slog.Error(op+": query failed", "tank_id", tankID, "error", err)
	utils.WriteError(w, http.StatusInternalServerError, msg)
}
