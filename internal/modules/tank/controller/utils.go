package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

const periodQueryParam = "periodo"

func parseTankID(r *http.Request) (int, error) {
	s := strings.TrimSpace(r.PathValue("tank_id"))
	if s == "" {
		return 0, errors.New("missing tank id")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid tank id (expected integer)")
	}
	return id, nil
}

// parsePeriodQuery returns the raw period token; an absent parameter yields
// "" which the service rejects like any other unknown period.
func parsePeriodQuery(r *http.Request) string {
	return r.URL.Query().Get(periodQueryParam)
}
