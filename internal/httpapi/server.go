package httpapi

import (
	"net/http"

	"github.com/numdez/daguaCollection/internal/config"
)

func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           requestLogger(recoverer(handler)),
		ReadHeaderTimeout: cfg.HTTPReadHeaderTimeout,
	}
}
