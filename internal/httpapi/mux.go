package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/numdez/daguaCollection/internal/modules/tank"
)

// NewMux returns the full route table: the health check plus every feature
// module backed by db.
func NewMux(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, db)
	tank.RegisterFeature(mux, db)
	return mux
}
