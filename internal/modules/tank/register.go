package tank

import (
	"database/sql"
	"net/http"

	"github.com/numdez/daguaCollection/internal/modules/tank/controller"
	"github.com/numdez/daguaCollection/internal/modules/tank/repository"
	"github.com/numdez/daguaCollection/internal/modules/tank/service"
)

func RegisterFeature(mux *http.ServeMux, db *sql.DB) {
	tankRepository := repository.NewRepository(db)
	tankService := service.NewService(tankRepository)
	tankController := controller.NewTankController(tankService)
	tankController.RegisterRoutes(mux)
}
