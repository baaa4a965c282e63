package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/americo7/prueba-argo/internal/http/health"
	"github.com/americo7/prueba-argo/internal/http/info"
	"github.com/americo7/prueba-argo/internal/http/welcome"
	"github.com/americo7/prueba-argo/internal/service/appinfo"
)

// Register wires all HTTP routes into the provided API.
func Register(api huma.API, svc appinfo.Service) {
	welcome.Register(api, svc)
	health.Register(api, svc)
	info.Register(api, svc)
}
