package info

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/americo7/prueba-argo/internal/platform/logging"
	"github.com/americo7/prueba-argo/internal/service/appinfo"
)

// Register wires GET /info into the provided API.
func Register(api huma.API, svc appinfo.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-info",
		Method:      http.MethodGet,
		Path:        "/info",
		Summary:     "Application info",
		Description: "Static descriptor of the application and its deployment pipeline.",
		Tags:        []string{"App"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "info", zap.String("path", "/info"))
		return &Output{Body: toHTTPInfo(svc.Info(ctx))}, nil
	})
}

func toHTTPInfo(i appinfo.Info) Data {
	endpoints := make([]Endpoint, 0, len(i.Endpoints))
	for _, e := range i.Endpoints {
		endpoints = append(endpoints, Endpoint{
			Path:        e.Path,
			Method:      e.Method,
			Description: e.Description,
		})
	}
	return Data{
		App:         i.App,
		Version:     i.Version,
		Author:      i.Author,
		Description: i.Description,
		Endpoints:   endpoints,
		Deployment: Deployment{
			Platform: i.Deployment.Platform,
			CICD:     i.Deployment.CICD,
			Registry: i.Deployment.Registry,
		},
	}
}
