package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/americo7/prueba-argo/internal/platform/procinfo"
	"github.com/americo7/prueba-argo/internal/platform/timeutil"
	"github.com/americo7/prueba-argo/internal/service/appinfo"
)

// Register wires GET /health into the provided API.
func Register(api huma.API, svc appinfo.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports liveness, uptime, version, environment and heap usage.",
		Tags:        []string{"App"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		// Probed every few seconds; the access log line is enough.
		return &Output{Body: toHTTPHealth(svc.Health(ctx))}, nil
	})
}

func toHTTPHealth(h appinfo.Health) Response {
	return Response{
		Status:      h.Status,
		Message:     h.Message,
		Timestamp:   timeutil.NewTime(h.Timestamp),
		Uptime:      h.Uptime,
		Version:     h.Version,
		Environment: h.Environment,
		Memory: Memory{
			Used:  procinfo.FormatMegabytes(h.Memory.HeapUsed),
			Total: procinfo.FormatMegabytes(h.Memory.HeapTotal),
		},
	}
}
