package welcome

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/americo7/prueba-argo/internal/platform/logging"
	"github.com/americo7/prueba-argo/internal/service/appinfo"
)

const contentTypeText = "text/plain; charset=utf-8"

// Register wires GET / into the provided API.
func Register(api huma.API, svc appinfo.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"App"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "welcome", zap.String("path", "/"))
		return &Output{
			ContentType: contentTypeText,
			Body:        []byte(svc.Welcome(ctx)),
		}, nil
	})
}
