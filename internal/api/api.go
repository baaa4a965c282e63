// Package api builds the huma API shared by the server and handler tests.
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

// Title is the OpenAPI title of the service.
const Title = "Prueba Argo API"

// Config returns huma settings for this service. The OpenAPI document, docs
// UI and schema routes are not mounted, so only the registered operations
// are reachable. Responses carry no $schema links for the same reason.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	cfg.Transformers = nil
	return cfg
}

// New mounts a huma API on router.
func New(router chi.Router, version string) huma.API {
	return humachi.New(router, Config(version))
}
