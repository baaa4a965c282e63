package appinfo

import (
	"context"
	"time"

	"github.com/americo7/prueba-argo/internal/platform/procinfo"
)

// Fixed application metadata reported by the service.
const (
	AppName        = "Prueba Argo - NestJS"
	AppVersion     = "1.0.0"
	AppAuthor      = "Americo7"
	AppDescription = "Aplicación de prueba para despliegue con Argo Workflows"

	WelcomeMessage = "🎉 ¡Hola Américo! Tu app NestJS está funcionando en Kubernetes con Argo Workflows!"

	HealthStatusOK = "OK"
	HealthMessage  = "Aplicación saludable"

	// DefaultEnvironment is reported when no environment label is configured.
	DefaultEnvironment = "production"
)

// Endpoint describes one public route.
type Endpoint struct {
	Path        string
	Method      string
	Description string
}

// Deployment describes where the service runs.
type Deployment struct {
	Platform string
	CICD     string
	Registry string
}

// Info is the static application descriptor.
type Info struct {
	App         string
	Version     string
	Author      string
	Description string
	Endpoints   []Endpoint
	Deployment  Deployment
}

// Health is a point-in-time liveness report.
type Health struct {
	Status      string
	Message     string
	Timestamp   time.Time
	Uptime      int64
	Version     string
	Environment string
	Memory      procinfo.MemoryStats
}

// Service builds the payloads served by the HTTP layer. Every call returns
// a fresh value; callers may modify it freely.
type Service interface {
	Welcome(ctx context.Context) string
	Health(ctx context.Context) Health
	Info(ctx context.Context) Info
}

// Endpoints lists the public routes in display order.
func Endpoints() []Endpoint {
	return []Endpoint{
		{Path: "/", Method: "GET", Description: "Mensaje de bienvenida"},
		{Path: "/health", Method: "GET", Description: "Estado de salud de la aplicación"},
		{Path: "/info", Method: "GET", Description: "Información de la aplicación"},
	}
}

type service struct {
	environment string
	monitor     *procinfo.Monitor
}

// New returns a Service reporting environment and reading process figures
// from monitor. An empty environment falls back to DefaultEnvironment.
func New(environment string, monitor *procinfo.Monitor) Service {
	if environment == "" {
		environment = DefaultEnvironment
	}
	if monitor == nil {
		monitor = procinfo.New()
	}
	return &service{environment: environment, monitor: monitor}
}

func (s *service) Welcome(context.Context) string {
	return WelcomeMessage
}

func (s *service) Health(context.Context) Health {
	return Health{
		Status:      HealthStatusOK,
		Message:     HealthMessage,
		Timestamp:   s.monitor.Now(),
		Uptime:      s.monitor.Uptime(),
		Version:     AppVersion,
		Environment: s.environment,
		Memory:      s.monitor.Memory(),
	}
}

func (s *service) Info(context.Context) Info {
	return Info{
		App:         AppName,
		Version:     AppVersion,
		Author:      AppAuthor,
		Description: AppDescription,
		Endpoints:   Endpoints(),
		Deployment: Deployment{
			Platform: "Kubernetes",
			CICD:     "Argo Workflows",
			Registry: "Docker Hub",
		},
	}
}
