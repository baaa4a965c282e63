package health

import (
	"github.com/americo7/prueba-argo/internal/platform/timeutil"
)

// Memory reports heap figures as whole megabytes.
type Memory struct {
	Used  string `json:"used"  doc:"Heap in use"                 example:"12 MB"`
	Total string `json:"total" doc:"Heap reserved from the OS"   example:"20 MB"`
}

// Response is the health check payload.
type Response struct {
	Status      string        `json:"status"      doc:"Liveness status"              example:"OK"`
	Message     string        `json:"message"     doc:"Human readable status"        example:"Aplicación saludable"`
	Timestamp   timeutil.Time `json:"timestamp"   doc:"Time the report was built"    example:"2024-01-15T10:30:00.000Z"`
	Uptime      int64         `json:"uptime"      doc:"Seconds since process start"  example:"3600"`
	Version     string        `json:"version"     doc:"Application version"          example:"1.0.0"`
	Environment string        `json:"environment" doc:"Deployment environment label" example:"production"`
	Memory      Memory        `json:"memory"      doc:"Heap usage"`
}
