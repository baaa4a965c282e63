package info

// Endpoint describes one public route.
type Endpoint struct {
	Path        string `json:"path"        doc:"Route path"  example:"/health"`
	Method      string `json:"method"      doc:"HTTP method" example:"GET"`
	Description string `json:"description" doc:"What the route returns"`
}

// Deployment describes the delivery pipeline.
type Deployment struct {
	Platform string `json:"platform" example:"Kubernetes"`
	CICD     string `json:"cicd"     example:"Argo Workflows"`
	Registry string `json:"registry" example:"Docker Hub"`
}

// Data is the application info payload.
type Data struct {
	App         string     `json:"app"         doc:"Application name"    example:"Prueba Argo - NestJS"`
	Version     string     `json:"version"     doc:"Application version" example:"1.0.0"`
	Author      string     `json:"author"      doc:"Application author"  example:"Americo7"`
	Description string     `json:"description" doc:"What the application is for"`
	Endpoints   []Endpoint `json:"endpoints"   doc:"Public routes in display order"`
	Deployment  Deployment `json:"deployment"`
}
