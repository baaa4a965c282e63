package health

// Output for GET /health
type Output struct {
	Body Response
}
