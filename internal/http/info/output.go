package info

// Output for GET /info
type Output struct {
	Body Data
}
