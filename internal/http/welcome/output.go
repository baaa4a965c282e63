package welcome

// Output is written verbatim as a plain text body.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
