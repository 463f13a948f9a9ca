package unexported

// token is produced by the lexer.
type token struct {
	word *string
	eof  *struct{}
	pos  *struct {
		line   int
		column int
	}
}
