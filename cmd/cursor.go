package cmd

// cursor is the parser state: the token list and the position of the next
// unconsumed token. Every match function advances it explicitly.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

// peek returns the token at offset n from the current position.
func (c *cursor) peek(n int) (string, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.tokens) {
		return "", false
	}
	return c.tokens[i], true
}

func (c *cursor) advance(n int) {
	c.pos = min(c.pos+n, len(c.tokens))
}

func (c *cursor) remaining() []string {
	return c.tokens[c.pos:]
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}
