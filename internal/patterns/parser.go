package patterns

import "strings"

const (
	// ChainDelimiter separates independent chains in a grammar.
	ChainDelimiter = ";"
	// DefaultLinkDelimiter separates the tokens of a chain.
	DefaultLinkDelimiter = "=>"
	// ArrowLinkDelimiter is the alternate single-dash arrow form.
	ArrowLinkDelimiter = "->"
)

// Parser expands a grammar such as "bh => b => p => f; dh => d => t" into
// the ordered pairs bh=>b, b=>p, p=>f, dh=>d, d=>t.
type Parser struct {
	link string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLinkDelimiter sets the token separator used inside a chain. Blank
// delimiters are ignored.
func WithLinkDelimiter(delim string) ParserOption {
	return func(p *Parser) {
		if strings.TrimSpace(delim) == "" {
			return
		}
		p.link = delim
	}
}

// NewParser returns a parser using DefaultLinkDelimiter unless overridden.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{link: DefaultLinkDelimiter}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LinkDelimiter reports the configured token separator.
func (p *Parser) LinkDelimiter() string {
	return p.link
}

// Parse never fails; degenerate chains simply contribute no pairs.
func (p *Parser) Parse(grammar string) []Pattern {
	result := []Pattern{}
	for _, chain := range strings.Split(grammar, ChainDelimiter) {
		tokens := strings.Split(strings.TrimSpace(chain), p.link)
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		for i := 1; i < len(tokens); i++ {
			result = append(result, New(tokens[i-1], tokens[i]))
		}
	}
	return result
}

// Parse parses grammar with the default link delimiter.
func Parse(grammar string) []Pattern {
	return NewParser().Parse(grammar)
}
