package gpr

import (
	"fmt"
)

// Lookup resolves a gene identifier to its expression value during
// evaluation. Implementations decide how missing genes are filled.
type Lookup func(gene string) float64

// node is one vertex of the parsed expression tree.
type node interface {
	eval(lookup Lookup) float64
}

// ident resolves a single gene through the lookup.
type ident string

// orNode sums its children (alternative catalysts add capacity).
type orNode []node

// andNode takes the geometric mean of its children (complex subunits).
type andNode []node

// Rule is a parsed, reusable gene-product rule. Parse once, evaluate many.
type Rule struct {
	text  string
	root  node     // nil for an empty rule
	genes []string // identifiers in first-appearance order, unique
}

// Parse builds a Rule from its textual form. An empty (or all-whitespace)
// rule is valid and evaluates to NaN. Malformed input returns ErrParse
// wrapped with position context.
func Parse(text string) (*Rule, error) {
	toks := lex(text)
	if len(toks) == 0 {
		return &Rule{text: text}, nil
	}
	p := &parser{toks: toks, src: text}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, p.errorf(p.toks[p.pos].pos, "unexpected %q", p.toks[p.pos].text)
	}
	r := &Rule{text: text, root: root}
	r.genes = collectGenes(root)
	return r, nil
}

// String returns the original rule text.
func (r *Rule) String() string { return r.text }

// Empty reports whether the rule carries no gene information.
func (r *Rule) Empty() bool { return r.root == nil }

// Genes returns the unique gene identifiers referenced by the rule,
// in first-appearance order.
func (r *Rule) Genes() []string {
	out := make([]string, len(r.genes))
	copy(out, r.genes)
	return out
}

// ExtractGenes returns the unique gene identifiers appearing in a rule
// string, in first-appearance order, without requiring the rule to parse.
// Operators and parentheses are skipped.
func ExtractGenes(text string) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	for _, tok := range lex(text) {
		if tok.kind != tokIdent {
			continue
		}
		if _, dup := seen[tok.text]; dup {
			continue
		}
		seen[tok.text] = struct{}{}
		out = append(out, tok.text)
	}
	return out
}

// parser is a standard recursive-descent parser over the token stream.
type parser struct {
	toks []token
	src  string
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("gpr: %s at offset %d in %q: %w", msg, pos, p.src, ErrParse)
}

// parseExpr := term { OR term }
func (p *parser) parseExpr() (node, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	children := orNode{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOr {
			break
		}
		p.pos++
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return children, nil
}

// parseTerm := factor { AND factor }
func (p *parser) parseTerm() (node, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	children := andNode{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokAnd {
			break
		}
		p.pos++
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return children, nil
}

// parseFactor := IDENT | '(' expr ')'
func (p *parser) parseFactor() (node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorf(len(p.src), "rule ends after an operator")
	}
	switch tok.kind {
	case tokIdent:
		p.pos++
		return ident(tok.text), nil
	case tokLParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, p.errorf(tok.pos, "unclosed parenthesis")
		}
		p.pos++
		return inner, nil
	default:
		return nil, p.errorf(tok.pos, "unexpected %q", tok.text)
	}
}

// collectGenes walks the tree gathering unique identifiers in order.
func collectGenes(n node) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
		walk func(node)
	)
	walk = func(n node) {
		switch v := n.(type) {
		case ident:
			name := string(v)
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		case orNode:
			for _, c := range v {
				walk(c)
			}
		case andNode:
			for _, c := range v {
				walk(c)
			}
		}
	}
	walk(n)
	return out
}
