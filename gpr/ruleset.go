package gpr

import "fmt"

// Ruleset collects the gene-product rules of a model in reaction order.
// The order always matches the stoichiometric matrix's column order, so
// mapped expression vectors line up with the matrix without re-indexing.
type Ruleset struct {
	reactions []string
	rules     map[string]string
	genes     map[string][]string
}

// NewRuleset returns an empty Ruleset.
func NewRuleset() *Ruleset {
	return &Ruleset{
		rules: make(map[string]string),
		genes: make(map[string][]string),
	}
}

// Add appends a reaction with its rule text and associated gene list.
// A nil gene list is derived from the rule text itself. Returns
// ErrDuplicateReaction if the reaction was added before.
func (rs *Ruleset) Add(reaction, rule string, genes []string) error {
	if _, dup := rs.rules[reaction]; dup {
		return fmt.Errorf("gpr: reaction %q: %w", reaction, ErrDuplicateReaction)
	}
	if genes == nil {
		genes = ExtractGenes(rule)
	}
	rs.reactions = append(rs.reactions, reaction)
	rs.rules[reaction] = rule
	rs.genes[reaction] = genes
	return nil
}

// Len returns the number of reactions.
func (rs *Ruleset) Len() int { return len(rs.reactions) }

// Reactions returns the reaction identifiers in insertion order.
func (rs *Ruleset) Reactions() []string {
	out := make([]string, len(rs.reactions))
	copy(out, rs.reactions)
	return out
}

// Rule returns the rule text for a reaction and whether it is known.
func (rs *Ruleset) Rule(reaction string) (string, bool) {
	r, ok := rs.rules[reaction]
	return r, ok
}

// Genes returns the gene identifiers associated with a reaction
// (nil for unknown reactions).
func (rs *Ruleset) Genes(reaction string) []string {
	g, ok := rs.genes[reaction]
	if !ok {
		return nil
	}
	out := make([]string, len(g))
	copy(out, g)
	return out
}
