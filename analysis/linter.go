package analysis

import "vlint/syntax"

// Linter runs a set of configured token-stream rules over one file's token
// stream.  A linter instance scans exactly one file; independent instances
// may run fully in parallel since they share no mutable state.
type Linter struct {
	rules []TokenStreamRule
}

// NewLinter creates a new linter with no rules.
func NewLinter() *Linter {
	return &Linter{}
}

// AddRule adds a configured rule to the linter.
func (l *Linter) AddRule(rule TokenStreamRule) {
	l.rules = append(l.rules, rule)
}

// LintTokens feeds every token of the stream to every rule in order.  The EOF
// token, if present, is not passed to rules.
func (l *Linter) LintTokens(toks []*syntax.Token) {
	for _, tok := range toks {
		if tok.Kind == syntax.TOK_EOF {
			break
		}

		for _, rule := range l.rules {
			rule.HandleToken(tok)
		}
	}
}

// Report gathers the status of every rule after scanning.
func (l *Linter) Report() []RuleStatus {
	statuses := make([]RuleStatus, 0, len(l.rules))
	for _, rule := range l.rules {
		statuses = append(statuses, rule.Report())
	}

	return statuses
}
