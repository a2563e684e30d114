// Package checkers contains the individual lint rule implementations.
package checkers

import (
	"fmt"

	"vlint/analysis"
	"vlint/syntax"
)

// RuleName is the registered name of the explicit-begin rule.
const RuleName = "explicit-begin"

// explicitBeginMessage is the fixed explanatory part of every violation
// message produced by the rule.
const explicitBeginMessage = " block constructs shall explicitly use begin/end."

// Enumeration of the scanning states of the explicit-begin rule.
const (
	// stateNormal scans for a monitored keyword that opens a construct.
	stateNormal = iota

	// stateInAlways has seen an `always` keyword, which may be followed by a
	// begin directly, by sensitivity-list markers, or by a condition.
	stateInAlways

	// stateInElse has seen an `else` keyword, which may be followed by either
	// a begin or an `if`.
	stateInElse

	// stateInCondition is inside (or just before) a parenthesized condition.
	stateInCondition

	// stateExpectBegin requires the next token to be a begin.
	stateExpectBegin
)

// ExplicitBeginRule checks that a `begin` directive follows all if, else,
// always, always_comb, always_latch, always_ff, forever, initial, for,
// foreach and while statements.
//
// The rule scans one file as a linear token stream.  When a violation fires,
// the offending token is not reprocessed: if it is itself a monitored
// keyword, it does not open a new construct, so adjacent malformed constructs
// may be undercounted.  This is a known limitation of the scanning approach.
type ExplicitBeginRule struct {
	// Per-statement-kind enable flags.  Immutable once scanning begins.
	ifEnable          bool
	elseEnable        bool
	alwaysEnable      bool
	alwaysCombEnable  bool
	alwaysLatchEnable bool
	alwaysFFEnable    bool
	foreverEnable     bool
	initialEnable     bool
	forEnable         bool
	foreachEnable     bool
	whileEnable       bool

	// The current scanning state.  This must be one of the enumerated states.
	state int

	// The token that opened the construct currently being checked.  Retained
	// so violations can cite it.
	startToken *syntax.Token

	// The number of unmatched open parentheses inside the current condition.
	// Only meaningful while state is stateInCondition.
	conditionLevel int

	// The violations accumulated over the scan.
	violations *analysis.ViolationSet
}

// NewExplicitBeginRule creates an explicit-begin rule with every statement
// kind enabled.
func NewExplicitBeginRule() *ExplicitBeginRule {
	return &ExplicitBeginRule{
		ifEnable:          true,
		elseEnable:        true,
		alwaysEnable:      true,
		alwaysCombEnable:  true,
		alwaysLatchEnable: true,
		alwaysFFEnable:    true,
		foreverEnable:     true,
		initialEnable:     true,
		forEnable:         true,
		foreachEnable:     true,
		whileEnable:       true,
		state:             stateNormal,
		violations:        analysis.NewViolationSet(),
	}
}

// Configure applies a `name:value` configuration string to the rule's enable
// flags.
func (r *ExplicitBeginRule) Configure(configuration string) error {
	return analysis.ParseNameValues(configuration, map[string]func(string) error{
		"if_enable":           analysis.SetBool(&r.ifEnable),
		"else_enable":         analysis.SetBool(&r.elseEnable),
		"always_enable":       analysis.SetBool(&r.alwaysEnable),
		"always_comb_enable":  analysis.SetBool(&r.alwaysCombEnable),
		"always_latch_enable": analysis.SetBool(&r.alwaysLatchEnable),
		"always_ff_enable":    analysis.SetBool(&r.alwaysFFEnable),
		"forever_enable":      analysis.SetBool(&r.foreverEnable),
		"initial_enable":      analysis.SetBool(&r.initialEnable),
		"for_enable":          analysis.SetBool(&r.forEnable),
		"foreach_enable":      analysis.SetBool(&r.foreachEnable),
		"while_enable":        analysis.SetBool(&r.whileEnable),
	})
}

// isTokenEnabled returns whether checking is enabled for the statement kind
// that the given token opens.
func (r *ExplicitBeginRule) isTokenEnabled(tok *syntax.Token) bool {
	switch tok.Kind {
	case syntax.TOK_IF:
		return r.ifEnable
	case syntax.TOK_ELSE:
		return r.elseEnable
	case syntax.TOK_ALWAYS:
		return r.alwaysEnable
	case syntax.TOK_ALWAYS_COMB:
		return r.alwaysCombEnable
	case syntax.TOK_ALWAYS_LATCH:
		return r.alwaysLatchEnable
	case syntax.TOK_ALWAYS_FF:
		return r.alwaysFFEnable
	case syntax.TOK_FOREVER:
		return r.foreverEnable
	case syntax.TOK_INITIAL:
		return r.initialEnable
	case syntax.TOK_FOR:
		return r.forEnable
	case syntax.TOK_FOREACH:
		return r.foreachEnable
	case syntax.TOK_WHILE:
		return r.whileEnable
	default:
		return false
	}
}

// HandleToken responds to a token by updating the state of the analysis.
func (r *ExplicitBeginRule) HandleToken(tok *syntax.Token) {
	// Whitespace and comments are fully transparent: they never reach the
	// automaton and must not perturb any counter.
	if tok.IsFormatting() {
		return
	}

	raiseViolation := false

	switch r.state {
	case stateNormal:
		if !r.isTokenEnabled(tok) {
			return
		}

		switch tok.Kind {
		// After the keyword, expect a begin directly.
		case syntax.TOK_ALWAYS_COMB, syntax.TOK_ALWAYS_LATCH, syntax.TOK_FOREVER, syntax.TOK_INITIAL:
			r.startToken = tok
			r.state = stateExpectBegin
		// After the keyword, expect a condition followed by a begin.  There
		// may be tokens prior to the condition (like the clock-edge specifier
		// in an always_ff statement); these are all ignored.
		case syntax.TOK_ALWAYS_FF, syntax.TOK_FOREACH, syntax.TOK_FOR, syntax.TOK_IF, syntax.TOK_WHILE:
			r.conditionLevel = 0
			r.startToken = tok
			r.state = stateInCondition
		// always gets special handling, as there may or may not be a
		// condition before the begin.
		case syntax.TOK_ALWAYS:
			r.conditionLevel = 0
			r.startToken = tok
			r.state = stateInAlways
		// else is also special as either an if or a begin can follow.
		case syntax.TOK_ELSE:
			r.startToken = tok
			r.state = stateInElse
		}

	case stateInAlways:
		// An always can be immediately followed by a begin, or by
		// sensitivity-list markers and maybe a condition.
		switch tok.Kind {
		case syntax.TOK_AT, syntax.TOK_STAR:
			// Sensitivity-list markers are skipped.
		case syntax.TOK_BEGIN:
			r.state = stateNormal
		case syntax.TOK_LPAREN:
			r.conditionLevel = 1
			r.state = stateInCondition
		default:
			raiseViolation = true
		}

	case stateInElse:
		// An else statement can be followed by either a begin or an if.
		switch tok.Kind {
		case syntax.TOK_IF:
			if r.ifEnable {
				r.conditionLevel = 0
				r.startToken = tok
				r.state = stateInCondition
			} else {
				// A disabled if check creates no further obligation.
				r.state = stateNormal
			}
		case syntax.TOK_BEGIN:
			r.state = stateNormal
		default:
			raiseViolation = true
		}

	case stateInCondition:
		// Expect a condition enclosed in a pair of parentheses.  Tokens
		// between the trigger keyword and the opening parenthesis are thrown
		// away, which simplifies always_ff.
		switch tok.Kind {
		case syntax.TOK_LPAREN:
			r.conditionLevel++
		case syntax.TOK_RPAREN:
			r.conditionLevel--
			if r.conditionLevel == 0 {
				r.state = stateExpectBegin
			}
		}

	case stateExpectBegin:
		// The next token must be a begin.
		if tok.Kind == syntax.TOK_BEGIN {
			r.state = stateNormal
		} else {
			raiseViolation = true
		}
	}

	if raiseViolation {
		r.violations.Insert(analysis.Violation{
			Token: r.startToken,
			Message: fmt.Sprintf("%s%s Expected begin, got %s",
				r.startToken.Value, explicitBeginMessage, tok.Value),
		})

		// Once the violation is raised, go back to the normal, default state.
		// The offending token itself is not reprocessed.
		r.conditionLevel = 0
		r.state = stateNormal
	}
}

// Report returns the violations accumulated so far paired with the rule's
// descriptor.
func (r *ExplicitBeginRule) Report() analysis.RuleStatus {
	return analysis.RuleStatus{
		Violations: r.violations.Violations(),
		Descriptor: r.Descriptor(),
	}
}

// Descriptor returns the rule's static metadata.
func (r *ExplicitBeginRule) Descriptor() analysis.RuleDescriptor {
	return analysis.RuleDescriptor{
		Name: RuleName,
		Desc: "Checks that a begin directive follows all if, else, always, " +
			"always_comb, always_latch, always_ff, forever, initial, for, " +
			"foreach and while statements.",
		Params: []analysis.ParamDescriptor{
			{Name: "if_enable", Default: "true", Help: "All if statements require an explicit begin-end block"},
			{Name: "else_enable", Default: "true", Help: "All else statements require an explicit begin-end block"},
			{Name: "always_enable", Default: "true", Help: "All always statements require an explicit begin-end block"},
			{Name: "always_comb_enable", Default: "true", Help: "All always_comb statements require an explicit begin-end block"},
			{Name: "always_latch_enable", Default: "true", Help: "All always_latch statements require an explicit begin-end block"},
			{Name: "always_ff_enable", Default: "true", Help: "All always_ff statements require an explicit begin-end block"},
			{Name: "forever_enable", Default: "true", Help: "All forever statements require an explicit begin-end block"},
			{Name: "initial_enable", Default: "true", Help: "All initial statements require an explicit begin-end block"},
			{Name: "for_enable", Default: "true", Help: "All for statements require an explicit begin-end block"},
			{Name: "foreach_enable", Default: "true", Help: "All foreach statements require an explicit begin-end block"},
			{Name: "while_enable", Default: "true", Help: "All while statements require an explicit begin-end block"},
		},
	}
}
