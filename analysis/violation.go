package analysis

import "vlint/syntax"

// Violation is a single lint violation: the token it is anchored to and a
// human-readable message.  The token is the construct's trigger token, not
// necessarily the token that broke the rule's expectation.
type Violation struct {
	// The token the violation is anchored to.
	Token *syntax.Token

	// The violation message.
	Message string
}

// violationKey identifies a violation for de-duplication purposes.
type violationKey struct {
	line, col int
	message   string
}

// ViolationSet is an insertion-ordered collection of violations that
// de-duplicates by (position, message).  Duplicate insertion is not expected
// under normal rule operation, but set semantics keep accidental repeats from
// inflating reports.
type ViolationSet struct {
	violations []Violation
	seen       map[violationKey]struct{}
}

// NewViolationSet creates a new, empty violation set.
func NewViolationSet() *ViolationSet {
	return &ViolationSet{seen: make(map[violationKey]struct{})}
}

// Insert adds a violation to the set if an identical one is not already
// present.
func (vs *ViolationSet) Insert(v Violation) {
	key := violationKey{message: v.Message}
	if v.Token != nil && v.Token.Span != nil {
		key.line = v.Token.Span.StartLine
		key.col = v.Token.Span.StartCol
	}

	if _, ok := vs.seen[key]; ok {
		return
	}

	vs.seen[key] = struct{}{}
	vs.violations = append(vs.violations, v)
}

// Violations returns the accumulated violations in insertion order.  The
// returned slice is a copy: callers may not mutate the set through it.
func (vs *ViolationSet) Violations() []Violation {
	out := make([]Violation, len(vs.violations))
	copy(out, vs.violations)
	return out
}

// Len returns the number of violations in the set.
func (vs *ViolationSet) Len() int {
	return len(vs.violations)
}
