// Package analysis contains the lint rule plumbing: the token-stream rule
// interface, violation collection, rule registration, configuration parsing,
// and the per-file linter that drives rules over a token stream.
package analysis

import "vlint/syntax"

// TokenStreamRule is a lint rule that analyzes a source file as a linear
// stream of tokens.  A rule instance scans exactly one file: the linter
// creates a fresh instance per file, so implementations are free to keep
// mutable scanning state without synchronization.
type TokenStreamRule interface {
	// Configure applies a rule configuration string of `name:value` pairs
	// separated by `;`.  An unrecognized name or malformed value is a
	// configuration error.  Configure must be called before any tokens are
	// handled; an empty configuration string leaves all defaults in place.
	Configure(configuration string) error

	// HandleToken responds to a single token by updating the rule's scanning
	// state and possibly recording violations.
	HandleToken(tok *syntax.Token)

	// Report returns the violations accumulated so far along with the rule's
	// descriptor.  It may be called any number of times and does not reset
	// scanning state.
	Report() RuleStatus

	// Descriptor returns the rule's static metadata.  It is pure data with no
	// dependency on scanning state.
	Descriptor() RuleDescriptor
}

// RuleStatus pairs a rule's accumulated violations with its descriptor for
// downstream formatting.
type RuleStatus struct {
	Violations []Violation
	Descriptor RuleDescriptor
}

// RuleDescriptor is the static metadata of a lint rule, consumed by help and
// documentation generation.
type RuleDescriptor struct {
	// The registered name of the rule, eg. "explicit-begin".
	Name string

	// A prose description of what the rule checks.
	Desc string

	// Descriptions of the rule's configuration parameters, if any.
	Params []ParamDescriptor
}

// ParamDescriptor describes one configuration parameter of a lint rule.
type ParamDescriptor struct {
	Name    string
	Default string
	Help    string
}
