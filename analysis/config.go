package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadConfig is the sentinel error wrapped by all rule configuration
// failures: unknown option names, malformed values, and malformed bundle
// entries.
var ErrBadConfig = errors.New("invalid rule configuration")

// ParseNameValues parses a rule configuration string of `name:value` pairs
// separated by `;` and applies each pair through the matching handler.  A
// name with no handler or a handler rejecting its value fails the whole
// parse.  Empty entries are permitted so that trailing separators are
// harmless.
func ParseNameValues(configuration string, handlers map[string]func(value string) error) error {
	for _, entry := range strings.Split(configuration, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, value, found := strings.Cut(entry, ":")
		if !found {
			return fmt.Errorf("%w: expected name:value, got %q", ErrBadConfig, entry)
		}

		name = strings.TrimSpace(name)
		handler, ok := handlers[name]
		if !ok {
			return fmt.Errorf("%w: unknown option %q", ErrBadConfig, name)
		}

		if err := handler(strings.TrimSpace(value)); err != nil {
			return err
		}
	}

	return nil
}

// SetBool returns a configuration handler that parses a boolean value into b.
func SetBool(b *bool) func(value string) error {
	return func(value string) error {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: expected boolean, got %q", ErrBadConfig, value)
		}

		*b = parsed
		return nil
	}
}

// -----------------------------------------------------------------------------

// BundleItem is the per-rule outcome of parsing a rule bundle: whether the
// rule is enabled and the configuration string to apply to it.
type BundleItem struct {
	Enabled       bool
	Configuration string
}

// RuleBundle maps rule names to their bundle decisions.
type RuleBundle map[string]BundleItem

// ParseRuleBundle parses a comma-separated rule bundle of the form
//
//	name, +name, -name, name=key:val;key:val
//
// No prefix or a `+` prefix enables the rule; `-` disables it.  Configuration
// values for a rule are placed after a `=` character.
func ParseRuleBundle(s string) (RuleBundle, error) {
	bundle := make(RuleBundle)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		item := BundleItem{Enabled: true}
		switch entry[0] {
		case '+':
			entry = entry[1:]
		case '-':
			item.Enabled = false
			entry = entry[1:]
		}

		name, config, found := strings.Cut(entry, "=")
		if found {
			if !item.Enabled {
				return nil, fmt.Errorf("%w: disabled rule %q cannot carry configuration", ErrBadConfig, name)
			}

			item.Configuration = config
		}

		if name == "" {
			return nil, fmt.Errorf("%w: empty rule name in bundle entry %q", ErrBadConfig, entry)
		}

		bundle[name] = item
	}

	return bundle, nil
}
