package cmd

import (
	"fmt"

	"github.com/ComedicChimera/olive"

	"vlint/analysis"
	"vlint/report"
)

// execRulesCommand executes the rules subcommand: it prints descriptors for
// one rule or for every registered rule.
func execRulesCommand(result *olive.ArgParseResult) {
	reg := newRegistry()

	name, ok := result.PrimaryArg()
	if !ok || name == "all" {
		for _, ruleName := range reg.Names() {
			desc, _ := reg.Descriptor(ruleName)
			printRuleInfo(desc)
		}

		return
	}

	desc, ok := reg.Descriptor(name)
	if !ok {
		report.ReportFatal("rule `%s` not found; specify a rule name or `all` for help on the rules", name)
	}

	printRuleInfo(desc)
}

// printRuleInfo prints a single rule descriptor with its parameter docs.
func printRuleInfo(desc analysis.RuleDescriptor) {
	report.PrintInfoMessage("Rule", desc.Name)
	fmt.Println(desc.Desc)

	if len(desc.Params) > 0 {
		fmt.Println("Parameters:")
		for _, param := range desc.Params {
			fmt.Printf("  * `%s` Default: `%s` %s\n", param.Name, param.Default, param.Help)
		}
	}

	fmt.Println()
}
