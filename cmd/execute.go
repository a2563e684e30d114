// Package cmd is the top-level "driver" package for the vlint CLI: it parses
// command-line arguments, builds the rule registry, and runs lint commands.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"vlint/analysis"
	"vlint/analysis/checkers"
	"vlint/report"
)

// VlintVersion is the current version of the linter.
const VlintVersion = "0.1.0"

// Execute runs the main `vlint` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("vlint", "vlint is a style linter for SystemVerilog source files", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the linter log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	lintCmd := cli.AddSubcommand("lint", "lint source files", true)
	lintCmd.AddPrimaryArg("path", "the file or directory to lint", true)
	lintCmd.AddStringArg("rules", "r", "comma-separated rule bundle: [+|-]name[=key:val;...]", false)
	lintCmd.AddStringArg("config", "c", "path to a .vlint.toml configuration manifest", false)

	rulesCmd := cli.AddSubcommand("rules", "describe the available lint rules", true)
	rulesCmd.AddPrimaryArg("rule-name", "the rule to describe, or `all` for every rule", false)

	cli.AddSubcommand("version", "print the vlint version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(2)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "lint":
		execLintCommand(subResult, result.Arguments["loglevel"].(string))
	case "rules":
		execRulesCommand(subResult)
	case "version":
		report.PrintInfoMessage("Vlint Version", VlintVersion)
	}
}

// newRegistry builds the rule registry for this linter build.  The registry
// is populated explicitly here: there is no implicit process-wide
// registration.
func newRegistry() *analysis.Registry {
	reg := analysis.NewRegistry()

	mustRegister(reg, checkers.RuleName, func() analysis.TokenStreamRule {
		return checkers.NewExplicitBeginRule()
	})

	return reg
}

// mustRegister registers a rule factory and treats a duplicate registration
// as a fatal error, since it can only result from a bad linter build.
func mustRegister(reg *analysis.Registry, name string, factory analysis.RuleFactory) {
	if err := reg.Register(name, factory); err != nil {
		report.ReportFatal("failed to build rule registry: %s", err)
	}
}

// initReporterFromLevel initializes the global reporter from a log level
// selector string.
func initReporterFromLevel(loglevel string) {
	logLevel := report.LogLevelVerbose
	switch loglevel {
	case "silent":
		logLevel = report.LogLevelSilent
	case "error":
		logLevel = report.LogLevelError
	case "warn":
		logLevel = report.LogLevelWarn
	}

	report.InitReporter(logLevel)
}
