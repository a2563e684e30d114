package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"
	"github.com/pelletier/go-toml"

	"vlint/analysis"
	"vlint/report"
	"vlint/syntax"
)

// manifestFileName is the name of the configuration manifest searched for in
// the lint root when no explicit manifest path is given.
const manifestFileName = ".vlint.toml"

// tomlRule represents a per-rule entry of the manifest as encoded in TOML.
type tomlRule struct {
	Enabled *bool  `toml:"enabled"`
	Config  string `toml:"config"`
}

// tomlManifest represents the .vlint.toml manifest.
type tomlManifest struct {
	Vlint struct {
		Version string `toml:"version"`
	} `toml:"vlint"`

	Rules map[string]tomlRule `toml:"rules"`
}

// execLintCommand executes the lint subcommand and handles all errors.
func execLintCommand(result *olive.ArgParseResult, loglevel string) {
	initReporterFromLevel(loglevel)

	// get the primary argument: the root path
	rootRel, _ := result.PrimaryArg()
	rootPath, err := filepath.Abs(rootRel)
	if err != nil {
		report.ReportFatal("invalid lint path `%s`: %s", rootRel, err)
	}

	reg := newRegistry()

	// the effective rule bundle: manifest entries first, CLI entries override
	bundle := loadManifestBundle(result, rootPath, reg)

	if rulesArg, ok := result.Arguments["rules"]; ok {
		cliBundle, err := analysis.ParseRuleBundle(rulesArg.(string))
		if err != nil {
			report.ReportFatal("%s", err)
		}

		for name, item := range cliBundle {
			bundle[name] = item
		}
	}

	validateBundle(reg, bundle)

	files := collectSourceFiles(rootPath)
	if len(files) == 0 {
		report.ReportFatal("no SystemVerilog source files found under `%s`", rootPath)
	}

	for _, file := range files {
		lintFile(reg, bundle, file)
	}

	report.ReportLintSummary(len(files))

	switch {
	case report.AnyErrors():
		os.Exit(2)
	case report.ViolationCount() > 0:
		os.Exit(1)
	}
}

// loadManifestBundle locates and loads the configuration manifest, returning
// the rule bundle it describes.  A missing manifest is not an error unless
// its path was given explicitly; a malformed manifest always is.
func loadManifestBundle(result *olive.ArgParseResult, rootPath string, reg *analysis.Registry) analysis.RuleBundle {
	manifestPath := ""
	explicit := false

	if configArg, ok := result.Arguments["config"]; ok {
		manifestPath = configArg.(string)
		explicit = true
	} else {
		// Search the lint root (or the directory containing the lint root
		// when it is a single file) for a manifest.
		dir := rootPath
		if finfo, err := os.Stat(rootPath); err == nil && !finfo.IsDir() {
			dir = filepath.Dir(rootPath)
		}

		manifestPath = filepath.Join(dir, manifestFileName)
	}

	buff, err := ioutil.ReadFile(manifestPath)
	if err != nil {
		if explicit {
			report.ReportFatal("unable to read manifest at `%s`: %s", manifestPath, err)
		}

		return make(analysis.RuleBundle)
	}

	bundle, err := parseManifest(buff)
	if err != nil {
		report.ReportFatal("error parsing manifest at `%s`: %s", manifestPath, err)
	}

	return bundle
}

// parseManifest deserializes a TOML manifest into a rule bundle.
func parseManifest(buff []byte) (analysis.RuleBundle, error) {
	manifest := &tomlManifest{}
	if err := toml.Unmarshal(buff, manifest); err != nil {
		return nil, err
	}

	bundle := make(analysis.RuleBundle)
	for name, rule := range manifest.Rules {
		item := analysis.BundleItem{Enabled: true, Configuration: rule.Config}
		if rule.Enabled != nil {
			item.Enabled = *rule.Enabled
		}

		bundle[name] = item
	}

	return bundle, nil
}

// validateBundle fails fast, before any scanning occurs, if the bundle names
// an unknown rule or carries a configuration a rule rejects.
func validateBundle(reg *analysis.Registry, bundle analysis.RuleBundle) {
	for name, item := range bundle {
		rule, ok := reg.New(name)
		if !ok {
			report.ReportFatal("unknown lint rule `%s`", name)
		}

		if item.Configuration != "" {
			if err := rule.Configure(item.Configuration); err != nil {
				report.ReportFatal("rule `%s`: %s", name, err)
			}
		}
	}
}

// collectSourceFiles gathers the SystemVerilog source files to lint.  A file
// root yields itself; a directory root is walked recursively.
func collectSourceFiles(rootPath string) []string {
	finfo, err := os.Stat(rootPath)
	if err != nil {
		report.ReportFatal("unable to access lint path `%s`: %s", rootPath, err)
	}

	if !finfo.IsDir() {
		return []string{rootPath}
	}

	var files []string
	filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".v", ".sv", ".svh", ".vh":
			files = append(files, path)
		}

		return nil
	})

	return files
}

// lintFile runs every enabled rule over a single file's token stream and
// reports the resulting violations.  Each file gets fresh rule instances, so
// nothing carries over between files.
func lintFile(reg *analysis.Registry, bundle analysis.RuleBundle, path string) {
	f, err := os.Open(path)
	if err != nil {
		report.ReportFileError(path, err)
		return
	}
	defer f.Close()

	toks, err := syntax.Tokenize(f)
	if err != nil {
		report.ReportFileError(path, err)
		return
	}

	linter := analysis.NewLinter()
	for _, name := range reg.Names() {
		item, configured := bundle[name]
		if configured && !item.Enabled {
			continue
		}

		rule, _ := reg.New(name)
		if configured && item.Configuration != "" {
			// The bundle was validated up front, so this cannot fail.
			rule.Configure(item.Configuration)
		}

		linter.AddRule(rule)
	}

	linter.LintTokens(toks)

	for _, status := range linter.Report() {
		for _, v := range status.Violations {
			var span *report.TextSpan
			if v.Token != nil {
				span = v.Token.Span
			}

			report.ReportViolation(path, status.Descriptor.Name, span, v.Message)
		}
	}
}
