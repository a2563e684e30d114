package report

import (
	"fmt"
	"os"
	"sync"
)

// Reporter is responsible for reporting violations, errors, and other kinds of
// messages to the user while the linter runs.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from
// multiple goroutines (eg. when several files are linted in parallel).
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of violations reported so far.
	violationCount int

	// Indicates whether a fatal or file-level error has been reported.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all lint messages to the user (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level.  If the
// reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
		}
	}
}

// ViolationCount returns the total number of violations reported so far.
func ViolationCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.violationCount
}

// AnyErrors returns whether any fatal or file-level errors were reported.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.isErr
}

// -----------------------------------------------------------------------------

// ReportViolation reports a single lint violation found in the file at
// absPath.  The ruleName is the name of the rule that produced the violation.
// The span may be nil in which case no source excerpt is printed.
func ReportViolation(absPath, ruleName string, span *TextSpan, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.violationCount++

	if rep.logLevel > LogLevelSilent {
		displayViolation(absPath, ruleName, span, message)
	}
}

// ReportFileError reports a non-fatal error processing a single file: the file
// is skipped but linting continues with the remaining files.
func ReportFileError(path string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel >= LogLevelError {
		displayError("File Error", err.Error()+": "+path)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form: an
// unknown rule name, a malformed manifest, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep != nil && rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		displayError("Fatal Error", fmt.Sprintf(message, args...))
		rep.m.Unlock()
	} else if rep == nil {
		fmt.Fprintf(os.Stderr, "fatal error: "+message+"\n", args...)
	}

	os.Exit(2)
}

// ReportLintSummary reports the concluding message for a lint run.  This only
// displays if the log level is verbose.
func ReportLintSummary(fileCount int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayLintSummary(fileCount, rep.violationCount)
	}
}
