package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
)

// displayError displays a tagged error message to the console.
func displayError(tag, msg string) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + msg)
}

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	SuccessStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayViolation displays a single lint violation in the standard
// `path:line:col: [rule] message` form followed by the offending source text.
func displayViolation(absPath, ruleName string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: ", absPath)
	} else {
		fmt.Printf("%s:%d:%d: ", absPath, span.StartLine+1, span.StartCol+1)
	}

	WarnColorFG.Printf("[%s] ", ruleName)
	fmt.Println(message)

	if span != nil {
		displaySourceText(absPath, span)
	}
}

// displaySourceText displays a segment of source text defined by a text span
// with the spanned region underlined by carets.
func displaySourceText(absPath string, span *TextSpan) {
	// Open the file so we can read the desired source text.
	file, err := os.Open(absPath)
	if err != nil {
		// The file was readable moments ago; just skip the excerpt.
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		InfoColorFG.Printf(lineNumFmtStr, i+span.StartLine+1)
		fmt.Println(line)

		// Print the bar used for caret underlining.
		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// For any line which is not the starting line the underlining always
		// continues from the previous line, so the caret prefix is zero.
		caretPrefixCount := 0
		if i == 0 {
			caretPrefixCount = span.StartCol
		}

		// For all lines except the last, underlining spans to the end of the
		// line and over onto the next line.
		caretSuffixCount := 0
		if i == len(lines)-1 {
			caretSuffixCount = len(line) - span.EndCol
		}

		caretCount := len(line) - caretSuffixCount - caretPrefixCount
		if caretCount < 1 {
			caretCount = 1
		}

		fmt.Print(strings.Repeat(" ", caretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", caretCount))
	}

	fmt.Println()
}

// displayLintSummary displays the concluding message for a lint run.
func displayLintSummary(fileCount, violationCount int) {
	fmt.Printf("linted %d file(s): ", fileCount)

	if violationCount == 0 {
		SuccessColorFG.Println("no violations found")
	} else {
		ErrorColorFG.Printf("%d violation(s) found\n", violationCount)
	}
}
