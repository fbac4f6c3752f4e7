package n2t

// Output Standards
//
// Command results go to stdout, problems to stderr:
//
//	PrintHeader("Hardware Simulator executable in %s", path)
//	PrintEmptyResult(".tst files", "/some/dir")
//	PrintSuccess("Stored %s", path)
//	PrintWarning("%s is not executable", path)
//	PrintErrorWithHint(err)
//
// When stdout is not a terminal the icons are replaced by plain
// "error:", "warning:" and "success" markers so the output stays greppable.

import (
	"fmt"
	"os"
)

// PrintHeader prints a bold header line
func PrintHeader(format string, args ...interface{}) {
	fmt.Println(Bold(fmt.Sprintf(format, args...)))
}

// PrintSuccess prints a success message with the success icon
func PrintSuccess(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if ShouldSimplifyOutput() {
		fmt.Printf("success %s\n", message)
	} else {
		fmt.Printf("%s %s\n", Green(SuccessIcon), message)
	}
}

// PrintWarning prints a warning message to stderr with the warning icon
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if ShouldSimplifyOutput() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", message)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", Yellow(WarningIcon), message)
	}
}

// PrintError prints an error message to stderr with the error icon
func PrintError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if ShouldSimplifyOutput() {
		fmt.Fprintf(os.Stderr, "error: %s\n", message)
	} else {
		fmt.Fprintf(os.Stderr, "%s Error: %s\n", Red(FailureIcon), message)
	}
}

// PrintErrorWithHint prints an error message with an optional hint
func PrintErrorWithHint(err error) {
	hint := GetErrorHint(err)
	if ShouldSimplifyOutput() {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "%s Error: %v\n", Red(FailureIcon), err)
	if hint != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", Cyan("Try:"), hint)
	}
}

// PrintInfo prints an informational message without any prefix
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintEmptyResult prints a standard "No X found in Y" message
func PrintEmptyResult(itemType, location string) {
	PrintInfo("No %s found in %s.", itemType, location)
}
