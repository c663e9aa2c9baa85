// Package logger provides a simple logging system with verbosity levels
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// VerbosityLevel defines how verbose the logging should be
type VerbosityLevel int

const (
	// VerbosityQuiet shows only essential output
	VerbosityQuiet VerbosityLevel = iota
	// VerbosityNormal shows important information (default)
	VerbosityNormal
	// VerbosityVerbose shows detailed information
	VerbosityVerbose
	// VerbosityDebug shows all information including debug data
	VerbosityDebug
)

// Symbols are coloured at call time so color.NoColor is honoured
func checkmark() string { return color.GreenString("✓") }
func arrow() string     { return color.CyanString("→") }
func cross() string     { return color.RedString("✗") }

var verbosity VerbosityLevel = VerbosityNormal
var startTime time.Time
var totalSteps int
var currentStep int

var out io.Writer = os.Stdout
var errOut io.Writer = os.Stderr

// Initialize sets the verbosity level and records the start time
func Initialize(level VerbosityLevel) {
	verbosity = level
	startTime = time.Now()
	totalSteps = 0
	currentStep = 0

	if verbosity >= VerbosityNormal {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "EMPATHETIC CODE REVIEWER")
		fmt.Fprintln(out, strings.Repeat("-", 24))
	}
}

// SetOutput redirects normal and error output. Nil restores the process streams.
func SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	out = stdout
	errOut = stderr
}

// SetTotalSteps sets the total number of steps in the process
func SetTotalSteps(steps int) {
	totalSteps = steps
}

// Info prints information at normal verbosity and above
func Info(format string, args ...interface{}) {
	if verbosity >= VerbosityNormal {
		fmt.Fprintf(out, format+"\n", args...)
	}
}

// Verbose prints information at verbose level and above
func Verbose(format string, args ...interface{}) {
	if verbosity >= VerbosityVerbose {
		fmt.Fprintf(out, format+"\n", args...)
	}
}

// Debug prints information at debug level only
func Debug(format string, args ...interface{}) {
	if verbosity >= VerbosityDebug {
		fmt.Fprintf(out, "DEBUG: "+format+"\n", args...)
	}
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return verbosity >= VerbosityDebug
}

// Error prints error information at all verbosity levels
func Error(format string, args ...interface{}) {
	fmt.Fprintf(errOut, "%s ERROR: "+format+"\n", append([]interface{}{cross()}, args...)...)
}

// Step prints a step message with step number
func Step(stepName string) {
	if verbosity >= VerbosityNormal {
		currentStep++
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s Step %d/%d: %s\n", arrow(), currentStep, totalSteps, stepName)
	}
}

// StepDetail prints a detail message for the current step
func StepDetail(format string, args ...interface{}) {
	if verbosity >= VerbosityNormal {
		fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, args...))
	}
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	if verbosity >= VerbosityNormal {
		fmt.Fprintf(out, "%s %s\n", checkmark(), fmt.Sprintf(format, args...))
	}
}

// Complete prints a completion message for the entire process
func Complete() {
	if verbosity >= VerbosityNormal {
		elapsed := time.Since(startTime)

		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("-", 50))
		fmt.Fprintln(out, "REVIEW REPORT COMPLETED")
		fmt.Fprintf(out, "Total time: %s\n", formatDuration(elapsed))
		fmt.Fprintln(out)
	}

	// Reset step counter for next run
	currentStep = 0
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	// Round to seconds for cleaner output
	seconds := int(d.Seconds())
	minutes := seconds / 60
	seconds %= 60

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
