package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// failureHandler receives every unrecoverable diagnostic: precondition
// violations, internal consistency failures and non-success results from
// native creation calls. The default terminates the process. Tests swap in
// a recording handler that returns instead, so callers must bail out with
// a harmless default right after reporting.
var failureHandler = func(msg string) {
	log.Fatal(msg)
}

// assertf reports a precondition violation.
func assertf(format string, args ...interface{}) {
	failureHandler(fmt.Sprintf(format, args...))
}

// internalAssertf reports a broken internal invariant.
func internalAssertf(format string, args ...interface{}) {
	failureHandler(fmt.Sprintf(format, args...))
}

// mustSucceed reports a native call failure, naming the failing call.
func mustSucceed(context string, result Result) {
	if result == Success {
		return
	}
	failureHandler(context + ": " + result.Error())
}
