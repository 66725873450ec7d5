// Package assertions implements the checks shared by the assert and require
// packages. Each check reports through the supplied testify TestingT, so the
// caller decides whether a failure stops the test.
package assertions

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// AssertionTestingTB exposes enough testing.TB methods for assertion(s).
type AssertionTestingTB interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	FailNow()
	Helper()
}

// ErrorContains asserts that err is not nil and that its message contains want.
func ErrorContains(t assert.TestingT, want string, err error, msg ...interface{}) bool {
	if !assert.Error(t, err, msg...) {
		return false
	}
	return assert.Contains(t, err.Error(), want, msg...)
}

// LogsContain checks whether a given string is a part of logs. If flag=false, inverse is checked.
func LogsContain(t assert.TestingT, hook *test.Hook, want string, flag bool, msg ...interface{}) bool {
	entries := hook.AllEntries()
	logs := make([]string, 0, len(entries))
	match := false
	for _, e := range entries {
		line, err := e.String()
		if err != nil {
			return assert.Fail(t, fmt.Sprintf("failed to format log entry to string: %v", err))
		}
		if strings.Contains(line, want) {
			match = true
		}
		for _, field := range e.Data {
			fieldStr, ok := field.(string)
			if ok && strings.Contains(fieldStr, want) {
				match = true
			}
		}
		logs = append(logs, line)
	}
	if flag && !match {
		return assert.Fail(t, fmt.Sprintf("Expected log not found: %v\nSearched logs:\n%v", want, strings.Join(logs, "")), msg...)
	}
	if !flag && match {
		return assert.Fail(t, fmt.Sprintf("Unexpected log found: %v\nSearched logs:\n%v", want, strings.Join(logs, "")), msg...)
	}
	return true
}

// StringContains asserts that actual contains expected.
func StringContains(t assert.TestingT, expected, actual string, flag bool, msg ...interface{}) bool {
	if flag {
		return assert.Contains(t, actual, expected, msg...)
	}
	return assert.NotContains(t, actual, expected, msg...)
}
