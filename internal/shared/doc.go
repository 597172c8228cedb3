// Package shared holds helpers used by more than one package.
//
// testutil captures structured log output so tests can assert on the
// events a run reports.
package shared
