// Package errors provides structured errors for the homebrew API.
//
// Every error carries a Code that maps onto an HTTP status, an optional
// wrapped cause, and free-form metadata. Domain rule outcomes are NOT
// errors — those travel as ValidationIssue values on the entities — so
// anything returned through this package is either a caller mistake
// (invalid argument, not found) or an infrastructure failure.
package errors
