// Package errors provides structured, code-registered errors for brunhild.
//
// Each subsystem error carries a stable code (BH001, BH002, ...) and a
// category naming the subsystem it originates from. Public packages expose
// sentinel values built with New; errors.Is matches any instance carrying
// the same code, so wrapped errors with added context still compare equal
// to the sentinel.
package errors
