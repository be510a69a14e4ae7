// Package domain contains shared domain types used across entity sub-packages.
// The entry entity lives in domain/todo. This root package holds the closed set
// of error kinds that every layer reports and that the HTTP boundary maps to
// status codes.
package domain
