// Package middleware provides HTTP middleware for tracing and rate limiting.
package middleware
