// Package domain contains the core entities of the service (movies and users)
// and the field validator that turns raw request payloads into normalized
// records. It is independent of HTTP and of any storage technology.
package domain
