// Package store defines the repository interfaces for movies and users and
// the errors repositories report. Implementations trust their callers to pass
// normalized records: no validation happens at this layer.
package store
