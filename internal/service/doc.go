// Package service implements the resource operations behind the HTTP API.
//
// A ResourceService orchestrates the field validator and a repository for one
// record type. It decides, for every operation, whether the payload is
// well-formed and whether the target record exists, and reports the outcome
// as an error the API layer maps to a status code:
//
//   - validation failures carry domain.ErrMissingField (create) or
//     domain.ErrInvalidUpdate (replace)
//   - absent records carry the entity's store.ErrNotFound variant
//   - storage failures are wrapped and passed through unchanged otherwise
//
// Replace validates its payload before parsing the id or touching storage, so
// a malformed update is rejected the same way whether or not its target exists.
package service
