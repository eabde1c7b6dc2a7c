// Package testutils provides testing utilities for the film store API.
//
// It contains helpers for:
//  1. Building request payloads for movies and users
//  2. Executing API requests against an http.Handler
//  3. Asserting API responses
//
// # Payloads
//
//	// A complete, valid movie payload:
//	in := testutils.MovieInput()
//
//	// The same payload with one field removed and another replaced:
//	in := testutils.MovieInput(
//	    testutils.Without("director"),
//	    testutils.With("duration", "ninety"),
//	)
//
// User payloads get a unique email generated with google/uuid, so fixtures
// never collide across tests.
package testutils
