// Package http wires the REST API of go-post-board.
//
// Routes are registered on a chi router in two groups: a public group for
// registration, login, and read-only post access, and an authenticated group
// (bearer-token middleware) for profile management and every post mutation.
// Well-known service and store errors are translated into single-key JSON
// error bodies by the errors mapper; validation failures pass their
// field-error map through unchanged.
package http
