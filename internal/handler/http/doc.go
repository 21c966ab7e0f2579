// Package http implements the REST API of the reference remote store.
//
// Decks and cards are addressed by owner and id under /api/users/{userID}.
// Every request gets a trace id and an access log line; bodies under
// /api/users are gzip encoded when the client asks for it.
package http
