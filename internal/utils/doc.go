// Package utils holds small helpers shared by the client and the server:
// id generation, the resty-based HTTP client and JSON response writing.
package utils
