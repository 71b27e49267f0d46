// Package errs defines the typed errors handlers return.
//
// Every error that should reach the client with a specific status is an
// *HTTPError; anything else is treated as a store failure and answered with
// a generic 500 by the global error handler.
package errs
