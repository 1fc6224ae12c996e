// Package http implements both HTTP surfaces of the system.
//
// [Handler] serves the backend ledger API that terminals synchronize
// against. [ClientHandler] serves the terminal's local API used by the
// till front end. Request tracing, access logging, compression, terminal
// authentication and body integrity checks are middleware in this package.
package http
