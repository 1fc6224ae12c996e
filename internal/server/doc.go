// Package server runs an HTTP handler until its context ends and then shuts
// it down gracefully. The backend API and the terminal's local API both use
// it.
package server
