// Package server runs the web dashboard's HTTP listener and its background
// workers, and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
